// Package matching ranks a job catalog against a candidate profile using a
// weighted multi-factor score over skills, experience, industry and location
// fit. The matcher is read-only over its inputs and safe for concurrent use.
package matching

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/lexicon"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Fixed match weights and thresholds. Hand-tuned constants preserved for
// compatibility; do not rebalance without re-tuning the cutoff.
const (
	skillsWeight     = 0.4
	experienceWeight = 0.3
	industryWeight   = 0.2
	locationWeight   = 0.1

	exactBlendWeight      = 0.7
	similarityBlendWeight = 0.3

	minMatchScore = 0.3
	neutralScore  = 0.5

	maxReasons    = 3
	maxSkillDelta = 5

	// DefaultLimit is used when the caller passes a non-positive limit.
	DefaultLimit = 10
)

// Matcher scores and ranks job postings for a candidate profile.
type Matcher struct {
	lex    *lexicon.Lexicon
	scorer *scoring.Scorer
}

// New creates a Matcher over the given lexicon.
func New(lex *lexicon.Lexicon) *Matcher {
	return &Matcher{lex: lex, scorer: scoring.New(lex)}
}

// FindMatches ranks active postings by fit against the profile and returns at
// most limit results, best first. A profile without skills or an empty
// catalog yields an empty list, never an error. Ordering is deterministic:
// ties keep the original catalog order.
func (m *Matcher) FindMatches(profile *types.Profile, jobs []types.JobPosting, limit int) []types.MatchResult {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if profile == nil || len(profile.Skills) == 0 {
		return []types.MatchResult{}
	}

	profileSkills := lowerSet(profile.SkillTerms())
	results := make([]types.MatchResult, 0, len(jobs))

	for _, job := range jobs {
		if !job.IsActive {
			continue
		}

		score := m.matchScore(profile, profileSkills, &job)
		if score <= minMatchScore {
			continue
		}

		results = append(results, types.MatchResult{
			Job:           job,
			MatchScore:    round2(score),
			MatchReasons:  m.matchReasons(profile, profileSkills, &job, score),
			MissingSkills: missingSkills(profileSkills, job.RequiredSkills),
			ExtraSkills:   extraSkills(profile, &job),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// matchScore computes the weighted per-job score, clamped to [0,1].
func (m *Matcher) matchScore(profile *types.Profile, profileSkills map[string]bool, job *types.JobPosting) float64 {
	score := skillsWeight*m.skillsMatch(profile, profileSkills, job.RequiredSkills) +
		experienceWeight*m.experienceMatch(profile.ExperienceYears, job.ExperienceLevel) +
		industryWeight*m.industryMatch(profile.Industry, job.Industry) +
		locationWeight*locationMatch(job)

	if score > 1 {
		return 1
	}
	if score < 0 {
		return 0
	}
	return score
}

// skillsMatch blends the exact required-skill overlap with a textual
// similarity over the joined skill lists. Similarity failure degrades to the
// exact score alone rather than failing the match.
func (m *Matcher) skillsMatch(profile *types.Profile, profileSkills map[string]bool, required []string) float64 {
	if len(required) == 0 {
		return neutralScore
	}
	if len(profileSkills) == 0 {
		return 0
	}

	matched := 0
	for _, skill := range required {
		if profileSkills[strings.ToLower(skill)] {
			matched++
		}
	}
	exact := float64(matched) / float64(len(required))

	if len(profileSkills) > 1 && len(required) > 1 {
		similarity, err := cosineSimilarity(
			strings.ToLower(strings.Join(profile.SkillTerms(), " ")),
			strings.ToLower(strings.Join(required, " ")),
		)
		if err == nil {
			blended := exactBlendWeight*exact + similarityBlendWeight*similarity
			if blended > 1 {
				return 1
			}
			return blended
		}
	}
	return exact
}

// experienceMatch scores candidate years against the level's expected range:
// inside is perfect, below decays fast, above decays slowly with a floor.
func (m *Matcher) experienceMatch(years float64, level string) float64 {
	if level == "" {
		return neutralScore
	}
	r := m.lex.LevelRangeFor(level)

	switch {
	case years >= r.Min && years <= r.Max:
		return 1.0
	case years < r.Min:
		score := 1.0 - 0.2*(r.Min-years)
		if score < 0 {
			return 0
		}
		return score
	default:
		score := 1.0 - 0.1*(years-r.Max)
		if score < 0.5 {
			return 0.5
		}
		return score
	}
}

// industryMatch compares candidate and job industries: exact, related via
// the lexicon table, shared token, or unrelated.
func (m *Matcher) industryMatch(candidate, job string) float64 {
	if candidate == "" || job == "" {
		return neutralScore
	}
	candidateLower := strings.ToLower(candidate)
	jobLower := strings.ToLower(job)

	if candidateLower == jobLower {
		return 1.0
	}

	for _, rel := range m.lex.RelatedIndustries {
		if (strings.Contains(candidateLower, rel.Name) && containsAny(jobLower, rel.Related)) ||
			(strings.Contains(jobLower, rel.Name) && containsAny(candidateLower, rel.Related)) {
			return 0.8
		}
	}

	for _, token := range strings.Fields(candidateLower) {
		for _, other := range strings.Fields(jobLower) {
			if token == other {
				return 0.6
			}
		}
	}
	return 0.3
}

// locationMatch is a placeholder without geocoding: unknown location is
// neutral, remote is a perfect fit, everything else a fixed partial score.
func locationMatch(job *types.JobPosting) float64 {
	if job.Location == "" {
		return neutralScore
	}
	if job.RemoteWork {
		return 1.0
	}
	return 0.7
}

// matchReasons explains a match in at most three human-readable reasons.
func (m *Matcher) matchReasons(profile *types.Profile, profileSkills map[string]bool, job *types.JobPosting, score float64) []string {
	var reasons []string

	var matched []string
	for _, skill := range job.RequiredSkills {
		if profileSkills[strings.ToLower(skill)] {
			matched = append(matched, skill)
		}
	}
	if len(matched) > 0 {
		names := matched
		if len(names) > 3 {
			names = names[:3]
		}
		reasons = append(reasons, fmt.Sprintf("Matches %d required skills: %s", len(matched), strings.Join(names, ", ")))
	}

	levelLower := strings.ToLower(job.ExperienceLevel)
	if profile.ExperienceYears > 0 && job.ExperienceLevel != "" {
		switch {
		case strings.Contains(levelLower, "senior") && profile.ExperienceYears >= 5:
			reasons = append(reasons, "Experience level matches senior position requirements")
		case strings.Contains(levelLower, "junior") && profile.ExperienceYears <= 3:
			reasons = append(reasons, "Experience level suitable for junior position")
		}
	}

	if profile.Industry != "" && job.Industry != "" &&
		strings.EqualFold(profile.Industry, job.Industry) {
		reasons = append(reasons, fmt.Sprintf("Industry experience in %s", profile.Industry))
	}

	if m.scorer.Score(profile).Education >= 80 {
		reasons = append(reasons, "Strong educational background")
	}

	switch {
	case score >= 0.8:
		reasons = append(reasons, "Excellent overall match")
	case score >= 0.6:
		reasons = append(reasons, "Good overall match")
	case score >= 0.4:
		reasons = append(reasons, "Moderate match")
	}

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return reasons
}

// missingSkills lists required skills absent from the profile, capped.
func missingSkills(profileSkills map[string]bool, required []string) []string {
	var missing []string
	for _, skill := range required {
		if !profileSkills[strings.ToLower(skill)] {
			missing = append(missing, skill)
			if len(missing) == maxSkillDelta {
				break
			}
		}
	}
	return missing
}

// extraSkills lists profile skills the job neither requires nor prefers,
// capped.
func extraSkills(profile *types.Profile, job *types.JobPosting) []string {
	wanted := lowerSet(job.RequiredSkills)
	for _, skill := range job.PreferredSkills {
		wanted[strings.ToLower(skill)] = true
	}

	var extra []string
	for _, skill := range profile.SkillTerms() {
		if !wanted[strings.ToLower(skill)] {
			extra = append(extra, skill)
			if len(extra) == maxSkillDelta {
				break
			}
		}
	}
	return extra
}

func lowerSet(terms []string) map[string]bool {
	set := make(map[string]bool, len(terms))
	for _, t := range terms {
		set[strings.ToLower(t)] = true
	}
	return set
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
