// Package scoring converts a candidate profile into per-dimension scores and
// narrative feedback. Scoring is a pure function of the profile; identical
// profiles always produce identical breakdowns.
package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/resume-matcher/internal/lexicon"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Fixed scoring constants. Hand-tuned; not learned from data.
const (
	pointsPerSkill       = 2.0
	pointsPerConfidence  = 5.0
	pointsPerTechnical   = 10.0
	pointsPerYear        = 5.0
	pointsPerPosition    = 5.0
	maxCountedPositions  = 5
	pointsPerSeniorTitle = 5.0
	multiDegreeBonusUnit = 5.0
	multiDegreeBonusCap  = 20.0
	maxScore             = 100.0
)

// notSpecified is the education level reported for profiles with no degrees.
const notSpecified = "Not Specified"

// Scorer scores candidate profiles against the injected lexicon tables.
type Scorer struct {
	lex *lexicon.Lexicon
}

// New creates a Scorer.
func New(lex *lexicon.Lexicon) *Scorer {
	return &Scorer{lex: lex}
}

// Score computes the skills, experience and education sub-scores and their
// unweighted mean. All values are clamped to [0,100] and rounded to two
// decimals.
func (s *Scorer) Score(profile *types.Profile) types.ScoreBreakdown {
	skills := s.skillsScore(profile)
	experience := s.experienceScore(profile)
	education := s.educationScore(profile)

	return types.ScoreBreakdown{
		Skills:     round2(skills),
		Experience: round2(experience),
		Education:  round2(education),
		Overall:    round2((skills + experience + education) / 3),
	}
}

func (s *Scorer) skillsScore(profile *types.Profile) float64 {
	if len(profile.Skills) == 0 {
		return 0
	}
	score := pointsPerSkill * float64(len(profile.Skills))
	for _, skill := range profile.Skills {
		score += skill.Confidence * pointsPerConfidence
	}
	score += pointsPerTechnical * float64(profile.TechnicalSkillCount())
	return clamp(score, 0, maxScore)
}

func (s *Scorer) experienceScore(profile *types.Profile) float64 {
	positions := len(profile.Experience)
	if positions > maxCountedPositions {
		positions = maxCountedPositions
	}

	score := pointsPerYear*profile.ExperienceYears + pointsPerPosition*float64(positions)
	for _, entry := range profile.Experience {
		if s.hasSeniorityKeyword(entry.Title) {
			score += pointsPerSeniorTitle
		}
	}
	return clamp(score, 0, maxScore)
}

func (s *Scorer) educationScore(profile *types.Profile) float64 {
	if len(profile.Education) == 0 {
		return 0
	}

	score := s.lex.DegreePoints(s.HighestEducationLevel(profile))
	if len(profile.Education) > 1 {
		bonus := multiDegreeBonusUnit * float64(len(profile.Education))
		if bonus > multiDegreeBonusCap {
			bonus = multiDegreeBonusCap
		}
		score += bonus
	}
	return clamp(score, 0, maxScore)
}

// HighestEducationLevel returns the degree label of the highest-ranked
// education entry, or "Not Specified" when the profile has none.
func (s *Scorer) HighestEducationLevel(profile *types.Profile) string {
	best := notSpecified
	bestRank := 0
	for _, entry := range profile.Education {
		if rank := s.lex.DegreeRank(entry.Degree); rank > bestRank {
			bestRank = rank
			best = entry.Degree
		}
	}
	return best
}

func (s *Scorer) hasSeniorityKeyword(title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range s.lex.SeniorityKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
