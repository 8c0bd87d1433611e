// Package trends aggregates catalog-wide job market statistics. Reports are
// computed over active postings only and are independent of any candidate.
package trends

import (
	"errors"
	"math"
	"sort"

	"github.com/jonathan/resume-matcher/internal/types"
)

// ErrEmptyCatalog is returned when no active postings are available to
// aggregate.
var ErrEmptyCatalog = errors.New("no active job postings to analyze")

const topSkillsLimit = 10

// Report aggregates the catalog into a market trends report. Distributions
// are sorted by count descending with alphabetical tie-breaks so identical
// catalogs always produce identical reports.
func Report(jobs []types.JobPosting) (*types.TrendsReport, error) {
	active := make([]types.JobPosting, 0, len(jobs))
	for _, job := range jobs {
		if job.IsActive {
			active = append(active, job)
		}
	}
	if len(active) == 0 {
		return nil, ErrEmptyCatalog
	}

	return &types.TrendsReport{
		TotalJobs:            len(active),
		TopSkills:            topSkills(active),
		IndustryDistribution: distribution(active, func(j *types.JobPosting) string { return j.Industry }),
		ExperienceLevels:     distribution(active, func(j *types.JobPosting) string { return j.ExperienceLevel }),
		SalaryRanges:         distribution(active, func(j *types.JobPosting) string { return j.SalaryRange }),
		RemoteWorkPercentage: remotePercentage(active),
	}, nil
}

// topSkills ranks required skills by demand across the catalog, capped at
// the ten most requested.
func topSkills(jobs []types.JobPosting) []types.SkillDemand {
	counts := make(map[string]int)
	for _, job := range jobs {
		for _, skill := range job.RequiredSkills {
			counts[skill]++
		}
	}

	ranked := make([]types.SkillDemand, 0, len(counts))
	for skill, count := range counts {
		ranked = append(ranked, types.SkillDemand{Skill: skill, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Skill < ranked[j].Skill
	})

	if len(ranked) > topSkillsLimit {
		ranked = ranked[:topSkillsLimit]
	}
	return ranked
}

// distribution counts postings by the given label field, skipping postings
// where the label is empty.
func distribution(jobs []types.JobPosting, label func(*types.JobPosting) string) []types.LabelCount {
	counts := make(map[string]int)
	for i := range jobs {
		if l := label(&jobs[i]); l != "" {
			counts[l]++
		}
	}

	out := make([]types.LabelCount, 0, len(counts))
	for l, count := range counts {
		out = append(out, types.LabelCount{Label: l, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// remotePercentage is the share of postings offering remote work, as a
// percentage rounded to two decimals.
func remotePercentage(jobs []types.JobPosting) float64 {
	remote := 0
	for _, job := range jobs {
		if job.RemoteWork {
			remote++
		}
	}
	pct := float64(remote) / float64(len(jobs)) * 100
	return math.Round(pct*100) / 100
}
