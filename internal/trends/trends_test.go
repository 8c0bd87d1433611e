package trends

import (
	"fmt"
	"testing"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func job(industry, level, salary string, remote bool, skills ...string) types.JobPosting {
	return types.JobPosting{
		Title:           "Engineer",
		Company:         "Acme Inc",
		Industry:        industry,
		ExperienceLevel: level,
		SalaryRange:     salary,
		RemoteWork:      remote,
		RequiredSkills:  skills,
		IsActive:        true,
	}
}

func TestReport_EmptyCatalog(t *testing.T) {
	_, err := Report(nil)

	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestReport_OnlyInactivePostings(t *testing.T) {
	inactive := job("Technology", "Senior", "", false, "Python")
	inactive.IsActive = false

	_, err := Report([]types.JobPosting{inactive})

	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestReport_CountsOnlyActivePostings(t *testing.T) {
	inactive := job("Finance", "Junior", "", false, "Excel")
	inactive.IsActive = false
	jobs := []types.JobPosting{
		job("Technology", "Senior", "$100k-$130k", true, "Python", "Go"),
		inactive,
	}

	report, err := Report(jobs)
	require.NoError(t, err)

	assert.Equal(t, 1, report.TotalJobs)
	assert.Equal(t, []types.LabelCount{{Label: "Technology", Count: 1}}, report.IndustryDistribution)
}

func TestReport_TopSkillsRankedAndCapped(t *testing.T) {
	var jobs []types.JobPosting
	jobs = append(jobs,
		job("Technology", "Senior", "", false, "Python", "Go"),
		job("Technology", "Senior", "", false, "Python", "AWS"),
		job("Technology", "Senior", "", false, "Python"),
	)
	for i := 0; i < 12; i++ {
		jobs = append(jobs, job("Technology", "Senior", "", false, fmt.Sprintf("Skill%02d", i)))
	}

	report, err := Report(jobs)
	require.NoError(t, err)

	assert.Len(t, report.TopSkills, 10)
	assert.Equal(t, types.SkillDemand{Skill: "Python", Count: 3}, report.TopSkills[0])
	for i := 1; i < len(report.TopSkills); i++ {
		assert.GreaterOrEqual(t, report.TopSkills[i-1].Count, report.TopSkills[i].Count)
	}
}

func TestReport_DistributionsSkipEmptyLabels(t *testing.T) {
	jobs := []types.JobPosting{
		job("Technology", "Senior", "$100k-$130k", false, "Python"),
		job("", "", "", false, "Python"),
		job("Technology", "Junior", "$100k-$130k", false, "Go"),
	}

	report, err := Report(jobs)
	require.NoError(t, err)

	assert.Equal(t, []types.LabelCount{{Label: "Technology", Count: 2}}, report.IndustryDistribution)
	assert.Equal(t, []types.LabelCount{
		{Label: "Junior", Count: 1},
		{Label: "Senior", Count: 1},
	}, report.ExperienceLevels)
	assert.Equal(t, []types.LabelCount{{Label: "$100k-$130k", Count: 2}}, report.SalaryRanges)
}

func TestReport_RemotePercentageRounded(t *testing.T) {
	jobs := []types.JobPosting{
		job("Technology", "Senior", "", true, "Python"),
		job("Technology", "Senior", "", false, "Python"),
		job("Technology", "Senior", "", false, "Python"),
	}

	report, err := Report(jobs)
	require.NoError(t, err)

	assert.InDelta(t, 33.33, report.RemoteWorkPercentage, 0.001)
}

func TestReport_Deterministic(t *testing.T) {
	jobs := []types.JobPosting{
		job("Technology", "Senior", "$90k", true, "Python", "Go", "AWS"),
		job("Finance", "Junior", "$70k", false, "Excel", "Python"),
		job("Healthcare", "Mid-Level", "$90k", true, "SQL", "Python"),
	}

	first, err := Report(jobs)
	require.NoError(t, err)
	second, err := Report(jobs)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
