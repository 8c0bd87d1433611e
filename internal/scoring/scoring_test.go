package scoring

import (
	"testing"

	"github.com/jonathan/resume-matcher/internal/lexicon"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
)

func newTestScorer() *Scorer {
	return New(lexicon.Default())
}

func skillList(n int, category types.SkillCategory, confidence float64) []types.SkillSignal {
	skills := make([]types.SkillSignal, n)
	for i := range skills {
		skills[i] = types.SkillSignal{Term: "Skill", Confidence: confidence, Category: category}
	}
	return skills
}

func TestScore_EmptyProfile(t *testing.T) {
	s := newTestScorer()

	breakdown := s.Score(&types.Profile{Industry: "General"})

	assert.Zero(t, breakdown.Skills)
	assert.Zero(t, breakdown.Experience)
	assert.Zero(t, breakdown.Education)
	assert.Zero(t, breakdown.Overall)
}

func TestScore_SkillsFormula(t *testing.T) {
	s := newTestScorer()
	// 3 technical skills at confidence 0.70:
	// 2*3 + 3*0.70*5 + 10*3 = 6 + 10.5 + 30 = 46.5
	profile := &types.Profile{Skills: skillList(3, types.CategoryTechnical, 0.70)}

	breakdown := s.Score(profile)

	assert.InDelta(t, 46.5, breakdown.Skills, 0.001)
}

func TestScore_SkillsCappedAtHundred(t *testing.T) {
	s := newTestScorer()
	profile := &types.Profile{Skills: skillList(30, types.CategoryTechnical, 1.0)}

	breakdown := s.Score(profile)

	assert.InDelta(t, 100.0, breakdown.Skills, 0.001)
}

func TestScore_ExperienceFormula(t *testing.T) {
	s := newTestScorer()
	// 5*6 years + 5*2 positions + 5*1 senior title = 45
	profile := &types.Profile{
		ExperienceYears: 6,
		Experience: []types.ExperienceEntry{
			{Title: "Senior Engineer"},
			{Title: "Developer"},
		},
	}

	breakdown := s.Score(profile)

	assert.InDelta(t, 45.0, breakdown.Experience, 0.001)
}

func TestScore_ExperiencePositionCountCapped(t *testing.T) {
	s := newTestScorer()
	entries := make([]types.ExperienceEntry, 9)
	for i := range entries {
		entries[i] = types.ExperienceEntry{Title: "Developer"}
	}
	profile := &types.Profile{Experience: entries}

	// Position bonus caps at 5 entries: 5*5 = 25.
	breakdown := s.Score(profile)

	assert.InDelta(t, 25.0, breakdown.Experience, 0.001)
}

func TestScore_EducationTable(t *testing.T) {
	s := newTestScorer()
	cases := []struct {
		degree string
		want   float64
	}{
		{"Phd", 100},
		{"Doctorate", 100},
		{"Master", 80},
		{"Bachelor", 60},
		{"Associate", 40},
		{"Diploma", 30},
		{"Certificate", 20},
		{"Unrecognized", 0},
	}
	for _, tc := range cases {
		profile := &types.Profile{Education: []types.EducationEntry{{Degree: tc.degree}}}
		assert.InDelta(t, tc.want, s.Score(profile).Education, 0.001, "degree=%s", tc.degree)
	}
}

func TestScore_EducationMultipleDegreeBonus(t *testing.T) {
	s := newTestScorer()
	profile := &types.Profile{Education: []types.EducationEntry{
		{Degree: "Bachelor"},
		{Degree: "Master"},
	}}

	// Highest degree (master, 80) + 5*2 bonus = 90.
	breakdown := s.Score(profile)

	assert.InDelta(t, 90.0, breakdown.Education, 0.001)
}

func TestScore_OverallIsMean(t *testing.T) {
	s := newTestScorer()
	profile := &types.Profile{
		Skills:          skillList(3, types.CategoryTechnical, 0.70),
		ExperienceYears: 6,
		Education:       []types.EducationEntry{{Degree: "Bachelor"}},
	}

	breakdown := s.Score(profile)

	mean := (breakdown.Skills + breakdown.Experience + breakdown.Education) / 3
	assert.InDelta(t, mean, breakdown.Overall, 0.01)
}

func TestScore_BoundsProperty(t *testing.T) {
	s := newTestScorer()
	profiles := []*types.Profile{
		{},
		{Skills: skillList(50, types.CategoryTechnical, 1.0), ExperienceYears: 50},
		{ExperienceYears: 50, Education: []types.EducationEntry{{Degree: "Phd"}, {Degree: "Phd"}, {Degree: "Phd"}, {Degree: "Phd"}, {Degree: "Phd"}}},
	}
	for _, p := range profiles {
		b := s.Score(p)
		for _, v := range []float64{b.Skills, b.Experience, b.Education, b.Overall} {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 100.0)
		}
	}
}

func TestHighestEducationLevel(t *testing.T) {
	s := newTestScorer()

	assert.Equal(t, notSpecified, s.HighestEducationLevel(&types.Profile{}))

	profile := &types.Profile{Education: []types.EducationEntry{
		{Degree: "Certificate"},
		{Degree: "Master"},
		{Degree: "Bachelor"},
	}}
	assert.Equal(t, "Master", s.HighestEducationLevel(profile))
}

func TestSuggestions_TruncatedToFive(t *testing.T) {
	s := newTestScorer()

	suggestions := s.Suggestions(&types.Profile{})

	assert.Len(t, suggestions, 5)
	assert.Contains(t, suggestions, "Consider adding more relevant skills to your resume")
	assert.Contains(t, suggestions, "Add your educational background to your resume")
}

func TestStrengths(t *testing.T) {
	s := newTestScorer()
	profile := &types.Profile{
		Skills: skillList(15, types.CategoryTechnical, 0.9),
		Experience: []types.ExperienceEntry{
			{Title: "Engineer"}, {Title: "Developer"}, {Title: "Architect"},
		},
		Education: []types.EducationEntry{{Degree: "Master"}},
	}

	strengths := s.Strengths(profile)

	assert.Contains(t, strengths, "Comprehensive skill set")
	assert.Contains(t, strengths, "Strong technical background")
	assert.Contains(t, strengths, "Diverse work experience")
	assert.Contains(t, strengths, "Advanced education")
}

func TestWeaknesses(t *testing.T) {
	s := newTestScorer()

	weaknesses := s.Weaknesses(&types.Profile{})

	assert.Contains(t, weaknesses, "Limited skill set")
	assert.Contains(t, weaknesses, "Limited work experience")
	assert.Contains(t, weaknesses, "Missing educational information")
}
