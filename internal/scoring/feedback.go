package scoring

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Threshold rules for narrative feedback.
const (
	fewSkillsThreshold     = 10
	fewTechnicalThreshold  = 5
	fewYearsThreshold      = 2.0
	manySkillsThreshold    = 15
	manyTechnicalThreshold = 8
	diverseRolesThreshold  = 3
	limitedSkillsThreshold = 8
	limitedRolesThreshold  = 2
	maxSuggestions         = 5
)

// Suggestions produces up to five improvement suggestions from fixed
// threshold rules.
func (s *Scorer) Suggestions(profile *types.Profile) []string {
	var suggestions []string

	if len(profile.Skills) < fewSkillsThreshold {
		suggestions = append(suggestions, "Consider adding more relevant skills to your resume")
	}
	if profile.TechnicalSkillCount() < fewTechnicalThreshold {
		suggestions = append(suggestions, "Add more technical skills to improve your profile")
	}
	if profile.ExperienceYears < fewYearsThreshold {
		suggestions = append(suggestions, "Consider gaining more work experience or highlighting relevant projects")
	}
	if len(profile.Education) == 0 {
		suggestions = append(suggestions, "Add your educational background to your resume")
	}

	suggestions = append(suggestions,
		"Tailor your resume to specific job requirements",
		"Use action verbs to describe your achievements",
		"Include quantifiable results and metrics",
	)

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// Strengths identifies candidate strengths from fixed threshold rules.
func (s *Scorer) Strengths(profile *types.Profile) []string {
	var strengths []string

	if len(profile.Skills) >= manySkillsThreshold {
		strengths = append(strengths, "Comprehensive skill set")
	}
	if profile.TechnicalSkillCount() >= manyTechnicalThreshold {
		strengths = append(strengths, "Strong technical background")
	}
	if len(profile.Experience) >= diverseRolesThreshold {
		strengths = append(strengths, "Diverse work experience")
	}

	highest := strings.ToLower(s.HighestEducationLevel(profile))
	if strings.Contains(highest, "master") || strings.Contains(highest, "phd") || strings.Contains(highest, "doctorate") {
		strengths = append(strengths, "Advanced education")
	}
	return strengths
}

// Weaknesses identifies areas for improvement from fixed threshold rules.
func (s *Scorer) Weaknesses(profile *types.Profile) []string {
	var weaknesses []string

	if len(profile.Skills) < limitedSkillsThreshold {
		weaknesses = append(weaknesses, "Limited skill set")
	}
	if len(profile.Experience) < limitedRolesThreshold {
		weaknesses = append(weaknesses, "Limited work experience")
	}
	if len(profile.Education) == 0 {
		weaknesses = append(weaknesses, "Missing educational information")
	}
	return weaknesses
}
