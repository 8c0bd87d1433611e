// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillCategory classifies an extracted skill.
type SkillCategory string

// Skill categories emitted by the extractor.
const (
	CategoryTechnical SkillCategory = "Technical"
	CategorySoft      SkillCategory = "Soft"
)

// SkillSignal represents a single skill detected in resume text along with a
// frequency-derived confidence estimate in [0,1].
type SkillSignal struct {
	Term       string        `json:"term"`
	Confidence float64       `json:"confidence"`
	Category   SkillCategory `json:"category"`
}

// EducationEntry represents one extracted degree.
type EducationEntry struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	GraduationYear *int   `json:"graduation_year,omitempty"`
}

// ExperienceEntry represents one extracted work-history entry.
type ExperienceEntry struct {
	Title      string   `json:"title"`
	Company    string   `json:"company"`
	Duration   string   `json:"duration"`
	SkillsUsed []string `json:"skills_used"`
}

// Profile is the structured candidate representation derived from resume
// text. It is built once by the extractor and never mutated afterwards; the
// caller owns it once returned.
type Profile struct {
	Skills          []SkillSignal     `json:"skills"`
	ExperienceYears float64           `json:"experience_years"`
	Education       []EducationEntry  `json:"education"`
	Experience      []ExperienceEntry `json:"experience"`
	Industry        string            `json:"industry"`
	JobTitles       []string          `json:"job_titles"`
	Companies       []string          `json:"companies"`
}

// SkillTerms returns the plain skill names in signal order.
func (p *Profile) SkillTerms() []string {
	terms := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		terms = append(terms, s.Term)
	}
	return terms
}

// TechnicalSkillCount returns the number of skills in the technical category.
func (p *Profile) TechnicalSkillCount() int {
	n := 0
	for _, s := range p.Skills {
		if s.Category == CategoryTechnical {
			n++
		}
	}
	return n
}

// ScoreBreakdown holds the per-dimension candidate scores, each in [0,100].
type ScoreBreakdown struct {
	Overall    float64 `json:"overall_score"`
	Skills     float64 `json:"skills_score"`
	Experience float64 `json:"experience_score"`
	Education  float64 `json:"education_score"`
}
