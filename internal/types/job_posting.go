package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// JobPosting represents an open position supplied by the storage
// collaborator. The matching engine treats postings as read-only input;
// skill, benefit and requirement lists are first-class typed fields and any
// serialization happens at the storage boundary, never here.
type JobPosting struct {
	ID                  uuid.UUID  `json:"id"`
	Title               string     `json:"title" validate:"required"`
	Company             string     `json:"company" validate:"required"`
	Location            string     `json:"location,omitempty"`
	SalaryRange         string     `json:"salary_range,omitempty"`
	Description         string     `json:"description,omitempty"`
	RequiredSkills      []string   `json:"required_skills"`
	PreferredSkills     []string   `json:"preferred_skills,omitempty"`
	Industry            string     `json:"industry,omitempty"`
	ExperienceLevel     string     `json:"experience_level,omitempty"`
	EmploymentType      string     `json:"employment_type,omitempty"`
	RemoteWork          bool       `json:"remote_work"`
	CompanySize         string     `json:"company_size,omitempty"`
	Benefits            []string   `json:"benefits,omitempty"`
	Requirements        []string   `json:"requirements,omitempty"`
	PostedDate          time.Time  `json:"posted_date"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	IsActive            bool       `json:"is_active"`
}

// Validate validates the JobPosting using the validator.
func (j *JobPosting) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}

// MatchResult pairs a posting with its computed fit against one candidate
// profile. Results are ephemeral and recomputed per request.
type MatchResult struct {
	Job           JobPosting `json:"job"`
	MatchScore    float64    `json:"match_score"`
	MatchReasons  []string   `json:"match_reasons"`
	MissingSkills []string   `json:"missing_skills"`
	ExtraSkills   []string   `json:"extra_skills"`
}
