package types

// SkillDemand is one entry in the top-skills ranking of a trends report.
type SkillDemand struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// LabelCount is a generic label→count pair used by the distribution lists.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// TrendsReport holds catalog-wide aggregate statistics over active job
// postings, independent of any candidate profile.
type TrendsReport struct {
	TotalJobs            int           `json:"total_jobs"`
	TopSkills            []SkillDemand `json:"top_skills"`
	IndustryDistribution []LabelCount  `json:"industry_distribution"`
	ExperienceLevels     []LabelCount  `json:"experience_level_distribution"`
	SalaryRanges         []LabelCount  `json:"salary_ranges"`
	RemoteWorkPercentage float64       `json:"remote_work_percentage"`
}
