// Package lexicon provides the static categorized vocabulary that drives
// keyword-based extraction and matching. The lexicon is built once at startup
// and injected into the extractor, scorer and matcher; it is never mutated
// after construction.
package lexicon

import "strings"

// LevelRange is the expected years-of-experience window for a job level.
type LevelRange struct {
	Min float64
	Max float64
}

// IndustryCluster names an industry and the keywords that signal it.
// Clusters are kept in a slice so iteration order (and therefore tie-breaking
// during industry identification) is deterministic.
type IndustryCluster struct {
	Name     string
	Keywords []string
}

// RelatedIndustry links an industry name to terms considered adjacent to it.
type RelatedIndustry struct {
	Name    string
	Related []string
}

// Lexicon holds every static term list used by the engine.
type Lexicon struct {
	TechnicalSkills []string
	SoftSkills      []string
	Languages       []string
	Frameworks      []string
	Tools           []string

	// EducationMarkers maps a degree keyword found in text to its
	// normalized level label.
	EducationMarkers map[string]string

	// degreeRank orders degree keywords for highest-level selection;
	// degreePoints is the education-score base table.
	degreeRank   map[string]int
	degreePoints map[string]float64

	IndustryClusters  []IndustryCluster
	RelatedIndustries []RelatedIndustry

	// ExperienceLevels maps a lowercased job-level label to its years range.
	ExperienceLevels map[string]LevelRange

	SeniorityKeywords   []string
	InstitutionKeywords []string
	CorporateSuffixes   []string
}

// Default builds the built-in lexicon. The term lists are compiled in rather
// than configurable: they are part of the engine's tuned behavior, not
// deployment configuration.
func Default() *Lexicon {
	return &Lexicon{
		TechnicalSkills: []string{
			"python", "java", "javascript", "typescript", "react", "angular", "vue",
			"node.js", "django", "flask", "fastapi", "spring", "express", "laravel",
			"sql", "postgresql", "mysql", "mongodb", "redis", "elasticsearch",
			"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins",
			"git", "github", "gitlab", "ci/cd", "devops", "microservices",
			"machine learning", "ai", "data science", "pandas", "numpy", "tensorflow",
			"pytorch", "scikit-learn", "tableau", "power bi", "excel", "r",
			"html", "css", "bootstrap", "tailwind", "sass", "less",
			"rest api", "graphql", "json", "xml", "soap", "web services",
		},
		SoftSkills: []string{
			"leadership", "communication", "teamwork", "problem solving", "critical thinking",
			"time management", "project management", "agile", "scrum", "collaboration",
			"adaptability", "creativity", "analytical", "detail oriented", "self motivated",
			"mentoring", "training", "presentation", "negotiation", "customer service",
			"multitasking", "organization", "planning", "strategic thinking", "innovation",
		},
		Languages: []string{
			"python", "java", "javascript", "typescript", "c++", "c#", "php", "ruby",
			"go", "rust", "swift", "kotlin", "scala", "r", "matlab", "perl",
			"bash", "powershell", "sql", "html", "css", "xml", "yaml", "json",
		},
		Frameworks: []string{
			"react", "angular", "vue", "ember", "svelte", "next.js", "nuxt.js",
			"django", "flask", "fastapi", "spring", "express", "laravel", "symfony",
			"rails", "asp.net", "tornado", "bottle", "cherrypy", "falcon",
			"bootstrap", "tailwind", "material ui", "ant design", "chakra ui",
			"jquery", "lodash", "moment", "axios", "fetch", "graphql",
		},
		Tools: []string{
			"git", "github", "gitlab", "bitbucket", "jira", "confluence", "slack",
			"docker", "kubernetes", "jenkins", "travis ci", "circleci", "github actions",
			"aws", "azure", "gcp", "heroku", "netlify", "vercel", "firebase",
			"postman", "insomnia", "swagger", "figma", "sketch", "adobe",
			"vscode", "intellij", "eclipse", "sublime", "atom", "vim", "emacs",
			"linux", "ubuntu", "centos", "windows", "macos", "bash", "powershell",
		},
		EducationMarkers: map[string]string{
			"phd":         "Doctorate",
			"doctorate":   "Doctorate",
			"master":      "Masters",
			"bachelor":    "Bachelors",
			"associate":   "Associates",
			"diploma":     "Diploma",
			"certificate": "Certificate",
			"high school": "High School",
		},
		degreeRank: map[string]int{
			"phd":         5,
			"doctorate":   5,
			"master":      4,
			"bachelor":    3,
			"associate":   2,
			"diploma":     1,
			"certificate": 1,
		},
		degreePoints: map[string]float64{
			"phd":         100,
			"doctorate":   100,
			"master":      80,
			"bachelor":    60,
			"associate":   40,
			"diploma":     30,
			"certificate": 20,
		},
		IndustryClusters: []IndustryCluster{
			{Name: "Technology", Keywords: []string{"software", "tech", "it", "computer", "programming", "development"}},
			{Name: "Finance", Keywords: []string{"banking", "financial", "investment", "accounting", "finance"}},
			{Name: "Healthcare", Keywords: []string{"medical", "health", "hospital", "pharmaceutical", "clinical"}},
			{Name: "Education", Keywords: []string{"teaching", "education", "academic", "university", "school"}},
			{Name: "Marketing", Keywords: []string{"marketing", "advertising", "brand", "digital", "social media"}},
			{Name: "Sales", Keywords: []string{"sales", "business development", "account management", "revenue"}},
			{Name: "Consulting", Keywords: []string{"consulting", "advisory", "strategy", "management consulting"}},
			{Name: "Manufacturing", Keywords: []string{"manufacturing", "production", "engineering", "industrial"}},
		},
		RelatedIndustries: []RelatedIndustry{
			{Name: "technology", Related: []string{"software", "it", "tech", "computer"}},
			{Name: "finance", Related: []string{"banking", "financial", "investment"}},
			{Name: "healthcare", Related: []string{"medical", "health", "pharmaceutical"}},
			{Name: "education", Related: []string{"academic", "teaching", "university"}},
			{Name: "marketing", Related: []string{"advertising", "digital", "social media"}},
			{Name: "sales", Related: []string{"business development", "account management"}},
			{Name: "consulting", Related: []string{"advisory", "strategy", "management"}},
			{Name: "manufacturing", Related: []string{"production", "engineering", "industrial"}},
		},
		ExperienceLevels: map[string]LevelRange{
			"entry":     {Min: 0, Max: 2},
			"junior":    {Min: 1, Max: 3},
			"mid-level": {Min: 2, Max: 5},
			"senior":    {Min: 4, Max: 8},
			"lead":      {Min: 6, Max: 12},
			"principal": {Min: 8, Max: 15},
			"executive": {Min: 10, Max: 20},
		},
		SeniorityKeywords:   []string{"senior", "lead", "principal", "staff"},
		InstitutionKeywords: []string{"university", "college", "institute", "school"},
		CorporateSuffixes:   []string{"Inc", "LLC", "Corp", "Ltd", "Company", "Technologies", "Solutions", "Systems"},
	}
}

// DetectionTerms returns the terms scanned during skill detection in a stable
// order: the full technical list first, then the soft-skill list. The order
// is the tie-break for equal-confidence skills.
func (l *Lexicon) DetectionTerms() []DetectionTerm {
	terms := make([]DetectionTerm, 0, len(l.TechnicalSkills)+len(l.SoftSkills))
	for _, t := range l.TechnicalSkills {
		terms = append(terms, DetectionTerm{Term: t, Technical: true})
	}
	for _, t := range l.SoftSkills {
		terms = append(terms, DetectionTerm{Term: t, Technical: false})
	}
	return terms
}

// DetectionTerm is one scannable lexicon term with its category flag.
type DetectionTerm struct {
	Term      string
	Technical bool
}

// DegreeRank returns the comparative rank of a degree string. The rank is
// derived by substring match against the known degree keywords, so free-form
// degrees like "master of science" still rank.
func (l *Lexicon) DegreeRank(degree string) int {
	best := 0
	for keyword, rank := range l.degreeRank {
		if rank > best && strings.Contains(strings.ToLower(degree), keyword) {
			best = rank
		}
	}
	return best
}

// DegreePoints returns the education-score base value for a degree string,
// or 0 if no known degree keyword appears in it.
func (l *Lexicon) DegreePoints(degree string) float64 {
	best := 0.0
	bestRank := 0
	for keyword, rank := range l.degreeRank {
		if rank > bestRank && strings.Contains(strings.ToLower(degree), keyword) {
			bestRank = rank
			best = l.degreePoints[keyword]
		}
	}
	return best
}

// LevelRangeFor resolves a job experience-level label to its years range.
// Unknown labels fall back to a keyword heuristic.
func (l *Lexicon) LevelRangeFor(label string) LevelRange {
	lower := strings.ToLower(label)
	if r, ok := l.ExperienceLevels[lower]; ok {
		return r
	}
	switch {
	case strings.Contains(lower, "senior") || strings.Contains(lower, "lead"):
		return LevelRange{Min: 5, Max: 10}
	case strings.Contains(lower, "junior") || strings.Contains(lower, "entry"):
		return LevelRange{Min: 0, Max: 3}
	default:
		return LevelRange{Min: 2, Max: 6}
	}
}
