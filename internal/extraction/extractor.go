// Package extraction turns normalized resume text into a structured candidate
// profile using pattern-driven heuristics over the injected lexicon. Every
// extraction step is total: malformed or empty text yields empty or default
// fields, never an error.
package extraction

import (
	"regexp"
	"time"

	"github.com/jonathan/resume-matcher/internal/lexicon"
	"github.com/jonathan/resume-matcher/internal/types"
)

// maxExperienceYears caps the experience estimate to keep garbage date
// ranges from producing absurd totals.
const maxExperienceYears = 50

// Extractor derives candidate profiles from normalized resume text.
type Extractor struct {
	lex *lexicon.Lexicon
	now func() time.Time

	// institutionRes is one precompiled phrase regex per institution
	// keyword, in lexicon priority order.
	institutionRes []*regexp.Regexp
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithClock overrides the clock used to resolve "present"/"current" date
// ranges. Tests use this to stay deterministic.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) { e.now = now }
}

// New creates an Extractor over the given lexicon.
func New(lex *lexicon.Lexicon, opts ...Option) *Extractor {
	e := &Extractor{lex: lex, now: time.Now}
	for _, kw := range lex.InstitutionKeywords {
		e.institutionRes = append(e.institutionRes, regexp.MustCompile(`[^,]*`+regexp.QuoteMeta(kw)+`[^,]*`))
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract builds a Profile from normalized text. The input is expected to
// have passed through parsing.Normalize; Extract still never fails on text
// that has not.
func (e *Extractor) Extract(text string) *types.Profile {
	return &types.Profile{
		Skills:          e.extractSkills(text),
		ExperienceYears: e.extractExperienceYears(text),
		Education:       e.extractEducation(text),
		Experience:      e.extractExperience(text),
		Industry:        e.identifyIndustry(text),
		JobTitles:       e.extractJobTitles(text),
		Companies:       e.extractCompanies(text),
	}
}
