// Package analysis is the resume analysis facade: it runs extraction,
// scoring and narrative feedback over raw resume text and assembles the
// complete analysis result.
package analysis

import (
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/lexicon"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Result is the full outcome of analyzing one resume.
type Result struct {
	Profile        *types.Profile       `json:"profile"`
	Scores         types.ScoreBreakdown `json:"scores"`
	EducationLevel string               `json:"education_level"`
	Suggestions    []string             `json:"suggestions"`
	Strengths      []string             `json:"strengths"`
	Weaknesses     []string             `json:"weaknesses"`
	AnalyzedAt     time.Time            `json:"analysis_date"`
	ProcessingTime float64              `json:"processing_time"`
}

// Analyzer coordinates the extraction and scoring pipeline. It is stateless
// across calls and safe for concurrent use.
type Analyzer struct {
	extractor *extraction.Extractor
	scorer    *scoring.Scorer
	log       zerolog.Logger
	now       func() time.Time
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithClock overrides the analyzer's clock, for deterministic timestamps in
// tests. The extractor shares the same clock.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

// New creates an Analyzer over the given lexicon.
func New(lex *lexicon.Lexicon, log zerolog.Logger, opts ...Option) *Analyzer {
	a := &Analyzer{
		scorer: scoring.New(lex),
		log:    log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.extractor = extraction.New(lex, extraction.WithClock(a.now))
	return a
}

// AnalyzeResume extracts a candidate profile from resume text and scores it.
// Empty or unparseable text yields an empty profile with zero scores rather
// than an error.
func (a *Analyzer) AnalyzeResume(text string) *Result {
	start := a.now()

	profile := a.extractor.Extract(parsing.Normalize(text))
	scores := a.scorer.Score(profile)

	result := &Result{
		Profile:        profile,
		Scores:         scores,
		EducationLevel: a.scorer.HighestEducationLevel(profile),
		Suggestions:    a.scorer.Suggestions(profile),
		Strengths:      a.scorer.Strengths(profile),
		Weaknesses:     a.scorer.Weaknesses(profile),
		AnalyzedAt:     a.now(),
	}
	result.ProcessingTime = round2(a.now().Sub(start).Seconds())

	a.log.Debug().
		Int("skills", len(profile.Skills)).
		Float64("experience_years", profile.ExperienceYears).
		Float64("overall_score", scores.Overall).
		Float64("processing_time", result.ProcessingTime).
		Msg("resume analysis completed")

	return result
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
