package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

var (
	// Degree marker followed by a field phrase, e.g.
	// "bachelor of science in computer science".
	degreeRe = regexp.MustCompile(`(bachelor|master|phd|doctorate|associate|diploma|certificate)(?:\s+(?:of|in))?\s+([^,]+)`)

	// Four-digit years in the plausible graduation window.
	yearRe = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

// unknownInstitution is the sentinel used when no institution phrase exists.
const unknownInstitution = "Unknown Institution"

// extractEducation scans for degree markers with a following field phrase.
// The institution and graduation year are resolved against the whole text,
// not the surrounding entry, which can misattribute them on multi-degree
// resumes; kept as documented imprecision.
func (e *Extractor) extractEducation(text string) []types.EducationEntry {
	var entries []types.EducationEntry
	institution := e.findInstitution(text)
	year := findGraduationYear(text)

	for _, m := range degreeRe.FindAllStringSubmatch(text, -1) {
		entries = append(entries, types.EducationEntry{
			Degree:         titleCase(m[1]),
			Institution:    institution,
			GraduationYear: year,
		})
	}
	return entries
}

// findInstitution returns the first comma-delimited phrase containing an
// institution keyword, or the unknown sentinel. Keywords are tried in lexicon
// order, so "university" phrases win over "school" phrases.
func (e *Extractor) findInstitution(text string) string {
	for _, re := range e.institutionRes {
		if m := re.FindString(text); m != "" {
			return titleCase(strings.TrimSpace(m))
		}
	}
	return unknownInstitution
}

// findGraduationYear returns the maximum 4-digit year (1900-2099) anywhere in
// the text, or nil when none is present. Employment years in the same resume
// can win over the actual graduation year; accepted imprecision.
func findGraduationYear(text string) *int {
	best := 0
	for _, m := range yearRe.FindAllString(text, -1) {
		year, _ := strconv.Atoi(m)
		if year > best {
			best = year
		}
	}
	if best == 0 {
		return nil
	}
	return &best
}
