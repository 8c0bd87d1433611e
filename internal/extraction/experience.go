package extraction

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

var (
	// "<N>-<M> years" ranges contribute their midpoint. Matched spans are
	// masked before the plain scan so the range's upper bound is not
	// counted twice.
	yearsRangeRe = regexp.MustCompile(`(\d+)\s*-\s*(\d+)\s*years?\b`)

	// Bare "<N> years" covers "<N> years experience" and "<N>+ years";
	// normalization strips the plus sign before text reaches us.
	yearsPlainRe = regexp.MustCompile(`(\d+)\s*years?\b`)

	// Employment date ranges, e.g. "2015-2019" or "2020 - present".
	dateRangeRe = regexp.MustCompile(`(\d{4})\s*-\s*(\d{4}|present|current)`)

	// "<title> at|@|in <company>" with an optional seniority prefix,
	// evaluated per comma/period-delimited segment.
	experienceRe = regexp.MustCompile(`^(?:(senior|junior|lead|principal|staff)\s+)?(.+?)\s+(?:at|@|in)\s+(.+)$`)

	segmentSplitRe = regexp.MustCompile(`[.,;:]`)
)

// extractExperienceYears estimates total experience. Pass 1 takes the
// maximum over explicit year phrases; pass 2 falls back to summing employment
// date ranges when no phrase was found. The result is clamped to
// [0, maxExperienceYears].
func (e *Extractor) extractExperienceYears(text string) float64 {
	maxYears := 0.0
	masked := []byte(text)

	for _, m := range yearsRangeRe.FindAllStringSubmatchIndex(text, -1) {
		lo, _ := strconv.Atoi(text[m[2]:m[3]])
		hi, _ := strconv.Atoi(text[m[4]:m[5]])
		mid := (float64(lo) + float64(hi)) / 2
		if mid > maxYears {
			maxYears = mid
		}
		for i := m[0]; i < m[1]; i++ {
			masked[i] = ' '
		}
	}

	for _, m := range yearsPlainRe.FindAllStringSubmatch(string(masked), -1) {
		years, _ := strconv.Atoi(m[1])
		if float64(years) > maxYears {
			maxYears = float64(years)
		}
	}

	if maxYears == 0 {
		maxYears = e.estimateYearsFromDateRanges(text)
	}

	if maxYears > maxExperienceYears {
		return maxExperienceYears
	}
	if maxYears < 0 {
		return 0
	}
	return maxYears
}

// estimateYearsFromDateRanges sums (end-start) across every date range in the
// text and converts to years. Overlapping employment periods are summed, not
// merged; this overestimates for concurrent roles and is kept as documented
// behavior.
func (e *Extractor) estimateYearsFromDateRanges(text string) float64 {
	totalMonths := 0
	for _, m := range dateRangeRe.FindAllStringSubmatch(text, -1) {
		start, _ := strconv.Atoi(m[1])
		end := e.now().Year()
		if m[2] != "present" && m[2] != "current" {
			end, _ = strconv.Atoi(m[2])
		}
		totalMonths += (end - start) * 12
	}
	if totalMonths <= 0 {
		return 0
	}
	return float64(totalMonths) / 12
}

// extractExperience collects work-history entries from "<title> at <company>"
// segments. Duration and skills are pulled from the whole text rather than
// scoped to the entry; both are accepted imprecision of the segment-free
// heuristic.
func (e *Extractor) extractExperience(text string) []types.ExperienceEntry {
	var entries []types.ExperienceEntry
	duration := e.firstDuration(text)
	skillsUsed := e.skillsUsed(text)

	for _, segment := range segmentSplitRe.Split(text, -1) {
		segment = strings.TrimSpace(segment)
		m := experienceRe.FindStringSubmatch(segment)
		if m == nil {
			continue
		}

		title := m[2]
		if m[1] != "" {
			title = m[1] + " " + m[2]
		}
		company := strings.TrimSpace(m[3])
		if len(title) <= 3 || len(company) <= 2 {
			continue
		}

		entries = append(entries, types.ExperienceEntry{
			Title:      titleCase(title),
			Company:    titleCase(company),
			Duration:   duration,
			SkillsUsed: skillsUsed,
		})
	}
	return entries
}

// firstDuration returns the first date range found anywhere in the text.
func (e *Extractor) firstDuration(text string) string {
	m := dateRangeRe.FindStringSubmatch(text)
	if m == nil {
		return "Duration not specified"
	}
	end := m[2]
	if end == "present" || end == "current" {
		end = "Present"
	}
	return fmt.Sprintf("%s - %s", m[1], end)
}

// skillsUsed returns up to five lexicon terms present anywhere in the text.
func (e *Extractor) skillsUsed(text string) []string {
	var used []string
	for _, dt := range e.lex.DetectionTerms() {
		if strings.Contains(text, dt.Term) {
			used = append(used, titleCase(dt.Term))
			if len(used) == 5 {
				break
			}
		}
	}
	return used
}
