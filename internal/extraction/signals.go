package extraction

import (
	"regexp"
	"strings"
)

var (
	// Job titles: an optional seniority prefix, one or two words, and a
	// recognized role suffix.
	jobTitleRe = regexp.MustCompile(`\b(?:(?:senior|junior|lead|principal|staff)\s+)?[a-z]+(?:\s+[a-z]+)?\s+(?:developer|engineer|manager|analyst|specialist|consultant)\b`)

	// Companies: a phrase ending in a corporate suffix, either following
	// "at"/"in" or standing at the start of a segment.
	companyAfterPrepRe = regexp.MustCompile(`\b(?:at|in)\s+([a-z][a-z\s&]+?\s(?:inc|llc|corp|ltd|company|technologies|solutions|systems)\b\.?)`)
	companyLeadingRe   = regexp.MustCompile(`(?:^|[.,;:!?()]\s*)([a-z][a-z&]+\s(?:inc|llc|corp|ltd|company|technologies|solutions|systems)\b\.?)`)
)

// identifyIndustry picks the industry cluster with the most keyword hits.
// Ties resolve to the earlier cluster in lexicon order; zero hits everywhere
// yields "General".
func (e *Extractor) identifyIndustry(text string) string {
	best := "General"
	bestScore := 0
	for _, cluster := range e.lex.IndustryClusters {
		score := 0
		for _, kw := range cluster.Keywords {
			if strings.Contains(text, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = cluster.Name
		}
	}
	return best
}

// extractJobTitles returns the deduplicated set of role phrases found in the
// text, in first-seen order.
func (e *Extractor) extractJobTitles(text string) []string {
	var titles []string
	seen := make(map[string]bool)
	for _, m := range jobTitleRe.FindAllString(text, -1) {
		title := strings.TrimSpace(m)
		if len(title) <= 3 {
			continue
		}
		display := titleCase(title)
		if seen[display] {
			continue
		}
		seen[display] = true
		titles = append(titles, display)
	}
	return titles
}

// extractCompanies returns deduplicated company names recognized by their
// corporate suffix, optionally preceded by "at"/"in".
func (e *Extractor) extractCompanies(text string) []string {
	var companies []string
	seen := make(map[string]bool)

	collect := func(matches [][]string) {
		for _, m := range matches {
			name := strings.TrimSpace(m[1])
			if len(name) <= 2 {
				continue
			}
			display := titleCase(name)
			if seen[display] {
				continue
			}
			seen[display] = true
			companies = append(companies, display)
		}
	}

	collect(companyAfterPrepRe.FindAllStringSubmatch(text, -1))
	collect(companyLeadingRe.FindAllStringSubmatch(text, -1))
	return companies
}
