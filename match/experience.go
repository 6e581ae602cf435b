package match

import (
	"regexp"
	"strconv"
)

var (
	// yearSpanPattern matches a "2019-2023" style range anywhere in an entry.
	yearSpanPattern = regexp.MustCompile(`(\d{4})\D+(\d{4})`)
	// yearsPhrasePattern matches an explicit "N years" mention.
	yearsPhrasePattern = regexp.MustCompile(`(\d+)\s*years?`)
)

// EstimateExperienceYears sums an estimated duration over free-text
// experience entries. Per entry the first matching heuristic wins: a year
// span contributes its delta, an explicit "N years" phrase contributes N,
// and anything else counts as one year.
func EstimateExperienceYears(entries []string) int {
	total := 0
	for _, entry := range entries {
		if m := yearSpanPattern.FindStringSubmatch(entry); m != nil {
			from, _ := strconv.Atoi(m[1])
			to, _ := strconv.Atoi(m[2])
			if to > from {
				total += to - from
			}
			continue
		}
		if m := yearsPhrasePattern.FindStringSubmatch(entry); m != nil {
			years, _ := strconv.Atoi(m[1])
			total += years
			continue
		}
		total++
	}
	return total
}
