package data

import "strings"

var seasonNumerals = map[string]string{
	"Season 1": "I",
	"Season 2": "II",
	"Season 3": "III",
	"Season 4": "IV",
	"Season 5": "V",
	"Season 6": "VI",
	"Season 7": "VII",
	"Season 8": "VIII",
}

// SeasonNumerals renders tvSeries entries as roman numerals ("I, II").
// Entries other than "Season 1" to "Season 8" are dropped.
func SeasonNumerals(tvSeries []string) string {
	numerals := make([]string, 0, len(tvSeries))
	for _, season := range tvSeries {
		if n, ok := seasonNumerals[strings.TrimSpace(season)]; ok {
			numerals = append(numerals, n)
		}
	}
	return strings.Join(numerals, ", ")
}
