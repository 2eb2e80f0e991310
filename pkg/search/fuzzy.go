// Package search provides fuzzy matching of free-text location queries
// against geocoding candidates, including expansion of common Singapore
// address abbreviations.
package search

import (
	"sort"
	"strings"
)

// abbreviations maps common Singapore address shorthand to full words.
var abbreviations = map[string]string{
	"blk":  "block",
	"rd":   "road",
	"st":   "street",
	"ave":  "avenue",
	"dr":   "drive",
	"cres": "crescent",
	"ctrl": "central",
	"stn":  "station",
	"int":  "interchange",
	"ter":  "terrace",
	"upp":  "upper",
	"lor":  "lorong",
	"jln":  "jalan",
	"bt":   "bukit",
	"kg":   "kampong",
	"tg":   "tanjong",
	"pl":   "place",
	"cl":   "close",
	"hts":  "heights",
	"gdns": "gardens",
}

// ExpandAbbreviations rewrites known shorthand tokens to their full form.
// Matching is case-insensitive; output is lowercase.
func ExpandAbbreviations(query string) string {
	tokens := strings.Fields(strings.ToLower(query))
	for i, tok := range tokens {
		if full, ok := abbreviations[tok]; ok {
			tokens[i] = full
		}
	}
	return strings.Join(tokens, " ")
}

// Score rates how well a candidate matches a query, in [0, 1]. The score is
// the fraction of query tokens found in the candidate, with containment and
// prefix matches counting fractionally. Both sides are abbreviation-expanded
// before comparison.
func Score(query, candidate string) float64 {
	q := ExpandAbbreviations(query)
	c := ExpandAbbreviations(candidate)

	if q == "" || c == "" {
		return 0
	}
	if q == c {
		return 1
	}

	qTokens := strings.Fields(q)
	cTokens := strings.Fields(c)

	var matched float64
	for _, qt := range qTokens {
		best := 0.0
		for _, ct := range cTokens {
			switch {
			case qt == ct:
				best = 1.0
			case strings.HasPrefix(ct, qt):
				if v := 0.8; v > best {
					best = v
				}
			case strings.Contains(ct, qt):
				if v := 0.5; v > best {
					best = v
				}
			}
			if best == 1.0 {
				break
			}
		}
		matched += best
	}

	return matched / float64(len(qTokens))
}

// Match pairs a candidate with its score.
type Match struct {
	Value string
	Score float64
}

// Rank scores all candidates against the query and returns those with a
// positive score, best first. Ranking is stable for equal scores.
func Rank(query string, candidates []string) []Match {
	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		if s := Score(query, c); s > 0 {
			matches = append(matches, Match{Value: c, Score: s})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}
