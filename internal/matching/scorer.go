package matching

import "strings"

// ScoreMultiplier converts a keyword hit count into a percentage. Five or
// more hits saturate at ScoreCap. Both values are part of the scoring
// contract and must not change.
const (
	ScoreMultiplier = 20
	ScoreCap        = 100
)

// Score scans text against a taxonomy and returns, per category, a bounded
// percentage derived from how many of the category's phrases occur in the
// text. Categories with no hits are omitted. Empty text yields an empty map.
func Score(text string, tax Taxonomy) map[string]int {
	scores := make(map[string]int)
	if text == "" {
		return scores
	}

	lowered := strings.ToLower(text)
	for _, category := range tax.Categories {
		hits := 0
		for _, phrase := range tax.Keywords[category] {
			if strings.Contains(lowered, phrase) {
				hits++
			}
		}
		if hits > 0 {
			scores[category] = min(hits*ScoreMultiplier, ScoreCap)
		}
	}
	return scores
}
