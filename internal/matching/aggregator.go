package matching

import (
	"math"
	"sort"
	"strings"
)

// matchSuffix is appended to the company category name in each top match.
const matchSuffix = " & Ambiente Profissional"

// CategoryScore is a display-ready category with its averaged percentage.
type CategoryScore struct {
	Expectation string  `json:"expectation"`
	Percentage  float64 `json:"percentage"`
}

// TopMatch pairs the same-rank company and student categories into a
// synthetic match. The pairing is by rank index, not similarity.
type TopMatch struct {
	Score              float64 `json:"score"`
	CommonExpectations string  `json:"commonExpectations"`
}

// Result is the matching analysis payload. The JSON field names are part of
// the public API contract.
type Result struct {
	TotalMatches        float64         `json:"totalMatches"`
	Companies           int             `json:"companies"`
	Students            int             `json:"students"`
	CompanyExpectations []CategoryScore `json:"companyExpectations"`
	StudentExpectations []CategoryScore `json:"studentExpectations"`
	TopMatches          []TopMatch      `json:"topMatches"`
}

// EmptyResult returns the zero-valued analysis used when there is nothing to
// analyze or the pipeline failed. Slices are non-nil so they serialize as [].
func EmptyResult() Result {
	return Result{
		CompanyExpectations: []CategoryScore{},
		StudentExpectations: []CategoryScore{},
		TopMatches:          []TopMatch{},
	}
}

// Aggregate scores every expectation text, averages percentages per category
// across the texts that mention it, ranks both sides, and derives the overall
// compatibility figure plus up to three top matches.
func Aggregate(companyTexts, studentTexts []string) Result {
	companyRanked := rankScores(companyTexts, CompanyTaxonomy)
	studentRanked := rankScores(studentTexts, StudentTaxonomy)

	var totalMatches float64
	matchCount := 0
	if len(companyRanked) > 0 && len(studentRanked) > 0 {
		totalMatches = round1((sumTop(companyRanked, 5) + sumTop(studentRanked, 5)) / 10)
		matchCount = min(len(companyRanked), len(studentRanked))
	}

	topMatches := []TopMatch{}
	for i := 0; i < min(3, matchCount); i++ {
		studentPct := 0.0
		if i < len(studentRanked) {
			studentPct = studentRanked[i].Percentage
		}
		topMatches = append(topMatches, TopMatch{
			Score:              round1((companyRanked[i].Percentage + studentPct) / 2),
			CommonExpectations: companyRanked[i].Expectation + matchSuffix,
		})
	}

	return Result{
		TotalMatches:        totalMatches,
		Companies:           len(companyTexts),
		Students:            len(studentTexts),
		CompanyExpectations: truncate(companyRanked, 8),
		StudentExpectations: truncate(studentRanked, 8),
		TopMatches:          topMatches,
	}
}

// rankScores accumulates per-category percentages across texts, averages over
// the texts that mentioned each category, and sorts descending. The sort is
// stable, so equal averages keep first-mention order.
func rankScores(texts []string, tax Taxonomy) []CategoryScore {
	accumulated := make(map[string][]int)
	var order []string

	for _, text := range texts {
		scores := Score(text, tax)
		for _, category := range tax.Categories {
			pct, ok := scores[category]
			if !ok {
				continue
			}
			if _, seen := accumulated[category]; !seen {
				order = append(order, category)
			}
			accumulated[category] = append(accumulated[category], pct)
		}
	}

	ranked := []CategoryScore{}
	for _, category := range order {
		scores := accumulated[category]
		sum := 0
		for _, pct := range scores {
			sum += pct
		}
		ranked = append(ranked, CategoryScore{
			Expectation: FormatCategory(category),
			Percentage:  round1(float64(sum) / float64(len(scores))),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Percentage > ranked[j].Percentage
	})
	return ranked
}

// FormatCategory renders an internal snake_case category key as
// space-separated title-cased words, e.g. "trabalho_equipe" -> "Trabalho Equipe".
func FormatCategory(category string) string {
	words := strings.Split(category, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func sumTop(ranked []CategoryScore, n int) float64 {
	sum := 0.0
	for i := 0; i < min(n, len(ranked)); i++ {
		sum += ranked[i].Percentage
	}
	return sum
}

func truncate(ranked []CategoryScore, n int) []CategoryScore {
	if len(ranked) > n {
		return ranked[:n]
	}
	return ranked
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
