package matching

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScore_EmptyText(t *testing.T) {
	require.Empty(t, Score("", CompanyTaxonomy))
	require.Empty(t, Score("", StudentTaxonomy))
}

func TestScore_NoMatches(t *testing.T) {
	require.Empty(t, Score("texto sem nenhuma palavra relevante aqui", CompanyTaxonomy))
}

func TestScore_SingleHit(t *testing.T) {
	scores := Score("trabalho em equipe", CompanyTaxonomy)

	require.Equal(t, map[string]int{"trabalho_equipe": 20}, scores)
}

func TestScore_CaseInsensitive(t *testing.T) {
	scores := Score("EQUIPE", CompanyTaxonomy)

	require.Equal(t, 20, scores["trabalho_equipe"])
}

func TestScore_MultipleHitsInCategory(t *testing.T) {
	// adaptabilidade and flexibilidade are two phrases of the same category.
	scores := Score("adaptabilidade e flexibilidade", CompanyTaxonomy)

	require.Equal(t, 40, scores["adaptabilidade"])
}

func TestScore_SaturatesAtCap(t *testing.T) {
	// All five competencias_digitais phrases present.
	scores := Score("perfil digital com tecnologia, programação, tech e dados", CompanyTaxonomy)

	require.Equal(t, 100, scores["competencias_digitais"])
}

func TestScore_MultipleCategories(t *testing.T) {
	scores := Score("busco equipe com comunicação e criatividade", CompanyTaxonomy)

	require.Equal(t, map[string]int{
		"trabalho_equipe": 20,
		"comunicacao":     20,
		"criatividade":    20,
	}, scores)
}

func TestScore_StudentTaxonomy(t *testing.T) {
	scores := Score("horário flexível, trabalho remoto e plano de saúde", StudentTaxonomy)

	// flexível, remoto and horário all belong to flexibilidade.
	require.Equal(t, 60, scores["flexibilidade"])
	require.Equal(t, 40, scores["beneficios"])
}

func TestScore_PercentagesAreMultiplesOfTwenty(t *testing.T) {
	texts := []string{
		"adaptabilidade",
		"pensamento crítico e análise analítica",
		"digital tecnologia programação tech dados",
		"equipe colaboração time colaborativo inovação",
	}

	for _, text := range texts {
		for category, pct := range Score(text, CompanyTaxonomy) {
			require.Greater(t, pct, 0, "category %s", category)
			require.LessOrEqual(t, pct, 100, "category %s", category)
			require.Zero(t, pct%20, "category %s percentage %d", category, pct)
		}
	}
}

func TestFormatCategory(t *testing.T) {
	require.Equal(t, "Pensamento Critico", FormatCategory("pensamento_critico"))
	require.Equal(t, "Trabalho Equipe", FormatCategory("trabalho_equipe"))
	require.Equal(t, "Etica", FormatCategory("etica"))
}
