package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusinova/innovation-platform/internal/dto"
	"github.com/campusinova/innovation-platform/internal/models"
)

func TestStatsHandler_Stats(t *testing.T) {
	env := setupTestEnv(t)

	professor := env.registerUser(t, "Prof. Stats", "stats@pucrs.br", models.UserTypeProfessor, nil)
	student := env.registerUser(t, "Aluno Stats", "aluno.stats@pucrs.br", models.UserTypeStudent, nil)

	challenge, err := env.challengeService.Create(professor, dto.CreateChallengeRequest{
		Title:       "Desafio Contável",
		Description: "Desafio criado apenas para alimentar os contadores públicos.",
	})
	require.NoError(t, err)

	_, err = env.solutionService.Submit(student, dto.CreateSolutionRequest{
		ChallengeID: challenge.ID,
		Description: "Solução criada apenas para alimentar os contadores.",
	})
	require.NoError(t, err)

	w := getJSON(t, env, "/api/stats", "")

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.StatsDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, int64(1), response.TotalChallenges)
	require.Equal(t, int64(1), response.TotalSolutions)
	require.Equal(t, int64(2), response.TotalUsers)
	require.Equal(t, int64(0), response.TotalVotes)
}

func TestStatsHandler_Health(t *testing.T) {
	env := setupTestEnv(t)

	w := getJSON(t, env, "/api/health", "")

	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "healthy", response["status"])
	require.Equal(t, "connected", response["database"])
	require.NotEmpty(t, response["timestamp"])
}
