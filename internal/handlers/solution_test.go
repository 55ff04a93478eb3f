package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/campusinova/innovation-platform/internal/dto"
	"github.com/campusinova/innovation-platform/internal/models"
)

// SolutionHandlerTestSuite covers solution submission and voting, the two
// flows where the platform's anti-abuse rules live.
type SolutionHandlerTestSuite struct {
	suite.Suite
	env *testEnv

	professor *models.User
	author    *models.User
	voter     *models.User
	challenge *models.Challenge
}

// SetupTest runs before each test
func (s *SolutionHandlerTestSuite) SetupTest() {
	s.env = setupTestEnv(s.T())

	s.professor = s.env.registerUser(s.T(), "Prof. Votos", "votos@pucrs.br", models.UserTypeProfessor, nil)
	s.author = s.env.registerUser(s.T(), "Autora", "autora@pucrs.br", models.UserTypeStudent, nil)
	s.voter = s.env.registerUser(s.T(), "Eleitor", "eleitor@pucrs.br", models.UserTypeStudent, nil)

	challenge, err := s.env.challengeService.Create(s.professor, dto.CreateChallengeRequest{
		Title:       "Desafio de Votação",
		Description: "Desafio usado pelos cenários de submissão e votação.",
	})
	s.Require().NoError(err)
	s.challenge = challenge
}

func (s *SolutionHandlerTestSuite) submitSolution(author *models.User) dto.SolutionDTO {
	w := postJSON(s.T(), s.env, "/api/solutions", map[string]string{
		"challenge_id": s.challenge.ID,
		"description":  "Proposta detalhada de solução para o desafio.",
	}, s.env.bearer(s.T(), author))
	s.Require().Equal(http.StatusOK, w.Code)

	var solution dto.SolutionDTO
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &solution))
	return solution
}

func (s *SolutionHandlerTestSuite) reloadUser(id string) models.User {
	var user models.User
	s.Require().NoError(s.env.db.First(&user, "id = ?", id).Error)
	return user
}

func (s *SolutionHandlerTestSuite) TestSubmit() {
	solution := s.submitSolution(s.author)

	s.Equal(s.challenge.ID, solution.ChallengeID)
	s.Equal(s.author.ID, solution.AuthorID)
	s.Equal("Autora", solution.AuthorName)
	s.Zero(solution.Votes)
}

func (s *SolutionHandlerTestSuite) TestSubmitRequiresAuth() {
	w := postJSON(s.T(), s.env, "/api/solutions", map[string]string{
		"challenge_id": s.challenge.ID,
		"description":  "Submissão anônima não deve ser aceita.",
	}, "")

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *SolutionHandlerTestSuite) TestSubmitUnknownChallenge() {
	w := postJSON(s.T(), s.env, "/api/solutions", map[string]string{
		"challenge_id": "inexistente",
		"description":  "Solução para um desafio que não existe.",
	}, s.env.bearer(s.T(), s.author))

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *SolutionHandlerTestSuite) TestSubmitDuplicateRejected() {
	s.submitSolution(s.author)

	w := postJSON(s.T(), s.env, "/api/solutions", map[string]string{
		"challenge_id": s.challenge.ID,
		"description":  "Segunda tentativa do mesmo autor no mesmo desafio.",
	}, s.env.bearer(s.T(), s.author))

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *SolutionHandlerTestSuite) TestVoteAwardsPoints() {
	solution := s.submitSolution(s.author)

	w := postJSON(s.T(), s.env, "/api/solutions/"+solution.ID+"/vote", nil, s.env.bearer(s.T(), s.voter))
	s.Equal(http.StatusOK, w.Code)

	var response map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("Vote successfully registered. Author awarded 10 points!", response["message"])

	var stored models.Solution
	s.Require().NoError(s.env.db.First(&stored, "id = ?", solution.ID).Error)
	s.Equal(1, stored.Votes)

	s.Equal(10, s.reloadUser(s.author.ID).Points)
	s.Zero(s.reloadUser(s.voter.ID).Points)
}

func (s *SolutionHandlerTestSuite) TestVoteOnOwnSolutionRejected() {
	solution := s.submitSolution(s.author)

	w := postJSON(s.T(), s.env, "/api/solutions/"+solution.ID+"/vote", nil, s.env.bearer(s.T(), s.author))

	s.Equal(http.StatusBadRequest, w.Code)
	s.Zero(s.reloadUser(s.author.ID).Points)
}

func (s *SolutionHandlerTestSuite) TestDuplicateVoteRejected() {
	solution := s.submitSolution(s.author)

	first := postJSON(s.T(), s.env, "/api/solutions/"+solution.ID+"/vote", nil, s.env.bearer(s.T(), s.voter))
	s.Equal(http.StatusOK, first.Code)

	second := postJSON(s.T(), s.env, "/api/solutions/"+solution.ID+"/vote", nil, s.env.bearer(s.T(), s.voter))
	s.Equal(http.StatusBadRequest, second.Code)

	// The rejected vote must not change any counters.
	var stored models.Solution
	s.Require().NoError(s.env.db.First(&stored, "id = ?", solution.ID).Error)
	s.Equal(1, stored.Votes)
	s.Equal(10, s.reloadUser(s.author.ID).Points)
}

func (s *SolutionHandlerTestSuite) TestVoteUnknownSolution() {
	w := postJSON(s.T(), s.env, "/api/solutions/inexistente/vote", nil, s.env.bearer(s.T(), s.voter))

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *SolutionHandlerTestSuite) TestVotesDetail() {
	solution := s.submitSolution(s.author)

	w := postJSON(s.T(), s.env, "/api/solutions/"+solution.ID+"/vote", nil, s.env.bearer(s.T(), s.voter))
	s.Require().Equal(http.StatusOK, w.Code)

	detail := getJSON(s.T(), s.env, "/api/solutions/"+solution.ID+"/votes", "")
	s.Equal(http.StatusOK, detail.Code)

	var response dto.SolutionVotesDTO
	s.Require().NoError(json.Unmarshal(detail.Body.Bytes(), &response))
	s.Equal(solution.ID, response.SolutionID)
	s.Equal(1, response.TotalVotes)
	s.Require().Len(response.Votes, 1)
	s.Equal(s.voter.ID, response.Votes[0].UserID)
}

func (s *SolutionHandlerTestSuite) TestListByChallenge() {
	s.submitSolution(s.author)
	s.submitSolution(s.voter)

	w := getJSON(s.T(), s.env, "/api/challenges/"+s.challenge.ID+"/solutions", "")
	s.Equal(http.StatusOK, w.Code)

	var response []dto.SolutionDTO
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Len(response, 2)
}

func TestSolutionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SolutionHandlerTestSuite))
}
