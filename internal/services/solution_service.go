package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/campusinova/innovation-platform/internal/constants"
	"github.com/campusinova/innovation-platform/internal/dto"
	"github.com/campusinova/innovation-platform/internal/models"
	"github.com/campusinova/innovation-platform/internal/repository"
)

var (
	ErrSolutionNotFound  = errors.New("solution not found")
	ErrDuplicateSolution = errors.New("solution already submitted for this challenge")
	ErrSelfVote          = errors.New("cannot vote on own solution")
	ErrDuplicateVote     = errors.New("already voted on this solution")
)

// SolutionService handles solution submission and voting.
type SolutionService struct {
	solutionRepo  repository.SolutionRepository
	challengeRepo repository.ChallengeRepository
	voteRepo      repository.VoteRepository
}

// NewSolutionService creates a new SolutionService.
func NewSolutionService(
	solutionRepo repository.SolutionRepository,
	challengeRepo repository.ChallengeRepository,
	voteRepo repository.VoteRepository,
) *SolutionService {
	return &SolutionService{
		solutionRepo:  solutionRepo,
		challengeRepo: challengeRepo,
		voteRepo:      voteRepo,
	}
}

// Submit records the author's solution to a challenge. Each author may
// submit at most one solution per challenge.
func (s *SolutionService) Submit(author *models.User, input dto.CreateSolutionRequest) (*models.Solution, error) {
	challenge, err := s.challengeRepo.FindByID(input.ChallengeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to find challenge: %w", err)
	}

	if _, err := s.solutionRepo.FindByChallengeAndAuthor(challenge.ID, author.ID); err == nil {
		return nil, ErrDuplicateSolution
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing solution: %w", err)
	}

	solution := &models.Solution{
		ChallengeID: challenge.ID,
		AuthorID:    author.ID,
		AuthorName:  author.Name,
		Description: strings.TrimSpace(input.Description),
	}

	if err := s.solutionRepo.Create(solution); err != nil {
		return nil, fmt.Errorf("failed to create solution: %w", err)
	}

	log.Info().Str("author", author.Name).Str("challenge", challenge.Title).Msg("New solution submitted")
	return solution, nil
}

// ListByChallenge returns a challenge's solutions ordered by votes.
func (s *SolutionService) ListByChallenge(challengeID string) ([]models.Solution, error) {
	return s.solutionRepo.ListByChallenge(challengeID, constants.PublicListLimit)
}

// List returns all solutions ordered by votes.
func (s *SolutionService) List() ([]models.Solution, error) {
	return s.solutionRepo.ListAll(constants.PublicListLimit)
}

// ListAll returns all solutions for admins.
func (s *SolutionService) ListAll() ([]models.Solution, error) {
	return s.solutionRepo.ListAll(constants.AdminListLimit)
}

// Vote casts the voter's vote on a solution. Authors cannot vote on their
// own solutions and each voter gets a single vote per solution; a successful
// vote awards points to the author.
func (s *SolutionService) Vote(voter *models.User, solutionID string) error {
	solution, err := s.solutionRepo.FindByID(solutionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSolutionNotFound
		}
		return fmt.Errorf("failed to find solution: %w", err)
	}

	if solution.AuthorID == voter.ID {
		return ErrSelfVote
	}

	if _, err := s.voteRepo.Find(voter.ID, solutionID); err == nil {
		return ErrDuplicateVote
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing vote: %w", err)
	}

	vote := &models.Vote{UserID: voter.ID, SolutionID: solutionID}
	if err := s.voteRepo.Cast(vote, solution.AuthorID, constants.PointsPerVote); err != nil {
		return err
	}

	log.Info().Str("voter", voter.Name).Str("author", solution.AuthorName).Msg("Vote cast")
	return nil
}

// Votes returns the vote detail for one solution.
func (s *SolutionService) Votes(solutionID string) (*dto.SolutionVotesDTO, error) {
	votes, err := s.voteRepo.ListBySolution(solutionID, constants.VoteDetailLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}

	return &dto.SolutionVotesDTO{
		SolutionID: solutionID,
		TotalVotes: len(votes),
		Votes:      dto.ToVoteDTOs(votes),
	}, nil
}
