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

var ErrChallengeNotFound = errors.New("challenge not found")

// ChallengeService handles challenge business logic.
type ChallengeService struct {
	challengeRepo repository.ChallengeRepository
}

// NewChallengeService creates a new ChallengeService.
func NewChallengeService(challengeRepo repository.ChallengeRepository) *ChallengeService {
	return &ChallengeService{challengeRepo: challengeRepo}
}

// Create publishes a new challenge on behalf of its creator. Role gating
// happens at the routing layer.
func (s *ChallengeService) Create(creator *models.User, input dto.CreateChallengeRequest) (*models.Challenge, error) {
	summary := ""
	if input.Summary != nil {
		summary = strings.TrimSpace(*input.Summary)
	}
	if summary == "" {
		summary = deriveSummary(input.Description)
	}

	challenge := &models.Challenge{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Summary:     summary,
		CreatorID:   creator.ID,
		CreatorName: creator.Name,
		Deadline:    input.Deadline,
		Reward:      input.Reward,
		Active:      true,
	}

	if err := s.challengeRepo.Create(challenge); err != nil {
		return nil, fmt.Errorf("failed to create challenge: %w", err)
	}

	log.Info().Str("title", challenge.Title).Str("creator", creator.Name).Msg("New challenge created")
	return challenge, nil
}

// ListActive returns active challenges, newest first.
func (s *ChallengeService) ListActive() ([]models.Challenge, error) {
	return s.challengeRepo.ListActive(constants.PublicListLimit)
}

// ListAll returns every challenge including inactive ones, for admins.
func (s *ChallengeService) ListAll() ([]models.Challenge, error) {
	return s.challengeRepo.ListAll(constants.AdminListLimit)
}

// Get retrieves a challenge by ID.
func (s *ChallengeService) Get(id string) (*models.Challenge, error) {
	challenge, err := s.challengeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to find challenge: %w", err)
	}
	return challenge, nil
}

// deriveSummary truncates the description to the summary character budget,
// marking the cut with an ellipsis.
func deriveSummary(description string) string {
	runes := []rune(description)
	if len(runes) > constants.SummaryMaxChars {
		return string(runes[:constants.SummaryMaxChars]) + "..."
	}
	return description
}
