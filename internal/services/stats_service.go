package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/campusinova/innovation-platform/internal/constants"
	"github.com/campusinova/innovation-platform/internal/dto"
	"github.com/campusinova/innovation-platform/internal/models"
	"github.com/campusinova/innovation-platform/internal/repository"
)

// StatsService aggregates platform counters. The individual counts are
// independent reads, so they fan out concurrently and join before returning.
type StatsService struct {
	userRepo      repository.UserRepository
	challengeRepo repository.ChallengeRepository
	solutionRepo  repository.SolutionRepository
	voteRepo      repository.VoteRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(
	userRepo repository.UserRepository,
	challengeRepo repository.ChallengeRepository,
	solutionRepo repository.SolutionRepository,
	voteRepo repository.VoteRepository,
) *StatsService {
	return &StatsService{
		userRepo:      userRepo,
		challengeRepo: challengeRepo,
		solutionRepo:  solutionRepo,
		voteRepo:      voteRepo,
	}
}

// Overview returns the public platform counters.
func (s *StatsService) Overview(ctx context.Context) (*dto.StatsDTO, error) {
	var stats dto.StatsDTO
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		stats.TotalChallenges, err = s.challengeRepo.CountActive(true)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalSolutions, err = s.solutionRepo.Count()
		return err
	})
	g.Go(func() (err error) {
		stats.TotalUsers, err = s.userRepo.Count()
		return err
	})
	g.Go(func() (err error) {
		stats.TotalVotes, err = s.voteRepo.Count()
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Detailed returns the admin analytics payload: per-role counts, activity
// counters, the most voted solutions, and the latest users and challenges.
func (s *StatsService) Detailed(ctx context.Context) (*dto.DetailedStatsDTO, error) {
	var stats dto.DetailedStatsDTO
	var topSolutions []models.Solution
	var recentUsers []models.User
	var recentChallenges []models.Challenge

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		stats.ActiveChallenges, err = s.challengeRepo.CountActive(true)
		return err
	})
	g.Go(func() (err error) {
		stats.InactiveChallenges, err = s.challengeRepo.CountActive(false)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalSolutions, err = s.solutionRepo.Count()
		return err
	})
	g.Go(func() (err error) {
		stats.Students, err = s.userRepo.CountByType(models.UserTypeStudent)
		return err
	})
	g.Go(func() (err error) {
		stats.Professors, err = s.userRepo.CountByType(models.UserTypeProfessor)
		return err
	})
	g.Go(func() (err error) {
		stats.Companies, err = s.userRepo.CountByType(models.UserTypeCompany)
		return err
	})
	g.Go(func() (err error) {
		stats.Admins, err = s.userRepo.CountByType(models.UserTypeAdmin)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalVotes, err = s.voteRepo.Count()
		return err
	})
	g.Go(func() (err error) {
		stats.UsersWithExpectations, err = s.userRepo.CountWithExpectations()
		return err
	})
	g.Go(func() (err error) {
		topSolutions, err = s.solutionRepo.ListAll(constants.ActivityLimit)
		return err
	})
	g.Go(func() (err error) {
		recentUsers, err = s.userRepo.ListRecent(constants.ActivityLimit)
		return err
	})
	g.Go(func() (err error) {
		recentChallenges, err = s.challengeRepo.ListAll(constants.ActivityLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.TopSolutions = make([]dto.TopSolutionDTO, 0, len(topSolutions))
	for _, solution := range topSolutions {
		stats.TopSolutions = append(stats.TopSolutions, dto.TopSolutionDTO{
			Title: "Solution by " + solution.AuthorName,
			Votes: solution.Votes,
		})
	}

	stats.RecentUsers = make([]dto.RecentUserDTO, 0, len(recentUsers))
	for _, user := range recentUsers {
		stats.RecentUsers = append(stats.RecentUsers, dto.RecentUserDTO{
			Name: user.Name,
			Type: user.Type,
		})
	}

	stats.RecentChallenges = make([]dto.RecentChallengeDTO, 0, len(recentChallenges))
	for _, challenge := range recentChallenges {
		stats.RecentChallenges = append(stats.RecentChallenges, dto.RecentChallengeDTO{
			Title:   challenge.Title,
			Creator: challenge.CreatorName,
		})
	}

	return &stats, nil
}
