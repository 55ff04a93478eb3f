package dto

import "github.com/campusinova/innovation-platform/internal/models"

// StatsDTO is the public platform counters payload.
type StatsDTO struct {
	TotalChallenges int64 `json:"total_challenges"`
	TotalSolutions  int64 `json:"total_solutions"`
	TotalUsers      int64 `json:"total_users"`
	TotalVotes      int64 `json:"total_votes"`
}

// TopSolutionDTO is a leader entry in the admin analytics payload.
type TopSolutionDTO struct {
	Title string `json:"title"`
	Votes int    `json:"votes"`
}

// RecentUserDTO is a recent-activity entry in the admin analytics payload.
type RecentUserDTO struct {
	Name string          `json:"name"`
	Type models.UserType `json:"type"`
}

// RecentChallengeDTO is a recent-activity entry in the admin analytics payload.
type RecentChallengeDTO struct {
	Title   string `json:"title"`
	Creator string `json:"creator"`
}

// DetailedStatsDTO is the admin-only analytics payload.
type DetailedStatsDTO struct {
	ActiveChallenges      int64                `json:"active_challenges"`
	InactiveChallenges    int64                `json:"inactive_challenges"`
	TotalSolutions        int64                `json:"total_solutions"`
	Students              int64                `json:"students"`
	Professors            int64                `json:"professors"`
	Companies             int64                `json:"companies"`
	Admins                int64                `json:"admins"`
	TotalVotes            int64                `json:"total_votes"`
	UsersWithExpectations int64                `json:"users_with_expectations"`
	TopSolutions          []TopSolutionDTO     `json:"top_solutions"`
	RecentUsers           []RecentUserDTO      `json:"recent_users"`
	RecentChallenges      []RecentChallengeDTO `json:"recent_challenges"`
}
