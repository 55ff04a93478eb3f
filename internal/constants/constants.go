package constants

// ContextKeyUser is the gin context key holding the authenticated user.
const ContextKeyUser = "current_user"

// Fixed result caps. Listing endpoints never paginate beyond these.
const (
	PublicListLimit  = 100
	LeaderboardLimit = 20
	AdminListLimit   = 1000
	VoteDetailLimit  = 1000
	ActivityLimit    = 5
)

// PointsPerVote is credited to a solution's author for each vote received.
const PointsPerVote = 10

// SummaryMaxChars bounds the auto-derived challenge summary.
const SummaryMaxChars = 150
