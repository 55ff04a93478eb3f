package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apierrors "github.com/campusinova/innovation-platform/internal/errors"
	"github.com/campusinova/innovation-platform/internal/services"
)

// ErrorHandler is the single error-translation boundary: handlers attach
// domain errors to the context and this middleware maps them to statuses.
// Unrecognized errors are logged with full context and surfaced as a
// generic server error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			apierrors.BadRequest(c, "Email already registered. Please use a different email.")
		case errors.Is(err, services.ErrInvalidUserType):
			apierrors.BadRequest(c, "User type must be aluno, professor, empresa or admin")
		case errors.Is(err, services.ErrInvalidCredentials):
			apierrors.Unauthorized(c, "Invalid email or password. Please check your credentials.")
		case errors.Is(err, services.ErrUserNotFound):
			apierrors.NotFound(c, "User not found")
		case errors.Is(err, services.ErrChallengeNotFound):
			apierrors.NotFound(c, "Challenge not found")
		case errors.Is(err, services.ErrSolutionNotFound):
			apierrors.NotFound(c, "Solution not found")
		case errors.Is(err, services.ErrDuplicateSolution):
			apierrors.BadRequest(c, "You have already submitted a solution for this challenge")
		case errors.Is(err, services.ErrSelfVote):
			apierrors.BadRequest(c, "You cannot vote on your own solution")
		case errors.Is(err, services.ErrDuplicateVote):
			apierrors.BadRequest(c, "You have already voted on this solution")
		default:
			log.Error().Err(err).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Msg("Unhandled error")
			apierrors.InternalError(c, "")
		}
	}
}
