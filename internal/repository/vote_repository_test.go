package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/campusinova/innovation-platform/internal/models"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestVoteRepository_CastRunsSingleTransaction(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewVoteRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `votes`").
		WithArgs("voter-1", "solution-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `solutions` SET `votes`=votes").
		WithArgs(1, "solution-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `users` SET `points`=points").
		WithArgs(10, "author-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	vote := &models.Vote{UserID: "voter-1", SolutionID: "solution-1"}
	err := repo.Cast(vote, "author-1", 10)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVoteRepository_CastRollsBackOnInsertFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewVoteRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `votes`").
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	vote := &models.Vote{UserID: "voter-1", SolutionID: "solution-1"}
	err := repo.Cast(vote, "author-1", 10)

	require.ErrorIs(t, err, ErrCreateVote)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVoteRepository_CastRollsBackOnAwardFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewVoteRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `votes`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `solutions`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `users`").
		WillReturnError(gorm.ErrInvalidTransaction)
	mock.ExpectRollback()

	vote := &models.Vote{UserID: "voter-1", SolutionID: "solution-1"}
	err := repo.Cast(vote, "author-1", 10)

	require.ErrorIs(t, err, ErrAwardPoints)
	require.NoError(t, mock.ExpectationsWereMet())
}
