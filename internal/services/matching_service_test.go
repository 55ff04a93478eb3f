package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusinova/innovation-platform/internal/models"
	"github.com/campusinova/innovation-platform/internal/repository"
)

// stubUserRepo implements repository.UserRepository over a fixed user slice.
type stubUserRepo struct {
	repository.UserRepository
	users []models.User
	err   error
}

func (s *stubUserRepo) FindWithExpectations() ([]models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.users, nil
}

func expectationsUser(userType models.UserType, text string) models.User {
	return models.User{Type: userType, Expectations: &text}
}

func TestMatchingService_Analysis(t *testing.T) {
	repo := &stubUserRepo{users: []models.User{
		expectationsUser(models.UserTypeCompany, "trabalho em equipe e comunicação"),
		expectationsUser(models.UserTypeStudent, "cultura colaborativa e flexível"),
		// Professors share expectations too but are not part of the analysis.
		expectationsUser(models.UserTypeProfessor, "pensamento crítico e ética"),
	}}
	svc := NewMatchingService(repo, nil)

	result := svc.Analysis(context.Background())

	require.Equal(t, 1, result.Companies)
	require.Equal(t, 1, result.Students)
	require.Equal(t, 8.0, result.TotalMatches)
	require.Len(t, result.CompanyExpectations, 2)
	require.Len(t, result.StudentExpectations, 2)
	require.Len(t, result.TopMatches, 2)
}

func TestMatchingService_SkipsEmptyExpectations(t *testing.T) {
	repo := &stubUserRepo{users: []models.User{
		expectationsUser(models.UserTypeCompany, ""),
		expectationsUser(models.UserTypeStudent, "cultura colaborativa"),
	}}
	svc := NewMatchingService(repo, nil)

	result := svc.Analysis(context.Background())

	require.Zero(t, result.Companies)
	require.Equal(t, 1, result.Students)
	require.Equal(t, 0.0, result.TotalMatches)
}

func TestMatchingService_DegradesOnStoreFailure(t *testing.T) {
	repo := &stubUserRepo{err: errors.New("store unavailable")}
	svc := NewMatchingService(repo, nil)

	result := svc.Analysis(context.Background())

	require.Equal(t, 0.0, result.TotalMatches)
	require.Zero(t, result.Companies)
	require.Zero(t, result.Students)
	require.Empty(t, result.CompanyExpectations)
	require.Empty(t, result.StudentExpectations)
	require.Empty(t, result.TopMatches)
}
