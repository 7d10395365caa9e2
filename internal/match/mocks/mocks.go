package mocks

import (
	"context"

	"royale_backend/domain"
	"royale_backend/internal/service/middleware"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/mock"
)

type MockMatchRepository struct {
	mock.Mock
}

func (m *MockMatchRepository) RecordMatchResult(ctx context.Context, playerID string, submission domain.MatchSubmission, reward int64) error {
	args := m.Called(ctx, playerID, submission, reward)
	return args.Error(0)
}

type MockMatchUsecase struct {
	mock.Mock
}

func (m *MockMatchUsecase) RecordMatchResult(ctx context.Context, playerID string, submission domain.MatchSubmission) (int64, error) {
	args := m.Called(ctx, playerID, submission)
	return args.Get(0).(int64), args.Error(1)
}

type MockJwtTokenService struct {
	mock.Mock
}

func (m *MockJwtTokenService) Create(playerID string, tokenExpTime int64) (string, error) {
	args := m.Called(playerID, tokenExpTime)
	return args.String(0), args.Error(1)
}

func (m *MockJwtTokenService) Validate(tokenString string) (*middleware.JwtClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) != nil {
		return args.Get(0).(*middleware.JwtClaims), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJwtTokenService) ParseSecretGetter(token *jwt.Token) (interface{}, error) {
	args := m.Called(token)
	return args.Get(0), args.Error(1)
}
