package mocks

import (
	"context"

	"royale_backend/internal/service/middleware"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/mock"
)

type MockEconomyRepository struct {
	mock.Mock
}

func (m *MockEconomyRepository) BuyItem(ctx context.Context, playerID string, itemDefID int) (string, error) {
	args := m.Called(ctx, playerID, itemDefID)
	return args.String(0), args.Error(1)
}

func (m *MockEconomyRepository) EquipItem(ctx context.Context, playerID string, slot string, playerItemID string) error {
	args := m.Called(ctx, playerID, slot, playerItemID)
	return args.Error(0)
}

type MockEconomyUsecase struct {
	mock.Mock
}

func (m *MockEconomyUsecase) BuyItem(ctx context.Context, playerID string, itemDefID int) (string, error) {
	args := m.Called(ctx, playerID, itemDefID)
	return args.String(0), args.Error(1)
}

func (m *MockEconomyUsecase) EquipItem(ctx context.Context, playerID string, slot string, playerItemID string) error {
	args := m.Called(ctx, playerID, slot, playerItemID)
	return args.Error(0)
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
