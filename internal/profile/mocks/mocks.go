package mocks

import (
	"context"

	"royale_backend/domain"
	"royale_backend/internal/service/middleware"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/mock"
)

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetProfile(ctx context.Context, playerID string) (domain.ProfileResponse, error) {
	args := m.Called(ctx, playerID)
	return args.Get(0).(domain.ProfileResponse), args.Error(1)
}

func (m *MockProfileRepository) GetStoreCatalog(ctx context.Context) ([]domain.StoreItemResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.StoreItemResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfileRepository) UpdateUsername(ctx context.Context, playerID string, username string) error {
	args := m.Called(ctx, playerID, username)
	return args.Error(0)
}

type MockCatalogCache struct {
	mock.Mock
}

func (m *MockCatalogCache) Get(ctx context.Context) ([]domain.StoreItemResponse, bool) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.StoreItemResponse), args.Bool(1)
	}
	return nil, args.Bool(1)
}

func (m *MockCatalogCache) Set(ctx context.Context, catalog []domain.StoreItemResponse) {
	m.Called(ctx, catalog)
}

type MockProfileUsecase struct {
	mock.Mock
}

func (m *MockProfileUsecase) GetProfile(ctx context.Context, playerID string) (domain.ProfileResponse, error) {
	args := m.Called(ctx, playerID)
	return args.Get(0).(domain.ProfileResponse), args.Error(1)
}

func (m *MockProfileUsecase) UpdateUsername(ctx context.Context, playerID string, username string) error {
	args := m.Called(ctx, playerID, username)
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
