package main

import (
	"fmt"
	"log"
	"net/http"

	accountController "royale_backend/internal/account/controller"
	accountProvider "royale_backend/internal/account/provider"
	accountRepository "royale_backend/internal/account/repository"
	accountUsecase "royale_backend/internal/account/usecase"

	economyController "royale_backend/internal/economy/controller"
	economyRepository "royale_backend/internal/economy/repository"
	economyUsecase "royale_backend/internal/economy/usecase"

	profileCache "royale_backend/internal/profile/cache"
	profileController "royale_backend/internal/profile/controller"
	profileRepository "royale_backend/internal/profile/repository"
	profileUsecase "royale_backend/internal/profile/usecase"

	matchController "royale_backend/internal/match/controller"
	matchRepository "royale_backend/internal/match/repository"
	matchUsecase "royale_backend/internal/match/usecase"

	"royale_backend/internal/service/config"
	"royale_backend/internal/service/health"
	"royale_backend/internal/service/logger"
	"royale_backend/internal/service/middleware"
	"royale_backend/internal/service/router"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db := middleware.DbConnect(cfg)
	redisClient := middleware.RedisConnect(cfg)

	jwtToken, err := middleware.NewJwtToken(cfg.JWTSecret)
	if err != nil {
		log.Fatalf("Failed to create JWT token: %v", err)
	}

	if err := logger.InitLoggers(cfg); err != nil {
		log.Fatalf("Failed to initialize loggers: %v", err)
	}
	defer func() {
		err := logger.SyncLoggers()
		if err != nil {
			log.Fatalf("Failed to sync loggers: %v", err)
		}
	}()

	identityClient := accountProvider.NewIdentityClient(cfg.IdentityProviderURL)

	accountRepo := accountRepository.NewAccountRepository(db)
	accountUC := accountUsecase.NewAccountUsecase(accountRepo, identityClient)
	accountHandler := accountController.NewAccountHandler(accountUC, jwtToken)

	economyRepo := economyRepository.NewEconomyRepository(db)
	economyUC := economyUsecase.NewEconomyUsecase(economyRepo)
	economyHandler := economyController.NewEconomyHandler(economyUC, jwtToken)

	catalogCache := profileCache.NewCatalogCache(redisClient)
	profileRepo := profileRepository.NewProfileRepository(db)
	profileUC := profileUsecase.NewProfileUsecase(profileRepo, catalogCache)
	profileHandler := profileController.NewProfileHandler(profileUC, jwtToken)

	matchRepo := matchRepository.NewMatchRepository(db)
	matchUC := matchUsecase.NewMatchUsecase(matchRepo)
	matchHandler := matchController.NewMatchHandler(matchUC, jwtToken)

	healthHandler := health.NewHealthHandler(db)

	mainRouter := router.SetUpRoutes(accountHandler, economyHandler, profileHandler, matchHandler, healthHandler)
	mainRouter.Use(middleware.RequestIDMiddleware)
	mainRouter.Use(middleware.RateLimitMiddleware)
	http.Handle("/", middleware.EnableCORS(mainRouter))
	fmt.Printf("Starting HTTP server on address %s\n", cfg.BackendURL)
	if err := http.ListenAndServe(cfg.BackendURL, nil); err != nil {
		fmt.Printf("Error on starting server: %s", err)
	}
}
