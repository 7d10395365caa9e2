package router

import (
	account "royale_backend/internal/account/controller"
	economy "royale_backend/internal/economy/controller"
	match "royale_backend/internal/match/controller"
	profile "royale_backend/internal/profile/controller"
	"royale_backend/internal/service/health"

	"github.com/gorilla/mux"
)

func SetUpRoutes(
	accountHandler *account.AccountHandler,
	economyHandler *economy.EconomyHandler,
	profileHandler *profile.ProfileHandler,
	matchHandler *match.MatchHandler,
	healthHandler *health.HealthHandler,
) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/ping", healthHandler.Ping).Methods("GET")

	router.HandleFunc("/auth/register", accountHandler.RegisterPlayer).Methods("POST")
	router.HandleFunc("/auth/login", accountHandler.LoginPlayer).Methods("POST")

	router.HandleFunc("/store/buy", economyHandler.BuyItem).Methods("POST")
	router.HandleFunc("/equipment/equip", economyHandler.EquipItem).Methods("POST")

	router.HandleFunc("/profile", profileHandler.GetProfile).Methods("GET")
	router.HandleFunc("/profile/update-username", profileHandler.UpdateUsername).Methods("POST")

	router.HandleFunc("/match-result", matchHandler.RecordMatchResult).Methods("POST")

	return router
}
