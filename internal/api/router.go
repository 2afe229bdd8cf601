package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordhunt/internal/api/handler"
	"github.com/mcoot/wordhunt/internal/api/middleware"
	"github.com/mcoot/wordhunt/internal/services/dictionary"
	"github.com/mcoot/wordhunt/internal/services/game"
	"github.com/mcoot/wordhunt/internal/services/hints"
	"github.com/mcoot/wordhunt/internal/services/stats"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	GameController    game.ControllerInterface
	DictionaryService dictionary.ServiceInterface
	HintsService      hints.ServiceInterface
	StatsService      stats.ServiceInterface
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	roundHandler := handler.NewRoundHandler(cfg.GameController)
	solveHandler := handler.NewSolveHandler(cfg.HintsService)
	statsHandler := handler.NewStatsHandler(cfg.StatsService)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Round routes
	api.HandleFunc("/rounds", roundHandler.Start).Methods(http.MethodPost)
	api.HandleFunc("/rounds/{id}", roundHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/rounds/{id}/board", roundHandler.NewBoard).Methods(http.MethodPost)
	api.HandleFunc("/rounds/{id}/guesses", roundHandler.Guess).Methods(http.MethodPost)
	api.HandleFunc("/rounds/{id}/end", roundHandler.End).Methods(http.MethodPost)

	api.HandleFunc("/solve", solveHandler.Solve).Methods(http.MethodPost)
	api.HandleFunc("/stats", statsHandler.Get).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", handler.Health(cfg.DictionaryService)).Methods(http.MethodGet)

	return r
}
