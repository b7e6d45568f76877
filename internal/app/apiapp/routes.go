package apiapp

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Legal-Mentors-Network/backend/internal/config"
	connsvc "github.com/Legal-Mentors-Network/backend/internal/services/connections"
	discoverysvc "github.com/Legal-Mentors-Network/backend/internal/services/discovery"
	likessvc "github.com/Legal-Mentors-Network/backend/internal/services/likes"
	matchessvc "github.com/Legal-Mentors-Network/backend/internal/services/matches"
	swipesvc "github.com/Legal-Mentors-Network/backend/internal/services/swipes"
	"github.com/Legal-Mentors-Network/backend/internal/transport/http/handlers"
)

type Dependencies struct {
	SwipeService      *swipesvc.Service
	DiscoveryService  *discoverysvc.Service
	LikeService       *likessvc.Service
	MatchService      *matchessvc.Service
	ConnectionService *connsvc.Service
	Logger            *zap.Logger
	Config            config.Config
}

func RegisterRoutes(r chi.Router, deps Dependencies) {
	healthHandler := handlers.NewHealthHandler()
	swipeHandler := handlers.NewSwipeHandler(deps.SwipeService)
	discoverHandler := handlers.NewDiscoverHandler(deps.DiscoveryService, deps.Config.Discovery.DefaultLimit)
	likesHandler := handlers.NewLikesHandler(deps.LikeService)
	matchesHandler := handlers.NewMatchesHandler(deps.MatchService)
	connectionsHandler := handlers.NewConnectionsHandler(deps.ConnectionService)

	r.Get("/healthz", healthHandler.Get)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/swipes", swipeHandler.Handle)
		r.Route("/users/{user_id}", func(r chi.Router) {
			r.Get("/discover", discoverHandler.Handle)
			r.Get("/likes/incoming", likesHandler.Incoming)
			r.Get("/matches", connectionsHandler.Compute)
			r.Post("/matches", connectionsHandler.Save)
			r.Get("/matches/mutual", matchesHandler.Mutual)
			r.Get("/connections", connectionsHandler.Saved)
		})
	})
}
