package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"assistant-srv/internal/compose"
	conversationHTTP "assistant-srv/internal/conversation/delivery/http"
	conversationPostgre "assistant-srv/internal/conversation/repository/postgre"
	conversationRedis "assistant-srv/internal/conversation/repository/redis"
	conversationUsecase "assistant-srv/internal/conversation/usecase"
	"assistant-srv/internal/elicitation"
	elicitationUsecase "assistant-srv/internal/elicitation/usecase"
	"assistant-srv/internal/middleware"
	"assistant-srv/internal/resolution"
	resolutionUsecase "assistant-srv/internal/resolution/usecase"
	"assistant-srv/internal/signal"
	"assistant-srv/pkg/intentsrv"
	"assistant-srv/pkg/listingsrv"
	"assistant-srv/pkg/searchsrv"
)

func (srv *HTTPServer) setupConversationDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	// Backend service clients
	intentClient := intentsrv.New(intentsrv.IntentConfig{BaseURL: srv.config.Intent.URL})
	searchClient := searchsrv.New(searchsrv.SearchConfig{BaseURL: srv.config.Search.URL})
	listingClient := listingsrv.New(listingsrv.ListingConfig{BaseURL: srv.config.Listing.URL})

	// Shared composition and signal detection
	composer := compose.New(srv.geminiClient, srv.l)
	detectors := signal.New(signal.DefaultKeywords())

	// Loops
	resolutionUC := resolutionUsecase.New(searchClient, srv.geminiClient, composer, resolution.Config{
		SatisfiedThreshold: srv.config.Resolution.SatisfiedThreshold,
		MaxAttempts:        srv.config.Resolution.MaxAttempts,
	}, srv.l)

	elicitationUC := elicitationUsecase.New(listingClient, detectors, composer, elicitation.Config{
		MaxQuestions: srv.config.Elicitation.MaxQuestions,
	}, srv.l)

	// Controller
	stateRepo := conversationRedis.New(srv.redisClient, srv.l)
	auditRepo := conversationPostgre.New(srv.postgresDB, srv.l)

	uc := conversationUsecase.New(stateRepo, auditRepo, intentClient, resolutionUC, elicitationUC, composer, srv.producer, srv.l)

	handler := conversationHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Conversation domain registered")
	return nil
}
