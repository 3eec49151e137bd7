package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "dbt-guide/internal/chatbot/delivery/http"
	chatRepo "dbt-guide/internal/chatbot/repository/memory"
	chatUC "dbt-guide/internal/chatbot/usecase"
	"dbt-guide/internal/middleware"
	guideHTTP "dbt-guide/internal/procedure/delivery/http"
	guideRepo "dbt-guide/internal/procedure/repository/memory"
	guideUC "dbt-guide/internal/procedure/usecase"
)

// setupChatDomain wires the chatbot: repository, use case, handler, routes.
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := chatRepo.New(srv.l, srv.maxSessions, srv.sessionTTL)

	// 2. UseCase
	uc := chatUC.New(repo, srv.bot, srv.l, chatUC.Options{
		DefaultLanguage: srv.defaultLanguage,
		ReplyDelay:      srv.replyDelay,
	})

	// 3. HTTP Handler
	h := chatHTTP.New(srv.l, uc)

	// 4. Routes: /api/v1/chat/...
	chatHTTP.RegisterRoutes(api.Group("/chat"), h, mw)

	srv.l.Infof(ctx, "Chat domain registered: languages=%v", srv.bot.Languages())
	return nil
}

// setupGuideDomain wires the procedure navigator the same way.
func (srv HTTPServer) setupGuideDomain(ctx context.Context, api *gin.RouterGroup) error {
	repo := guideRepo.New(srv.l, srv.maxSessions, srv.sessionTTL)

	uc := guideUC.New(repo, srv.catalog, srv.texts, srv.l, guideUC.Options{
		DefaultLanguage: srv.defaultLanguage,
	})

	h := guideHTTP.New(srv.l, uc)

	// /api/v1/guide/...
	guideHTTP.RegisterRoutes(api.Group("/guide"), h)

	srv.l.Infof(ctx, "Guide domain registered: cases=%d", len(srv.catalog.Summaries(srv.defaultLanguage)))
	return nil
}
