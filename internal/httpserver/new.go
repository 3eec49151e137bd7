package httpserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"dbt-guide/internal/chatbot"
	"dbt-guide/internal/i18n"
	"dbt-guide/internal/middleware"
	"dbt-guide/internal/procedure"
	"dbt-guide/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port           int
	mode           string
	environment    string
	trustedProxies []string

	// Content
	bot     *chatbot.Bot
	catalog *procedure.Catalog
	texts   *i18n.Catalog

	// Sessions and language
	defaultLanguage i18n.Language
	sessionTTL      time.Duration
	maxSessions     int
	replyDelay      time.Duration

	middleware middleware.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	// TrustedProxies may set the client IP through X-Forwarded-For. Nil trusts none.
	TrustedProxies []string

	// Content
	Bot     *chatbot.Bot
	Catalog *procedure.Catalog
	Texts   *i18n.Catalog

	DefaultLanguage i18n.Language
	SessionTTL      time.Duration
	MaxSessions     int
	ReplyDelay      time.Duration

	Middleware middleware.Config
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		trustedProxies:  cfg.TrustedProxies,
		bot:             cfg.Bot,
		catalog:         cfg.Catalog,
		texts:           cfg.Texts,
		defaultLanguage: i18n.OrDefault(cfg.DefaultLanguage),
		sessionTTL:      cfg.SessionTTL,
		maxSessions:     cfg.MaxSessions,
		replyDelay:      cfg.ReplyDelay,
		middleware:      cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(srv.trustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.bot == nil {
		return errors.New("chatbot is required")
	}
	if srv.catalog == nil {
		return errors.New("procedure catalog is required")
	}
	if srv.texts == nil {
		return errors.New("translations are required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
