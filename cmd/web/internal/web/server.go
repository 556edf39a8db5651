package web

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"thirdcoast.systems/adrevenue/cmd/web/handlers/api/predict_api"
	"thirdcoast.systems/adrevenue/cmd/web/handlers/content"
	staticpkg "thirdcoast.systems/adrevenue/cmd/web/internal/web/utils/static"
	"thirdcoast.systems/adrevenue/cmd/web/session"
	"thirdcoast.systems/adrevenue/internal/metrics"
	"thirdcoast.systems/adrevenue/internal/model"
	"thirdcoast.systems/adrevenue/internal/youtube"
)

type Webserver struct {
	*echo.Echo
	sessionManager *session.Manager
	scorer         model.Scorer
	statsSource    youtube.StatsSource
	metrics        *metrics.Metrics
	staticCache    *staticpkg.StaticCache
	apiKeySet      bool
}

// NewWebserver wires the handlers. statsSource may be nil when no API key is
// configured; the fetch endpoint then refuses lookups with a clear message
// while the manual workflow stays available.
func NewWebserver(scorer model.Scorer, statsSource youtube.StatsSource, sessionManager *session.Manager, m *metrics.Metrics) (*Webserver, error) {
	e := echo.New()

	staticCache, err := staticpkg.NewStaticCache()
	if err != nil {
		return nil, err
	}

	webserver := &Webserver{
		Echo:           e,
		sessionManager: sessionManager,
		scorer:         scorer,
		statsSource:    statsSource,
		metrics:        m,
		staticCache:    staticCache,
		apiKeySet:      statsSource != nil,
	}

	webserver.registerRoutes()
	webserver.setupMiddleware()

	return webserver, nil
}

func (s *Webserver) setupMiddleware() {
	s.HideBanner = true
	s.HidePort = true
	s.Use(middleware.BodyLimit("64K"))
	s.Use(middleware.Recover())
	s.Use(middleware.RequestID())
	s.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))
	s.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			switch c.Path() {
			case "/healthz", "/metrics":
				return true
			default:
				return false
			}
		},
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  false,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				fields = append(fields, "error", v.Error)
			}
			slog.Info("request", fields...)
			return nil
		},
	}))
}

func (s *Webserver) registerRoutes() {
	apiGroup := s.Group("/api")
	apiGroup.POST("/predict/manual", predict_api.HandleManualPredict(s.scorer, s.metrics))
	apiGroup.POST("/fetch", predict_api.HandleFetch(s.statsSource, s.sessionManager, s.metrics))
	apiGroup.POST("/predict/customize", predict_api.HandleCustomizePredict(s.scorer, s.sessionManager, s.metrics))

	// Health check
	s.GET("/healthz", func(c echo.Context) error {
		return c.String(200, "ok")
	})

	// Prometheus exposition
	s.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))

	// Static file serving
	s.GET("/static/*", s.staticCache.ServeStaticFile("/static/"))

	// Content routes
	s.GET("/manual", content.HandleManualPage())
	s.GET("/link", content.HandleLinkPage())
	s.GET("/", content.HandleHomePage(s.apiKeySet))
}
