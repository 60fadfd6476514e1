package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/eventportal/access-service/docs"
	"github.com/eventportal/access-service/internal/api/handler"
	"github.com/eventportal/access-service/internal/api/middleware"
	"github.com/eventportal/access-service/internal/core/domain"
	"github.com/eventportal/access-service/internal/core/service"
	mongorepo "github.com/eventportal/access-service/internal/infrastructure/db/mongo"
	redisstore "github.com/eventportal/access-service/internal/infrastructure/db/redis"
	"github.com/eventportal/access-service/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.Session.SignInURL)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(echoprometheus.NewMiddleware("event_portal"))

	// --- Dependencies ---
	users := mongorepo.NewUserRepository(db)
	events := mongorepo.NewEventRepository(db)
	roles := mongorepo.NewEventRoleRepository(db)
	audit := mongorepo.NewRoleAuditRepository(db)
	tracker := redisstore.NewSyncTracker(rdb, cfg.Session.SyncTTL)

	authzService := service.NewAuthzService(users, roles, tracker, cfg.Session.BootstrapAdminEmail, log)
	eventService := service.NewEventService(events, log)
	roleService := service.NewRoleService(events, users, roles, audit, log)
	userService := service.NewUserService(users, events, roles, log)

	access := middleware.NewAccess(authzService, log)
	superAdmin := access.RequireGlobalRole(domain.RoleSuperAdmin)

	sessionHandler := handler.NewSessionHandler(userService, authzService)
	eventHandler := handler.NewEventHandler(eventService)
	roleHandler := handler.NewRoleHandler(roleService)
	userHandler := handler.NewUserHandler(userService)

	// --- Health probes, metrics and docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(map[string]handler.Check{
		"mongodb": handler.MongoCheck(db),
		"redis":   handler.RedisCheck(rdb),
	})

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Session-protected API ---
	v1 := e.Group("/v1", middleware.Authenticate(cfg.Session.Secret, log), access.RequireSession())

	v1.GET("/me", sessionHandler.Me)
	v1.GET("/me/events", sessionHandler.MyEvents)

	v1.GET("/events", eventHandler.List, superAdmin)
	v1.POST("/events", eventHandler.Create, superAdmin)
	v1.GET("/events/:event_id", eventHandler.Get, access.RequireEventRole(domain.AllEventRoles...))
	v1.GET("/events/:event_id/access", sessionHandler.Access)
	v1.PATCH("/events/:event_id/status", eventHandler.ChangeStatus, superAdmin)

	v1.GET("/events/:event_id/roles", roleHandler.List, access.RequireEventRole(domain.EventRoleJuryAdmin))
	v1.POST("/events/:event_id/roles", roleHandler.Grant, superAdmin)
	v1.PATCH("/events/:event_id/roles/:user_id", roleHandler.Change, superAdmin)
	v1.DELETE("/events/:event_id/roles/:user_id", roleHandler.Revoke, superAdmin)

	v1.PUT("/users/:user_id/role", userHandler.SetRole, superAdmin)
	v1.DELETE("/users/:user_id", userHandler.Delete, superAdmin)

	return e
}

// requestLogger emits one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil || v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
