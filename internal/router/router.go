package router

import (
	"errors"
	"net/http"

	"github.com/anonto42/rreediitt/backend/internal/handlers"
	"github.com/anonto42/rreediitt/backend/internal/repositories"
	"github.com/anonto42/rreediitt/backend/internal/services"
	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Deps carries the store clients and collaborators the routes are built from
type Deps struct {
	Profiles     repositories.ProfileRepository
	ProfileCache *repositories.RedisProfileCache
	Posts        repositories.PostRepository
	Comments     repositories.CommentRepository
	Likes        repositories.LikeRepository
	Messages     repositories.MessageRepository
	Media        *services.MediaUploader
	Directory    services.UserDirectory
	Logger       *zap.Logger
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, deps Deps) {
	logger := deps.Logger
	e.HTTPErrorHandler = ErrorHandler(logger)

	var displays repositories.ProfileDisplayStore = deps.Profiles
	var invalidator services.ProfileCacheInvalidator
	if deps.ProfileCache != nil {
		displays = deps.ProfileCache
		invalidator = deps.ProfileCache
	}

	resolver := services.NewResolver(deps.Profiles)
	enricher := services.NewEnricher(displays, logger)

	e.GET("/", handlers.Root)
	e.GET("/health", handlers.HealthCheck)

	api := e.Group("/api")

	authHandler := handlers.NewAuthHandler(services.NewUserService(deps.Posts, deps.Directory, enricher, logger))
	authHandler.RegisterAuthRoutes(api.Group("/auth"))

	postHandler := handlers.NewPostHandler(services.NewPostService(deps.Posts, resolver, enricher, deps.Media, logger))
	postHandler.RegisterPostRoutes(api.Group("/posts"))

	likeHandler := handlers.NewLikeHandler(services.NewLikeService(deps.Likes))
	likeHandler.RegisterLikeRoutes(api.Group("/likes"))

	commentHandler := handlers.NewCommentHandler(services.NewCommentService(deps.Comments, enricher))
	commentHandler.RegisterCommentRoutes(api.Group("/comments"))

	profileService := services.NewProfileService(deps.Profiles, deps.Posts, deps.Comments, deps.Likes, resolver, invalidator, logger)
	profileHandler := handlers.NewProfileHandler(profileService)
	profileHandler.RegisterProfileRoutes(api.Group("/profiles"))

	messageHandler := handlers.NewMessageHandler(services.NewMessageService(deps.Messages, enricher))
	messageHandler.RegisterMessageRoutes(api.Group("/messages"))

	logger.Debug("routes configured", zap.Int("count", len(e.Routes())))
}

// ErrorHandler renders every error as {"detail": "..."} and reports server errors to Sentry
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		detail := http.StatusText(code)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if msg, ok := he.Message.(string); ok {
				detail = msg
			} else if he.Message != nil {
				detail = http.StatusText(code)
			}
		} else {
			detail = err.Error()
		}

		if code >= http.StatusInternalServerError {
			logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
			if hub := sentry.CurrentHub(); hub.Client() != nil {
				hub.CaptureException(err)
			}
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, map[string]string{"detail": detail})
		}
		if err != nil {
			logger.Error("writing error response", zap.Error(err))
		}
	}
}
