package bootstrap

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/gpacalc/internal/app/controllers"
	appRoutes "github.com/yigit/gpacalc/internal/app/routes"
	appServices "github.com/yigit/gpacalc/internal/app/services"
	"github.com/yigit/gpacalc/internal/config"
	appMiddleware "github.com/yigit/gpacalc/internal/middleware"
	"github.com/yigit/gpacalc/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	GPAService    appServices.GPAService // Interface type
	GPAController *appControllers.GPAController
	Logger        zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.ConfigFor(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes services and controllers.
func BuildDependencies(lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.GPAService = appServices.NewGPAService(lgr.With().Str("component", "gpa").Logger())
	deps.GPAController = appControllers.NewGPAController(deps.GPAService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.Metrics(),
		appMiddleware.CORS(cfg.Server.CORSOrigins),
	)

	appRoutes.SetupRouter(router, deps.GPAController)
	appRoutes.SetupStatic(router, cfg.Server.StaticDir)
	if cfg.Server.StaticDir != "" {
		lgr.Info().Str("path", cfg.Server.StaticDir).Msg("Static file serving configured")
	}

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
