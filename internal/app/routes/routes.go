package routes

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yigit/gpacalc/internal/app/controllers"
	"github.com/yigit/gpacalc/internal/app/models/dto"
	"github.com/yigit/gpacalc/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, gpaController *controllers.GPAController) {
	api := router.Group("/api")
	{
		api.POST("/calculate", middleware.ValidateRequest(controllers.NewCalculateRequest), gpaController.Calculate)
	}

	// Health check endpoint (public)
	router.GET("/health", gpaController.Health)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// SetupStatic serves the web page from dir: "/" returns index.html and any other unmatched
// GET falls back to the file of the same name. Unknown paths get a JSON 404.
func SetupStatic(router *gin.Engine, dir string) {
	if dir == "" {
		router.NoRoute(notFound)
		return
	}

	router.GET("/", func(c *gin.Context) {
		c.File(filepath.Join(dir, "index.html"))
	})

	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			notFound(c)
			return
		}

		name := path.Clean("/" + c.Request.URL.Path)
		file := filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(name, "/")))
		if info, err := os.Stat(file); err != nil || info.IsDir() {
			notFound(c)
			return
		}
		c.File(file)
	})
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponse(
		dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")))
}
