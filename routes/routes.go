package routes

import (
	"net/http"
	"time"

	"showtime/handlers"
	"showtime/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterMovieRoutes registers the movie endpoints.
func RegisterMovieRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/movie")
	{
		api.GET("/get-movies", hb.GetMoviesHandler)
		api.GET("/:id", hb.GetMovieByIDHandler)
		api.POST("/book-movie", hb.BookMovieHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterMovieRoutes(r, hb)
	RegisterHealthRoute(r)
}
