package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups the handler functions registered by the routes
// package.
type HandlerBundle struct {
	GetMoviesHandler    gin.HandlerFunc
	GetMovieByIDHandler gin.HandlerFunc
	BookMovieHandler    gin.HandlerFunc
}
