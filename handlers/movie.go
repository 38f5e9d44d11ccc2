package handlers

import (
	"errors"
	"net/http"

	"showtime/models"
	"showtime/services/movie"
	"showtime/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MovieHandler exposes the movie endpoints over HTTP.
type MovieHandler struct {
	Service movie.MovieService
}

func NewMovieHandler(svc movie.MovieService) *MovieHandler {
	return &MovieHandler{Service: svc}
}

// GetMoviesHandler handles GET /movie/get-movies.
func (h *MovieHandler) GetMoviesHandler(c *gin.Context) {
	movies, err := h.Service.ListMovies(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if movies == nil {
		movies = []models.Movie{}
	}
	c.JSON(http.StatusOK, movies)
}

// GetMovieByIDHandler handles GET /movie/:id.
func (h *MovieHandler) GetMovieByIDHandler(c *gin.Context) {
	id := c.Param("id")
	mov, err := h.Service.GetMovieByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mov)
}

// BookMovieHandler handles POST /movie/book-movie.
func (h *MovieHandler) BookMovieHandler(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.GetLogger().Warn("Invalid booking request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if err := h.Service.BookSeats(c.Request.Context(), input); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking created successfully"})
}

// writeServiceError maps service error codes onto the wire contract. Note
// that missing fields and bad seat counts return 401 and an exhausted show
// returns 404; both are kept as-is for compatibility with existing clients.
func writeServiceError(c *gin.Context, err error) {
	var svcErr *movie.ServiceError
	if !errors.As(err, &svcErr) {
		utils.GetLogger().Error("Unexpected handler error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
		return
	}

	status := http.StatusInternalServerError
	switch svcErr.Code {
	case movie.CodeMissingFields, movie.CodeInvalidSeats:
		status = http.StatusUnauthorized
	case movie.CodeInvalidID:
		status = http.StatusBadRequest
	case movie.CodeNotFound, movie.CodeConflict:
		status = http.StatusNotFound
	}

	if len(svcErr.MissingFields) > 0 {
		c.JSON(status, gin.H{"message": svcErr.Message, "missingFields": svcErr.MissingFields})
		return
	}
	c.JSON(status, gin.H{"message": svcErr.Message})
}
