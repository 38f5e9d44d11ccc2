package movie

import (
	"context"
	"time"

	movieRepo "showtime/database/repository/movie"
	"showtime/models"

	"github.com/go-redis/redis/v8"
)

// MovieService exposes the three operations of the booking backend.
type MovieService interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovieByID(ctx context.Context, id string) (*models.Movie, error)
	BookSeats(ctx context.Context, input models.BookingInput) error
}

// DefaultMovieService is the production implementation. Cache is optional;
// when nil the movie list is served straight from the repository.
type DefaultMovieService struct {
	Repo     movieRepo.MovieRepository
	Cache    *redis.Client
	CacheTTL time.Duration
}

func (s *DefaultMovieService) cacheTTL() time.Duration {
	if s.CacheTTL > 0 {
		return s.CacheTTL
	}
	return 60 * time.Second
}
