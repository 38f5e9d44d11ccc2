package movie

import (
	"context"
	"encoding/json"
	"errors"

	movieRepo "showtime/database/repository/movie"
	"showtime/models"
	"showtime/utils"

	"go.uber.org/zap"
)

// ListMovies returns every movie document, serving from the Redis cache
// when a fresh entry exists.
func (s *DefaultMovieService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, utils.MovieCacheKey).Bytes(); err == nil {
			var movies []models.Movie
			if err := json.Unmarshal(data, &movies); err == nil {
				return movies, nil
			}
			logger.Warn("Discarding unreadable movie cache entry", zap.Error(err))
		}
	}

	movies, err := s.Repo.GetAll(ctx)
	if err != nil {
		logger.Error("Failed to list movies", zap.Error(err))
		return nil, &ServiceError{Code: CodeInternal, Message: "Something went wrong"}
	}

	if s.Cache != nil {
		if data, err := json.Marshal(movies); err == nil {
			if err := s.Cache.Set(ctx, utils.MovieCacheKey, data, s.cacheTTL()).Err(); err != nil {
				logger.Warn("Failed to cache movie list", zap.Error(err))
			}
		}
	}
	return movies, nil
}

// GetMovieByID returns the movie with the given identifier. The id must be
// exactly 24 characters; anything else is rejected before the store is hit.
func (s *DefaultMovieService) GetMovieByID(ctx context.Context, id string) (*models.Movie, error) {
	if len(id) != 24 {
		return nil, &ServiceError{Code: CodeInvalidID, Message: "Invalid movie ID format"}
	}

	movie, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, movieRepo.ErrMovieNotFound) {
			return nil, &ServiceError{Code: CodeNotFound, Message: "Requested movie is not found"}
		}
		utils.GetLogger().Error("Failed to get movie", zap.String("id", id), zap.Error(err))
		return nil, &ServiceError{Code: CodeInternal, Message: err.Error()}
	}
	return movie, nil
}
