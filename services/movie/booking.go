package movie

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	movieRepo "showtime/database/repository/movie"
	"showtime/models"
	"showtime/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// BookSeats validates the booking request, locates the target show across
// every date of the movie, and reserves the seats with a single conditional
// update. Seat availability is checked twice: once up front so the caller
// gets a precise error, and again inside the store-side update filter so a
// concurrent booking cannot oversell the show.
func (s *DefaultMovieService) BookSeats(ctx context.Context, input models.BookingInput) error {
	logger := utils.GetLogger()

	if missing := missingFields(input); len(missing) > 0 {
		return &ServiceError{
			Code:          CodeMissingFields,
			Message:       "Some fields are missing",
			MissingFields: missing,
		}
	}

	if !primitive.IsValidObjectID(input.MovieID) {
		return &ServiceError{Code: CodeInvalidID, Message: "Invalid movie ID format"}
	}

	seats, ok := parseSeats(input.Seats)
	if !ok || seats <= 0 {
		return &ServiceError{Code: CodeInvalidSeats, Message: "Invalid seat count"}
	}

	mov, err := s.Repo.GetByID(ctx, input.MovieID)
	if err != nil {
		if errors.Is(err, movieRepo.ErrMovieNotFound) {
			return &ServiceError{Code: CodeNotFound, Message: "Requested movie is not found"}
		}
		logger.Error("Failed to fetch movie for booking", zap.String("movieId", input.MovieID), zap.Error(err))
		return &ServiceError{Code: CodeInternal, Message: "Something went wrong"}
	}

	date, showIndex, show := findShow(mov, input.ShowID)
	if show == nil {
		return &ServiceError{Code: CodeNotFound, Message: "Show not Found"}
	}

	if show.Seats < seats {
		return &ServiceError{Code: CodeConflict, Message: "Not enough seats available"}
	}

	booking := models.Booking{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Seats:       seats,
		CreatedAt:   time.Now(),
	}

	if err := s.Repo.ReserveSeats(ctx, mov.ID, date, showIndex, booking); err != nil {
		switch {
		case errors.Is(err, movieRepo.ErrInsufficientSeats):
			// Lost the race against a concurrent booking.
			return &ServiceError{Code: CodeConflict, Message: "Not enough seats available"}
		case errors.Is(err, movieRepo.ErrNotModified):
			logger.Error("Booking update modified nothing",
				zap.String("movieId", mov.ID), zap.String("showId", input.ShowID))
			return &ServiceError{Code: CodeInternal, Message: "Failed to update"}
		default:
			logger.Error("Failed to persist booking", zap.String("movieId", mov.ID), zap.Error(err))
			return &ServiceError{Code: CodeInternal, Message: "Something went wrong"}
		}
	}

	s.invalidateMovieCache(ctx)

	logger.Info("Booking created",
		zap.String("movieId", mov.ID),
		zap.String("showId", input.ShowID),
		zap.Int("seats", seats))
	return nil
}

// missingFields reports which required fields are absent, in the order the
// API enumerates them. Zero seat counts are reported as missing rather than
// invalid, matching the contract.
func missingFields(input models.BookingInput) []string {
	var missing []string
	if input.MovieID == "" {
		missing = append(missing, "movieId")
	}
	if input.ShowID == "" {
		missing = append(missing, "showId")
	}
	if seatsAbsent(input.Seats) {
		missing = append(missing, "seats")
	}
	if input.Name == "" {
		missing = append(missing, "name")
	}
	if input.Email == "" {
		missing = append(missing, "email")
	}
	if input.PhoneNumber == "" {
		missing = append(missing, "phoneNumber")
	}
	return missing
}

func seatsAbsent(v any) bool {
	switch s := v.(type) {
	case nil:
		return true
	case string:
		return s == ""
	case float64:
		return s == 0
	case int:
		return s == 0
	case json.Number:
		return s.String() == "" || s.String() == "0"
	}
	return false
}

// parseSeats accepts the seat count as a JSON number or numeric string.
func parseSeats(v any) (int, bool) {
	switch s := v.(type) {
	case float64:
		return int(s), true
	case int:
		return s, true
	case json.Number:
		n, err := s.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// findShow scans every date's show list for the show id. Show ids are
// globally unique, so the first match is the only one.
func findShow(mov *models.Movie, showID string) (date string, index int, show *models.Show) {
	for d, shows := range mov.Shows {
		for i := range shows {
			if shows[i].ID == showID {
				return d, i, &shows[i]
			}
		}
	}
	return "", 0, nil
}

func (s *DefaultMovieService) invalidateMovieCache(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, utils.MovieCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate movie cache", zap.Error(err))
	}
}
