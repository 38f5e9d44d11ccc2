package movie_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	movieRepo "showtime/database/repository/movie"
	"showtime/models"
	"showtime/services/movie"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testMovieID = "aaaaaaaaaaaaaaaaaaaaaaaa"
	testShowID  = "show-1"
	testDate    = "2024-01-01"
)

type reserveCall struct {
	movieID string
	date    string
	index   int
	booking models.Booking
}

// fakeMovieRepo applies the same conditional-update semantics as the mongo
// implementation against an in-memory movie map.
type fakeMovieRepo struct {
	movies       map[string]*models.Movie
	getAllErr    error
	getByIDCalls int
	reserveErr   error
	reserveCalls []reserveCall
}

func (f *fakeMovieRepo) GetAll(ctx context.Context) ([]models.Movie, error) {
	if f.getAllErr != nil {
		return nil, f.getAllErr
	}
	var out []models.Movie
	for _, m := range f.movies {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeMovieRepo) GetByID(ctx context.Context, id string) (*models.Movie, error) {
	f.getByIDCalls++
	m, ok := f.movies[id]
	if !ok {
		return nil, movieRepo.ErrMovieNotFound
	}
	return m, nil
}

func (f *fakeMovieRepo) ReserveSeats(ctx context.Context, movieID, date string, showIndex int, booking models.Booking) error {
	f.reserveCalls = append(f.reserveCalls, reserveCall{movieID, date, showIndex, booking})
	if f.reserveErr != nil {
		return f.reserveErr
	}
	m, ok := f.movies[movieID]
	if !ok {
		return movieRepo.ErrInsufficientSeats
	}
	shows := m.Shows[date]
	if showIndex >= len(shows) || shows[showIndex].Seats < booking.Seats {
		return movieRepo.ErrInsufficientSeats
	}
	shows[showIndex].Seats -= booking.Seats
	shows[showIndex].Bookings = append(shows[showIndex].Bookings, booking)
	return nil
}

func newTestRepo(seats int) *fakeMovieRepo {
	return &fakeMovieRepo{
		movies: map[string]*models.Movie{
			testMovieID: {
				ID:    testMovieID,
				Title: "The Last Reel",
				Shows: map[string][]models.Show{
					testDate: {
						{ID: testShowID, Time: "18:15", Seats: seats, Bookings: []models.Booking{}},
					},
				},
			},
		},
	}
}

func validInput() models.BookingInput {
	return models.BookingInput{
		MovieID:     testMovieID,
		ShowID:      testShowID,
		Seats:       float64(3),
		Name:        "Ada Lovelace",
		Email:       "ada@example.com",
		PhoneNumber: "555-0101",
	}
}

func asServiceError(t *testing.T, err error) *movie.ServiceError {
	t.Helper()
	var svcErr *movie.ServiceError
	require.ErrorAs(t, err, &svcErr)
	return svcErr
}

func TestBookSeats_Success(t *testing.T) {
	repo := newTestRepo(10)
	svc := &movie.DefaultMovieService{Repo: repo}

	err := svc.BookSeats(context.Background(), validInput())
	require.NoError(t, err)

	show := repo.movies[testMovieID].Shows[testDate][0]
	assert.Equal(t, 7, show.Seats)
	require.Len(t, show.Bookings, 1)
	booking := show.Bookings[0]
	assert.Equal(t, 3, booking.Seats)
	assert.Equal(t, "Ada Lovelace", booking.Name)
	assert.Equal(t, "ada@example.com", booking.Email)
	assert.Equal(t, "555-0101", booking.PhoneNumber)
	assert.NotEmpty(t, booking.ID)
	assert.False(t, booking.CreatedAt.IsZero())
}

func TestBookSeats_ExactCapacity(t *testing.T) {
	repo := newTestRepo(5)
	svc := &movie.DefaultMovieService{Repo: repo}

	input := validInput()
	input.Seats = float64(5)
	require.NoError(t, svc.BookSeats(context.Background(), input))

	show := repo.movies[testMovieID].Shows[testDate][0]
	assert.Equal(t, 0, show.Seats)
	assert.Len(t, show.Bookings, 1)
}

func TestBookSeats_SeatsAsString(t *testing.T) {
	repo := newTestRepo(10)
	svc := &movie.DefaultMovieService{Repo: repo}

	input := validInput()
	input.Seats = "4"
	require.NoError(t, svc.BookSeats(context.Background(), input))
	assert.Equal(t, 6, repo.movies[testMovieID].Shows[testDate][0].Seats)
}

func TestBookSeats_AllFieldsMissing(t *testing.T) {
	svc := &movie.DefaultMovieService{Repo: newTestRepo(10)}

	err := svc.BookSeats(context.Background(), models.BookingInput{})
	svcErr := asServiceError(t, err)
	assert.Equal(t, movie.CodeMissingFields, svcErr.Code)
	assert.Equal(t, "Some fields are missing", svcErr.Message)
	assert.Equal(t, []string{"movieId", "showId", "seats", "name", "email", "phoneNumber"}, svcErr.MissingFields)
}

func TestBookSeats_SingleFieldMissing(t *testing.T) {
	repo := newTestRepo(10)
	svc := &movie.DefaultMovieService{Repo: repo}

	input := validInput()
	input.Email = ""
	err := svc.BookSeats(context.Background(), input)
	svcErr := asServiceError(t, err)
	assert.Equal(t, movie.CodeMissingFields, svcErr.Code)
	assert.Equal(t, []string{"email"}, svcErr.MissingFields)
	assert.Zero(t, repo.getByIDCalls)
}

func TestBookSeats_ZeroSeatsReportedMissing(t *testing.T) {
	svc := &movie.DefaultMovieService{Repo: newTestRepo(10)}

	input := validInput()
	input.Seats = float64(0)
	err := svc.BookSeats(context.Background(), input)
	svcErr := asServiceError(t, err)
	assert.Equal(t, movie.CodeMissingFields, svcErr.Code)
	assert.Equal(t, []string{"seats"}, svcErr.MissingFields)
}

func TestBookSeats_InvalidSeatCount(t *testing.T) {
	for name, seats := range map[string]any{
		"negative":     float64(-3),
		"non-numeric":  "abc",
		"unknown type": true,
	} {
		t.Run(name, func(t *testing.T) {
			svc := &movie.DefaultMovieService{Repo: newTestRepo(10)}
			input := validInput()
			input.Seats = seats
			err := svc.BookSeats(context.Background(), input)
			svcErr := asServiceError(t, err)
			assert.Equal(t, movie.CodeInvalidSeats, svcErr.Code)
			assert.Equal(t, "Invalid seat count", svcErr.Message)
		})
	}
}

func TestBookSeats_InvalidMovieIDFormat(t *testing.T) {
	repo := newTestRepo(10)
	svc := &movie.DefaultMovieService{Repo: repo}

	input := validInput()
	input.MovieID = strings.Repeat("z", 24) // right length, not hex
	err := svc.BookSeats(context.Background(), input)
	svcErr := asServiceError(t, err)
	assert.Equal(t, movie.CodeInvalidID, svcErr.Code)
	assert.Equal(t, "Invalid movie ID format", svcErr.Message)
	assert.Zero(t, repo.getByIDCalls)
}

func TestBookSeats_MovieNotFound(t *testing.T) {
	svc := &movie.DefaultMovieService{Repo: newTestRepo(10)}

	input := validInput()
	input.MovieID = strings.Repeat("b", 24)
	err := svc.BookSeats(context.Background(), input)
	svcErr := asServiceError(t, err)
	assert.Equal(t, movie.CodeNotFound, svcErr.Code)
	assert.Equal(t, "Requested movie is not found", svcErr.Message)
}

func TestBookSeats_ShowNotFound(t *testing.T) {
	repo := newTestRepo(10)
	svc := &movie.DefaultMovieService{Repo: repo}

	input := validInput()
	input.ShowID = "no-such-show"
	err := svc.BookSeats(context.Background(), input)
	svcErr := asServiceError(t, err)
	assert.Equal(t, movie.CodeNotFound, svcErr.Code)
	assert.Equal(t, "Show not Found", svcErr.Message)
	assert.Empty(t, repo.reserveCalls)
}

func TestBookSeats_NotEnoughSeats(t *testing.T) {
	repo := newTestRepo(5)
	svc := &movie.DefaultMovieService{Repo: repo}

	input := validInput()
	input.Seats = float64(6)
	err := svc.BookSeats(context.Background(), input)
	svcErr := asServiceError(t, err)
	assert.Equal(t, movie.CodeConflict, svcErr.Code)
	assert.Equal(t, "Not enough seats available", svcErr.Message)

	// Show must be left untouched.
	show := repo.movies[testMovieID].Shows[testDate][0]
	assert.Equal(t, 5, show.Seats)
	assert.Empty(t, show.Bookings)
	assert.Empty(t, repo.reserveCalls)
}

func TestBookSeats_ConcurrentBookingLosesRace(t *testing.T) {
	// The availability pre-check passes, but the store-side conditional
	// update reports no match: another booking drained the show in between.
	repo := newTestRepo(8)
	repo.reserveErr = movieRepo.ErrInsufficientSeats
	svc := &movie.DefaultMovieService{Repo: repo}

	input := validInput()
	input.Seats = float64(5)
	err := svc.BookSeats(context.Background(), input)
	svcErr := asServiceError(t, err)
	assert.Equal(t, movie.CodeConflict, svcErr.Code)
	assert.Equal(t, "Not enough seats available", svcErr.Message)
	require.Len(t, repo.reserveCalls, 1)
	assert.Equal(t, testDate, repo.reserveCalls[0].date)
	assert.Equal(t, 0, repo.reserveCalls[0].index)
}

func TestBookSeats_UpdateModifiedNothing(t *testing.T) {
	repo := newTestRepo(10)
	repo.reserveErr = movieRepo.ErrNotModified
	svc := &movie.DefaultMovieService{Repo: repo}

	err := svc.BookSeats(context.Background(), validInput())
	svcErr := asServiceError(t, err)
	assert.Equal(t, movie.CodeInternal, svcErr.Code)
	assert.Equal(t, "Failed to update", svcErr.Message)
}

func TestBookSeats_StoreErrorIsGeneric(t *testing.T) {
	repo := newTestRepo(10)
	repo.reserveErr = errors.New("socket closed")
	svc := &movie.DefaultMovieService{Repo: repo}

	err := svc.BookSeats(context.Background(), validInput())
	svcErr := asServiceError(t, err)
	assert.Equal(t, movie.CodeInternal, svcErr.Code)
	assert.Equal(t, "Something went wrong", svcErr.Message)
}
