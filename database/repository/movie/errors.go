package movieRepo

import "errors"

var (
	// ErrMovieNotFound is returned when no document matches the movie id.
	ErrMovieNotFound = errors.New("movie not found")
	// ErrInsufficientSeats is returned when the conditional update matched
	// no document: the show no longer has enough seats left.
	ErrInsufficientSeats = errors.New("insufficient seats")
	// ErrNotModified is returned when the update matched a document but
	// reported zero modifications.
	ErrNotModified = errors.New("update modified no document")
)
