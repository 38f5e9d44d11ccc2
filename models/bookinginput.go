package models

// BookingInput is the request body for POST /movie/book-movie. Seats is
// untyped because clients send it as either a JSON number or a numeric
// string; the service parses it in its validation step.
type BookingInput struct {
	MovieID     string `json:"movieId"`
	ShowID      string `json:"showId"`
	Seats       any    `json:"seats"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}
