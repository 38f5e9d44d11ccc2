package models

import "time"

// Movie represents one movie document in the movies collection. The _id is
// stored and queried as a plain 24-character string.
type Movie struct {
	ID          string            `bson:"_id" json:"_id"`
	Title       string            `bson:"title" json:"title"`
	Description string            `bson:"description,omitempty" json:"description,omitempty"`
	Genre       string            `bson:"genre,omitempty" json:"genre,omitempty"`
	Language    string            `bson:"language,omitempty" json:"language,omitempty"`
	ImageURL    string            `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Shows       map[string][]Show `bson:"shows" json:"shows"` // date ("YYYY-MM-DD") -> ordered shows
}

// Show is a single screening with its own seat inventory. Show IDs are
// unique across the whole system, not just within a movie.
type Show struct {
	ID       string    `bson:"id" json:"id"`
	Time     string    `bson:"time,omitempty" json:"time,omitempty"`
	Seats    int       `bson:"seats" json:"seats"`
	Bookings []Booking `bson:"bookings" json:"bookings"`
}

// Booking is a confirmed seat reservation appended to a show. Records are
// append-only; nothing in the service mutates or removes them.
type Booking struct {
	ID          string    `bson:"id,omitempty" json:"id,omitempty"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	PhoneNumber string    `bson:"phoneNumber" json:"phoneNumber"`
	Seats       int       `bson:"seats" json:"seats"`
	CreatedAt   time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
