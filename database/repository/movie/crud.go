package movieRepo

import (
	"context"
	"fmt"
	"time"

	"showtime/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetAll returns every movie document in store-native order.
func (r *mongoMovieRepo) GetAll(ctx context.Context) ([]models.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var movies []models.Movie
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// GetByID returns the movie whose _id equals the given string.
func (r *mongoMovieRepo) GetByID(ctx context.Context, id string) (*models.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var movie models.Movie
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&movie)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &movie, nil
}

// ReserveSeats runs a single conditional update against the show addressed
// by date key and array position: decrement seats by booking.Seats and push
// the booking record, filtered on the show still having enough seats. A
// concurrent booking that drains the show between the caller's availability
// check and this update makes the filter miss, which surfaces as
// ErrInsufficientSeats rather than overselling.
func (r *mongoMovieRepo) ReserveSeats(ctx context.Context, movieID, date string, showIndex int, booking models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	showPath := fmt.Sprintf("shows.%s.%d", date, showIndex)
	filter := bson.M{
		"_id":               movieID,
		showPath + ".seats": bson.M{"$gte": booking.Seats},
	}
	update := bson.M{
		"$inc":  bson.M{showPath + ".seats": -booking.Seats},
		"$push": bson.M{showPath + ".bookings": booking},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to reserve seats: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrInsufficientSeats
	}
	if res.ModifiedCount == 0 {
		return ErrNotModified
	}
	return nil
}
