package movieRepo

import (
	"context"

	"showtime/config"
	"showtime/database"
	"showtime/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// MovieRepository provides access to the movies collection.
type MovieRepository interface {
	GetAll(ctx context.Context) ([]models.Movie, error)
	GetByID(ctx context.Context, id string) (*models.Movie, error)
	// ReserveSeats atomically decrements the seat count of the show at
	// shows.<date>.<showIndex> and appends the booking record, but only if
	// the show still has at least booking.Seats seats left.
	ReserveSeats(ctx context.Context, movieID, date string, showIndex int, booking models.Booking) error
}

type mongoMovieRepo struct {
	coll *mongo.Collection
}

// NewMongoMovieRepo returns a new MovieRepository instance using MongoDB.
func NewMongoMovieRepo() MovieRepository {
	db := database.MongoClient.Database(config.AppConfig.MongoDB)
	return &mongoMovieRepo{
		coll: db.Collection("movies"),
	}
}
