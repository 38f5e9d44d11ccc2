// Seeds the movies collection with sample movies and showtimes. Movies and
// shows are created out-of-band; this tool is that band.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"showtime/config"
	"showtime/database"
	"showtime/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func main() {
	config.LoadConfig()
	database.InitDB()
	coll := database.MongoClient.Database(config.AppConfig.MongoDB).Collection("movies")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Clear existing movies.
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear movies collection: %v", err)
	}

	titles := []struct {
		Title    string
		Genre    string
		Language string
	}{
		{"The Last Reel", "Drama", "English"},
		{"Midnight Express Line", "Thriller", "English"},
		{"Garden of Glass", "Romance", "French"},
		{"Signal Lost", "Sci-Fi", "English"},
	}

	showTimes := []string{"10:30", "14:00", "18:15", "21:45"}

	// Generate dates for the next 7 days.
	var weekDates []string
	today := time.Now()
	for i := 0; i < 7; i++ {
		weekDates = append(weekDates, today.AddDate(0, 0, i).Format("2006-01-02"))
	}

	var docs []interface{}
	for _, t := range titles {
		shows := make(map[string][]models.Show, len(weekDates))
		for _, date := range weekDates {
			var dayShows []models.Show
			for _, st := range showTimes {
				dayShows = append(dayShows, models.Show{
					ID:       uuid.New().String(),
					Time:     st,
					Seats:    60 + rand.Intn(60),
					Bookings: []models.Booking{},
				})
			}
			shows[date] = dayShows
		}
		docs = append(docs, models.Movie{
			ID:       primitive.NewObjectID().Hex(),
			Title:    t.Title,
			Genre:    t.Genre,
			Language: t.Language,
			Shows:    shows,
		})
	}

	res, err := coll.InsertMany(ctx, docs)
	if err != nil {
		log.Fatalf("Failed to seed movies: %v", err)
	}
	fmt.Printf("Seeded %d movies with %d days of showtimes each\n", len(res.InsertedIDs), len(weekDates))
}
