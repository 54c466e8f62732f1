// Command seed loads the sample calendar into a running event store. It
// goes through the public API rather than the database, and does nothing
// when the store already has events.
package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"webcal/internal/client"
)

func sampleEvents() []client.EventInput {
	return []client.EventInput{
		{
			Title:       "Team Meeting",
			Description: "Weekly team standup",
			StartTime:   time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			EndTime:     time.Date(2024, 1, 15, 11, 0, 0, 0, time.UTC),
			Color:       "#4285f4",
		},
		{
			Title:       "Project Deadline",
			Description: "Submit final project",
			StartTime:   time.Date(2024, 1, 20, 23, 59, 0, 0, time.UTC),
			EndTime:     time.Date(2024, 1, 20, 23, 59, 0, 0, time.UTC),
			Color:       "#ea4335",
		},
		{
			Title:       "Vacation",
			Description: "Family vacation",
			StartTime:   time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC),
			EndTime:     time.Date(2024, 1, 27, 23, 59, 59, 0, time.UTC),
			AllDay:      true,
			Color:       "#34a853",
		},
		{
			Title:       "Doctor Appointment",
			Description: "Annual checkup",
			StartTime:   time.Date(2024, 1, 18, 14, 30, 0, 0, time.UTC),
			EndTime:     time.Date(2024, 1, 18, 15, 30, 0, 0, time.UTC),
			Color:       "#fbbc04",
		},
	}
}

func main() {
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	baseURL := os.Getenv("API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000/api"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := client.New(baseURL)

	existing, err := c.GetEvents(ctx, nil)
	if err != nil {
		logger.Fatal("cannot reach event store", zap.String("url", baseURL), zap.Error(err))
	}
	if len(existing) > 0 {
		logger.Info("store already seeded", zap.Int("events", len(existing)))
		return
	}

	for _, in := range sampleEvents() {
		if _, err := c.CreateEvent(ctx, &in); err != nil {
			logger.Fatal("seeding failed", zap.String("title", in.Title), zap.Error(err))
		}
		logger.Info("seeded event", zap.String("title", in.Title))
	}
	logger.Info("seeding completed")
}
