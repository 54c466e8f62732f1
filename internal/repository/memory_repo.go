package repository

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"webcal/internal/models"
)

// memoryEventRepository keeps the collection in a map. It backs the
// STORE_DRIVER=memory development mode and the end-to-end tests, with the
// same filter/sort/not-found semantics as the Mongo implementation.
type memoryEventRepository struct {
	mu     sync.RWMutex
	events map[primitive.ObjectID]models.Event
}

func NewMemoryEventRepository() EventRepository {
	return &memoryEventRepository{events: map[primitive.ObjectID]models.Event{}}
}

func (r *memoryEventRepository) FindAll(_ context.Context, rng *TimeRange) ([]models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := []models.Event{}
	for _, e := range r.events {
		if rng != nil {
			if e.StartTime.Before(rng.Start) || e.StartTime.After(rng.End) {
				continue
			}
		}
		events = append(events, e)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartTime.Before(events[j].StartTime)
	})
	return events, nil
}

func (r *memoryEventRepository) Insert(_ context.Context, event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	event.ID = primitive.NewObjectID()
	r.events[event.ID] = *event
	return nil
}

func (r *memoryEventRepository) Replace(_ context.Context, id primitive.ObjectID, event *models.Event) (*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.events[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	existing.Title = event.Title
	existing.Description = event.Description
	existing.StartTime = event.StartTime
	existing.EndTime = event.EndTime
	existing.AllDay = event.AllDay
	existing.Color = event.Color
	existing.UpdatedAt = event.UpdatedAt

	r.events[id] = existing
	return &existing, nil
}

func (r *memoryEventRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.events, id)
	return nil
}

func (r *memoryEventRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = map[primitive.ObjectID]models.Event{}
	return nil
}
