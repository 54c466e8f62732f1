package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"webcal/internal/dto"
	"webcal/internal/models"
	"webcal/internal/repository"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrInvalidEvent  = errors.New("invalid event")
	ErrWipeDisabled  = errors.New("bulk delete is disabled")
)

type EventService interface {
	ListEvents(ctx context.Context, rng *repository.TimeRange) ([]models.Event, error)
	CreateEvent(ctx context.Context, req *dto.EventRequest) (*models.Event, error)
	UpdateEvent(ctx context.Context, id string, req *dto.EventRequest) (*models.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	DeleteAllEvents(ctx context.Context) error
}

type eventService struct {
	repo      repository.EventRepository
	allowWipe bool

	// now is swappable so tests get deterministic timestamps.
	now func() time.Time
}

func NewEventService(repo repository.EventRepository, allowWipe bool) EventService {
	return &eventService{repo: repo, allowWipe: allowWipe, now: time.Now}
}

func (s *eventService) ListEvents(ctx context.Context, rng *repository.TimeRange) ([]models.Event, error) {
	events, err := s.repo.FindAll(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) CreateEvent(ctx context.Context, req *dto.EventRequest) (*models.Event, error) {
	event, err := req.Normalize()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}

	now := s.now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now

	if err := s.repo.Insert(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, req *dto.EventRequest) (*models.Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("parse event id %q: %w", id, err)
	}

	// Full replace: model constraints are re-checked on every update.
	event, err := req.Normalize()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	event.UpdatedAt = s.now().UTC()

	updated, err := s.repo.Replace(ctx, oid, event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return updated, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("parse event id %q: %w", id, err)
	}

	if err := s.repo.Delete(ctx, oid); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrEventNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (s *eventService) DeleteAllEvents(ctx context.Context) error {
	if !s.allowWipe {
		return ErrWipeDisabled
	}
	if err := s.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete all events: %w", err)
	}
	return nil
}
