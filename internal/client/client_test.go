package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"webcal/internal/models"
)

func TestGetEvents_SendsRangeParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/events", r.URL.Path)
		assert.Equal(t, "2024-01-01T00:00:00Z", r.URL.Query().Get("startDate"))
		assert.Equal(t, "2024-01-31T00:00:00Z", r.URL.Query().Get("endDate"))
		_ = json.NewEncoder(w).Encode([]models.Event{})
	}))
	defer srv.Close()

	c := New(srv.URL + "/api")
	rng := &Range{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	events, err := c.GetEvents(context.Background(), rng)

	assert.NoError(t, err)
	assert.Empty(t, events)
}

func TestCreateEvent_SendsCanonicalRecord(t *testing.T) {
	id := primitive.NewObjectID()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Standup", body["title"])
		assert.Equal(t, "2024-01-15T10:00:00Z", body["start_time"])
		assert.Equal(t, false, body["all_day"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Event{ID: id, Title: "Standup"})
	}))
	defer srv.Close()

	c := New(srv.URL + "/api")
	event, err := c.CreateEvent(context.Background(), &EventInput{
		Title:     "Standup",
		StartTime: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 1, 15, 11, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.Equal(t, id, event.ID)
}

func TestDeleteEvent_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Event not found"})
	}))
	defer srv.Close()

	c := New(srv.URL + "/api")
	err := c.DeleteEvent(context.Background(), primitive.NewObjectID().Hex())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Event not found", apiErr.Message)
}

func TestGetEvents_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // unreachable on purpose

	c := New(srv.URL + "/api")
	_, err := c.GetEvents(context.Background(), nil)

	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Backend API is running!"})
	}))
	defer srv.Close()

	c := New(srv.URL + "/api")
	assert.NoError(t, c.Health(context.Background()))
}
