package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eventup/internal/delivery/http/middleware"
	"eventup/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type mockEventService struct {
	listFn   func(ctx context.Context, actorID string, include domain.Include, params domain.PaginationParams) ([]*domain.Event, int, error)
	createFn func(ctx context.Context, event *domain.Event, include domain.Include) (*domain.Event, error)
	getFn    func(ctx context.Context, eventID string, include domain.Include) (*domain.Event, error)
	updateFn func(ctx context.Context, eventID, actorID string, patch domain.EventPatch) (*domain.Event, error)
	deleteFn func(ctx context.Context, eventID, actorID string) error
}

func (m *mockEventService) ListEvents(ctx context.Context, actorID string, include domain.Include, params domain.PaginationParams) ([]*domain.Event, int, error) {
	return m.listFn(ctx, actorID, include, params)
}

func (m *mockEventService) CreateEvent(ctx context.Context, event *domain.Event, include domain.Include) (*domain.Event, error) {
	return m.createFn(ctx, event, include)
}

func (m *mockEventService) GetEvent(ctx context.Context, eventID string, include domain.Include) (*domain.Event, error) {
	return m.getFn(ctx, eventID, include)
}

func (m *mockEventService) UpdateEvent(ctx context.Context, eventID, actorID string, patch domain.EventPatch) (*domain.Event, error) {
	return m.updateFn(ctx, eventID, actorID, patch)
}

func (m *mockEventService) DeleteEvent(ctx context.Context, eventID, actorID string) error {
	return m.deleteFn(ctx, eventID, actorID)
}

func authedRequest(method, target, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return r.WithContext(middleware.SetUserID(r.Context(), "u1"))
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope
}

func TestEventController_CreateEvent(t *testing.T) {
	svc := &mockEventService{
		createFn: func(ctx context.Context, event *domain.Event, include domain.Include) (*domain.Event, error) {
			event.ID = "e1"
			return event, nil
		},
	}
	ctrl := NewEventController(testLogger, svc)

	t.Run("valid body", func(t *testing.T) {
		body := `{"name":"Go Meetup","start_time":"2026-09-01T18:00:00Z","end_time":"2026-09-01T20:00:00Z"}`
		rec := httptest.NewRecorder()
		ctrl.CreateEvent(rec, authedRequest(http.MethodPost, "/events", body))

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
		}
		envelope := decodeEnvelope(t, rec)
		data, _ := envelope["data"].(map[string]any)
		if data["id"] != "e1" || data["user_id"] != "u1" {
			t.Errorf("unexpected data: %v", data)
		}
	})

	t.Run("all violations reported together", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ctrl.CreateEvent(rec, authedRequest(http.MethodPost, "/events", `{}`))

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want 422", rec.Code)
		}
		envelope := decodeEnvelope(t, rec)
		errObj, _ := envelope["error"].(map[string]any)
		msg, _ := errObj["message"].(string)
		for _, want := range []string{"name is required", "start_time is required", "end_time is required"} {
			if !strings.Contains(msg, want) {
				t.Errorf("message %q missing %q", msg, want)
			}
		}
	})

	t.Run("end before start", func(t *testing.T) {
		body := `{"name":"Go Meetup","start_time":"2026-09-01T20:00:00Z","end_time":"2026-09-01T18:00:00Z"}`
		rec := httptest.NewRecorder()
		ctrl.CreateEvent(rec, authedRequest(http.MethodPost, "/events", body))

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want 422", rec.Code)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		body := `{"name":"Go Meetup","start_time":"2026-09-01T18:00:00Z","end_time":"2026-09-01T20:00:00Z","owner_id":"u9"}`
		rec := httptest.NewRecorder()
		ctrl.CreateEvent(rec, authedRequest(http.MethodPost, "/events", body))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("no user in context", func(t *testing.T) {
		body := `{"name":"Go Meetup","start_time":"2026-09-01T18:00:00Z","end_time":"2026-09-01T20:00:00Z"}`
		rec := httptest.NewRecorder()
		ctrl.CreateEvent(rec, httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body)))

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})
}

func TestEventController_ListEvents(t *testing.T) {
	now := time.Now()
	svc := &mockEventService{
		listFn: func(ctx context.Context, actorID string, include domain.Include, params domain.PaginationParams) ([]*domain.Event, int, error) {
			if !include.Attendees || !include.AttendeeUsers {
				t.Errorf("include not parsed: %+v", include)
			}
			return []*domain.Event{
				{ID: "e1", Name: "Go Meetup", StartTime: now, EndTime: now.Add(time.Hour), OwnerID: "u1"},
			}, 1, nil
		},
	}
	ctrl := NewEventController(testLogger, svc)

	rec := httptest.NewRecorder()
	ctrl.ListEvents(rec, authedRequest(http.MethodGet, "/events?include=attendees.user,bogus", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	envelope := decodeEnvelope(t, rec)
	data, _ := envelope["data"].(map[string]any)
	events, _ := data["events"].([]any)
	if len(events) != 1 {
		t.Errorf("expected 1 event, got %d", len(events))
	}
	meta, _ := data["meta"].(map[string]any)
	if meta["total"] != float64(1) {
		t.Errorf("unexpected meta: %v", meta)
	}
}

func TestEventController_GetEvent(t *testing.T) {
	svc := &mockEventService{
		getFn: func(ctx context.Context, eventID string, include domain.Include) (*domain.Event, error) {
			if eventID != "e1" {
				return nil, domain.ErrNotFound
			}
			return &domain.Event{ID: "e1", Name: "Go Meetup"}, nil
		},
	}
	ctrl := NewEventController(testLogger, svc)

	t.Run("found", func(t *testing.T) {
		r := authedRequest(http.MethodGet, "/events/e1", "")
		r.SetPathValue("eventID", "e1")
		rec := httptest.NewRecorder()
		ctrl.GetEvent(rec, r)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r := authedRequest(http.MethodGet, "/events/missing", "")
		r.SetPathValue("eventID", "missing")
		rec := httptest.NewRecorder()
		ctrl.GetEvent(rec, r)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
		envelope := decodeEnvelope(t, rec)
		errObj, _ := envelope["error"].(map[string]any)
		if errObj["code"] != "not_found" {
			t.Errorf("unexpected error code: %v", errObj["code"])
		}
	})
}

func TestEventController_UpdateEvent(t *testing.T) {
	t.Run("forbidden for non-owner", func(t *testing.T) {
		svc := &mockEventService{
			updateFn: func(ctx context.Context, eventID, actorID string, patch domain.EventPatch) (*domain.Event, error) {
				return nil, domain.ErrForbidden
			},
		}
		ctrl := NewEventController(testLogger, svc)

		r := authedRequest(http.MethodPatch, "/events/e1", `{"name":"New Name"}`)
		r.SetPathValue("eventID", "e1")
		rec := httptest.NewRecorder()
		ctrl.UpdateEvent(rec, r)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", rec.Code)
		}
	})

	t.Run("partial update", func(t *testing.T) {
		svc := &mockEventService{
			updateFn: func(ctx context.Context, eventID, actorID string, patch domain.EventPatch) (*domain.Event, error) {
				if patch.Name == nil || *patch.Name != "New Name" {
					t.Errorf("unexpected patch: %+v", patch)
				}
				if patch.Description != nil || patch.StartTime != nil || patch.EndTime != nil {
					t.Errorf("omitted fields present in patch: %+v", patch)
				}
				return &domain.Event{ID: eventID, Name: *patch.Name}, nil
			},
		}
		ctrl := NewEventController(testLogger, svc)

		r := authedRequest(http.MethodPatch, "/events/e1", `{"name":"New Name"}`)
		r.SetPathValue("eventID", "e1")
		rec := httptest.NewRecorder()
		ctrl.UpdateEvent(rec, r)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
		}
	})
}

func TestEventController_DeleteEvent(t *testing.T) {
	svc := &mockEventService{
		deleteFn: func(ctx context.Context, eventID, actorID string) error {
			if eventID != "e1" {
				return domain.ErrNotFound
			}
			return nil
		},
	}
	ctrl := NewEventController(testLogger, svc)

	t.Run("success", func(t *testing.T) {
		r := authedRequest(http.MethodDelete, "/events/e1", "")
		r.SetPathValue("eventID", "e1")
		rec := httptest.NewRecorder()
		ctrl.DeleteEvent(rec, r)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want 204", rec.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r := authedRequest(http.MethodDelete, "/events/missing", "")
		r.SetPathValue("eventID", "missing")
		rec := httptest.NewRecorder()
		ctrl.DeleteEvent(rec, r)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})
}
