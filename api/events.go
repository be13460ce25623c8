package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"campusconnect/event"

	"github.com/google/uuid"
)

type createEventRequest struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      *time.Time `json:"end_time"`
	Venue        string     `json:"venue"`
	OrganizerID  string     `json:"organizer_id"`
	Tags         []string   `json:"tags"`
	MaxAttendees int        `json:"max_attendees"`
}

func (a *API) createEvent(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.Response(w, http.StatusBadRequest, "invalid request body")
		return
	}

	organizerID, err := uuid.Parse(req.OrganizerID)
	if err != nil {
		a.Response(w, http.StatusBadRequest, "invalid organizer ID")
		return
	}

	payload := event.Event{
		Title:        req.Title,
		Description:  req.Description,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Venue:        req.Venue,
		OrganizerID:  organizerID,
		Tags:         req.Tags,
		MaxAttendees: req.MaxAttendees,
	}

	if err := payload.Validate(); err != nil {
		a.Response(w, http.StatusBadRequest, "validate: "+err.Error())
		return
	}

	eventAccessor := event.NewAccessor(a.db)
	evt, err := eventAccessor.CreateEvent(r.Context(), payload, a.now())
	if err != nil {
		a.Response(w, http.StatusInternalServerError, err.Error())
		return
	}
	a.Response(w, http.StatusCreated, evt)
}

type listEventsResponse struct {
	Events []event.Event `json:"events"`
}

func (a *API) listEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := event.Filter{
		Upcoming: q.Get("upcoming") == "true",
		Search:   q.Get("q"),
		Tag:      q.Get("tag"),
	}
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	filter.Offset, _ = strconv.Atoi(q.Get("offset"))

	eventAccessor := event.NewAccessor(a.db)
	events, err := eventAccessor.ListEvents(r.Context(), filter, a.now())
	if err != nil {
		a.Response(w, http.StatusInternalServerError, err.Error())
		return
	}
	a.Response(w, http.StatusOK, listEventsResponse{Events: events})
}

func (a *API) getEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "id")
	if !ok {
		return
	}

	eventAccessor := event.NewAccessor(a.db)
	evt, err := eventAccessor.GetEvent(r.Context(), id)
	if err != nil {
		a.respondEventError(w, err)
		return
	}
	a.Response(w, http.StatusOK, evt)
}

type updateEventRequest struct {
	createEventRequest
	EditorID string `json:"editor_id"`
}

func (a *API) updateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "id")
	if !ok {
		return
	}

	var req updateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.Response(w, http.StatusBadRequest, "invalid request body")
		return
	}
	editorID, err := uuid.Parse(req.EditorID)
	if err != nil {
		a.Response(w, http.StatusBadRequest, "invalid editor ID")
		return
	}

	payload := event.Event{
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Venue:        req.Venue,
		Tags:         req.Tags,
		MaxAttendees: req.MaxAttendees,
	}

	eventAccessor := event.NewAccessor(a.db)
	evt, err := eventAccessor.UpdateEvent(r.Context(), payload, editorID)
	if err != nil {
		a.respondEventError(w, err)
		return
	}
	a.Response(w, http.StatusOK, evt)
}

func (a *API) deleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "id")
	if !ok {
		return
	}
	editorID, err := uuid.Parse(r.URL.Query().Get("editor_id"))
	if err != nil {
		a.Response(w, http.StatusBadRequest, "invalid editor ID")
		return
	}

	eventAccessor := event.NewAccessor(a.db)
	if err := eventAccessor.DeleteEvent(r.Context(), id, editorID); err != nil {
		a.respondEventError(w, err)
		return
	}
	a.Response(w, http.StatusNoContent, nil)
}

type rsvpRequest struct {
	UserID string `json:"user_id"`
}

func (a *API) rsvp(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "id")
	if !ok {
		return
	}

	var req rsvpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.Response(w, http.StatusBadRequest, "invalid request body")
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		a.Response(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	eventAccessor := event.NewAccessor(a.db)
	if err := eventAccessor.RSVP(r.Context(), id, userID, a.now()); err != nil {
		if errors.Is(err, event.ErrEventFull) {
			a.Response(w, http.StatusConflict, err.Error())
			return
		}
		a.respondEventError(w, err)
		return
	}
	a.Response(w, http.StatusCreated, nil)
}

func (a *API) cancelRSVP(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "id")
	if !ok {
		return
	}
	userID, err := uuid.Parse(r.URL.Query().Get("user_id"))
	if err != nil {
		a.Response(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	eventAccessor := event.NewAccessor(a.db)
	if err := eventAccessor.CancelRSVP(r.Context(), id, userID); err != nil {
		a.respondEventError(w, err)
		return
	}
	a.Response(w, http.StatusNoContent, nil)
}

func (a *API) respondEventError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, event.ErrNotFound):
		a.Response(w, http.StatusNotFound, "event not found")
	case errors.Is(err, event.ErrNotOwner):
		a.Response(w, http.StatusForbidden, err.Error())
	default:
		a.Response(w, http.StatusInternalServerError, err.Error())
	}
}
