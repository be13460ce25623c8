package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"campusconnect/freeslot"
	"campusconnect/schedule"
	"campusconnect/user"

	"github.com/google/uuid"
)

func scheduleSource(db *sql.DB) freeslot.BlockSource {
	return schedule.NewAccessor(db)
}

type findFreeSlotsRequest struct {
	UserIDs   []string `json:"user_ids"`
	DayOfWeek *int     `json:"day_of_week"`
}

func (a *API) findFreeSlots(w http.ResponseWriter, r *http.Request) {
	var req findFreeSlotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.Response(w, http.StatusBadRequest, "invalid request body")
		return
	}

	query := freeslot.Query{DayOfWeek: req.DayOfWeek}
	for _, raw := range req.UserIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			a.Response(w, http.StatusBadRequest, fmt.Sprintf("invalid user ID %q", raw))
			return
		}
		query.UserIDs = append(query.UserIDs, id)
	}

	slots, err := a.finder.Find(r.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, freeslot.ErrEmptyQuery), errors.Is(err, freeslot.ErrInvalidDay):
			a.Response(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, user.ErrNotFound):
			a.Response(w, http.StatusNotFound, "user not found")
		default:
			a.Response(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	a.Response(w, http.StatusOK, slots)
}
