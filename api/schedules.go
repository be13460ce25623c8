package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"campusconnect/schedule"
	"campusconnect/user"

	"github.com/google/uuid"
)

type scheduleBlockRequest struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Title     string `json:"title"`
	Venue     string `json:"venue"`
}

func (r *scheduleBlockRequest) toBlock(userID uuid.UUID) (schedule.Block, error) {
	start, err := schedule.ParseClock(r.StartTime)
	if err != nil {
		return schedule.Block{}, fmt.Errorf("%w: %v", schedule.ErrInvalidBlock, err)
	}
	end, err := schedule.ParseClock(r.EndTime)
	if err != nil {
		return schedule.Block{}, fmt.Errorf("%w: %v", schedule.ErrInvalidBlock, err)
	}
	return schedule.Block{
		UserID:    userID,
		DayOfWeek: r.DayOfWeek,
		Start:     start,
		End:       end,
		Title:     r.Title,
		Venue:     r.Venue,
	}, nil
}

type getScheduleResponse struct {
	Blocks []schedule.Block `json:"blocks"`
}

func (a *API) getSchedule(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.pathID(w, r, "id")
	if !ok {
		return
	}

	scheduleAccessor := schedule.NewAccessor(a.db)
	blocks, err := scheduleAccessor.BlocksByUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			a.Response(w, http.StatusNotFound, "user not found")
			return
		}
		a.Response(w, http.StatusInternalServerError, err.Error())
		return
	}
	a.Response(w, http.StatusOK, getScheduleResponse{Blocks: blocks})
}

func (a *API) createScheduleBlock(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.pathID(w, r, "id")
	if !ok {
		return
	}

	var req scheduleBlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.Response(w, http.StatusBadRequest, "invalid request body")
		return
	}

	block, err := req.toBlock(userID)
	if err != nil {
		a.Response(w, http.StatusBadRequest, err.Error())
		return
	}

	scheduleAccessor := schedule.NewAccessor(a.db)
	created, err := scheduleAccessor.CreateBlock(r.Context(), block, a.now())
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidBlock):
			a.Response(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, user.ErrNotFound):
			a.Response(w, http.StatusNotFound, "user not found")
		default:
			a.Response(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	a.Response(w, http.StatusCreated, created)
}

func (a *API) updateScheduleBlock(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.pathID(w, r, "id")
	if !ok {
		return
	}
	blockID, ok := a.pathID(w, r, "blockID")
	if !ok {
		return
	}

	var req scheduleBlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.Response(w, http.StatusBadRequest, "invalid request body")
		return
	}

	block, err := req.toBlock(userID)
	if err != nil {
		a.Response(w, http.StatusBadRequest, err.Error())
		return
	}
	block.ID = blockID

	scheduleAccessor := schedule.NewAccessor(a.db)
	updated, err := scheduleAccessor.UpdateBlock(r.Context(), block)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidBlock):
			a.Response(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, schedule.ErrBlockNotFound):
			a.Response(w, http.StatusNotFound, "schedule block not found")
		default:
			a.Response(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	a.Response(w, http.StatusOK, updated)
}

func (a *API) deleteScheduleBlock(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.pathID(w, r, "id")
	if !ok {
		return
	}
	blockID, ok := a.pathID(w, r, "blockID")
	if !ok {
		return
	}

	scheduleAccessor := schedule.NewAccessor(a.db)
	if err := scheduleAccessor.DeleteBlock(r.Context(), blockID, userID); err != nil {
		if errors.Is(err, schedule.ErrBlockNotFound) {
			a.Response(w, http.StatusNotFound, "schedule block not found")
			return
		}
		a.Response(w, http.StatusInternalServerError, err.Error())
		return
	}
	a.Response(w, http.StatusNoContent, nil)
}
