package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"campusconnect/item"

	"github.com/google/uuid"
)

type createItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	FinderID    string `json:"finder_id"`
}

func (a *API) createItem(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.Response(w, http.StatusBadRequest, "invalid request body")
		return
	}

	finderID, err := uuid.Parse(req.FinderID)
	if err != nil {
		a.Response(w, http.StatusBadRequest, "invalid finder ID")
		return
	}

	payload := item.Item{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		FinderID:    finderID,
	}

	itemAccessor := item.NewAccessor(a.db)
	created, err := itemAccessor.CreateItem(r.Context(), payload, a.now())
	if err != nil {
		a.Response(w, http.StatusBadRequest, err.Error())
		return
	}
	a.Response(w, http.StatusCreated, created)
}

type listItemsResponse struct {
	Items []item.Item `json:"items"`
}

func (a *API) listItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := item.Filter{
		Status:   q.Get("status"),
		Category: q.Get("category"),
		Search:   q.Get("q"),
	}
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	filter.Offset, _ = strconv.Atoi(q.Get("offset"))

	itemAccessor := item.NewAccessor(a.db)
	items, err := itemAccessor.ListItems(r.Context(), filter)
	if err != nil {
		a.Response(w, http.StatusInternalServerError, err.Error())
		return
	}
	a.Response(w, http.StatusOK, listItemsResponse{Items: items})
}

func (a *API) getItem(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "id")
	if !ok {
		return
	}

	itemAccessor := item.NewAccessor(a.db)
	found, err := itemAccessor.GetItem(r.Context(), id)
	if err != nil {
		if errors.Is(err, item.ErrNotFound) {
			a.Response(w, http.StatusNotFound, "item not found")
			return
		}
		a.Response(w, http.StatusInternalServerError, err.Error())
		return
	}
	a.Response(w, http.StatusOK, found)
}

type updateItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	EditorID    string `json:"editor_id"`
}

func (a *API) updateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "id")
	if !ok {
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.Response(w, http.StatusBadRequest, "invalid request body")
		return
	}
	editorID, err := uuid.Parse(req.EditorID)
	if err != nil {
		a.Response(w, http.StatusBadRequest, "invalid editor ID")
		return
	}

	payload := item.Item{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		Status:      req.Status,
	}

	itemAccessor := item.NewAccessor(a.db)
	updated, err := itemAccessor.UpdateItem(r.Context(), payload, editorID)
	if err != nil {
		a.respondItemError(w, err)
		return
	}
	a.Response(w, http.StatusOK, updated)
}

func (a *API) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "id")
	if !ok {
		return
	}
	editorID, err := uuid.Parse(r.URL.Query().Get("editor_id"))
	if err != nil {
		a.Response(w, http.StatusBadRequest, "invalid editor ID")
		return
	}

	itemAccessor := item.NewAccessor(a.db)
	if err := itemAccessor.DeleteItem(r.Context(), id, editorID); err != nil {
		a.respondItemError(w, err)
		return
	}
	a.Response(w, http.StatusNoContent, nil)
}

type claimItemRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

func (a *API) claimItem(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "id")
	if !ok {
		return
	}

	var req claimItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.Response(w, http.StatusBadRequest, "invalid request body")
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		a.Response(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	itemAccessor := item.NewAccessor(a.db)
	claim, err := itemAccessor.ClaimItem(r.Context(), id, userID, req.Message, a.now())
	if err != nil {
		if errors.Is(err, item.ErrNotFound) {
			a.Response(w, http.StatusNotFound, "item not found")
			return
		}
		a.Response(w, http.StatusBadRequest, err.Error())
		return
	}
	a.Response(w, http.StatusCreated, claim)
}

type resolveClaimRequest struct {
	Status     string `json:"status"` // "approved" | "rejected"
	ResolverID string `json:"resolver_id"`
}

func (a *API) resolveClaim(w http.ResponseWriter, r *http.Request) {
	itemID, ok := a.pathID(w, r, "id")
	if !ok {
		return
	}
	claimID, ok := a.pathID(w, r, "claimID")
	if !ok {
		return
	}

	var req resolveClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.Response(w, http.StatusBadRequest, "invalid request body")
		return
	}
	resolverID, err := uuid.Parse(req.ResolverID)
	if err != nil {
		a.Response(w, http.StatusBadRequest, "invalid resolver ID")
		return
	}
	if req.Status != item.ClaimApproved && req.Status != item.ClaimRejected {
		a.Response(w, http.StatusBadRequest, "status must be approved or rejected")
		return
	}

	itemAccessor := item.NewAccessor(a.db)
	claim, err := itemAccessor.ResolveClaim(r.Context(), itemID, claimID, resolverID, req.Status == item.ClaimApproved)
	if err != nil {
		a.respondItemError(w, err)
		return
	}
	a.Response(w, http.StatusOK, claim)
}

func (a *API) respondItemError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, item.ErrNotFound):
		a.Response(w, http.StatusNotFound, "item not found")
	case errors.Is(err, item.ErrClaimNotFound):
		a.Response(w, http.StatusNotFound, "claim not found")
	case errors.Is(err, item.ErrNotOwner):
		a.Response(w, http.StatusForbidden, err.Error())
	default:
		a.Response(w, http.StatusInternalServerError, err.Error())
	}
}
