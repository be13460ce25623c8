package api

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"campusconnect/freeslot"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type API struct {
	router *mux.Router
	db     *sql.DB
	finder *freeslot.Finder
	now    func() time.Time
}

func NewAPI(db *sql.DB, window freeslot.Window) *API {
	r := mux.NewRouter()
	r = r.PathPrefix("/api").Subrouter()
	return &API{
		router: r,
		db:     db,
		finder: freeslot.NewFinder(scheduleSource(db), window),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (a *API) Router() *mux.Router {
	return a.router
}

func (a *API) Handler() http.Handler {
	// Use Gorilla's built-in logging handler
	return handlers.LoggingHandler(os.Stdout, a.router)
}

type Response struct {
	Status   int `json:"status"`
	Response any `json:"response"`
}

func (a *API) Response(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(Response{
		Status:   status,
		Response: data,
	})
	if err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

func (a *API) RegisterRoutes() {
	a.router.HandleFunc("/health", a.health).Methods(http.MethodGet)

	a.router.HandleFunc("/users", a.createUser).Methods(http.MethodPost)
	a.router.HandleFunc("/users", a.getUsers).Methods(http.MethodGet)
	a.router.HandleFunc("/users/{id}", a.getUser).Methods(http.MethodGet)
	a.router.HandleFunc("/users/{id}", a.updateUser).Methods(http.MethodPatch)

	a.router.HandleFunc("/users/{id}/schedule", a.getSchedule).Methods(http.MethodGet)
	a.router.HandleFunc("/users/{id}/schedule", a.createScheduleBlock).Methods(http.MethodPost)
	a.router.HandleFunc("/users/{id}/schedule/{blockID}", a.updateScheduleBlock).Methods(http.MethodPatch)
	a.router.HandleFunc("/users/{id}/schedule/{blockID}", a.deleteScheduleBlock).Methods(http.MethodDelete)
	a.router.HandleFunc("/schedules/free-slots", a.findFreeSlots).Methods(http.MethodPost)

	a.router.HandleFunc("/items", a.createItem).Methods(http.MethodPost)
	a.router.HandleFunc("/items", a.listItems).Methods(http.MethodGet)
	a.router.HandleFunc("/items/{id}", a.getItem).Methods(http.MethodGet)
	a.router.HandleFunc("/items/{id}", a.updateItem).Methods(http.MethodPatch)
	a.router.HandleFunc("/items/{id}", a.deleteItem).Methods(http.MethodDelete)
	a.router.HandleFunc("/items/{id}/claim", a.claimItem).Methods(http.MethodPost)
	a.router.HandleFunc("/items/{id}/claims/{claimID}", a.resolveClaim).Methods(http.MethodPatch)

	a.router.HandleFunc("/events", a.createEvent).Methods(http.MethodPost)
	a.router.HandleFunc("/events", a.listEvents).Methods(http.MethodGet)
	a.router.HandleFunc("/events/{id}", a.getEvent).Methods(http.MethodGet)
	a.router.HandleFunc("/events/{id}", a.updateEvent).Methods(http.MethodPatch)
	a.router.HandleFunc("/events/{id}", a.deleteEvent).Methods(http.MethodDelete)
	a.router.HandleFunc("/events/{id}/rsvp", a.rsvp).Methods(http.MethodPost)
	a.router.HandleFunc("/events/{id}/rsvp", a.cancelRSVP).Methods(http.MethodDelete)
}
