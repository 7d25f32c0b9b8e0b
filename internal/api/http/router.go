package http

import (
	"net/http"

	"shareit-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires all handlers onto a mux router.
func NewRouter(
	userSvc service.UserService,
	itemSvc service.ItemService,
	bookingSvc service.BookingService,
	requestSvc service.ItemRequestService,
) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestLogging)

	users := NewUserHandler(userSvc)
	router.HandleFunc("/users", users.Create).Methods(http.MethodPost)
	router.HandleFunc("/users", users.List).Methods(http.MethodGet)
	router.HandleFunc("/users/{id}", users.Get).Methods(http.MethodGet)
	router.HandleFunc("/users/{id}", users.Update).Methods(http.MethodPatch)
	router.HandleFunc("/users/{id}", users.Delete).Methods(http.MethodDelete)

	items := NewItemHandler(itemSvc)
	router.HandleFunc("/items", items.Create).Methods(http.MethodPost)
	router.HandleFunc("/items", items.ListByOwner).Methods(http.MethodGet)
	router.HandleFunc("/items/search", items.Search).Methods(http.MethodGet)
	router.HandleFunc("/items/{id}", items.Get).Methods(http.MethodGet)
	router.HandleFunc("/items/{id}", items.Update).Methods(http.MethodPatch)
	router.HandleFunc("/items/{id}", items.Delete).Methods(http.MethodDelete)
	router.HandleFunc("/items/{id}/comment", items.AddComment).Methods(http.MethodPost)

	bookings := NewBookingHandler(bookingSvc)
	router.HandleFunc("/bookings", bookings.Create).Methods(http.MethodPost)
	router.HandleFunc("/bookings/owner", bookings.ListByOwner).Methods(http.MethodGet)
	router.HandleFunc("/bookings/{id}", bookings.Approve).Methods(http.MethodPatch)
	router.HandleFunc("/bookings/{id}", bookings.Get).Methods(http.MethodGet)
	router.HandleFunc("/bookings", bookings.ListByBooker).Methods(http.MethodGet)

	requests := NewItemRequestHandler(requestSvc)
	router.HandleFunc("/requests", requests.Create).Methods(http.MethodPost)
	router.HandleFunc("/requests", requests.ListOwn).Methods(http.MethodGet)
	router.HandleFunc("/requests/all", requests.ListOthers).Methods(http.MethodGet)
	router.HandleFunc("/requests/{id}", requests.Get).Methods(http.MethodGet)

	return router
}
