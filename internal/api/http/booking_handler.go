package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/service"
)

type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

type bookingInput struct {
	ItemID int32     `json:"item_id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	bookerID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var input bookingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, domain.Validationf("invalid request body"))
		return
	}
	booking, err := h.bookingSvc.AddBooking(r.Context(), bookerID, input.ItemID, input.Start, input.End)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) Approve(w http.ResponseWriter, r *http.Request) {
	ownerID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	bookingID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	approved, err := strconv.ParseBool(r.URL.Query().Get("approved"))
	if err != nil {
		writeError(w, domain.Validationf("invalid approved parameter"))
		return
	}
	booking, err := h.bookingSvc.ApproveBooking(r.Context(), ownerID, bookingID, approved)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	bookingID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	booking, err := h.bookingSvc.GetByID(r.Context(), userID, bookingID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) ListByBooker(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.bookingSvc.GetAllByBooker)
}

func (h *BookingHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.bookingSvc.GetAllByOwner)
}

type bookingListFunc func(ctx context.Context, id int32, state string, from, size int32) ([]domain.Booking, error)

func (h *BookingHandler) list(w http.ResponseWriter, r *http.Request, fetch bookingListFunc) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	from, size, err := pageParams(r)
	if err != nil {
		writeError(w, err)
		return
	}
	state := r.URL.Query().Get("state")
	if state == "" {
		state = string(domain.BookingStateAll)
	}
	bookings, err := fetch(r.Context(), userID, state, from, size)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}
