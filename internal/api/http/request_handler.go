package http

import (
	"encoding/json"
	"net/http"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/service"
)

type ItemRequestHandler struct {
	requestSvc service.ItemRequestService
}

func NewItemRequestHandler(requestSvc service.ItemRequestService) *ItemRequestHandler {
	return &ItemRequestHandler{requestSvc: requestSvc}
}

func (h *ItemRequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var input struct {
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, domain.Validationf("invalid request body"))
		return
	}
	request, err := h.requestSvc.CreateRequest(r.Context(), userID, input.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, request)
}

func (h *ItemRequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	requestID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	request, err := h.requestSvc.GetRequest(r.Context(), userID, requestID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, request)
}

func (h *ItemRequestHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	requests, err := h.requestSvc.ListOwn(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *ItemRequestHandler) ListOthers(w http.ResponseWriter, r *http.Request) {
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
	requests, err := h.requestSvc.ListOthers(r.Context(), userID, from, size)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}
