package server

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/go-playground/validator"
	"github.com/gorilla/mux"
	"github.com/rolodex-hq/rolodex/server/models"
)

const (
	DEFAULT_PAGE      = 1
	DEFAULT_PAGE_SIZE = 10
)

type ErrorPayload struct {
	Error string `json:"error"`
}

type ContactListPayload struct {
	Contacts   []models.Contact `json:"contacts"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"totalPages"`
}

var validate = validator.New()

type contactsHandler struct {
	store *models.ContactStore
}

func (h *contactsHandler) createContact(rw http.ResponseWriter, r *http.Request) {
	contact := models.Contact{}
	decoder := json.NewDecoder(r.Body)

	err := decoder.Decode(&contact)
	if err != nil {
		writeError(rw, "Invalid request body.", http.StatusBadRequest)
		return
	}

	// Presence only - email/phone format is the client's concern.
	if err := validate.Struct(contact); err != nil {
		writeError(rw, "Name, email, and phone are required.", http.StatusBadRequest)
		return
	}

	contact.ID = 0
	err = h.store.Create(&contact)
	if errors.Is(err, models.ErrDuplicateEmail) {
		writeError(rw, "A contact with this email already exists.", http.StatusConflict)
		return
	}

	if err != nil {
		writeError(rw, "Failed to add contact.", http.StatusInternalServerError)
		return
	}

	writeResponse(rw, contact, http.StatusCreated)
}

func (h *contactsHandler) listContacts(rw http.ResponseWriter, r *http.Request) {
	page := queryParamToInt(r, "page", DEFAULT_PAGE)
	limit := queryParamToInt(r, "limit", DEFAULT_PAGE_SIZE)
	offset := (page - 1) * limit

	total, err := h.store.Count()
	if err != nil {
		writeError(rw, "Failed to fetch total count.", http.StatusInternalServerError)
		return
	}

	contacts, err := h.store.ListPage(limit, offset)
	if err != nil {
		writeError(rw, "Failed to fetch contacts.", http.StatusInternalServerError)
		return
	}

	writeResponse(rw, ContactListPayload{
		Contacts:   contacts,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, http.StatusOK)
}

func (h *contactsHandler) deleteContact(rw http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	rowsAffected, err := h.store.DeleteByID(vars["id"])
	if err != nil {
		writeError(rw, "Failed to delete contact.", http.StatusInternalServerError)
		return
	}

	if rowsAffected == 0 {
		writeError(rw, "Contact not found.", http.StatusNotFound)
		return
	}

	rw.WriteHeader(http.StatusNoContent)
}

// queryParamToInt falls back to defaultVal for missing, non-numeric,
// or sub-1 values. In particular a page of 0 or less never produces a
// negative offset.
func queryParamToInt(r *http.Request, param string, defaultVal int) int {
	value, err := strconv.Atoi(r.URL.Query().Get(param))
	if err != nil || value < 1 {
		return defaultVal
	}

	return value
}
