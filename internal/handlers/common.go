// Package handlers serves the library REST contract from memory. It backs
// `libadmin serve` and the end-to-end tests of the console.
package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/lehigh-university-libraries/libadmin/internal/models"
	"github.com/lehigh-university-libraries/libadmin/internal/storage"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Handler struct {
	users *storage.Store[models.User]
	books *storage.Store[models.Book]
	pages []models.Page
	newID func() string
}

func New() *Handler {
	return &Handler{
		users: storage.New[models.User](),
		books: storage.New[models.Book](),
		pages: DefaultPages,
		newID: uuid.NewString,
	}
}

// Routes returns the router serving /api and /healthcheck
func (h *Handler) Routes() http.Handler {
	router := httprouter.New()
	h.Register(router)
	return router
}

func (h *Handler) Register(router *httprouter.Router) {
	router.GET("/api/users", h.ListUsers)
	router.POST("/api/users", h.CreateUser)
	router.GET("/api/users/:id", h.GetUser)
	router.PUT("/api/users/:id", h.UpdateUser)
	router.DELETE("/api/users/:id", h.DeleteUser)

	router.GET("/api/books", h.ListBooks)
	router.POST("/api/books", h.CreateBook)
	router.GET("/api/books/:id", h.GetBook)
	router.PUT("/api/books/:id", h.UpdateBook)
	router.DELETE("/api/books/:id", h.DeleteBook)

	router.GET("/api/pages", h.ListPages)
	router.GET("/healthcheck", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		if _, err := w.Write([]byte("OK")); err != nil {
			slog.Error("Unable to write healthcheck", "err", err)
		}
	})
}

// SeedUser stores a user as if it had been created through the API
func (h *Handler) SeedUser(u models.User) models.User {
	if u.ID == "" {
		u.ID = h.newID()
	}
	h.users.Set(u.ID, u)
	return u
}

// SeedBook stores a book as if it had been created through the API
func (h *Handler) SeedBook(b models.Book) models.Book {
	if b.ID == "" {
		b.ID = h.newID()
	}
	h.books.Set(b.ID, b)
	return b
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message, "status", code)
	h.writeJSON(w, code, map[string]string{"error": message})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		h.writeError(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}
