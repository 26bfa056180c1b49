package handlers

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/lehigh-university-libraries/libadmin/internal/models"
)

// ListBooks supports ?search= (title, author or isbn, case-insensitive)
// and ?department= filters.
func (h *Handler) ListBooks(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	search := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("search")))
	department := r.URL.Query().Get("department")

	books := h.books.GetAll()
	if search == "" && department == "" {
		h.writeJSON(w, http.StatusOK, books)
		return
	}

	matched := make([]models.Book, 0, len(books))
	for _, b := range books {
		if department != "" && b.Department != department {
			continue
		}
		if search != "" && !matchesSearch(b, search) {
			continue
		}
		matched = append(matched, b)
	}
	h.writeJSON(w, http.StatusOK, matched)
}

func matchesSearch(b models.Book, search string) bool {
	for _, field := range []string{b.Title, b.Author, b.ISBN} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func (h *Handler) GetBook(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	book, ok := h.books.Get(ps.ByName("id"))
	if !ok {
		h.writeError(w, "Book not found", http.StatusNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, book)
}

func (h *Handler) CreateBook(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var book models.Book
	if !h.decode(w, r, &book) {
		return
	}
	if book.Title == "" {
		h.writeError(w, "Missing required field: title", http.StatusBadRequest)
		return
	}
	if book.Status == "" {
		book.Status = models.StatusAvailable
	}

	book.ID = h.newID()
	h.books.Set(book.ID, book)
	h.writeJSON(w, http.StatusCreated, book)
}

func (h *Handler) UpdateBook(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if _, ok := h.books.Get(id); !ok {
		h.writeError(w, "Book not found", http.StatusNotFound)
		return
	}

	var book models.Book
	if !h.decode(w, r, &book) {
		return
	}
	if book.Title == "" {
		h.writeError(w, "Missing required field: title", http.StatusBadRequest)
		return
	}

	book.ID = id
	h.books.Set(id, book)
	h.writeJSON(w, http.StatusOK, book)
}

func (h *Handler) DeleteBook(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !h.books.Delete(ps.ByName("id")) {
		h.writeError(w, "Book not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
