package handlers

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/lehigh-university-libraries/libadmin/internal/models"
)

// DefaultPages is the navigation offered to the console
var DefaultPages = []models.Page{
	{Name: "Dashboard", Path: "/", Icon: "fas fa-home"},
	{Name: "Users", Path: "/users", Icon: "fas fa-users"},
	{Name: "Add User", Path: "/add_user", Icon: "fas fa-user-plus"},
	{Name: "Books", Path: "/books", Icon: "fas fa-book"},
	{Name: "Add Book", Path: "/add_book", Icon: "fas fa-book-medical"},
}

func (h *Handler) ListPages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.writeJSON(w, http.StatusOK, h.pages)
}
