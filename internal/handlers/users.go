package handlers

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/lehigh-university-libraries/libadmin/internal/models"
	"github.com/lehigh-university-libraries/libadmin/internal/validation"
)

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.writeJSON(w, http.StatusOK, h.users.GetAll())
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	user, ok := h.users.Get(ps.ByName("id"))
	if !ok {
		h.writeError(w, "User not found", http.StatusNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, user)
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var user models.User
	if !h.decode(w, r, &user) {
		return
	}
	if msg := checkUser(user); msg != "" {
		h.writeError(w, msg, http.StatusBadRequest)
		return
	}
	if msg := h.userConflict(user, ""); msg != "" {
		h.writeError(w, msg, http.StatusBadRequest)
		return
	}

	user.ID = h.newID()
	h.users.Set(user.ID, user)
	h.writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if _, ok := h.users.Get(id); !ok {
		h.writeError(w, "User not found", http.StatusNotFound)
		return
	}

	var user models.User
	if !h.decode(w, r, &user) {
		return
	}
	if msg := checkUser(user); msg != "" {
		h.writeError(w, msg, http.StatusBadRequest)
		return
	}
	if msg := h.userConflict(user, id); msg != "" {
		h.writeError(w, msg, http.StatusBadRequest)
		return
	}

	user.ID = id
	h.users.Set(id, user)
	h.writeJSON(w, http.StatusOK, user)
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !h.users.Delete(ps.ByName("id")) {
		h.writeError(w, "User not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// checkUser applies the same rules as the console form, server side
func checkUser(u models.User) string {
	for _, f := range []struct{ name, value string }{
		{"userId", u.UserID},
		{"name", u.Name},
		{"email", u.Email},
		{"role", u.Role},
	} {
		if f.value == "" {
			return "Missing required field: " + f.name
		}
	}
	if !validation.IsEmail(u.Email) {
		return "Invalid email address"
	}
	return ""
}

// userConflict rejects a userId or email already held by another user
func (h *Handler) userConflict(u models.User, selfID string) string {
	if _, taken := h.users.Find(func(o models.User) bool { return o.ID != selfID && o.UserID == u.UserID }); taken {
		return "User with this ID already exists"
	}
	if _, taken := h.users.Find(func(o models.User) bool { return o.ID != selfID && o.Email == u.Email }); taken {
		return "User with this email already exists"
	}
	return ""
}
