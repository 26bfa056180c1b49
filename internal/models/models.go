package models

import (
	"errors"
	"fmt"
)

// ErrSchema is returned when a record received from the backend is missing a
// field every record of its type must carry.
var ErrSchema = errors.New("record does not match schema")

// Entity is a record exchanged with the backend
type Entity interface {
	EntityID() string
	CheckSchema() error
}

// Role values accepted for a user
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
	RoleUser  = "user"
)

// DefaultRoles is the role set offered by the user form
var DefaultRoles = []string{RoleAdmin, RoleStaff, RoleUser}

// Book status values
const (
	StatusAvailable   = "available"
	StatusUnavailable = "unavailable"
	StatusBorrowed    = "borrowed"
)

// BookStatuses is the status set offered by the book form
var BookStatuses = []string{StatusAvailable, StatusUnavailable, StatusBorrowed}

// User represents a library account
type User struct {
	ID     string `json:"id,omitempty" yaml:"id,omitempty" parquet:"id"` // server-assigned
	UserID string `json:"userId" yaml:"userId" parquet:"user_id"`
	Name   string `json:"name" yaml:"name" parquet:"name"`
	Email  string `json:"email" yaml:"email" parquet:"email"`
	Role   string `json:"role" yaml:"role" parquet:"role"`
}

func (u User) EntityID() string { return u.ID }

// CheckSchema verifies a user returned by the backend
func (u User) CheckSchema() error {
	return requireFields("user", map[string]string{
		"id":     u.ID,
		"userId": u.UserID,
		"name":   u.Name,
		"email":  u.Email,
		"role":   u.Role,
	}, "id", "userId", "name", "email", "role")
}

// Book represents a catalogued title
type Book struct {
	ID         string `json:"id,omitempty" yaml:"id,omitempty" parquet:"id"` // server-assigned
	Title      string `json:"title" yaml:"title" parquet:"title"`
	Author     string `json:"author" yaml:"author" parquet:"author"`
	ISBN       string `json:"isbn" yaml:"isbn" parquet:"isbn"`
	Status     string `json:"status" yaml:"status" parquet:"status"`
	Department string `json:"department,omitempty" yaml:"department,omitempty" parquet:"department,optional"`
}

func (b Book) EntityID() string { return b.ID }

// CheckSchema verifies a book returned by the backend
func (b Book) CheckSchema() error {
	return requireFields("book", map[string]string{
		"id":    b.ID,
		"title": b.Title,
	}, "id", "title")
}

// Available reports whether the book can be lent
func (b Book) Available() bool {
	return b.Status == StatusAvailable
}

func requireFields(kind string, values map[string]string, order ...string) error {
	for _, field := range order {
		if values[field] == "" {
			return fmt.Errorf("%w: %s missing %q", ErrSchema, kind, field)
		}
	}
	return nil
}

// FormMode distinguishes creating a record from editing one
type FormMode string

const (
	FormModeCreate FormMode = "create"
	FormModeEdit   FormMode = "edit"
)

// FormSession is the transient state of an open form
type FormSession struct {
	Mode     FormMode `json:"mode"`
	TargetID string   `json:"target_id,omitempty"`
}

// DashboardStats holds the aggregate counts shown on the dashboard
type DashboardStats struct {
	TotalUsers     int `json:"total_users" yaml:"total_users"`
	TotalBooks     int `json:"total_books" yaml:"total_books"`
	AvailableBooks int `json:"available_books" yaml:"available_books"`
}

// Page is a navigation entry served by the backend
type Page struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
	Icon string `json:"icon" yaml:"icon"`
}
