package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/lehigh-university-libraries/libadmin/internal/models"
)

// Resource is the CRUD surface of one entity type
type Resource[T models.Entity] struct {
	client   *Client
	endpoint endpoint
}

// List fetches every record, in server order
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	return r.list(ctx, r.endpoint.path)
}

// Search lists the records matching the given query parameters.
// Filtering happens on the server.
func (r *Resource[T]) Search(ctx context.Context, query url.Values) ([]T, error) {
	path := r.endpoint.path
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}
	return r.list(ctx, path)
}

func (r *Resource[T]) list(ctx context.Context, path string) ([]T, error) {
	body, err := r.client.do(ctx, r.endpoint, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var records []T
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s list: %v", ErrInvalidResponse, r.endpoint.path, err)
	}
	if records == nil {
		records = []T{}
	}
	for i, rec := range records {
		if err := rec.CheckSchema(); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrInvalidResponse, i, err)
		}
	}
	return records, nil
}

// Get fetches one record by its server id
func (r *Resource[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	body, err := r.client.do(ctx, r.endpoint, http.MethodGet, joinPath(r.endpoint.path, id), nil)
	if err != nil {
		return zero, err
	}
	return r.decodeOne(body)
}

// Create posts a new record and returns it as stored, with its generated id
func (r *Resource[T]) Create(ctx context.Context, entity T) (T, error) {
	var zero T
	body, err := r.client.do(ctx, r.endpoint, http.MethodPost, r.endpoint.path, entity)
	if err != nil {
		return zero, err
	}
	return r.decodeOne(body)
}

// Update replaces the record with the given id. A 2xx response without a
// body yields the submitted entity.
func (r *Resource[T]) Update(ctx context.Context, id string, entity T) (T, error) {
	var zero T
	body, err := r.client.do(ctx, r.endpoint, http.MethodPut, joinPath(r.endpoint.path, id), entity)
	if err != nil {
		return zero, err
	}
	if len(body) == 0 {
		return entity, nil
	}
	return r.decodeOne(body)
}

// Remove deletes the record with the given id
func (r *Resource[T]) Remove(ctx context.Context, id string) error {
	_, err := r.client.do(ctx, r.endpoint, http.MethodDelete, joinPath(r.endpoint.path, id), nil)
	return err
}

func (r *Resource[T]) decodeOne(body []byte) (T, error) {
	var rec T
	if err := json.Unmarshal(body, &rec); err != nil {
		return rec, fmt.Errorf("%w: failed to decode %s record: %v", ErrInvalidResponse, r.endpoint.path, err)
	}
	if err := rec.CheckSchema(); err != nil {
		return rec, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return rec, nil
}
