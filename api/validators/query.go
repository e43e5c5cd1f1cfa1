package validators

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/mrokonuzzaman040/techpinik-sub000/pkg/errors"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/pagination"
)

// PaginationFromQuery reads page/limit query parameters with defaults.
func PaginationFromQuery(r *http.Request) (pagination.Params, error) {
	params := pagination.Params{}
	var err error
	if params.Page, err = intQuery(r, "page", 1); err != nil {
		return params, err
	}
	if params.Limit, err = intQuery(r, "limit", pagination.DefaultLimit); err != nil {
		return params, err
	}
	return params.Normalize(), nil
}

// UUIDFromPath parses a chi URL parameter as a UUID.
func UUIDFromPath(raw, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("%s must be a valid UUID", name))
	}
	return id, nil
}

// OptionalUUIDQuery parses an optional UUID query parameter.
func OptionalUUIDQuery(r *http.Request, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("%s must be a valid UUID", name))
	}
	return &id, nil
}

// OptionalBoolQuery parses an optional boolean query parameter.
func OptionalBoolQuery(r *http.Request, name string) (*bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("%s must be true or false", name))
	}
	return &value, nil
}

// OptionalDateQuery parses an optional YYYY-MM-DD or RFC3339 query parameter.
func OptionalDateQuery(r *http.Request, name string) (*time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeValidation,
		fmt.Sprintf("%s must be a date (YYYY-MM-DD or RFC3339)", name))
}

func intQuery(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("%s must be an integer", name))
	}
	return value, nil
}
