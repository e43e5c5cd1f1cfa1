package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mrokonuzzaman040/techpinik-sub000/api/responses"
	"github.com/mrokonuzzaman040/techpinik-sub000/api/validators"
	"github.com/mrokonuzzaman040/techpinik-sub000/internal/categories"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/logger"
)

type createCategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
	BannerURL   *string `json:"banner_url,omitempty" validate:"omitempty,url"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
	BannerURL   *string `json:"banner_url,omitempty" validate:"omitempty,url"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// ListCategories serves the category listing. defaultActive sets the
// behavior when the `active` query flag is absent.
func ListCategories(svc categories.Service, logg *logger.Logger, defaultActive bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		only := defaultActive
		flag, err := validators.OptionalBoolQuery(r, "active")
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}
		if flag != nil {
			only = *flag
		}

		items, err := svc.List(r.Context(), only)
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}
		responses.WriteSuccess(w, http.StatusOK, items)
	}
}

// GetCategory serves one category by id.
func GetCategory(svc categories.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.UUIDFromPath(chi.URLParam(r, "id"), "category id")
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}

		category, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}
		responses.WriteSuccess(w, http.StatusOK, category)
	}
}

// CreateCategory handles admin category creation.
func CreateCategory(svc categories.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createCategoryRequest
		if err := validators.DecodeJSONBody(w, r, &req); err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}

		input := categories.CreateCategoryInput{
			Name:        req.Name,
			Description: req.Description,
			ImageURL:    req.ImageURL,
			BannerURL:   req.BannerURL,
			IsActive:    true,
		}
		if req.IsActive != nil {
			input.IsActive = *req.IsActive
		}

		category, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}
		responses.WriteSuccess(w, http.StatusCreated, category)
	}
}

// UpdateCategory handles admin category updates.
func UpdateCategory(svc categories.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.UUIDFromPath(chi.URLParam(r, "id"), "category id")
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}

		var req updateCategoryRequest
		if err := validators.DecodeJSONBody(w, r, &req); err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}

		category, err := svc.Update(r.Context(), id, categories.UpdateCategoryInput{
			Name:        req.Name,
			Description: req.Description,
			ImageURL:    req.ImageURL,
			BannerURL:   req.BannerURL,
			IsActive:    req.IsActive,
		})
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}
		responses.WriteSuccess(w, http.StatusOK, category)
	}
}

// DeleteCategory handles admin category deletion. Categories with products
// are refused.
func DeleteCategory(svc categories.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.UUIDFromPath(chi.URLParam(r, "id"), "category id")
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}
		responses.WriteMessage(w, http.StatusOK, "category deleted")
	}
}
