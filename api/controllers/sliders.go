package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mrokonuzzaman040/techpinik-sub000/api/responses"
	"github.com/mrokonuzzaman040/techpinik-sub000/api/validators"
	"github.com/mrokonuzzaman040/techpinik-sub000/internal/sliders"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/logger"
)

type createSliderRequest struct {
	Title     string  `json:"title" validate:"required,min=1,max=255"`
	Subtitle  *string `json:"subtitle,omitempty"`
	ImageURL  string  `json:"image_url" validate:"required,url"`
	LinkURL   *string `json:"link_url,omitempty" validate:"omitempty,url"`
	SortOrder int     `json:"sort_order"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

type updateSliderRequest struct {
	Title     *string `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Subtitle  *string `json:"subtitle,omitempty"`
	ImageURL  *string `json:"image_url,omitempty" validate:"omitempty,url"`
	LinkURL   *string `json:"link_url,omitempty" validate:"omitempty,url"`
	SortOrder *int    `json:"sort_order,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

// ListSliders serves the homepage slider listing in sort order. defaultActive
// sets the behavior when the `active` query flag is absent.
func ListSliders(svc sliders.Service, logg *logger.Logger, defaultActive bool) http.HandlerFunc {
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

// CreateSlider handles admin slider creation.
func CreateSlider(svc sliders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createSliderRequest
		if err := validators.DecodeJSONBody(w, r, &req); err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}

		input := sliders.CreateSliderInput{
			Title:     req.Title,
			Subtitle:  req.Subtitle,
			ImageURL:  req.ImageURL,
			LinkURL:   req.LinkURL,
			SortOrder: req.SortOrder,
			IsActive:  true,
		}
		if req.IsActive != nil {
			input.IsActive = *req.IsActive
		}

		item, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}
		responses.WriteSuccess(w, http.StatusCreated, item)
	}
}

// UpdateSlider handles admin slider updates.
func UpdateSlider(svc sliders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.UUIDFromPath(chi.URLParam(r, "id"), "slider id")
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}

		var req updateSliderRequest
		if err := validators.DecodeJSONBody(w, r, &req); err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}

		item, err := svc.Update(r.Context(), id, sliders.UpdateSliderInput{
			Title:     req.Title,
			Subtitle:  req.Subtitle,
			ImageURL:  req.ImageURL,
			LinkURL:   req.LinkURL,
			SortOrder: req.SortOrder,
			IsActive:  req.IsActive,
		})
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}
		responses.WriteSuccess(w, http.StatusOK, item)
	}
}

// DeleteSlider handles admin slider deletion.
func DeleteSlider(svc sliders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.UUIDFromPath(chi.URLParam(r, "id"), "slider id")
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}
		responses.WriteMessage(w, http.StatusOK, "slider item deleted")
	}
}
