package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/mrokonuzzaman040/techpinik-sub000/api/responses"
	"github.com/mrokonuzzaman040/techpinik-sub000/api/validators"
	"github.com/mrokonuzzaman040/techpinik-sub000/internal/districts"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/logger"
)

type createDistrictRequest struct {
	Name           string          `json:"name" validate:"required,min=1,max=255"`
	DeliveryCharge decimal.Decimal `json:"delivery_charge"`
	IsActive       *bool           `json:"is_active,omitempty"`
}

type updateDistrictRequest struct {
	Name           *string          `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	DeliveryCharge *decimal.Decimal `json:"delivery_charge,omitempty"`
	IsActive       *bool            `json:"is_active,omitempty"`
}

// ListDistricts serves the delivery district listing. defaultActive sets the
// behavior when the `active` query flag is absent.
func ListDistricts(svc districts.Service, logg *logger.Logger, defaultActive bool) http.HandlerFunc {
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

// CreateDistrict handles admin district creation.
func CreateDistrict(svc districts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createDistrictRequest
		if err := validators.DecodeJSONBody(w, r, &req); err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}

		input := districts.CreateDistrictInput{
			Name:           req.Name,
			DeliveryCharge: req.DeliveryCharge,
			IsActive:       true,
		}
		if req.IsActive != nil {
			input.IsActive = *req.IsActive
		}

		district, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}
		responses.WriteSuccess(w, http.StatusCreated, district)
	}
}

// UpdateDistrict handles admin district updates.
func UpdateDistrict(svc districts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.UUIDFromPath(chi.URLParam(r, "id"), "district id")
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}

		var req updateDistrictRequest
		if err := validators.DecodeJSONBody(w, r, &req); err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}

		district, err := svc.Update(r.Context(), id, districts.UpdateDistrictInput{
			Name:           req.Name,
			DeliveryCharge: req.DeliveryCharge,
			IsActive:       req.IsActive,
		})
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}
		responses.WriteSuccess(w, http.StatusOK, district)
	}
}

// DeleteDistrict handles admin district deletion. Districts with orders are
// refused.
func DeleteDistrict(svc districts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.UUIDFromPath(chi.URLParam(r, "id"), "district id")
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}
		responses.WriteMessage(w, http.StatusOK, "district deleted")
	}
}
