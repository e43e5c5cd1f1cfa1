package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mrokonuzzaman040/techpinik-sub000/api/responses"
	"github.com/mrokonuzzaman040/techpinik-sub000/api/validators"
	"github.com/mrokonuzzaman040/techpinik-sub000/internal/orders"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/enums"
	pkgerrors "github.com/mrokonuzzaman040/techpinik-sub000/pkg/errors"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/logger"
)

type createOrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

type createOrderRequest struct {
	CustomerName    string                   `json:"customer_name" validate:"required,min=1,max=255"`
	CustomerPhone   string                   `json:"customer_phone" validate:"required,min=6,max=32"`
	CustomerAddress string                   `json:"customer_address" validate:"required,min=1"`
	DistrictID      uuid.UUID                `json:"district_id" validate:"required"`
	Notes           *string                  `json:"notes,omitempty"`
	Items           []createOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type updateOrderRequest struct {
	Status          *string    `json:"status,omitempty"`
	PaymentStatus   *string    `json:"payment_status,omitempty"`
	CustomerName    *string    `json:"customer_name,omitempty" validate:"omitempty,min=1,max=255"`
	CustomerPhone   *string    `json:"customer_phone,omitempty" validate:"omitempty,min=6,max=32"`
	CustomerAddress *string    `json:"customer_address,omitempty" validate:"omitempty,min=1"`
	DistrictID      *uuid.UUID `json:"district_id,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
}

// CreateOrder handles storefront checkout.
func CreateOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOrderRequest
		if err := validators.DecodeJSONBody(w, r, &req); err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}

		input := orders.CreateOrderInput{
			CustomerName:    req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			CustomerAddress: req.CustomerAddress,
			DistrictID:      req.DistrictID,
			Notes:           req.Notes,
			Items:           make([]orders.CreateOrderItemInput, 0, len(req.Items)),
		}
		for _, item := range req.Items {
			input.Items = append(input.Items, orders.CreateOrderItemInput{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}

		order, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}
		responses.WriteSuccess(w, http.StatusCreated, order)
	}
}

// GetOrder serves one order by id or by order number.
func GetOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref := strings.TrimSpace(chi.URLParam(r, "id"))

		var err error
		var order any
		if id, parseErr := uuid.Parse(ref); parseErr == nil {
			order, err = svc.Get(r.Context(), id)
		} else {
			order, err = svc.GetByNumber(r.Context(), ref)
		}
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}
		responses.WriteSuccess(w, http.StatusOK, order)
	}
}

// ListOrders serves the admin order listing with filters.
func ListOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := orderFilterFromQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}

		items, pagination, err := svc.List(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}
		responses.WriteList(w, http.StatusOK, items, pagination)
	}
}

// UpdateOrder handles admin order updates including status transitions.
func UpdateOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.UUIDFromPath(chi.URLParam(r, "id"), "order id")
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}

		var req updateOrderRequest
		if err := validators.DecodeJSONBody(w, r, &req); err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}

		input := orders.UpdateOrderInput{
			CustomerName:    req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			CustomerAddress: req.CustomerAddress,
			DistrictID:      req.DistrictID,
			Notes:           req.Notes,
		}
		if req.Status != nil {
			status, err := enums.ParseOrderStatus(*req.Status)
			if err != nil {
				responses.WriteError(r.Context(), w, logg,
					pkgerrors.New(pkgerrors.CodeValidation, "unknown order status"))
				return
			}
			input.Status = &status
		}
		if req.PaymentStatus != nil {
			paymentStatus, err := enums.ParsePaymentStatus(*req.PaymentStatus)
			if err != nil {
				responses.WriteError(r.Context(), w, logg,
					pkgerrors.New(pkgerrors.CodeValidation, "unknown payment status"))
				return
			}
			input.PaymentStatus = &paymentStatus
		}

		order, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}
		responses.WriteSuccess(w, http.StatusOK, order)
	}
}

// DeleteOrder handles admin order deletion.
func DeleteOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.UUIDFromPath(chi.URLParam(r, "id"), "order id")
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}
		responses.WriteMessage(w, http.StatusOK, "order deleted")
	}
}

func orderFilterFromQuery(r *http.Request) (orders.ListFilter, error) {
	var filter orders.ListFilter
	var err error

	if filter.Pagination, err = validators.PaginationFromQuery(r); err != nil {
		return filter, err
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
		status, parseErr := enums.ParseOrderStatus(raw)
		if parseErr != nil {
			return filter, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status")
		}
		filter.Status = &status
	}
	if filter.DateFrom, err = validators.OptionalDateQuery(r, "date_from"); err != nil {
		return filter, err
	}
	if filter.DateTo, err = validators.OptionalDateQuery(r, "date_to"); err != nil {
		return filter, err
	}
	filter.CustomerPhone = strings.TrimSpace(r.URL.Query().Get("customer_phone"))
	filter.SortBy = r.URL.Query().Get("sort_by")
	filter.SortOrder = r.URL.Query().Get("sort_order")
	return filter, nil
}
