package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mrokonuzzaman040/techpinik-sub000/api/responses"
	"github.com/mrokonuzzaman040/techpinik-sub000/api/validators"
	"github.com/mrokonuzzaman040/techpinik-sub000/internal/catalog"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/logger"
)

type createProductRequest struct {
	Name          string           `json:"name" validate:"required,min=1,max=255"`
	Description   *string          `json:"description,omitempty"`
	SKU           string           `json:"sku" validate:"required,min=1,max=64"`
	Price         decimal.Decimal  `json:"price" validate:"required"`
	SalePrice     *decimal.Decimal `json:"sale_price,omitempty"`
	StockQuantity int              `json:"stock_quantity" validate:"min=0"`
	CategoryID    *uuid.UUID       `json:"category_id,omitempty"`
	Images        []string         `json:"images,omitempty" validate:"dive,url"`
	IsActive      *bool            `json:"is_active,omitempty"`
	IsFeatured    bool             `json:"is_featured"`
}

type updateProductRequest struct {
	Name          *string          `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description   *string          `json:"description,omitempty"`
	SKU           *string          `json:"sku,omitempty" validate:"omitempty,min=1,max=64"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	SalePrice     *decimal.Decimal `json:"sale_price,omitempty"`
	ClearSale     bool             `json:"clear_sale,omitempty"`
	StockQuantity *int             `json:"stock_quantity,omitempty" validate:"omitempty,min=0"`
	CategoryID    *uuid.UUID       `json:"category_id,omitempty"`
	ClearCategory bool             `json:"clear_category,omitempty"`
	Images        *[]string        `json:"images,omitempty" validate:"omitempty,dive,url"`
	IsActive      *bool            `json:"is_active,omitempty"`
	IsFeatured    *bool            `json:"is_featured,omitempty"`
}

// ListProducts serves the storefront and admin product listing.
func ListProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := productFilterFromQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}

		products, pagination, err := svc.List(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}
		responses.WriteList(w, http.StatusOK, products, pagination)
	}
}

// GetProduct serves a single product by id.
func GetProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.UUIDFromPath(chi.URLParam(r, "id"), "product id")
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}

		product, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}
		responses.WriteSuccess(w, http.StatusOK, product)
	}
}

// CreateProduct handles admin product creation.
func CreateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createProductRequest
		if err := validators.DecodeJSONBody(w, r, &req); err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}

		input := catalog.CreateProductInput{
			Name:          req.Name,
			Description:   req.Description,
			SKU:           req.SKU,
			Price:         req.Price,
			SalePrice:     req.SalePrice,
			StockQuantity: req.StockQuantity,
			CategoryID:    req.CategoryID,
			Images:        req.Images,
			IsActive:      true,
			IsFeatured:    req.IsFeatured,
		}
		if req.IsActive != nil {
			input.IsActive = *req.IsActive
		}

		product, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}
		responses.WriteSuccess(w, http.StatusCreated, product)
	}
}

// UpdateProduct handles admin product updates.
func UpdateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.UUIDFromPath(chi.URLParam(r, "id"), "product id")
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}

		var req updateProductRequest
		if err := validators.DecodeJSONBody(w, r, &req); err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}

		product, err := svc.Update(r.Context(), id, catalog.UpdateProductInput{
			Name:          req.Name,
			Description:   req.Description,
			SKU:           req.SKU,
			Price:         req.Price,
			SalePrice:     req.SalePrice,
			ClearSale:     req.ClearSale,
			StockQuantity: req.StockQuantity,
			CategoryID:    req.CategoryID,
			ClearCategory: req.ClearCategory,
			Images:        req.Images,
			IsActive:      req.IsActive,
			IsFeatured:    req.IsFeatured,
		})
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}
		responses.WriteSuccess(w, http.StatusOK, product)
	}
}

// DeleteProduct handles admin product deletion.
func DeleteProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.UUIDFromPath(chi.URLParam(r, "id"), "product id")
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}
		responses.WriteMessage(w, http.StatusOK, "product deleted")
	}
}

func productFilterFromQuery(r *http.Request) (catalog.ListFilter, error) {
	var filter catalog.ListFilter
	var err error

	if filter.Pagination, err = validators.PaginationFromQuery(r); err != nil {
		return filter, err
	}
	if filter.CategoryID, err = validators.OptionalUUIDQuery(r, "category_id"); err != nil {
		return filter, err
	}
	if filter.Featured, err = validators.OptionalBoolQuery(r, "featured"); err != nil {
		return filter, err
	}
	if filter.Active, err = validators.OptionalBoolQuery(r, "active"); err != nil {
		return filter, err
	}
	filter.Search = strings.TrimSpace(r.URL.Query().Get("search"))
	filter.SortBy = r.URL.Query().Get("sort_by")
	filter.SortOrder = r.URL.Query().Get("sort_order")
	return filter, nil
}
