package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mrokonuzzaman040/techpinik-sub000/api/responses"
	"github.com/mrokonuzzaman040/techpinik-sub000/api/validators"
	"github.com/mrokonuzzaman040/techpinik-sub000/internal/cart"
	pkgerrors "github.com/mrokonuzzaman040/techpinik-sub000/pkg/errors"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/logger"
)

// HeaderCartSession identifies the caller's cart.
const HeaderCartSession = "X-Cart-Session"

type addCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"min=1"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type cartView struct {
	SessionID  string      `json:"session_id"`
	Lines      []cart.Line `json:"lines"`
	TotalItems int         `json:"total_items"`
	TotalPrice string      `json:"total_price"`
}

func viewOf(c *cart.Cart) cartView {
	return cartView{
		SessionID:  c.SessionID,
		Lines:      c.Lines,
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice().StringFixed(2),
	}
}

func cartSession(r *http.Request) (string, error) {
	session := strings.TrimSpace(r.Header.Get(HeaderCartSession))
	if session == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "X-Cart-Session header required")
	}
	return session, nil
}

// GetCart returns the session's current cart.
func GetCart(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := cartSession(r)
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}
		ctx := logg.WithCartSession(r.Context(), session)

		current, err := svc.Get(ctx, session)
		if err != nil {
			responses.WriteError(ctx, w, logg, err)
			return
		}
		responses.WriteSuccess(w, http.StatusOK, viewOf(current))
	}
}

// AddCartItem adds a product to the session's cart, merging quantities.
func AddCartItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := cartSession(r)
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}
		ctx := logg.WithCartSession(r.Context(), session)

		var req addCartItemRequest
		if err := validators.DecodeJSONBody(w, r, &req); err != nil {
			responses.WriteError(ctx, w, logg, err)
			return
		}

		current, err := svc.AddItem(ctx, session, req.ProductID, req.Quantity)
		if err != nil {
			responses.WriteError(ctx, w, logg, err)
			return
		}
		responses.WriteSuccess(w, http.StatusOK, viewOf(current))
	}
}

// UpdateCartItem sets a line's quantity; below one removes the line.
func UpdateCartItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := cartSession(r)
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}
		ctx := logg.WithCartSession(r.Context(), session)

		productID, err := validators.UUIDFromPath(chi.URLParam(r, "productId"), "product id")
		if err != nil {
			responses.WriteError(ctx, w, logg, err)
			return
		}

		var req updateCartItemRequest
		if err := validators.DecodeJSONBody(w, r, &req); err != nil {
			responses.WriteError(ctx, w, logg, err)
			return
		}

		current, err := svc.UpdateQuantity(ctx, session, productID, req.Quantity)
		if err != nil {
			responses.WriteError(ctx, w, logg, err)
			return
		}
		responses.WriteSuccess(w, http.StatusOK, viewOf(current))
	}
}

// RemoveCartItem drops a product from the cart.
func RemoveCartItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := cartSession(r)
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}
		ctx := logg.WithCartSession(r.Context(), session)

		productID, err := validators.UUIDFromPath(chi.URLParam(r, "productId"), "product id")
		if err != nil {
			responses.WriteError(ctx, w, logg, err)
			return
		}

		current, err := svc.RemoveItem(ctx, session, productID)
		if err != nil {
			responses.WriteError(ctx, w, logg, err)
			return
		}
		responses.WriteSuccess(w, http.StatusOK, viewOf(current))
	}
}

// ClearCart empties the session's cart.
func ClearCart(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := cartSession(r)
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}
		ctx := logg.WithCartSession(r.Context(), session)

		current, err := svc.Clear(ctx, session)
		if err != nil {
			responses.WriteError(ctx, w, logg, err)
			return
		}
		responses.WriteSuccess(w, http.StatusOK, viewOf(current))
	}
}
