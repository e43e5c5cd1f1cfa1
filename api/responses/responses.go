package responses

import (
	"context"
	"encoding/json"
	"net/http"

	pkgerrors "github.com/mrokonuzzaman040/techpinik-sub000/pkg/errors"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/logger"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/types"
)

// WriteSuccess writes the success envelope with the given status.
func WriteSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, types.SuccessEnvelope{Success: true, Data: data})
}

// WriteMessage writes a success envelope carrying only a message.
func WriteMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, types.SuccessEnvelope{Success: true, Message: message})
}

// WriteList writes a success envelope with pagination metadata.
func WriteList(w http.ResponseWriter, status int, data any, pagination *types.Pagination) {
	writeJSON(w, status, types.SuccessEnvelope{Success: true, Data: data, Pagination: pagination})
}

// WriteError maps a service error onto the error envelope. Unknown error
// types surface as internal errors without leaking detail.
func WriteError(ctx context.Context, w http.ResponseWriter, logg *logger.Logger, err error) {
	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}
	meta := pkgerrors.MetadataFor(typed.Code())

	if meta.HTTPStatus >= http.StatusInternalServerError {
		if logg != nil {
			ctx = logg.WithField(ctx, "error_dump", pkgerrors.Dump(err))
			logg.Error(ctx, typed.Message(), err)
		}
	} else if logg != nil {
		logg.Warn(ctx, typed.Error())
	}

	envelope := types.ErrorEnvelope{Success: false, Error: publicMessage(typed, meta)}
	if meta.DetailsAllowed {
		envelope.Details = typed.Details()
	}
	writeJSON(w, meta.HTTPStatus, envelope)
}

func publicMessage(typed *pkgerrors.Error, meta pkgerrors.Metadata) string {
	if meta.HTTPStatus >= http.StatusInternalServerError {
		return meta.PublicMessage
	}
	if msg := typed.Message(); msg != "" {
		return msg
	}
	return meta.PublicMessage
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
