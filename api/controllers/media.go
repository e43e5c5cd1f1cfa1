package controllers

import (
	"net/http"

	"github.com/mrokonuzzaman040/techpinik-sub000/api/responses"
	"github.com/mrokonuzzaman040/techpinik-sub000/internal/media"
	pkgerrors "github.com/mrokonuzzaman040/techpinik-sub000/pkg/errors"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/logger"
)

const uploadFormLimit = 32 << 20

// UploadMedia accepts a multipart form with a "file" part and an optional
// "folder" field, stores the file, and returns its public URL.
func UploadMedia(svc media.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), w, logg,
				pkgerrors.New(pkgerrors.CodeDependency, "media storage is not configured"))
			return
		}
		if err := r.ParseMultipartForm(uploadFormLimit); err != nil {
			responses.WriteError(r.Context(), w, logg,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "multipart form expected"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			responses.WriteError(r.Context(), w, logg,
				pkgerrors.New(pkgerrors.CodeValidation, "file part required"))
			return
		}
		defer file.Close()

		folder := r.FormValue("folder")
		if folder == "" {
			folder = "products"
		}

		result, err := svc.Upload(r.Context(), media.UploadInput{
			Folder:      folder,
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Body:        file,
		})
		if err != nil {
			responses.WriteError(r.Context(), w, logg, err)
			return
		}
		responses.WriteSuccess(w, http.StatusCreated, result)
	}
}
