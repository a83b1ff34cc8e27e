package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/rkhasanov/photoshare/internal/logger"
)

// maxUploadBytes caps the in-memory portion of a multipart upload; larger
// files spill to temporary storage, which is released before the handler
// returns.
const maxUploadBytes = 32 << 20

// upload accepts a multipart form with an optional "photo" file and a
// "caption" field. A request carrying only a caption creates a caption-only
// photo record. The temporary files behind the multipart form are removed
// whether or not the save succeeds.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		log.Err(err).Msg("invalid upload request")
		http.Error(w, "Invalid upload request", http.StatusBadRequest)
		return
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	caption := r.FormValue("caption")

	file, header, err := r.FormFile("photo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			h.submitCaption(w, r, caption)
			return
		}

		log.Err(err).Msg("reading uploaded file failed")
		http.Error(w, "Invalid upload request", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Err(err).Str("filename", header.Filename).Msg("reading uploaded file failed")
		http.Error(w, "Invalid upload request", http.StatusBadRequest)
		return
	}

	photo, err := h.services.PhotoService.UploadPhoto(ctx, header.Filename, data, caption)
	if err != nil {
		log.Err(err).Str("filename", header.Filename).Msg("saving uploaded photo failed")
		http.Error(w, "Failed to save photo", http.StatusInternalServerError)
		return
	}

	log.Debug().Str("photo_id", photo.ID).Str("filename", photo.Name).Msg("photo uploaded")

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Upload successful!"))
}

func (h *Handler) submitCaption(w http.ResponseWriter, r *http.Request, caption string) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	photo, err := h.services.PhotoService.SubmitCaption(ctx, caption)
	if err != nil {
		log.Err(err).Msg("saving caption-only photo failed")
		http.Error(w, "Failed to save photo", http.StatusInternalServerError)
		return
	}

	log.Debug().Str("photo_id", photo.ID).Msg("caption-only photo created")

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Upload successful!"))
}
