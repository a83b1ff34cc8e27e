package http

import (
	"encoding/json"
	"net/http"

	"github.com/rkhasanov/photoshare/internal/logger"
	"github.com/rkhasanov/photoshare/internal/utils"
)

type likeRequest struct {
	PhotoID  string `json:"photoId"`
	Username string `json:"username"`
}

type commentRequest struct {
	PhotoID  string `json:"photoId"`
	Username string `json:"username"`
	Comment  string `json:"comment"`
}

// messageResponse is the JSON envelope for photo-interaction confirmations
// and errors.
type messageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) greeting(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Welcome to the registration app!"))
}

func (h *Handler) like(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req likeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, messageResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if err := h.services.PhotoService.Like(ctx, req.PhotoID, req.Username); err != nil {
		log.Err(err).Str("photo_id", req.PhotoID).Msg("liking photo failed")
		utils.WriteJSON(w, messageResponse{Message: "Failed to like photo"}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, messageResponse{Message: "Photo liked successfully"}, http.StatusOK)
}

func (h *Handler) dislike(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req likeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, messageResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if err := h.services.PhotoService.Dislike(ctx, req.PhotoID, req.Username); err != nil {
		log.Err(err).Str("photo_id", req.PhotoID).Msg("disliking photo failed")
		utils.WriteJSON(w, messageResponse{Message: "Failed to dislike photo"}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, messageResponse{Message: "Photo disliked successfully"}, http.StatusOK)
}

func (h *Handler) comment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, messageResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if err := h.services.PhotoService.Comment(ctx, req.PhotoID, req.Username, req.Comment); err != nil {
		log.Err(err).Str("photo_id", req.PhotoID).Msg("commenting photo failed")
		utils.WriteJSON(w, messageResponse{Message: "Failed to add comment"}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, messageResponse{Message: "Comment added successfully"}, http.StatusOK)
}

func (h *Handler) posts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	photos, err := h.services.PhotoService.ListAll(ctx)
	if err != nil {
		log.Err(err).Msg("listing photos failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, photos, http.StatusOK)
}
