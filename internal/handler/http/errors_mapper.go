package http

import (
	"errors"
	"net/http"

	"github.com/rkhasanov/photoshare/internal/service"
	"github.com/rkhasanov/photoshare/internal/store"
)

// The photo-interaction routes report missing input, absent photos, absent
// likes, and store failures uniformly as bad requests. Auth-specific errors
// keep their own statuses.
var errorStatusMap = map[error]int{
	service.ErrMissingFields: http.StatusBadRequest,
	service.ErrWrongPassword: http.StatusUnauthorized,

	store.ErrUserNotFound:       http.StatusUnauthorized,
	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrPhotoNotFound:      http.StatusBadRequest,
	store.ErrLikeNotFound:       http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusBadRequest,
	store.ErrExecutingQuery:       http.StatusBadRequest,
	store.ErrBeginningTransaction: http.StatusBadRequest,
	store.ErrCommitingTransaction: http.StatusBadRequest,
	store.ErrScanningRow:          http.StatusBadRequest,
	store.ErrScanningRows:         http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
