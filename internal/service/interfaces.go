package service

import (
	"context"

	"github.com/rkhasanov/photoshare/models"
)

// AuthService covers account registration and the one-shot credential check.
// No token or session is issued on a successful login.
type AuthService interface {
	// Register hashes the plaintext password and persists a new account.
	Register(ctx context.Context, name, email, password string) (models.User, error)

	// Login verifies the email/password pair against the stored account.
	Login(ctx context.Context, email, password string) (models.User, error)
}

// PhotoService covers photo creation and the like/comment interactions.
type PhotoService interface {
	// SubmitCaption creates a photo record that carries only a caption.
	SubmitCaption(ctx context.Context, caption string) (models.Photo, error)

	// UploadPhoto creates a photo record from raw image bytes plus an
	// optional caption.
	UploadPhoto(ctx context.Context, filename string, data []byte, caption string) (models.Photo, error)

	// Like appends username to the photo's like list.
	Like(ctx context.Context, photoID, username string) error

	// Dislike removes the first occurrence of username from the photo's
	// like list.
	Dislike(ctx context.Context, photoID, username string) error

	// Comment appends a {username, comment} pair to the photo.
	Comment(ctx context.Context, photoID, username, comment string) error

	// ListAll returns every stored photo.
	ListAll(ctx context.Context) ([]models.Photo, error)
}
