package store

import (
	"context"

	"github.com/rkhasanov/photoshare/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

// UserRepository is the persistence contract for account records.
//
// Accounts are created once and never updated or deleted by this system.
// Email is the login lookup key and is enforced unique at the schema level.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields (UserID, CreatedAt) populated.
	// Returns ErrEmailAlreadyExists if the email is already registered.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account registered under the given email,
	// or ErrUserNotFound if no such account exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// PhotoRepository is the persistence contract for photo records and their
// embedded like/comment sub-collections.
//
// Like and comment mutations are applied atomically per photo: the
// PostgreSQL backend uses single-statement jsonb appends, the SQLite backend
// wraps its read-modify-write in a transaction. Concurrent callers therefore
// never overwrite each other's appends.
type PhotoRepository interface {
	// CreatePhoto persists a new photo record, assigning it an opaque
	// unique identifier, and returns the stored representation.
	CreatePhoto(ctx context.Context, photo models.Photo) (models.Photo, error)

	// GetPhoto returns the photo with the given id, or ErrPhotoNotFound.
	GetPhoto(ctx context.Context, id string) (models.Photo, error)

	// ListPhotos returns every stored photo in creation order.
	ListPhotos(ctx context.Context) ([]models.Photo, error)

	// AddLike appends username to the photo's like list. The append is
	// unconditional: duplicates are permitted and preserved in order.
	// Returns ErrPhotoNotFound if the photo does not exist.
	AddLike(ctx context.Context, photoID, username string) error

	// RemoveLike removes the first occurrence of username from the photo's
	// like list. Returns ErrPhotoNotFound if the photo does not exist and
	// ErrLikeNotFound if the username is absent from the list.
	RemoveLike(ctx context.Context, photoID, username string) error

	// AddComment appends a {username, comment} pair to the photo's comment
	// list. Returns ErrPhotoNotFound if the photo does not exist.
	AddComment(ctx context.Context, photoID string, comment models.Comment) error
}
