package service

import (
	"context"
	"fmt"

	"github.com/rkhasanov/photoshare/internal/logger"
	"github.com/rkhasanov/photoshare/internal/store"
	"github.com/rkhasanov/photoshare/models"
)

// photoService is the concrete implementation of PhotoService. Every
// operation is a thin delegation to the PhotoRepository; the consistency
// rules (duplicate likes preserved, first-occurrence removal, atomic
// appends) live in the store layer.
type photoService struct {
	photoRepository store.PhotoRepository

	logger *logger.Logger
}

// NewPhotoService constructs a PhotoService wired to the given repository.
func NewPhotoService(photoRepository store.PhotoRepository, logger *logger.Logger) PhotoService {
	return &photoService{
		photoRepository: photoRepository,
		logger:          logger,
	}
}

// SubmitCaption creates a photo record carrying only a caption. Storage
// failures are propagated to the caller, never swallowed.
func (p *photoService) SubmitCaption(ctx context.Context, caption string) (models.Photo, error) {
	log := logger.FromContext(ctx)

	photo, err := p.photoRepository.CreatePhoto(ctx, models.Photo{Caption: caption})
	if err != nil {
		log.Err(err).Msg("caption-only photo creation failed")
		return models.Photo{}, fmt.Errorf("caption-only photo creation failed: %w", err)
	}

	return photo, nil
}

// UploadPhoto creates a photo record from the uploaded file. The raw bytes
// are stored as-is, without re-encoding.
func (p *photoService) UploadPhoto(ctx context.Context, filename string, data []byte, caption string) (models.Photo, error) {
	log := logger.FromContext(ctx)

	photo, err := p.photoRepository.CreatePhoto(ctx, models.Photo{
		Name:    filename,
		Data:    data,
		Caption: caption,
	})
	if err != nil {
		log.Err(err).Str("filename", filename).Msg("photo creation failed")
		return models.Photo{}, fmt.Errorf("photo creation failed: %w", err)
	}

	return photo, nil
}

// Like appends username to the photo's like list. No identity check is made
// first: liking twice records the username twice.
func (p *photoService) Like(ctx context.Context, photoID, username string) error {
	log := logger.FromContext(ctx)

	if photoID == "" || username == "" {
		return ErrMissingFields
	}

	if err := p.photoRepository.AddLike(ctx, photoID, username); err != nil {
		log.Err(err).Str("photo_id", photoID).Str("username", username).Msg("adding like failed")
		return fmt.Errorf("adding like failed: %w", err)
	}

	return nil
}

// Dislike removes the first occurrence of username from the photo's like
// list.
func (p *photoService) Dislike(ctx context.Context, photoID, username string) error {
	log := logger.FromContext(ctx)

	if photoID == "" || username == "" {
		return ErrMissingFields
	}

	if err := p.photoRepository.RemoveLike(ctx, photoID, username); err != nil {
		log.Err(err).Str("photo_id", photoID).Str("username", username).Msg("removing like failed")
		return fmt.Errorf("removing like failed: %w", err)
	}

	return nil
}

// Comment appends a {username, comment} pair to the photo. The username is
// free text: it is not required to belong to a registered account.
func (p *photoService) Comment(ctx context.Context, photoID, username, comment string) error {
	log := logger.FromContext(ctx)

	if photoID == "" || username == "" {
		return ErrMissingFields
	}

	err := p.photoRepository.AddComment(ctx, photoID, models.Comment{
		Username: username,
		Comment:  comment,
	})
	if err != nil {
		log.Err(err).Str("photo_id", photoID).Str("username", username).Msg("adding comment failed")
		return fmt.Errorf("adding comment failed: %w", err)
	}

	return nil
}

// ListAll returns every stored photo in store order.
func (p *photoService) ListAll(ctx context.Context) ([]models.Photo, error) {
	log := logger.FromContext(ctx)

	photos, err := p.photoRepository.ListPhotos(ctx)
	if err != nil {
		log.Err(err).Msg("listing photos failed")
		return nil, fmt.Errorf("listing photos failed: %w", err)
	}

	return photos, nil
}
