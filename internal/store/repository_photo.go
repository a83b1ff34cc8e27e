package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/rkhasanov/photoshare/internal/logger"
	"github.com/rkhasanov/photoshare/internal/utils"
	"github.com/rkhasanov/photoshare/models"
)

// photoRepository is the PostgreSQL-backed implementation of
// [PhotoRepository]. Photo ids are assigned here, on creation, from a UUIDv7
// generator, so callers never supply identifiers themselves.
//
// The read paths (CreatePhoto, GetPhoto, ListPhotos) are driver-agnostic and
// are reused by the SQLite backend via embedding; the like/comment mutations
// rely on PostgreSQL jsonb operators and are overridden there.
type photoRepository struct {
	logger *logger.Logger
	db     *DB
	idGen  *utils.UUIDGenerator
}

// selectPhotos is the shared column list for photo reads.
var selectPhotos = sq.Select(
	"photo_id", "name", "data", "caption", "likes", "comments", "created_at",
).From("photos").PlaceholderFormat(sq.Dollar)

// NewPhotoRepository constructs a [PhotoRepository] backed by the provided
// database handle and logger.
func NewPhotoRepository(db *DB, logger *logger.Logger) PhotoRepository {
	logger.Debug().Msg("creating photo repository")
	return &photoRepository{
		db:     db,
		logger: logger,
		idGen:  utils.NewUUIDGenerator(),
	}
}

// CreatePhoto assigns a fresh id to the photo, persists it, and returns the
// stored representation. The like and comment lists of a new photo are
// always empty; any values supplied by the caller are ignored.
func (r *photoRepository) CreatePhoto(ctx context.Context, photo models.Photo) (models.Photo, error) {
	log := logger.FromContext(ctx)

	photo.ID = r.idGen.Generate()
	photo.Likes = []string{}
	photo.Comments = []models.Comment{}

	row := r.db.QueryRowContext(ctx, createPhoto, photo.ID, photo.Name, photo.Data, photo.Caption)
	if err := row.Scan(&photo.CreatedAt); err != nil {
		log.Err(err).Str("func", "*photoRepository.CreatePhoto").Msg("error creating photo")
		return models.Photo{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return photo, nil
}

// GetPhoto returns the photo with the given id, or [ErrPhotoNotFound].
func (r *photoRepository) GetPhoto(ctx context.Context, id string) (models.Photo, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectPhotos.Where(sq.Eq{"photo_id": id}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*photoRepository.GetPhoto").Msg("error building query")
		return models.Photo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	photo, err := scanPhoto(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Photo{}, err
	}

	return photo, nil
}

// ListPhotos returns every stored photo in creation order.
func (r *photoRepository) ListPhotos(ctx context.Context) ([]models.Photo, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectPhotos.OrderBy("created_at ASC").ToSql()
	if err != nil {
		log.Err(err).Str("func", "*photoRepository.ListPhotos").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*photoRepository.ListPhotos").Msg("error listing photos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	photos := make([]models.Photo, 0)
	for rows.Next() {
		photo, err := scanPhoto(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		photos = append(photos, photo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return photos, nil
}

// AddLike appends username to the photo's like list in a single UPDATE.
// Duplicates are intentionally preserved: the append is unconditional and no
// identity check is made before it.
func (r *photoRepository) AddLike(ctx context.Context, photoID, username string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, addLike, photoID, username)
	if err != nil {
		log.Err(err).Str("func", "*photoRepository.AddLike").Msg("error adding like")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrPhotoNotFound
	}

	return nil
}

// RemoveLike removes the first occurrence of username from the photo's like
// list. The whole operation is a single UPDATE that is a no-op when the
// username is absent, so a zero-row result is disambiguated with an
// existence check afterwards.
func (r *photoRepository) RemoveLike(ctx context.Context, photoID, username string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, removeLike, photoID, username)
	if err != nil {
		log.Err(err).Str("func", "*photoRepository.RemoveLike").Msg("error removing like")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected > 0 {
		return nil
	}

	exists, err := r.photoExists(ctx, photoID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrPhotoNotFound
	}

	return ErrLikeNotFound
}

// AddComment appends the {username, comment} pair to the photo's comment
// list in a single UPDATE.
func (r *photoRepository) AddComment(ctx context.Context, photoID string, comment models.Comment) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(comment)
	if err != nil {
		return fmt.Errorf("error marshaling comment: %w", err)
	}

	res, err := r.db.ExecContext(ctx, addComment, photoID, payload)
	if err != nil {
		log.Err(err).Str("func", "*photoRepository.AddComment").Msg("error adding comment")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrPhotoNotFound
	}

	return nil
}

func (r *photoRepository) photoExists(ctx context.Context, photoID string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, photoExists, photoID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// scanPhoto reads one photo row, decoding the JSON-encoded like and comment
// sub-collections. A missing row is reported as [ErrPhotoNotFound].
func scanPhoto(row rowScanner) (models.Photo, error) {
	var photo models.Photo
	var likesRaw, commentsRaw []byte

	err := row.Scan(&photo.ID, &photo.Name, &photo.Data, &photo.Caption, &likesRaw, &commentsRaw, &photo.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return models.Photo{}, ErrPhotoNotFound
		}
		return models.Photo{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := json.Unmarshal(likesRaw, &photo.Likes); err != nil {
		return models.Photo{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if err := json.Unmarshal(commentsRaw, &photo.Comments); err != nil {
		return models.Photo{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return photo, nil
}
