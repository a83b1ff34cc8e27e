package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/rkhasanov/photoshare/internal/logger"
	"github.com/rkhasanov/photoshare/internal/utils"
	"github.com/rkhasanov/photoshare/models"
)

// sqlitePhotoRepository adapts [photoRepository] to the SQLite backend.
// The create/get/list paths are inherited unchanged; the like/comment
// mutations are re-implemented as read-modify-write cycles inside a
// transaction, since SQLite has no server-side JSON array append that covers
// the remove-first-occurrence case. SQLite serializes writers, so the
// transaction keeps each cycle atomic with respect to concurrent callers.
type sqlitePhotoRepository struct {
	*photoRepository
}

// NewSQLitePhotoRepository constructs a [PhotoRepository] backed by a SQLite
// database handle.
func NewSQLitePhotoRepository(db *DB, logger *logger.Logger) PhotoRepository {
	logger.Debug().Msg("creating sqlite photo repository")
	return &sqlitePhotoRepository{
		photoRepository: &photoRepository{
			db:     db,
			logger: logger,
			idGen:  utils.NewUUIDGenerator(),
		},
	}
}

// AddLike appends username to the photo's like list. Duplicates are
// intentionally preserved.
func (r *sqlitePhotoRepository) AddLike(ctx context.Context, photoID, username string) error {
	return r.mutateLikes(ctx, photoID, func(likes []string) ([]string, error) {
		return append(likes, username), nil
	})
}

// RemoveLike removes the first occurrence of username from the photo's like
// list, or reports [ErrLikeNotFound] if it is absent.
func (r *sqlitePhotoRepository) RemoveLike(ctx context.Context, photoID, username string) error {
	return r.mutateLikes(ctx, photoID, func(likes []string) ([]string, error) {
		idx := slices.Index(likes, username)
		if idx < 0 {
			return nil, ErrLikeNotFound
		}
		return slices.Delete(likes, idx, idx+1), nil
	})
}

// AddComment appends the {username, comment} pair to the photo's comment list.
func (r *sqlitePhotoRepository) AddComment(ctx context.Context, photoID string, comment models.Comment) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var raw []byte
	if err := tx.QueryRowContext(ctx, getPhotoCommentsSQLite, photoID).Scan(&raw); err != nil {
		if isNoRows(err) {
			return ErrPhotoNotFound
		}
		log.Err(err).Str("func", "*sqlitePhotoRepository.AddComment").Msg("error reading comments")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var comments []models.Comment
	if err := json.Unmarshal(raw, &comments); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	updated, err := json.Marshal(append(comments, comment))
	if err != nil {
		return fmt.Errorf("error marshaling comments: %w", err)
	}

	if _, err := tx.ExecContext(ctx, setPhotoCommentsSQLite, updated, photoID); err != nil {
		log.Err(err).Str("func", "*sqlitePhotoRepository.AddComment").Msg("error writing comments")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// mutateLikes runs a transactional read-modify-write cycle over the photo's
// like list, applying mutate to the decoded slice.
func (r *sqlitePhotoRepository) mutateLikes(ctx context.Context, photoID string, mutate func([]string) ([]string, error)) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	likes, err := readLikes(ctx, tx, photoID)
	if err != nil {
		if !errors.Is(err, ErrPhotoNotFound) {
			log.Err(err).Str("func", "*sqlitePhotoRepository.mutateLikes").Msg("error reading likes")
		}
		return err
	}

	likes, err = mutate(likes)
	if err != nil {
		return err
	}

	updated, err := json.Marshal(likes)
	if err != nil {
		return fmt.Errorf("error marshaling likes: %w", err)
	}

	if _, err := tx.ExecContext(ctx, setPhotoLikesSQLite, updated, photoID); err != nil {
		log.Err(err).Str("func", "*sqlitePhotoRepository.mutateLikes").Msg("error writing likes")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func readLikes(ctx context.Context, tx *sql.Tx, photoID string) ([]string, error) {
	var raw []byte
	if err := tx.QueryRowContext(ctx, getPhotoLikesSQLite, photoID).Scan(&raw); err != nil {
		if isNoRows(err) {
			return nil, ErrPhotoNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var likes []string
	if err := json.Unmarshal(raw, &likes); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return likes, nil
}
