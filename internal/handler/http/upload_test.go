// SPDX-License-Identifier: Apache-2.0

package http

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkhasanov/photoshare/models"
)

// multipartBody builds a multipart form with the given caption and, when
// filename is non-empty, a "photo" file part carrying data.
func multipartBody(t *testing.T, caption, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	require.NoError(t, writer.WriteField("caption", caption))

	if filename != "" {
		part, err := writer.CreateFormFile("photo", filename)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUpload_WithFile(t *testing.T) {
	raw := []byte{0xFF, 0xD8, 0xFF}

	photos := &mockPhotoService{
		uploadPhotoFn: func(_ context.Context, filename string, data []byte, caption string) (models.Photo, error) {
			assert.Equal(t, "cat.jpg", filename)
			assert.Equal(t, raw, data)
			assert.Equal(t, "cat", caption)
			return models.Photo{ID: "photo-1", Name: filename, Data: data, Caption: caption}, nil
		},
	}

	h := newHandlerWithPhotos(t, photos)

	body, contentType := multipartBody(t, "cat", "cat.jpg", raw)
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.upload(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Upload successful!", rec.Body.String())
}

// TestUpload_CaptionOnly verifies that a form without a file part creates a
// caption-only photo record.
func TestUpload_CaptionOnly(t *testing.T) {
	photos := &mockPhotoService{
		submitCaptionFn: func(_ context.Context, caption string) (models.Photo, error) {
			assert.Equal(t, "sunset", caption)
			return models.Photo{ID: "photo-1", Caption: caption}, nil
		},
	}

	h := newHandlerWithPhotos(t, photos)

	body, contentType := multipartBody(t, "sunset", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.upload(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Upload successful!", rec.Body.String())
}

// A urlencoded form works for the caption-only path too.
func TestUpload_CaptionOnlyURLEncoded(t *testing.T) {
	photos := &mockPhotoService{
		submitCaptionFn: func(_ context.Context, caption string) (models.Photo, error) {
			assert.Equal(t, "sunset", caption)
			return models.Photo{ID: "photo-1", Caption: caption}, nil
		},
	}

	h := newHandlerWithPhotos(t, photos)

	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("caption=sunset"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.upload(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUpload_PersistenceError(t *testing.T) {
	photos := &mockPhotoService{
		uploadPhotoFn: func(_ context.Context, _ string, _ []byte, _ string) (models.Photo, error) {
			return models.Photo{}, assert.AnError
		},
	}

	h := newHandlerWithPhotos(t, photos)

	body, contentType := multipartBody(t, "cat", "cat.jpg", []byte{0x1})
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.upload(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to save photo")
}

// TestUpload_CaptionOnlyPersistenceError verifies that a failed caption-only
// save surfaces as an error instead of a silent success.
func TestUpload_CaptionOnlyPersistenceError(t *testing.T) {
	photos := &mockPhotoService{
		submitCaptionFn: func(_ context.Context, _ string) (models.Photo, error) {
			return models.Photo{}, assert.AnError
		},
	}

	h := newHandlerWithPhotos(t, photos)

	body, contentType := multipartBody(t, "sunset", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.upload(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
