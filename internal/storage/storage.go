package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=storage.go -destination=mocks/mocks.go -package=mocks

const DefaultPresignedURLExpiry = 15 * time.Minute

var (
	ErrObjectNotFound      = errors.New("object not found in storage")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)

// FileStorage is the object store behind progress photos.
type FileStorage interface {
	// GeneratePresignedUploadURL returns a URL the client can PUT the object to.
	// The upload must carry the same Content-Type.
	GeneratePresignedUploadURL(ctx context.Context, objectKey, contentType string, expires time.Duration) (string, error)
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)
	// ObjectSize returns ErrObjectNotFound when nothing was uploaded under the key.
	ObjectSize(ctx context.Context, objectKey string) (int64, error)
	DeleteObject(ctx context.Context, objectKey string) error
}

var photoExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/heic": "heic",
	"image/webp": "webp",
}

// ProgressPhotoKey builds a fresh object key for a client's photo:
// progress-photos/<clientID>/<uuid>.<ext>
func ProgressPhotoKey(clientID, contentType string) (string, error) {
	ext, ok := photoExtensions[strings.ToLower(contentType)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, contentType)
	}
	return fmt.Sprintf("progress-photos/%s/%s.%s", clientID, uuid.NewString(), ext), nil
}

// OwnsKey reports whether the object key was issued for the client.
func OwnsKey(clientID, objectKey string) bool {
	return strings.HasPrefix(objectKey, fmt.Sprintf("progress-photos/%s/", clientID))
}
