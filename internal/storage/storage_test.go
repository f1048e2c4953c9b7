package storage

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressPhotoKey(t *testing.T) {
	key, err := ProgressPhotoKey("c1", "image/JPEG")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^progress-photos/c1/[0-9a-f-]{36}\.jpg$`), key)
	assert.True(t, OwnsKey("c1", key))
	assert.False(t, OwnsKey("c2", key))

	other, err := ProgressPhotoKey("c1", "image/png")
	require.NoError(t, err)
	assert.NotEqual(t, key, other)

	_, err = ProgressPhotoKey("c1", "video/mp4")
	assert.ErrorIs(t, err, ErrUnsupportedFileType)
}
