package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectImageType(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
	mime, err := DetectImageType(png)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime.String())
	assert.Equal(t, ".png", mime.Extension())

	_, err = DetectImageType([]byte("just some text"))
	assert.Error(t, err)
}
