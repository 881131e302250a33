package menu

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeImages(t *testing.T) {
	images := []Image{
		{Data: []byte{0xFF, 0xD8}, MimeType: "image/jpeg"},
		{Data: []byte("RIFF....WEBP"), MimeType: "image/webp"},
		{Data: []byte{0x00}, MimeType: "application/octet-stream"},
	}

	encoded := EncodeImages(images)
	require.Len(t, encoded, 3)

	assert.Equal(t, "image/jpeg", encoded[0].MimeType)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte{0xFF, 0xD8}), encoded[0].Data)
	assert.Equal(t, "image/webp", encoded[1].MimeType)
	assert.Equal(t, "image/jpeg", encoded[2].MimeType, "unknown types fall back to jpeg")
}

func TestCheckImages(t *testing.T) {
	assert.ErrorIs(t, CheckImages(nil), ErrNoImages)
	assert.NoError(t, CheckImages([]Image{{Data: []byte{1}, MimeType: "image/png"}}))
}

func TestUnavailable(t *testing.T) {
	a := Unavailable{Err: ErrMissingCredential}
	_, err := a.Analyze(context.Background(), []Image{{Data: []byte{1}}}, "English")
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestStatusError(t *testing.T) {
	assert.True(t, errors.Is(StatusError("x", 401, ""), ErrInvalidCredential))
	assert.True(t, errors.Is(StatusError("x", 403, ""), ErrInvalidCredential))
	assert.True(t, errors.Is(StatusError("x", 500, "boom"), ErrUpstream))
	assert.False(t, errors.Is(StatusError("x", 429, ""), ErrInvalidCredential))
}

func TestMentionsAPIKey(t *testing.T) {
	assert.True(t, MentionsAPIKey("API key not valid. Please pass a valid API key."))
	assert.True(t, MentionsAPIKey("invalid api_key"))
	assert.False(t, MentionsAPIKey("quota exceeded"))
}

func TestPromptMentionsTargetLanguage(t *testing.T) {
	p := Prompt("Traditional Chinese")
	assert.Contains(t, p, "into Traditional Chinese")
	assert.Contains(t, p, "orderingPhrase")
}

func TestResultEmpty(t *testing.T) {
	var r *Result
	assert.True(t, r.Empty())
	assert.True(t, (&Result{}).Empty())
}
