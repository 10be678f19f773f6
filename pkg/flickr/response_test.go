package flickr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/flickr/pkg/flickr"
)

func TestParseResponse(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		body := `{"user":{"nsid":"1@N01"},"stat":"ok"}`

		resp, err := flickr.ParseResponse([]byte(body))
		require.NoError(t, err)
		assert.False(t, resp.IsError())
		assert.JSONEq(t, body, string(resp.Payload))
	})

	t.Run("failure", func(t *testing.T) {
		t.Parallel()

		resp, err := flickr.ParseResponse([]byte(`{"stat":"fail","code":1,"message":"User not found"}`))
		require.NoError(t, err)
		assert.True(t, resp.IsError())
		assert.Equal(t, 1, resp.ErrorCode())
		assert.Equal(t, "User not found", resp.ErrorMessage())
		assert.Nil(t, resp.Payload)
	})

	t.Run("unknown stat is a failure", func(t *testing.T) {
		t.Parallel()

		resp, err := flickr.ParseResponse([]byte(`{"stat":"maintenance"}`))
		require.NoError(t, err)
		assert.True(t, resp.IsError())
	})

	t.Run("missing stat", func(t *testing.T) {
		t.Parallel()

		_, err := flickr.ParseResponse([]byte(`{"user":{}}`))

		var decodeErr *flickr.DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "stat", decodeErr.Path)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		t.Parallel()

		_, err := flickr.ParseResponse([]byte(`jsonFlickrApi({"stat":"ok"})`))
		require.ErrorIs(t, err, flickr.ErrResponseNotJSON)
		assert.True(t, flickr.IsTransportError(err))
		assert.False(t, flickr.IsDecodeError(err))
		assert.False(t, flickr.IsRetryable(err))
	})
}
