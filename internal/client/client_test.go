package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/fivetwenty-io/flickr/internal/client"
	"github.com/fivetwenty-io/flickr/pkg/flickr"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires API endpoint", func(t *testing.T) {
		t.Parallel()

		_, err := New(context.Background(), &flickr.Config{APIKey: "key"})
		require.ErrorIs(t, err, ErrEndpointRequired)
	})

	t.Run("requires API key", func(t *testing.T) {
		t.Parallel()

		_, err := New(context.Background(), &flickr.Config{Endpoint: "https://api.example.com/services/rest/"})
		require.ErrorIs(t, err, ErrAPIKeyRequired)
	})

	t.Run("rejects a token without secrets", func(t *testing.T) {
		t.Parallel()

		_, err := New(context.Background(), &flickr.Config{
			Endpoint:   "https://api.example.com/services/rest/",
			APIKey:     "key",
			OAuthToken: "token",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuring request signing")
	})

	t.Run("creates client with API key", func(t *testing.T) {
		t.Parallel()

		client, err := New(context.Background(), &flickr.Config{
			Endpoint: "https://api.example.com/services/rest/",
			APIKey:   "key",
		})
		require.NoError(t, err)
		assert.NotNil(t, client.People())
	})

	t.Run("creates client with OAuth credentials", func(t *testing.T) {
		t.Parallel()

		client, err := New(context.Background(), &flickr.Config{
			Endpoint:         "https://api.example.com/services/rest/",
			APIKey:           "key",
			SharedSecret:     "secret",
			OAuthToken:       "token",
			OAuthTokenSecret: "token-secret",
		})
		require.NoError(t, err)
		assert.NotNil(t, client.People())
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_People_EndToEnd(t *testing.T) {
	t.Parallel()

	t.Run("sends a form encoded call", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodPost, request.Method)
			assert.Equal(t, "/services/rest/", request.URL.Path)
			assert.Equal(t, "application/x-www-form-urlencoded", request.Header.Get("Content-Type"))
			assert.Empty(t, request.Header.Get("Authorization"))

			require.NoError(t, request.ParseForm())
			assert.Equal(t, flickr.MethodGetPublicPhotos, request.PostForm.Get("method"))
			assert.Equal(t, "12037949754@N01", request.PostForm.Get("user_id"))
			assert.Equal(t, "5", request.PostForm.Get("per_page"))
			assert.Equal(t, "test-key", request.PostForm.Get("api_key"))
			assert.Equal(t, "json", request.PostForm.Get("format"))
			assert.Equal(t, "1", request.PostForm.Get("nojsoncallback"))
			assert.False(t, request.PostForm.Has("extras"))

			writer.Header().Set("Content-Type", "application/json")
			_, _ = writer.Write([]byte(`{"photos":{"page":1,"pages":1,"perpage":5,"total":1,"photo":[
				{"id":"1","owner":"12037949754@N01","secret":"x","server":"1","farm":1,"title":"t","ispublic":1,"isfriend":0,"isfamily":0}
			]},"stat":"ok"}`))
		}))
		defer server.Close()

		client, err := New(context.Background(), &flickr.Config{
			Endpoint: server.URL + "/services/rest/",
			APIKey:   "test-key",
		})
		require.NoError(t, err)

		list, err := client.People().GetPublicPhotos(context.Background(), "12037949754@N01", &flickr.PhotosParams{PerPage: 5})
		require.NoError(t, err)
		require.Len(t, list.Items, 1)
		assert.Equal(t, "1", list.Items[0].ID)
	})

	t.Run("signs requests when a token is configured", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authorization := request.Header.Get("Authorization")
			assert.True(t, strings.HasPrefix(authorization, "OAuth "))
			assert.Contains(t, authorization, `oauth_consumer_key="test-key"`)
			assert.Contains(t, authorization, `oauth_token="user-token"`)

			_, _ = writer.Write([]byte(`{"user":{"id":"1@N01","ispro":0,
				"bandwidth":{"max":1,"used":0,"maxbytes":1,"usedbytes":0,"remainingbytes":1,"maxkb":0,"usedkb":0,"remainingkb":0,"unlimited":0},
				"filesize":{"max":"1"}},"stat":"ok"}`))
		}))
		defer server.Close()

		client, err := New(context.Background(), &flickr.Config{
			Endpoint:         server.URL,
			APIKey:           "test-key",
			SharedSecret:     "app-secret",
			OAuthToken:       "user-token",
			OAuthTokenSecret: "user-secret",
		})
		require.NoError(t, err)

		user, err := client.People().GetUploadStatus(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "1@N01", user.ID)
		assert.False(t, user.Bandwidth.Unlimited)
	})

	t.Run("service failure", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			_, _ = writer.Write([]byte(`{"stat":"fail","code":100,"message":"Invalid API Key (Key has invalid format)"}`))
		}))
		defer server.Close()

		client, err := New(context.Background(), &flickr.Config{Endpoint: server.URL, APIKey: "bad"})
		require.NoError(t, err)

		_, err = client.People().FindByUsername(context.Background(), "bees")
		require.Error(t, err)
		assert.True(t, flickr.IsServiceError(err))
		assert.True(t, flickr.IsUnauthorized(err))
		assert.Contains(t, err.Error(), "Invalid API Key")
	})

	t.Run("HTTP failure", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client, err := New(context.Background(), &flickr.Config{Endpoint: server.URL, APIKey: "key"})
		require.NoError(t, err)

		_, err = client.People().GetInfo(context.Background(), "1@N01")
		require.Error(t, err)
		assert.True(t, flickr.IsTransportError(err))
		assert.True(t, flickr.IsRetryable(err))
	})

	t.Run("runs interceptors", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "people-test", request.Header.Get("X-Request-Source"))
			_, _ = writer.Write([]byte(`{"groups":{"group":[]},"stat":"ok"}`))
		}))
		defer server.Close()

		var seen atomic.Int32

		chain := flickr.NewInterceptorChain()
		chain.AddRequestInterceptor(flickr.HeaderInterceptor(map[string]string{"X-Request-Source": "people-test"}))
		chain.AddResponseInterceptor(func(_ context.Context, req *flickr.RequestInfo, resp *flickr.ResponseInfo) error {
			assert.Equal(t, flickr.MethodGetPublicGroups, req.APIMethod)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			seen.Add(1)

			return nil
		})

		client, err := New(context.Background(), &flickr.Config{
			Endpoint:     server.URL,
			APIKey:       "key",
			Interceptors: chain,
		})
		require.NoError(t, err)

		groups, err := client.People().GetPublicGroups(context.Background(), "1@N01")
		require.NoError(t, err)
		assert.Empty(t, groups)
		assert.Equal(t, int32(1), seen.Load())
	})
}
