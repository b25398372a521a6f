package placeholder_sdk_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postboard/placeholder_sdk_go/pkg/model"
	"github.com/postboard/placeholder_sdk_go/pkg/placeholder_sdk"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"PLACEHOLDER_RUNTIME_MODE",
		"PLACEHOLDER_API_URL",
		"PLACEHOLDER_MOCK_SEED",
		"PLACEHOLDER_HTTP_TIMEOUT",
		"PLACEHOLDER_MAX_RETRIES",
	} {
		t.Setenv(k, "")
	}
}

func TestNewFromEnvHTTPMode(t *testing.T) {
	clearEnv(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/posts":
			io.WriteString(w, `[{"id":1,"userId":1,"title":"t","body":"b"}]`)
		case "/users":
			io.WriteString(w, `[{"id":1,"name":"Leanne Graham"}]`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	t.Setenv("PLACEHOLDER_RUNTIME_MODE", "http")
	t.Setenv("PLACEHOLDER_API_URL", srv.URL)

	clients, err := placeholder_sdk.NewFromEnv()
	require.NoError(t, err)
	assert.Equal(t, placeholder_sdk.ModeHTTP, clients.Mode)
	assert.Nil(t, clients.Mock)

	computed, err := clients.Posts.FetchComputed(context.Background())
	require.NoError(t, err)
	require.Len(t, computed, 1)
	require.NotNil(t, computed[0].User)
	assert.Equal(t, "Leanne Graham", computed[0].User.Name)
}

func TestNewFromEnvMockAutoFallback(t *testing.T) {
	clearEnv(t)

	clients, err := placeholder_sdk.NewFromEnv()
	require.NoError(t, err)
	assert.Equal(t, placeholder_sdk.ModeMock, clients.Mode)
	require.NotNil(t, clients.Mock)

	ctx := context.Background()
	created, err := clients.Comments.Create(ctx, model.CommentBase{PostID: 1, Name: "n", Email: "e@x.io", Body: "b"})
	require.NoError(t, err)
	comments, err := clients.Posts.FetchComments(ctx, 1)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, created.ID, comments[2].ID)

	computed, err := clients.Posts.FetchComputed(ctx)
	require.NoError(t, err)
	require.Len(t, computed, 4)
	assert.Nil(t, computed[3].User)
}

func TestNewFromEnvSeed(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "seed.yaml")
	seed := "users:\n  - id: 10\n    name: Seeded\nposts:\n  - id: 1\n    userId: 10\n    title: seeded post\n"
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))
	t.Setenv("PLACEHOLDER_RUNTIME_MODE", "mock")
	t.Setenv("PLACEHOLDER_MOCK_SEED", path)

	clients, err := placeholder_sdk.NewFromEnv()
	require.NoError(t, err)
	posts, err := clients.Users.FetchPosts(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "seeded post", posts[0].Title)
}

func TestConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PLACEHOLDER_RUNTIME_MODE", " HTTP ")
	t.Setenv("PLACEHOLDER_HTTP_TIMEOUT", "3s")
	t.Setenv("PLACEHOLDER_MAX_RETRIES", "2")

	cfg, err := placeholder_sdk.ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "http", cfg.Mode)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, 2, cfg.MaxRetries)

	t.Setenv("PLACEHOLDER_MAX_RETRIES", "-1")
	_, err = placeholder_sdk.ConfigFromEnv()
	assert.Error(t, err, "negative retries")

	t.Setenv("PLACEHOLDER_MAX_RETRIES", "")
	t.Setenv("PLACEHOLDER_HTTP_TIMEOUT", "soon")
	_, err = placeholder_sdk.ConfigFromEnv()
	assert.Error(t, err, "bad timeout")
}

func TestNewRejectsUnknownMode(t *testing.T) {
	_, err := placeholder_sdk.New(placeholder_sdk.Config{Mode: "grpc"})
	assert.Error(t, err)
}

func TestNewHTTPModeDefaultsBaseURL(t *testing.T) {
	clients, err := placeholder_sdk.New(placeholder_sdk.Config{Mode: placeholder_sdk.ModeHTTP})
	require.NoError(t, err)
	assert.Equal(t, placeholder_sdk.ModeHTTP, clients.Mode)
}

func TestNewMockMissingSeed(t *testing.T) {
	_, err := placeholder_sdk.New(placeholder_sdk.Config{Mode: placeholder_sdk.ModeMock, SeedPath: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}
