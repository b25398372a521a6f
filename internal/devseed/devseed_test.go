package devseed_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postboard/placeholder_sdk_go/internal/devseed"
)

func TestDefaultSeed(t *testing.T) {
	seed := devseed.Default()
	require.Len(t, seed.Users, 2)
	require.Len(t, seed.Posts, 4)
	require.Len(t, seed.Comments, 3)
	assert.Equal(t, "-37.3159", seed.Users[0].Address.Geo.Lat)
	assert.Equal(t, "Romaguera-Crona", seed.Users[0].Company.Name)
	assert.Equal(t, 3, seed.Posts[3].UserID, "post 4 points at a user that does not exist")
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	content := `{"posts":[{"id":7,"userId":1,"title":"t","body":"b"}],"users":[{"id":1,"name":"n"}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	seed, err := devseed.Load(path)
	require.NoError(t, err)
	require.Len(t, seed.Posts, 1)
	assert.Equal(t, 7, seed.Posts[0].ID)
	assert.Equal(t, "t", seed.Posts[0].Title)
}

func TestParseRejectsDuplicateIDs(t *testing.T) {
	_, err := devseed.Parse([]byte("posts:\n  - id: 1\n  - id: 1\n"))
	assert.Error(t, err)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := devseed.Parse([]byte("albums:\n  - id: 1\n"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := devseed.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
