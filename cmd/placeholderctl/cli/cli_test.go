package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postboard/placeholder_sdk_go/internal/httpx"
	"github.com/postboard/placeholder_sdk_go/pkg/filter"
	"github.com/postboard/placeholder_sdk_go/pkg/model"
)

func init() {
	color.NoColor = true
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--mode", "mock"}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func runJSON(t *testing.T, v any, args ...string) {
	t.Helper()
	out, err := run(t, append(args, "--json")...)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), v), out)
}

func TestPostsList(t *testing.T) {
	var posts []model.Post
	runJSON(t, &posts, "posts", "list")
	require.Len(t, posts, 4)
	assert.Equal(t, 1, posts[0].ID)
}

func TestPostsListWhere(t *testing.T) {
	var posts []model.Post
	runJSON(t, &posts, "posts", "list", "--where", "userId=1")
	require.Len(t, posts, 2)
	for _, p := range posts {
		assert.Equal(t, 1, p.UserID)
	}
}

func TestPostsListMalformedWhere(t *testing.T) {
	_, err := run(t, "posts", "list", "--where", "userId")
	assert.ErrorIs(t, err, filter.ErrMalformed)
}

func TestPostsTableOutput(t *testing.T) {
	out, err := run(t, "posts", "list", "--width", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "qui est esse")
	assert.NotContains(t, out, "occaecati excepturi optio reprehenderit")
}

func TestPostsComputed(t *testing.T) {
	var computed []model.ComputedPost
	runJSON(t, &computed, "posts", "computed")
	require.Len(t, computed, 4)
	require.NotNil(t, computed[0].User)
	assert.Equal(t, "Leanne Graham", computed[0].User.Name)
	assert.Nil(t, computed[3].User)

	out, err := run(t, "posts", "computed")
	require.NoError(t, err)
	assert.Contains(t, out, "Ervin Howell (@Antonette)")
	assert.Contains(t, out, "(unknown user)")
}

func TestPostsPatchSendsOnlyChangedFlags(t *testing.T) {
	var before, after model.Post
	runJSON(t, &before, "posts", "get", "1")
	runJSON(t, &after, "posts", "patch", "1", "--title", "renamed")
	assert.Equal(t, "renamed", after.Title)
	assert.Equal(t, before.Body, after.Body)
	assert.Equal(t, before.UserID, after.UserID)
}

func TestPostsCreate(t *testing.T) {
	var post model.Post
	runJSON(t, &post, "posts", "create", "--title", "t", "--body", "b", "--user-id", "2")
	assert.Equal(t, 5, post.ID)
	assert.Equal(t, model.PostBase{Title: "t", Body: "b", UserID: 2}, post.PostBase)
}

func TestPostsComments(t *testing.T) {
	var comments []model.Comment
	runJSON(t, &comments, "posts", "comments", "1")
	require.Len(t, comments, 2)
	for _, c := range comments {
		assert.Equal(t, 1, c.PostID)
	}
}

func TestPostsGetInvalidID(t *testing.T) {
	_, err := run(t, "posts", "get", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid id")
}

func TestPostsGetMissing(t *testing.T) {
	_, err := run(t, "posts", "get", "99")
	require.Error(t, err)
	assert.True(t, httpx.IsNotFound(err), err.Error())
}

func TestPostsDelete(t *testing.T) {
	out, err := run(t, "posts", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "post 1")
}

func TestCommentsListWhere(t *testing.T) {
	var comments []model.Comment
	runJSON(t, &comments, "comments", "list", "-w", "postId=2")
	require.Len(t, comments, 1)
	assert.Equal(t, 3, comments[0].ID)
}

func TestCommentsUpdate(t *testing.T) {
	var c model.Comment
	runJSON(t, &c, "comments", "update", "2", "--post-id", "1", "--name", "n", "--email", "e@x.io", "--body", "b")
	assert.Equal(t, model.Comment{ID: 2, CommentBase: model.CommentBase{PostID: 1, Name: "n", Email: "e@x.io", Body: "b"}}, c)
}

func TestUsersGetTable(t *testing.T) {
	out, err := run(t, "users", "get", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Leanne Graham")
	assert.Contains(t, out, "Gwenborough")
	assert.Contains(t, out, "Romaguera-Crona")
}

func TestUsersCreateFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.yaml")
	data := []byte(`name: Clementine Bauch
username: Samantha
email: Nathan@yesenia.net
address:
  street: Douglas Extension
  suite: Suite 847
  city: McKenziehaven
  zipcode: 59590-4157
  geo:
    lat: "-68.6102"
    lng: "-47.0653"
phone: 1-463-123-4447
website: ramiro.info
company:
  name: Romaguera-Jacobson
  catchPhrase: Face to face bifurcated interface
  bs: e-enable strategic applications
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	var u model.User
	runJSON(t, &u, "users", "create", "--file", path, "--email", "override@example.com")
	assert.Equal(t, 3, u.ID)
	assert.Equal(t, "Samantha", u.Username)
	assert.Equal(t, "override@example.com", u.Email)
	assert.Equal(t, "-68.6102", u.Address.Geo.Lat)
	assert.Equal(t, "Romaguera-Jacobson", u.Company.Name)
}

func TestUsersCreateRejectsUnknownFileKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: x\nnickname: y\n"), 0o600))
	_, err := run(t, "users", "create", "--file", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse user file")
}

func TestUsersPosts(t *testing.T) {
	var posts []model.Post
	runJSON(t, &posts, "users", "posts", "2")
	require.Len(t, posts, 1)
	assert.Equal(t, 3, posts[0].ID)
}

func TestUnsupportedMode(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--mode", "grpc", "posts", "list"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")
}
