package posts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postboard/placeholder_sdk_go/pkg/model"
	"github.com/postboard/placeholder_sdk_go/pkg/posts"
)

func post(id, userID int) model.Post {
	return model.Post{ID: id, PostBase: model.PostBase{UserID: userID}}
}

func user(id int, name string) model.User {
	return model.User{ID: id, UserBase: model.UserBase{Name: name}}
}

func TestComputePreservesOrderAndMarksMissing(t *testing.T) {
	got := posts.Compute(
		[]model.Post{post(3, 2), post(1, 5), post(2, 99)},
		[]model.User{user(5, "five"), user(2, "two")},
	)
	require.Len(t, got, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, "two", got[0].User.Name)
	assert.Equal(t, "five", got[1].User.Name)
	assert.Nil(t, got[2].User)
}

func TestComputeFirstMatchingUserWins(t *testing.T) {
	got := posts.Compute([]model.Post{post(1, 7)}, []model.User{user(7, "first"), user(7, "second")})
	require.Len(t, got, 1)
	assert.Equal(t, "first", got[0].User.Name)
}

func TestComputeEmptyPosts(t *testing.T) {
	got := posts.Compute(nil, []model.User{user(1, "one")})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestComputeDoesNotAliasInputs(t *testing.T) {
	users := []model.User{user(1, "one")}
	got := posts.Compute([]model.Post{post(1, 1), post(2, 1)}, users)
	got[0].User.Name = "changed"
	assert.Equal(t, "one", users[0].Name)
	assert.Equal(t, "one", got[1].User.Name)
}
