package users_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postboard/placeholder_sdk_go/internal/httpx"
	"github.com/postboard/placeholder_sdk_go/pkg/filter"
	"github.com/postboard/placeholder_sdk_go/pkg/model"
	"github.com/postboard/placeholder_sdk_go/pkg/placeholder/mock"
	"github.com/postboard/placeholder_sdk_go/pkg/users"
)

func mockClient(t *testing.T) (*users.Client, *mock.Mock) {
	t.Helper()
	store, err := mock.NewSeeded(nil)
	require.NoError(t, err)
	cl, err := httpx.NewClient("http://placeholder.test", httpx.WithTransport(mock.Transport(mock.Handler(store))))
	require.NoError(t, err)
	return users.NewWithDoer(cl), store
}

func TestUserNestedRecordsRoundTrip(t *testing.T) {
	uc, _ := mockClient(t)
	ctx := context.Background()

	u, err := uc.FetchOne(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Bret", u.Username)
	assert.Equal(t, "Gwenborough", u.Address.City)
	assert.Equal(t, "-37.3159", u.Address.Geo.Lat)
	assert.Equal(t, "Romaguera-Crona", u.Company.Name)

	created, err := uc.Create(ctx, model.UserBase{
		Name:     "Kurtis Weissnat",
		Username: "Elwyn.Skiles",
		Email:    "Telly.Hoeger@billy.biz",
		Address:  model.Address{City: "Howemouth", Geo: model.Geo{Lat: "24.8918", Lng: "21.8984"}},
		Company:  model.Company{Name: "Johns Group", CatchPhrase: "Configurable multimedia task-force", BS: "generate enterprise e-tailers"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, created.ID)
	assert.Equal(t, "21.8984", created.Address.Geo.Lng)
	assert.Equal(t, "generate enterprise e-tailers", created.Company.BS)
}

func TestUserPatchKeepsOtherFields(t *testing.T) {
	uc, _ := mockClient(t)
	ctx := context.Background()

	patched, err := uc.Patch(ctx, model.UserPatch{ID: 2, Website: model.Ptr("example.org")})
	require.NoError(t, err)
	assert.Equal(t, "example.org", patched.Website)
	assert.Equal(t, "Antonette", patched.Username)
	assert.Equal(t, "Wisokyburgh", patched.Address.City)

	replaced, err := uc.Update(ctx, model.User{ID: 2, UserBase: model.UserBase{Name: "Only Name"}})
	require.NoError(t, err)
	assert.Equal(t, "Only Name", replaced.Name)
	assert.Equal(t, "", replaced.Username)
}

func TestUserFetchPostsAndFilter(t *testing.T) {
	uc, _ := mockClient(t)
	ctx := context.Background()

	posts, err := uc.FetchPosts(ctx, 1)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	for _, p := range posts {
		assert.Equal(t, 1, p.UserID)
	}

	none, err := uc.FetchPosts(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, none)

	found, err := uc.Filter(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestUserFilterQueryAndDelete(t *testing.T) {
	var lastQuery, lastMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastQuery, lastMethod = r.URL.RawQuery, r.Method
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodDelete {
			io.WriteString(w, `{}`)
			return
		}
		io.WriteString(w, `[{"id":1,"username":"Bret"}]`)
	}))
	defer srv.Close()

	uc, err := users.New(srv.URL)
	require.NoError(t, err)
	ctx := context.Background()

	got, err := uc.Filter(ctx, filter.FromPairs("username", "Bret", "email", "Sincere@april.biz"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "username=Bret&email=Sincere%40april.biz", lastQuery)

	require.NoError(t, uc.Delete(ctx, 1))
	assert.Equal(t, http.MethodDelete, lastMethod)
}
