// Package users provides a client for the /users collection of the
// placeholder REST API and its nested posts route. Address and company are
// exchanged as nested JSON objects.
package users

import (
	"context"

	"github.com/postboard/placeholder_sdk_go/internal/apijson"
	"github.com/postboard/placeholder_sdk_go/internal/httpx"
	"github.com/postboard/placeholder_sdk_go/internal/resource"
	"github.com/postboard/placeholder_sdk_go/pkg/filter"
	"github.com/postboard/placeholder_sdk_go/pkg/model"
)

// Client provides access to /users.
type Client struct {
	res *resource.Client[model.User, model.UserBase, model.UserPatch]
}

// New constructs a Client bound to the provided base URL.
func New(baseURL string, opts ...httpx.Option) (*Client, error) {
	cl, err := httpx.NewClient(baseURL, opts...)
	if err != nil {
		return nil, err
	}
	return NewWithDoer(cl), nil
}

// NewWithDoer wraps an existing transport.
func NewWithDoer(doer resource.Doer) *Client {
	return &Client{
		res: resource.New[model.User, model.UserBase, model.UserPatch](doer, "users", apijson.ShapeUser),
	}
}

// FetchAll returns every user.
func (c *Client) FetchAll(ctx context.Context) ([]model.User, error) {
	return c.res.FetchAll(ctx)
}

// FetchOne returns user id.
func (c *Client) FetchOne(ctx context.Context, id int) (*model.User, error) {
	return c.res.FetchOne(ctx, id)
}

// Create stores a new user.
func (c *Client) Create(ctx context.Context, payload model.UserBase) (*model.User, error) {
	return c.res.Create(ctx, payload)
}

// Update replaces the user identified by payload.ID.
func (c *Client) Update(ctx context.Context, payload model.User) (*model.User, error) {
	return c.res.Update(ctx, payload.ID, payload)
}

// Patch modifies only the fields set on payload.
func (c *Client) Patch(ctx context.Context, payload model.UserPatch) (*model.User, error) {
	return c.res.Patch(ctx, payload.ID, payload)
}

// Delete removes user id.
func (c *Client) Delete(ctx context.Context, id int) error {
	return c.res.Delete(ctx, id)
}

// Filter returns the users matching every criterion.
func (c *Client) Filter(ctx context.Context, criteria []filter.Criterion) ([]model.User, error) {
	return c.res.Filter(ctx, criteria)
}

// FetchPosts returns the posts written by user userID.
func (c *Client) FetchPosts(ctx context.Context, userID int) ([]model.Post, error) {
	return resource.FetchNested[model.Post](ctx, c.res, userID, "posts", apijson.ShapePost)
}
