// Package comments provides a client for the /comments collection of the
// placeholder REST API.
package comments

import (
	"context"

	"github.com/postboard/placeholder_sdk_go/internal/apijson"
	"github.com/postboard/placeholder_sdk_go/internal/httpx"
	"github.com/postboard/placeholder_sdk_go/internal/resource"
	"github.com/postboard/placeholder_sdk_go/pkg/filter"
	"github.com/postboard/placeholder_sdk_go/pkg/model"
)

// Client provides access to /comments.
type Client struct {
	res *resource.Client[model.Comment, model.CommentBase, model.CommentPatch]
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
		res: resource.New[model.Comment, model.CommentBase, model.CommentPatch](doer, "comments", apijson.ShapeComment),
	}
}

func (c *Client) FetchAll(ctx context.Context) ([]model.Comment, error) {
	return c.res.FetchAll(ctx)
}

func (c *Client) FetchOne(ctx context.Context, id int) (*model.Comment, error) {
	return c.res.FetchOne(ctx, id)
}

func (c *Client) Create(ctx context.Context, payload model.CommentBase) (*model.Comment, error) {
	return c.res.Create(ctx, payload)
}

// Update replaces the comment identified by payload.ID.
func (c *Client) Update(ctx context.Context, payload model.Comment) (*model.Comment, error) {
	return c.res.Update(ctx, payload.ID, payload)
}

// Patch modifies only the fields set on payload.
func (c *Client) Patch(ctx context.Context, payload model.CommentPatch) (*model.Comment, error) {
	return c.res.Patch(ctx, payload.ID, payload)
}

func (c *Client) Delete(ctx context.Context, id int) error {
	return c.res.Delete(ctx, id)
}

// Filter returns the comments matching every criterion, e.g. postId=1.
func (c *Client) Filter(ctx context.Context, criteria []filter.Criterion) ([]model.Comment, error) {
	return c.res.Filter(ctx, criteria)
}
