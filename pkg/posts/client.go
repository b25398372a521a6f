package posts

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/postboard/placeholder_sdk_go/internal/apijson"
	"github.com/postboard/placeholder_sdk_go/internal/httpx"
	"github.com/postboard/placeholder_sdk_go/internal/resource"
	"github.com/postboard/placeholder_sdk_go/pkg/filter"
	"github.com/postboard/placeholder_sdk_go/pkg/model"
)

// ErrNoUserSource is returned by FetchComputed when posts exist but the client
// was built without a UserLister.
var ErrNoUserSource = errors.New("posts: no user source configured")

// UserLister supplies the full user collection. *users.Client implements it.
type UserLister interface {
	FetchAll(ctx context.Context) ([]model.User, error)
}

// Client provides access to /posts.
type Client struct {
	res   *resource.Client[model.Post, model.PostBase, model.PostPatch]
	users UserLister
}

// New constructs a Client bound to the provided base URL. users may be nil
// when FetchComputed is not needed.
func New(baseURL string, users UserLister, opts ...httpx.Option) (*Client, error) {
	cl, err := httpx.NewClient(baseURL, opts...)
	if err != nil {
		return nil, err
	}
	return NewWithDoer(cl, users), nil
}

// NewWithDoer wraps an existing transport, e.g. a shared *httpx.Client.
func NewWithDoer(doer resource.Doer, users UserLister) *Client {
	return &Client{
		res:   resource.New[model.Post, model.PostBase, model.PostPatch](doer, "posts", apijson.ShapePost),
		users: users,
	}
}

// FetchAll returns every post.
func (c *Client) FetchAll(ctx context.Context) ([]model.Post, error) {
	return c.res.FetchAll(ctx)
}

// FetchOne returns post id.
func (c *Client) FetchOne(ctx context.Context, id int) (*model.Post, error) {
	return c.res.FetchOne(ctx, id)
}

// Create stores a new post and returns it with its server-assigned id.
func (c *Client) Create(ctx context.Context, payload model.PostBase) (*model.Post, error) {
	return c.res.Create(ctx, payload)
}

// Update replaces the post identified by payload.ID.
func (c *Client) Update(ctx context.Context, payload model.Post) (*model.Post, error) {
	return c.res.Update(ctx, payload.ID, payload)
}

// Patch modifies only the fields set on payload.
func (c *Client) Patch(ctx context.Context, payload model.PostPatch) (*model.Post, error) {
	return c.res.Patch(ctx, payload.ID, payload)
}

// Delete removes post id.
func (c *Client) Delete(ctx context.Context, id int) error {
	return c.res.Delete(ctx, id)
}

// Filter returns the posts matching every criterion.
func (c *Client) Filter(ctx context.Context, criteria []filter.Criterion) ([]model.Post, error) {
	return c.res.Filter(ctx, criteria)
}

// FetchComments returns the comments attached to post postID.
func (c *Client) FetchComments(ctx context.Context, postID int) ([]model.Comment, error) {
	return resource.FetchNested[model.Comment](ctx, c.res, postID, "comments", apijson.ShapeComment)
}

// FetchComputed fetches posts and users concurrently and returns every post
// decorated with its user, in post order. Either fetch failing fails the call.
// Without a UserLister only an empty post collection can be computed; any
// other result is ErrNoUserSource.
func (c *Client) FetchComputed(ctx context.Context) ([]model.ComputedPost, error) {
	if c.users == nil {
		posts, err := c.res.FetchAll(ctx)
		if err != nil {
			return nil, err
		}
		if len(posts) > 0 {
			return nil, ErrNoUserSource
		}
		return []model.ComputedPost{}, nil
	}

	var (
		posts []model.Post
		users []model.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = c.users.FetchAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		posts, err = c.res.FetchAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return Compute(posts, users), nil
}
