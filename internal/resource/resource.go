// Package resource implements the request/decode cycle shared by every
// collection of the placeholder API: fetch all, fetch one, create, replace,
// patch, delete, filter and nested relationship reads.
package resource

import (
	"context"
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github.com/postboard/placeholder_sdk_go/internal/apijson"
	"github.com/postboard/placeholder_sdk_go/internal/httpx"
	"github.com/postboard/placeholder_sdk_go/pkg/filter"
)

const (
	contentTypeCreate = "application/json"
	contentTypeUpdate = "application/json; charset=UTF-8"
)

// Doer executes a prepared request. *httpx.Client implements it.
type Doer interface {
	Do(ctx context.Context, req *httpx.Request) (*http.Response, error)
}

// Client issues requests against one collection. T is the stored record, C
// the create payload and P the patch payload.
type Client[T, C, P any] struct {
	doer  Doer
	name  string
	shape apijson.Shape
}

// New binds a Client to collection name (e.g. "posts") decoding into shape.
func New[T, C, P any](doer Doer, name string, shape apijson.Shape) *Client[T, C, P] {
	return &Client[T, C, P]{doer: doer, name: name, shape: shape}
}

// Name returns the collection path segment.
func (c *Client[T, C, P]) Name() string {
	return c.name
}

// FetchAll lists the whole collection.
func (c *Client[T, C, P]) FetchAll(ctx context.Context) ([]T, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	return c.list(ctx, c.name, "")
}

// FetchOne reads a single record.
func (c *Client[T, C, P]) FetchOne(ctx context.Context, id int) (*T, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	body, err := c.send(ctx, http.MethodGet, c.itemPath(id), "", nil, "")
	if err != nil {
		return nil, err
	}
	return c.decodeOne(body, "fetch")
}

// Create posts payload to the collection. The server assigns the id.
func (c *Client[T, C, P]) Create(ctx context.Context, payload C) (*T, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	body, err := c.send(ctx, http.MethodPost, c.name, "", payload, contentTypeCreate)
	if err != nil {
		return nil, err
	}
	return c.decodeOne(body, "create")
}

// Update replaces record id with payload.
func (c *Client[T, C, P]) Update(ctx context.Context, id int, payload T) (*T, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	body, err := c.send(ctx, http.MethodPut, c.itemPath(id), "", payload, contentTypeUpdate)
	if err != nil {
		return nil, err
	}
	return c.decodeOne(body, "update")
}

// Patch sends only the fields present in payload.
func (c *Client[T, C, P]) Patch(ctx context.Context, id int, payload P) (*T, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	body, err := c.send(ctx, http.MethodPatch, c.itemPath(id), "", payload, contentTypeUpdate)
	if err != nil {
		return nil, err
	}
	return c.decodeOne(body, "patch")
}

// Delete removes record id. The response body is discarded.
func (c *Client[T, C, P]) Delete(ctx context.Context, id int) error {
	if err := c.ready(); err != nil {
		return err
	}
	_, err := c.send(ctx, http.MethodDelete, c.itemPath(id), "", nil, "")
	return err
}

// Filter lists the collection restricted by criteria. No criteria behaves
// like FetchAll.
func (c *Client[T, C, P]) Filter(ctx context.Context, criteria []filter.Criterion) ([]T, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	return c.list(ctx, c.name, filter.String(criteria))
}

// FetchNested lists related records of type R under /{name}/{id}/{relation}.
func FetchNested[R, T, C, P any](ctx context.Context, c *Client[T, C, P], id int, relation string, shape apijson.Shape) ([]R, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	path := c.itemPath(id) + "/" + relation
	body, err := c.send(ctx, http.MethodGet, path, "", nil, "")
	if err != nil {
		return nil, err
	}
	out, err := apijson.DecodeList[R](body, shape)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: decode %s of %d", c.name, relation, id)
	}
	return out, nil
}

func (c *Client[T, C, P]) list(ctx context.Context, path, rawQuery string) ([]T, error) {
	body, err := c.send(ctx, http.MethodGet, path, rawQuery, nil, "")
	if err != nil {
		return nil, err
	}
	out, err := apijson.DecodeList[T](body, c.shape)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: decode list", c.name)
	}
	return out, nil
}

func (c *Client[T, C, P]) decodeOne(body []byte, op string) (*T, error) {
	out, err := apijson.DecodeOne[T](body, c.shape)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: decode %s response", c.name, op)
	}
	return out, nil
}

// ErrNilClient is returned by every method of a nil or zero Client.
var ErrNilClient = errors.New("resource: client is nil")

func (c *Client[T, C, P]) ready() error {
	if c == nil || c.doer == nil {
		return ErrNilClient
	}
	return nil
}

func (c *Client[T, C, P]) itemPath(id int) string {
	return c.name + "/" + strconv.Itoa(id)
}

func (c *Client[T, C, P]) send(ctx context.Context, method, path, rawQuery string, payload any, contentType string) ([]byte, error) {
	req := &httpx.Request{
		Method:   method,
		Path:     path,
		RawQuery: rawQuery,
	}
	if payload != nil {
		body, getBody, err := httpx.JSONBody(payload)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: encode %s payload", c.name, method)
		}
		req.Body = body
		req.GetBody = getBody
		req.Header = http.Header{"Content-Type": {contentType}}
	}
	resp, err := c.doer.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	return httpx.ReadAllAndClose(resp.Body)
}
