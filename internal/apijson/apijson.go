package apijson

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// ErrShape marks a body that does not match the declared resource shape.
var ErrShape = errors.New("apijson: unexpected response shape")

// Shape names a resource schema.
type Shape string

const (
	ShapePost    Shape = "post"
	ShapeComment Shape = "comment"
	ShapeUser    Shape = "user"
)

type compiled struct {
	item *gojsonschema.Schema
	list *gojsonschema.Schema
}

var (
	schemasOnce sync.Once
	schemas     map[Shape]compiled
	schemasErr  error
)

func loadSchemas() {
	schemas = make(map[Shape]compiled)
	for _, shape := range []Shape{ShapePost, ShapeComment, ShapeUser} {
		raw, err := schemaFS.ReadFile("schemas/" + string(shape) + ".schema.json")
		if err != nil {
			schemasErr = errors.Wrapf(err, "apijson: read %s schema", shape)
			return
		}
		var doc map[string]any
		if err := json.Unmarshal(raw, &doc); err != nil {
			schemasErr = errors.Wrapf(err, "apijson: parse %s schema", shape)
			return
		}
		item, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(doc))
		if err != nil {
			schemasErr = errors.Wrapf(err, "apijson: compile %s schema", shape)
			return
		}
		itemDoc := make(map[string]any, len(doc))
		for k, v := range doc {
			if k != "$schema" {
				itemDoc[k] = v
			}
		}
		list, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(map[string]any{
			"$schema": doc["$schema"],
			"type":    "array",
			"items":   itemDoc,
		}))
		if err != nil {
			schemasErr = errors.Wrapf(err, "apijson: compile %s list schema", shape)
			return
		}
		schemas[shape] = compiled{item: item, list: list}
	}
}

func schemaFor(shape Shape, list bool) (*gojsonschema.Schema, error) {
	schemasOnce.Do(loadSchemas)
	if schemasErr != nil {
		return nil, schemasErr
	}
	c, ok := schemas[shape]
	if !ok {
		return nil, fmt.Errorf("apijson: unknown shape %q", shape)
	}
	if list {
		return c.list, nil
	}
	return c.item, nil
}

// Check validates body against the schema of shape, or of a list of shape
// when list is set.
func Check(body []byte, shape Shape, list bool) error {
	schema, err := schemaFor(shape, list)
	if err != nil {
		return err
	}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return errors.Wrap(ErrShape, "empty body")
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(trimmed))
	if err != nil {
		return errors.Wrapf(ErrShape, "%s: %v", shape, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return errors.Wrapf(ErrShape, "%s: %s", shape, strings.Join(msgs, "; "))
	}
	return nil
}

// DecodeOne checks body against shape and decodes it into a T.
func DecodeOne[T any](body []byte, shape Shape) (*T, error) {
	if err := Check(body, shape, false); err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.Wrapf(err, "apijson: decode %s", shape)
	}
	return &out, nil
}

// DecodeList checks body against a list of shape and decodes it. The result
// is never nil.
func DecodeList[T any](body []byte, shape Shape) ([]T, error) {
	if err := Check(body, shape, true); err != nil {
		return nil, err
	}
	out := []T{}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.Wrapf(err, "apijson: decode %s list", shape)
	}
	return out, nil
}
