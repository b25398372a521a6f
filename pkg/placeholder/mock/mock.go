// Package mock implements the placeholder REST API in memory. Mock holds the
// records; Handler exposes them over HTTP with the same routes and response
// conventions as the hosted service; Transport serves the handler to an
// http.Client without opening a socket.
package mock

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"sync"

	"github.com/postboard/placeholder_sdk_go/internal/devseed"
)

// Collections served by the mock.
const (
	Posts    = "posts"
	Comments = "comments"
	Users    = "users"
)

// ErrNotFound is returned for an unknown collection or record id.
var ErrNotFound = errors.New("mock placeholder: not found")

// Record is a stored JSON object.
type Record = map[string]any

// Mock is an in-memory record store keyed by collection and id.
type Mock struct {
	mu          sync.RWMutex
	collections map[string]map[int]Record
}

// New creates an empty mock with the three collections.
func New() *Mock {
	return &Mock{
		collections: map[string]map[int]Record{
			Posts:    {},
			Comments: {},
			Users:    {},
		},
	}
}

// NewSeeded creates a mock loaded with seed, or with the built-in fixtures
// when seed is nil.
func NewSeeded(seed *devseed.Seed) (*Mock, error) {
	if seed == nil {
		seed = devseed.Default()
	}
	m := New()
	if err := m.Seed(seed); err != nil {
		return nil, err
	}
	return m, nil
}

// Seed stores every record of seed, replacing records with the same id.
func (m *Mock) Seed(seed *devseed.Seed) error {
	if seed == nil {
		return nil
	}
	load := func(collection string, items any) error {
		raw, err := json.Marshal(items)
		if err != nil {
			return fmt.Errorf("mock placeholder: encode %s seed: %w", collection, err)
		}
		var records []Record
		if err := json.Unmarshal(raw, &records); err != nil {
			return fmt.Errorf("mock placeholder: decode %s seed: %w", collection, err)
		}
		m.mu.Lock()
		defer m.mu.Unlock()
		for _, r := range records {
			id, ok := recordID(r)
			if !ok || id <= 0 {
				return fmt.Errorf("mock placeholder: %s seed entry missing id", collection)
			}
			m.collections[collection][id] = r
		}
		return nil
	}
	if err := load(Users, seed.Users); err != nil {
		return err
	}
	if err := load(Posts, seed.Posts); err != nil {
		return err
	}
	return load(Comments, seed.Comments)
}

// List returns the records of collection in id order. For every query key,
// a record matches when its field equals one of the key's values.
func (m *Mock) List(collection string, query url.Values) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	records, ok := m.collections[collection]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]Record, 0, len(records))
	for _, id := range sortedIDs(records) {
		r := records[id]
		if matches(r, query) {
			out = append(out, copyRecord(r))
		}
	}
	return out, nil
}

// Get returns record id of collection.
func (m *Mock) Get(collection string, id int) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	records, ok := m.collections[collection]
	if !ok {
		return nil, ErrNotFound
	}
	r, ok := records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyRecord(r), nil
}

// Create stores fields under the next free id and returns the stored record.
// Any id in fields is ignored.
func (m *Mock) Create(collection string, fields Record) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	records, ok := m.collections[collection]
	if !ok {
		return nil, ErrNotFound
	}
	next := 1
	for id := range records {
		if id >= next {
			next = id + 1
		}
	}
	r := copyRecord(fields)
	r["id"] = next
	records[next] = r
	return copyRecord(r), nil
}

// Replace overwrites record id with fields.
func (m *Mock) Replace(collection string, id int, fields Record) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	records, ok := m.collections[collection]
	if !ok {
		return nil, ErrNotFound
	}
	if _, ok := records[id]; !ok {
		return nil, ErrNotFound
	}
	r := copyRecord(fields)
	r["id"] = id
	records[id] = r
	return copyRecord(r), nil
}

// Merge sets the fields present in fields on record id, leaving others as
// they are.
func (m *Mock) Merge(collection string, id int, fields Record) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	records, ok := m.collections[collection]
	if !ok {
		return nil, ErrNotFound
	}
	r, ok := records[id]
	if !ok {
		return nil, ErrNotFound
	}
	for k, v := range fields {
		if k != "id" {
			r[k] = v
		}
	}
	return copyRecord(r), nil
}

// Delete removes record id.
func (m *Mock) Delete(collection string, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	records, ok := m.collections[collection]
	if !ok {
		return ErrNotFound
	}
	if _, ok := records[id]; !ok {
		return ErrNotFound
	}
	delete(records, id)
	return nil
}

// Len returns the number of records in collection.
func (m *Mock) Len(collection string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.collections[collection])
}

func sortedIDs(records map[int]Record) []int {
	ids := make([]int, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func matches(r Record, query url.Values) bool {
	for key, wants := range query {
		got, ok := r[key]
		if !ok {
			return false
		}
		s := scalarString(got)
		hit := false
		for _, w := range wants {
			if s == w {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return "null"
	default:
		raw, _ := json.Marshal(t)
		return string(raw)
	}
}

func recordID(r Record) (int, bool) {
	switch v := r["id"].(type) {
	case float64:
		return int(v), v == float64(int(v))
	case int:
		return v, true
	default:
		return 0, false
	}
}

func copyRecord(r Record) Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
