package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// RecipeStore is a key-addressed store of recipe documents. Keys use forward
// slashes regardless of backend ("pancakes/pancakes.txt").
type RecipeStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	List(ctx context.Context) ([]string, error)
}

// ErrNotFound is returned by stores that can tell a missing key apart from
// other failures.
var ErrNotFound = errors.New("recipe not found")

// TestRecipeStore is a simple in-memory implementation for testing
type TestRecipeStore struct {
	docs map[string][]byte
	err  error
}

func NewTestRecipeStore(docs map[string][]byte) *TestRecipeStore {
	if docs == nil {
		docs = map[string][]byte{}
	}
	return &TestRecipeStore{docs: docs}
}

func NewTestRecipeStoreWithError() *TestRecipeStore {
	return &TestRecipeStore{err: errors.New("not found")}
}

func (t *TestRecipeStore) Load(ctx context.Context, key string) ([]byte, error) {
	if t.err != nil {
		return nil, t.err
	}
	b, ok := t.docs[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return b, nil
}

func (t *TestRecipeStore) List(ctx context.Context) ([]string, error) {
	if t.err != nil {
		return nil, t.err
	}
	keys := make([]string, 0, len(t.docs))
	for k := range t.docs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// isRecipeKey reports whether key names a recipe document rather than an
// image or metadata file.
func isRecipeKey(key string) bool {
	base := key[strings.LastIndex(key, "/")+1:]
	if strings.HasPrefix(base, ".") {
		return false
	}
	for _, ext := range []string{".txt", ".json", ".yaml", ".yml"} {
		if strings.HasSuffix(strings.ToLower(base), ext) {
			return true
		}
	}
	return false
}
