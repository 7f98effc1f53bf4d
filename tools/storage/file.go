package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileRecipeStore reads recipes from a directory laid out like the recipe
// repository: one folder per recipe.
type FileRecipeStore struct {
	Dir string
}

func NewFileRecipeStore(dir string) *FileRecipeStore {
	return &FileRecipeStore{Dir: dir}
}

func (s *FileRecipeStore) Load(ctx context.Context, key string) ([]byte, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return b, err
}

func (s *FileRecipeStore) List(ctx context.Context) ([]string, error) {
	var keys []string
	err := filepath.WalkDir(s.Dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != s.Dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return ctx.Err()
		}
		rel, err := filepath.Rel(s.Dir, p)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if isRecipeKey(key) {
			keys = append(keys, key)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list recipes in %s: %w", s.Dir, err)
	}
	sort.Strings(keys)
	return keys, nil
}

// path resolves key under Dir and refuses keys that escape it.
func (s *FileRecipeStore) path(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid recipe key %q", key)
	}
	return filepath.Join(s.Dir, clean), nil
}
