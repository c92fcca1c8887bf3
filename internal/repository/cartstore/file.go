package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dev-star23/Audiophile/internal/domain"
)

type fileStorage struct {
	path string
}

// NewFile returns a Storage backed by a single JSON file at path. The file
// is created on first Save; writes go through a temp file plus rename so a
// crash never leaves a half-written cart behind.
func NewFile(path string) Storage {
	return &fileStorage{path: path}
}

func (s *fileStorage) Load(_ context.Context) ([]domain.CartItem, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cart file: %w", err)
	}

	var items []domain.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode cart file: %w", err)
	}
	return items, nil
}

func (s *fileStorage) Save(_ context.Context, items []domain.CartItem) error {
	if items == nil {
		items = []domain.CartItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cart dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "cart-*.json")
	if err != nil {
		return fmt.Errorf("create temp cart file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp cart file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp cart file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace cart file: %w", err)
	}
	return nil
}
