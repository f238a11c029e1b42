// Package settings persists the synced store record to a yaml file, so the
// monitor can answer store-scoped queries right after a restart, before the
// first profile sync.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jumbohome/jumbo-monitor/internal/jumbo"
	"gopkg.in/yaml.v3"
)

// Settings reads & writes the store record at Path.
type Settings struct {
	Path string
}

// LoadStore reads the persisted store. It returns ok=false when no store has
// been persisted yet.
func (s Settings) LoadStore() (jumbo.Store, bool, error) {
	content, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = nil
		}
		return jumbo.Store{}, false, err
	}

	var store jumbo.Store
	if err = yaml.Unmarshal(content, &store); err != nil {
		return jumbo.Store{}, false, fmt.Errorf("store file: %w", err)
	}
	if store.ID == "" {
		return jumbo.Store{}, false, nil
	}
	return store, true, nil
}

// SaveStore writes the store record. The write goes through a temp file and
// a rename, so a crash never leaves a half-written store behind.
func (s Settings) SaveStore(store jumbo.Store) error {
	content, err := yaml.Marshal(store)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.Path), "store-*.yaml")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err = tmp.Write(content); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.Path)
}
