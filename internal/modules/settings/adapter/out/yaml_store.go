package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"focuslock/internal/modules/settings/domain"
	settingsout "focuslock/internal/modules/settings/port/out"
)

type YAMLSettingsStore struct {
	path string
	mu   sync.RWMutex
}

func NewYAMLSettingsStore(path string) *YAMLSettingsStore {
	return &YAMLSettingsStore{path: path}
}

var _ settingsout.SettingsStore = (*YAMLSettingsStore)(nil)

func (s *YAMLSettingsStore) Path() string { return s.path }

func (s *YAMLSettingsStore) Load(_ context.Context) (domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Document{}, nil
		}
		return domain.Document{}, fmt.Errorf("read settings: %w", err)
	}
	doc := domain.Document{}
	if err := yaml.Unmarshal(payload, &doc); err != nil {
		return domain.Document{}, fmt.Errorf("decode settings: %w", err)
	}
	return doc, nil
}

// Save writes to a temp file and renames it so readers in other processes
// never observe a half-written document.
func (s *YAMLSettingsStore) Save(_ context.Context, doc domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	payload, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace settings: %w", err)
	}
	return nil
}
