package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const (
	AppName = "focuslock"

	StoreYAML   = "yaml"
	StoreSQLite = "sqlite"

	DefaultListenAddr = "127.0.0.1:7547"
)

type Config struct {
	ConfigDir    string
	Store        string
	SettingsPath string
	DBPath       string
	ListenAddr   string
	Verbose      bool
}

// DefaultDir returns the per-user config directory, ~/.config/focuslock on Linux.
func DefaultDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

func New(configDir, store string) (Config, error) {
	if strings.TrimSpace(configDir) == "" {
		configDir = DefaultDir()
	}
	if store == "" {
		store = StoreYAML
	}
	switch store {
	case StoreYAML, StoreSQLite:
	default:
		return Config{}, fmt.Errorf("unsupported settings store %q: use %s or %s", store, StoreYAML, StoreSQLite)
	}
	return Config{
		ConfigDir:    configDir,
		Store:        store,
		SettingsPath: filepath.Join(configDir, "settings.yaml"),
		DBPath:       filepath.Join(configDir, AppName+".db"),
		ListenAddr:   DefaultListenAddr,
	}, nil
}
