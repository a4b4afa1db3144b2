package config

import (
	"fmt"
	"path/filepath"
)

type Config struct {
	VaultPath string
	StatePath string
	DBPath    string
}

func New(vaultPath string) (Config, error) {
	if vaultPath == "" {
		return Config{}, fmt.Errorf("vault path is required")
	}
	statePath := filepath.Join(vaultPath, ".pento")
	return Config{
		VaultPath: vaultPath,
		StatePath: statePath,
		DBPath:    filepath.Join(statePath, "pento.db"),
	}, nil
}
