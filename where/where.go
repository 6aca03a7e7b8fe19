// Package where resolves the directories and files moodbuster keeps on disk.
package where

import (
	"os"
	"path/filepath"

	"github.com/moodbuster/moodbuster/constant"
	"github.com/moodbuster/moodbuster/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "MOODBUSTER_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is the directory holding moodbuster.toml, .env, logs and saved picks.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Moodbuster))
}

// Cache is the directory for data that is safe to delete.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Moodbuster))
}

func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// History is the saved picks file.
func History() string {
	return filepath.Join(Config(), "picks.json")
}

// Queries is the remembered moods file.
func Queries() string {
	return filepath.Join(Cache(), "moods.json")
}

func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Moodbuster))
}
