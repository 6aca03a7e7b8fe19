// Package config wires viper to the registered defaults, the TOML config file, the environment and .env files.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/moodbuster/moodbuster/constant"
	"github.com/moodbuster/moodbuster/filesystem"
	"github.com/moodbuster/moodbuster/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// DotEnvName is the file looked up in the config directory and the working directory.
const DotEnvName = ".env"

// Setup initializes the global configuration state, including defaults, environment bindings, and localized file resolution.
func Setup() error {
	if err := LoadDotEnv(
		filepath.Join(where.Config(), DotEnvName),
		DotEnvName,
	); err != nil {
		return err
	}

	viper.SetConfigName(constant.Moodbuster)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Moodbuster)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		if aliases, ok := EnvAliases[env]; ok {
			viper.MustBindEnv(append([]string{env, envName(env)}, aliases...)...)
			continue
		}
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}

// LoadDotEnv reads KEY=VALUE files into the process environment.
// Missing files are skipped and variables that are already set win.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		exists, err := filesystem.API().Exists(path)
		if err != nil || !exists {
			continue
		}

		file, err := filesystem.API().Open(path)
		if err != nil {
			return err
		}

		values, err := godotenv.Parse(file)
		_ = file.Close()
		if err != nil {
			return err
		}

		for k, v := range values {
			if _, set := os.LookupEnv(k); set {
				continue
			}
			if err := os.Setenv(k, v); err != nil {
				return err
			}
		}
	}

	return nil
}

func envName(k string) string {
	return strings.ToUpper(constant.Moodbuster + "_" + EnvKeyReplacer.Replace(k))
}
