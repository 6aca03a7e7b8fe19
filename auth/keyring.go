// Package auth resolves catalog credentials from the configuration or the system keyring.
package auth

import (
	"errors"
	"fmt"

	"github.com/moodbuster/moodbuster/constant"
	"github.com/moodbuster/moodbuster/key"
	"github.com/moodbuster/moodbuster/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

const service = constant.Moodbuster

// Source tells where a credential was found.
type Source string

const (
	SourceNone    Source = ""
	SourceConfig  Source = "config"
	SourceKeyring Source = "keyring"
)

// Secrets lists the configuration keys that hold credentials.
var Secrets = []string{
	key.TMDBAPIKey,
	key.RapidAPIKey,
	key.IGDBClientID,
	key.IGDBAccessToken,
	key.GoogleBooksAPIKey,
}

// IsSecret reports whether k is one of Secrets.
func IsSecret(k string) bool {
	return lo.Contains(Secrets, k)
}

// Lookup finds the credential stored under k. The configuration (file, env or .env)
// wins over the keyring.
func Lookup(k string) (string, Source) {
	if v := viper.GetString(k); v != "" {
		return v, SourceConfig
	}

	v, err := keyring.Get(service, k)
	switch {
	case err == nil && v != "":
		return v, SourceKeyring
	case err != nil && !errors.Is(err, keyring.ErrNotFound):
		log.Warnf("keyring lookup for %s failed: %v", k, err)
	}

	return "", SourceNone
}

// Get returns the credential under k or an empty string.
func Get(k string) string {
	v, _ := Lookup(k)
	return v
}

// Set stores a credential in the system keyring.
func Set(k, value string) error {
	if !IsSecret(k) {
		return fmt.Errorf("%s is not a credential", k)
	}
	if err := keyring.Set(service, k, value); err != nil {
		return fmt.Errorf("store %s in keyring: %w", k, err)
	}
	return nil
}

// Delete removes a credential from the system keyring. A missing entry is not an error.
func Delete(k string) error {
	if !IsSecret(k) {
		return fmt.Errorf("%s is not a credential", k)
	}
	if err := keyring.Delete(service, k); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("remove %s from keyring: %w", k, err)
	}
	return nil
}
