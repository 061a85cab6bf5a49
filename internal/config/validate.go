package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be positive (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.RefreshTokenTTL <= c.Auth.AccessTokenTTL {
		return fmt.Errorf("auth.refresh_token_ttl must exceed access_token_ttl")
	}

	if c.Storage.BasePath == "" {
		return fmt.Errorf("storage.base_path must not be empty")
	}
	if c.Storage.PublicURL == "" {
		return fmt.Errorf("storage.public_url must not be empty")
	}
	if c.Storage.MaxUploadMiB <= 0 {
		return fmt.Errorf("storage.max_upload_mib must be positive (got %d)", c.Storage.MaxUploadMiB)
	}

	return nil
}

// MaxUploadBytes returns the upload size limit in bytes.
func (c StorageConfig) MaxUploadBytes() int64 {
	return c.MaxUploadMiB * 1024 * 1024
}
