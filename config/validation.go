package config

import "fmt"

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the fields required for the current environment
// are present. Only production is strict; development and test fall back to
// defaults so the server can start against a local database.
func ValidateConfig(cfg *Config) error {
	if !IsProduction() {
		return nil
	}

	required := map[string]string{
		"JWT_SECRET":  cfg.JWTSecret,
		"DB_HOST":     cfg.DBHost,
		"DB_PORT":     cfg.DBPort,
		"DB_USER":     cfg.DBUser,
		"DB_PASSWORD": cfg.DBPassword,
		"DB_NAME":     cfg.DBName,
	}
	for field, value := range required {
		if value == "" {
			return ValidationError{Field: field, Message: "required in production"}
		}
	}
	return nil
}
