package config

import "time"

// SessionConfig содержит настройки сессий.
type SessionConfig struct {
	CookieName string        `yaml:"cookie_name" env:"KEEPNOTE_SESSION_COOKIE" env-default:"session_id"`
	TTL        time.Duration `yaml:"ttl" env:"KEEPNOTE_SESSION_TTL" env-default:"24h"`
}
