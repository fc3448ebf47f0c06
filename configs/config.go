package configs

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Config is the process-wide static configuration: database endpoint, admin
// secret and the event facts shown to guests. It is built once at startup
// and passed to every component that needs it; nothing reads the
// environment after Load returns.
type Config struct {
	ListenAddr  string
	DatabaseURL string

	// AdminToken is the shared secret guarding every admin endpoint. When
	// AdminTokenHash is set (bcrypt) it takes precedence and AdminToken is
	// ignored.
	AdminToken     string
	AdminTokenHash string

	// Event facts, identical for every guest.
	EventDate     time.Time
	EventMessage  string
	EventTimezone string
	VenueName     string
	VenueAddress  string
	MapsURL       string
	WazeURL       string

	// NameLocale drives collation when listing invites by display name.
	NameLocale language.Tag

	// StrictAttendeeNames requires len(attendee_names) == guests on
	// attending submissions that supply names.
	StrictAttendeeNames bool
}

const (
	defaultListenAddr = ":3000"
	defaultTimezone   = "America/Guatemala"
	defaultLocale     = "es"
)

// Load reads .env (if present) and the process environment and returns the
// immutable configuration. DATABASE_URL is required; everything else has a
// default or may be empty.
func Load() (*Config, error) {
	// .env is a convenience for local runs; absence is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		ListenAddr:          getEnv("LISTEN_ADDR", defaultListenAddr),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		AdminToken:          os.Getenv("ADMIN_TOKEN"),
		AdminTokenHash:      os.Getenv("ADMIN_TOKEN_HASH"),
		EventMessage:        os.Getenv("EVENT_MESSAGE"),
		EventTimezone:       getEnv("EVENT_TIMEZONE", defaultTimezone),
		VenueName:           os.Getenv("VENUE_NAME"),
		VenueAddress:        os.Getenv("VENUE_ADDRESS"),
		MapsURL:             os.Getenv("MAPS_URL"),
		WazeURL:             os.Getenv("WAZE_URL"),
		StrictAttendeeNames: getEnvBool("STRICT_ATTENDEE_NAMES", true),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("configs: DATABASE_URL is not set")
	}

	if raw := os.Getenv("EVENT_DATE"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("configs: invalid EVENT_DATE %q: %w", raw, err)
		}
		cfg.EventDate = t.UTC()
	}

	locale := getEnv("NAME_LOCALE", defaultLocale)
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("configs: invalid NAME_LOCALE %q: %w", locale, err)
	}
	cfg.NameLocale = tag

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
