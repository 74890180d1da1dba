package gate

import (
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds route-guard destinations.
type Config struct {
	// LoginPath receives unauthenticated requests; the originally
	// requested location is carried in the RedirectParam query parameter
	// for post-login return.
	LoginPath string `env:"GATE_LOGIN_PATH" envDefault:"/login"`

	// UnauthorizedPath, if set, receives unauthorized requests instead
	// of the denial screen or fallback redirect.
	UnauthorizedPath string `env:"GATE_UNAUTHORIZED_PATH"`

	// FallbackPath receives unauthorized requests when no denial screen
	// is shown and no UnauthorizedPath is configured.
	FallbackPath string `env:"GATE_FALLBACK_PATH" envDefault:"/"`

	// ShowDenial renders a denial screen with go-back and go-home
	// actions instead of redirecting unauthorized requests.
	ShowDenial bool `env:"GATE_SHOW_DENIAL" envDefault:"false"`

	// RedirectParam is the query parameter carrying the original URL.
	RedirectParam string `env:"GATE_REDIRECT_PARAM" envDefault:"redirect"`
}

// DefaultConfig returns the default route-guard configuration.
func DefaultConfig() Config {
	return Config{
		LoginPath:     "/login",
		FallbackPath:  "/",
		RedirectParam: "redirect",
	}
}

var defaultEnvLoaded sync.Once

// LoadConfig populates a Config from environment variables, loading a
// .env file first if one exists.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
