package config

import (
	"os"
	"strconv"
)

// Server captures process level configuration for the mock API.
type Server struct {
	Addr string

	// Seed fixes the random generator when Seeded is true. Leaving
	// RANDOM_SEED unset produces different data on every request, which is
	// the default for interactive demos.
	Seed   int64
	Seeded bool

	// BoundsFile optionally points at a YAML file overriding the synthesis
	// value ranges.
	BoundsFile string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("MCO_MOCK_ADDR")
	if addr == "" {
		addr = ":8000"
	}

	var (
		seed   int64
		seeded bool
	)
	if raw := os.Getenv("RANDOM_SEED"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			seed = v
			seeded = true
		}
	}

	return Server{
		Addr:       addr,
		Seed:       seed,
		Seeded:     seeded,
		BoundsFile: os.Getenv("SYNTH_BOUNDS_FILE"),
	}
}
