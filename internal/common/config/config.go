package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`

		// TTL in seconds for cached course-number lookups. Course numbers are
		// immutable once assigned, so the TTL only bounds memory.
		CourseNumberTTLSec int `env:"REDIS_COURSE_NUMBER_TTL_SEC" envDefault:"86400"`
	}

	Convex struct {
		// Base URL of the Convex deployment, e.g. https://acoustic-panther-123.convex.cloud
		URL string `env:"CONVEX_URL" envDefault:""`

		// Per-query timeout in seconds for store reads
		TimeoutSec int `env:"CONVEX_TIMEOUT_SEC" envDefault:"10"`
	}

	Mint struct {
		// Hex-encoded secp256k1 private key used to sign mint authorizations.
		// Deliberately not ",required": a missing key must surface as a
		// per-request configuration error, not a startup crash.
		SignerPrivateKey string `env:"MINT_SIGNER_PRIVATE_KEY" envDefault:""`
	}

	QuickAuth struct {
		// Domain of the mini app, matched against the token audience
		Domain string `env:"QUICK_AUTH_DOMAIN" envDefault:"localhost:3000"`
		// Shared secret for session token verification
		Secret string `env:"QUICK_AUTH_SECRET" envDefault:""`
		// Expected token issuer
		Issuer string `env:"QUICK_AUTH_ISSUER" envDefault:"https://auth.farcaster.xyz"`
	}
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		// Ignore a missing .env file; in production the variables are set
		// directly on the environment.
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}

	return cfg
}
