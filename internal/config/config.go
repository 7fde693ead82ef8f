package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	AppPort string `env:"APP_PORT" envDefault:"8080"`

	// DATABASE_DSN carries both the store endpoint and the service
	// credential. The process refuses to start without it.
	DatabaseDSN string `env:"DATABASE_DSN,required,notEmpty"`

	JWTSecret   string        `env:"JWT_SECRET,required,notEmpty"`
	JWTIssuer   string        `env:"JWT_ISSUER" envDefault:"uso-auth"`
	JWTAudience string        `env:"JWT_AUDIENCE" envDefault:"uso-app"`
	JWTTTL      time.Duration `env:"JWT_TTL" envDefault:"720h"`

	KakaoUserInfoURL string `env:"KAKAO_USERINFO_URL" envDefault:"https://kapi.kakao.com/v2/user/me"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*"`
}

// Load reads configuration from the environment. Missing required values
// fail here, at startup, not on the first request that needs them.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
