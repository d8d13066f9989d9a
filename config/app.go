package config

import "time"

type App struct {
	Port          string        `env:"APP_PORT" default:"8080"`
	DatabaseURL   string        `env:"DATABASE_URL,required"`
	JWTSecret     string        `env:"JWT_SECRET"`
	TokenTTL      time.Duration `env:"JWT_TTL_MINUTES" default:"30"`
	AdminEmail    string        `env:"FIRST_ADMIN_EMAIL" default:"root@test.com"`
	AdminPassword string        `env:"FIRST_ADMIN_PASSWORD" default:"admin"`
	Env           string        `env:"APP_ENV" default:"dev"`
}
