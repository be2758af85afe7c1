package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	SentimentAPIURL string `env:"SENTIMENT_API_URL"`
	SentimentAPIKey string `env:"SENTIMENT_API_KEY"`
	TranslateAPIURL string `env:"TRANSLATE_API_URL"`
	TranslateAPIKey string `env:"TRANSLATE_API_KEY"`

	MaxQuestions int `env:"MAX_QUESTIONS" envDefault:"5"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	JWTSecret         string   `env:"JWT_SECRET"`
	AdminPasswordHash string   `env:"ADMIN_PASSWORD_HASH"`
	CORSOrigins       []string `env:"CORS_ORIGINS" envSeparator:","`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
