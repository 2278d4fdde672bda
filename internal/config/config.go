package config

import (
	"fmt"
	"time"

	"github.com/jinzhu/configor"
)

// AppConfig agrupa toda la configuración del servicio.
// Se carga desde config.yml y se puede sobreescribir con env vars APP_*
// (p.ej. APP_JWT_SECRET, APP_DB_HOST).
type AppConfig struct {
	Server struct {
		Addr string   `default:":8080"`
		Cors []string // orígenes permitidos; vacío = sin CORS
	}

	DB struct {
		// Si Host está vacío, el servicio arranca con repos in-memory (modo dev).
		Host     string
		Port     int    `default:"5432"`
		User     string `default:"postgres"`
		Password string `default:"postgres"`
		Name     string `default:"petalth"`
		SSLMode  string `default:"disable"`
	}

	JWT struct {
		Secret        string `default:"dev-secret-change-me"`
		ExpiryMinutes int    `default:"60"`
	}

	Log struct {
		Env string `default:"development"` // development => salida consola, otro => JSON
	}
}

func Load(path string) (AppConfig, error) {
	var cfg AppConfig
	err := configor.New(&configor.Config{ENVPrefix: "APP", Silent: true}).Load(&cfg, path)
	if err != nil {
		return AppConfig{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	return cfg, nil
}

// DSN construye la cadena de conexión a Postgres.
func (c AppConfig) DSN() string {
	if c.DB.Host == "" {
		return ""
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host, c.DB.Port, c.DB.User, c.DB.Password, c.DB.Name, c.DB.SSLMode)
}

func (c AppConfig) TokenExpiry() time.Duration {
	return time.Duration(c.JWT.ExpiryMinutes) * time.Minute
}
