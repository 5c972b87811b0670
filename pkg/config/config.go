package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la consola (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	JWT      JWTConfig
	Upstream UpstreamConfig
	Docs     DocsConfig
	Log      LogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// RequestTimeout plazo de cada petición a /api, incluidas las consultas a la API remota.
	RequestTimeout time.Duration
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración del token de sesión de la consola.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// UpstreamConfig configuración de la API remota de catálogo e inventario.
type UpstreamConfig struct {
	BaseURL        string
	Timeout        time.Duration
	MaxConcurrency int // tope de peticiones simultáneas en los fan-out de productos
}

// DocsConfig ubicación del documento OpenAPI servido en /docs.
type DocsConfig struct {
	FilePath string
}

// LogConfig nivel del logger.
type LogConfig struct {
	Level string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, UPSTREAM_BASE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "inventario-console"),
		},
		HTTP: HTTPConfig{
			Host:         getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:         getInt(v, "HTTP_PORT", 8090),
			ReadTimeout:  getDuration(v, "HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDuration(v, "HTTP_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getDuration(v, "HTTP_IDLE_TIMEOUT", 60*time.Second),

			RequestTimeout: getDuration(v, "HTTP_REQUEST_TIMEOUT", 25*time.Second),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "inventario-console"),
		},
		Upstream: UpstreamConfig{
			BaseURL:        strings.TrimRight(getString(v, "UPSTREAM_BASE_URL", "http://localhost:8080"), "/"),
			Timeout:        getDuration(v, "UPSTREAM_TIMEOUT", 15*time.Second),
			MaxConcurrency: getInt(v, "UPSTREAM_MAX_CONCURRENCY", 8),
		},
		Docs: DocsConfig{
			FilePath: getString(v, "DOCS_FILE_PATH", "./docs/swagger.json"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" && c.App.Env == "production" {
		return fmt.Errorf("config: JWT_SECRET es obligatorio en producción")
	}
	if c.JWT.Secret == "" {
		c.JWT.Secret = "dev-console-secret"
	}
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("config: UPSTREAM_BASE_URL vacío")
	}
	if c.Upstream.MaxConcurrency <= 0 {
		c.Upstream.MaxConcurrency = 1
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

// getDuration acepta "15s", "2m" o un entero interpretado como segundos.
func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if !v.IsSet(key) {
		return def
	}
	raw := strings.TrimSpace(v.GetString(key))
	if n, err := strconv.Atoi(raw); err == nil {
		return time.Duration(n) * time.Second
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return def
	}
	return d
}
