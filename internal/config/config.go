package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/tauqeerkhan/portfolio/internal/tour"
)

type Config struct {
	Env       string `yaml:"env" env:"APP_ENV" env-default:"development"`
	Server    ServerConfig
	Log       LogConfig
	Site      SiteConfig
	Database  DatabaseConfig
	Firestore FirestoreConfig
	SMTP      SMTPConfig
	Chat      ChatConfig
	Admin     AdminConfig
	Analytics AnalyticsConfig
	Tour      TourConfig
}

type ServerConfig struct {
	Port            string        `yaml:"port" env:"PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT" env-default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"5s"`
	AllowedOrigins  []string      `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:","`
	Metrics         bool          `yaml:"metrics" env:"METRICS_ENABLED" env-default:"true"`
}

type LogConfig struct {
	Level    string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Encoding string `yaml:"encoding" env:"LOG_ENCODING" env-default:"json"`
}

type SiteConfig struct {
	// Variant is the content persona served when a request does not pick one.
	Variant string `yaml:"variant" env:"SITE_VARIANT" env-default:"developer"`
}

type DatabaseConfig struct {
	Path string `yaml:"path" env:"SQLITE_PATH" env-default:"portfolio.db"`
}

// FirestoreConfig enables the Firestore message store when ProjectID is set.
type FirestoreConfig struct {
	ProjectID       string `yaml:"project_id" env:"FIRESTORE_PROJECT_ID"`
	CredentialsPath string `yaml:"credentials_path" env:"FIREBASE_CREDENTIALS_PATH"`
	Collection      string `yaml:"collection" env:"FIRESTORE_COLLECTION" env-default:"messages"`
}

func (f FirestoreConfig) Enabled() bool { return f.ProjectID != "" }

// SMTPConfig enables contact notification emails when user, password and
// recipient are all set.
type SMTPConfig struct {
	Host     string `yaml:"host" env:"SMTP_HOST" env-default:"smtp.gmail.com"`
	Port     string `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	User     string `yaml:"user" env:"SMTP_USER"`
	Password string `yaml:"password" env:"SMTP_PASS"`
	To       string `yaml:"to" env:"TO_EMAIL"`
}

type ChatConfig struct {
	APIKey      string        `yaml:"api_key" env:"OPENAI_API_KEY"`
	BaseURL     string        `yaml:"base_url" env:"OPENAI_BASE_URL"`
	Model       string        `yaml:"model" env:"CHAT_MODEL" env-default:"gpt-4o-mini"`
	MaxTokens   int           `yaml:"max_tokens" env:"CHAT_MAX_TOKENS" env-default:"512"`
	Temperature float32       `yaml:"temperature" env:"CHAT_TEMPERATURE" env-default:"0.4"`
	Timeout     time.Duration `yaml:"timeout" env:"CHAT_TIMEOUT" env-default:"30s"`
}

type AdminConfig struct {
	Username   string        `yaml:"username" env:"ADMIN_USERNAME" env-default:"admin"`
	Password   string        `yaml:"password" env:"ADMIN_PASSWORD" env-default:"admin123"`
	SessionTTL time.Duration `yaml:"session_ttl" env:"ADMIN_SESSION_TTL" env-default:"24h"`
	// JWTSecret signs admin sessions. Empty means a random per-process key.
	JWTSecret  string        `yaml:"jwt_secret" env:"ADMIN_JWT_SECRET"`
}

type AnalyticsConfig struct {
	Enabled         bool          `yaml:"enabled" env:"ANALYTICS_ENABLED" env-default:"true"`
	Retention       time.Duration `yaml:"retention" env:"ANALYTICS_RETENTION" env-default:"8760h"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"ANALYTICS_CLEANUP_INTERVAL" env-default:"24h"`
	Salt            string        `yaml:"salt" env:"ANALYTICS_SALT"`
}

// TourConfig overrides the per-variant tour timing. Zero values keep the
// variant's own setting.
type TourConfig struct {
	PerWord       time.Duration `yaml:"per_word" env:"TOUR_PER_WORD"`
	MinRead       time.Duration `yaml:"min_read" env:"TOUR_MIN_READ"`
	MaxRead       time.Duration `yaml:"max_read" env:"TOUR_MAX_READ"`
	ScrollTimeout time.Duration `yaml:"scroll_timeout" env:"TOUR_SCROLL_TIMEOUT"`
	AdvanceBuffer time.Duration `yaml:"advance_buffer" env:"TOUR_ADVANCE_BUFFER"`
	EndBuffer     time.Duration `yaml:"end_buffer" env:"TOUR_END_BUFFER"`
	CallTimeout   time.Duration `yaml:"call_timeout" env:"TOUR_CALL_TIMEOUT" env-default:"5s"`
	SpeakTimeout  time.Duration `yaml:"speak_timeout" env:"TOUR_SPEAK_TIMEOUT" env-default:"2m"`
}

// Apply returns t with every non-zero override applied.
func (tc TourConfig) Apply(t tour.Timing) tour.Timing {
	if tc.PerWord > 0 {
		t.PerWord = tc.PerWord
	}
	if tc.MinRead > 0 {
		t.MinRead = tc.MinRead
	}
	if tc.MaxRead > 0 {
		t.MaxRead = tc.MaxRead
	}
	if tc.ScrollTimeout > 0 {
		t.ScrollTimeout = tc.ScrollTimeout
	}
	if tc.AdvanceBuffer > 0 {
		t.AdvanceBuffer = tc.AdvanceBuffer
	}
	if tc.EndBuffer > 0 {
		t.EndBuffer = tc.EndBuffer
	}
	return t
}

func (c *Config) IsDevelopment() bool { return c.Env == "development" }

// Load reads path when given, otherwise only the environment.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config from environment: %w", err)
	}
	return &cfg, nil
}
