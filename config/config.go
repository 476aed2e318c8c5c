package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Meme studio specifics
	Editor    EditorConfig
	Caption   CaptionConfig
	Library   LibraryConfig
	Share     ShareConfig
	Thumbnail ThumbnailConfig

	// Edge
	RateLimit RateLimitConfig
	Metrics   MetricsConfig
}

type EnvironmentConfig struct {
	Name string `validate:"required"`
}

type HTTPServerConfig struct {
	Port        int    `validate:"min=1,max=65535"`
	Mode        string `validate:"oneof=debug release test"`
	MaxUploadMB int    `validate:"min=1,max=64"`
	// MaxUploadPixels bounds width*height of a decoded picture.
	MaxUploadPixels int64 `validate:"min=1,max=100000000"`
}

type LoggerConfig struct {
	Level        string `validate:"oneof=debug info warn error dpanic panic fatal"`
	Mode         string `validate:"oneof=debug development production"`
	Encoding     string `validate:"oneof=console json"`
	ColorEnabled bool
}

type EditorConfig struct {
	CameraEnabled  bool
	SessionTTL     time.Duration `validate:"min=1s"`
	MaxSessions    int           `validate:"min=1"`
	ViewportWidth  int           `validate:"min=0"`
	ViewportHeight int           `validate:"min=0"`
}

type CaptionConfig struct {
	FontPath    string
	FontFamily  string  `validate:"required"`
	FontSize    float64 `validate:"gt=0"`
	MinFontSize float64 `validate:"gt=0,ltefield=FontSize"`
	StrokeWidth float64
}

type LibraryConfig struct {
	Dir string
}

type ShareConfig struct {
	OutboxDir string
}

type ThumbnailConfig struct {
	Size      int `validate:"min=16,max=1024"`
	CacheSize int `validate:"min=1"`
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int `validate:"required_if=Enabled true,gte=0"`
}

type MetricsConfig struct {
	Enabled   bool
	Namespace string `validate:"required_if=Enabled true"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	return load(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.MaxUploadMB = v.GetInt("http_server.max_upload_mb")
	cfg.HTTPServer.MaxUploadPixels = v.GetInt64("http_server.max_upload_pixels")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Editor
	cfg.Editor.CameraEnabled = v.GetBool("editor.camera_enabled")
	cfg.Editor.SessionTTL = v.GetDuration("editor.session_ttl")
	cfg.Editor.MaxSessions = v.GetInt("editor.max_sessions")
	cfg.Editor.ViewportWidth = v.GetInt("editor.viewport_width")
	cfg.Editor.ViewportHeight = v.GetInt("editor.viewport_height")

	// Caption style
	cfg.Caption.FontPath = v.GetString("caption.font_path")
	cfg.Caption.FontFamily = v.GetString("caption.font_family")
	cfg.Caption.FontSize = v.GetFloat64("caption.font_size")
	cfg.Caption.MinFontSize = v.GetFloat64("caption.min_font_size")
	cfg.Caption.StrokeWidth = v.GetFloat64("caption.stroke_width")

	// Collaborators
	cfg.Library.Dir = v.GetString("library.dir")
	cfg.Share.OutboxDir = v.GetString("share.outbox_dir")
	cfg.Thumbnail.Size = v.GetInt("thumbnail.size")
	cfg.Thumbnail.CacheSize = v.GetInt("thumbnail.cache_size")

	// Edge
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.Metrics.Enabled = v.GetBool("metrics.enabled")
	cfg.Metrics.Namespace = v.GetString("metrics.namespace")

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.max_upload_mb", 10)
	v.SetDefault("http_server.max_upload_pixels", 25_000_000)
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("editor.camera_enabled", false)
	v.SetDefault("editor.session_ttl", "30m")
	v.SetDefault("editor.max_sessions", 1000)
	v.SetDefault("editor.viewport_width", 0)
	v.SetDefault("editor.viewport_height", 0)

	v.SetDefault("caption.font_family", "Impact")
	v.SetDefault("caption.font_size", 40)
	v.SetDefault("caption.min_font_size", 12)
	v.SetDefault("caption.stroke_width", -3.0)

	v.SetDefault("library.dir", "./data/library")
	v.SetDefault("share.outbox_dir", "./data/outbox")
	v.SetDefault("thumbnail.size", 120)
	v.SetDefault("thumbnail.cache_size", 256)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 120)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.namespace", "memestudio")
}
