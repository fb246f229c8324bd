package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ByLCY/faktura/format"
	"github.com/ByLCY/faktura/layout"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"faktura"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Server struct {
		Timeout        time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		AllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}

	Document struct {
		PageSize        string `envconfig:"DOCUMENT_PAGE_SIZE" default:"A4"`
		Margin          string `envconfig:"DOCUMENT_MARGIN" default:"15mm"`
		FileNamePattern string `envconfig:"DOCUMENT_FILENAME_PATTERN" default:"invoice-${number}.pdf"`
		DefaultCurrency string `envconfig:"DOCUMENT_DEFAULT_CURRENCY"`
		Timezone        string `envconfig:"DOCUMENT_TIMEZONE" default:"UTC"`
	}

	Log struct {
		Level       string `envconfig:"LOG_LEVEL" default:"info"`
		Development bool   `envconfig:"LOG_DEVELOPMENT" default:"false"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	if _, err := cfg.Geometry(); err != nil {
		return nil, err
	}
	if _, err := cfg.Dates(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Geometry 返回按配置边距构造的页面几何。
func (c *Config) Geometry() (layout.Geometry, error) {
	margin, err := layout.ParseRawLengthStr(c.Document.Margin)
	if err != nil {
		return layout.Geometry{}, fmt.Errorf("DOCUMENT_MARGIN 无效: %w", err)
	}
	g, err := layout.NewGeometry(c.Document.PageSize, false, layout.UniformMargin(margin.ToMM()))
	if err != nil {
		return layout.Geometry{}, fmt.Errorf("页面几何配置无效: %w", err)
	}
	return g, nil
}

// Dates 返回配置时区下的日期格式化器。
func (c *Config) Dates() (format.DateFormatter, error) {
	tz := strings.TrimSpace(c.Document.Timezone)
	if tz == "" {
		return format.DateFormatter{Location: time.UTC}, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return format.DateFormatter{}, fmt.Errorf("DOCUMENT_TIMEZONE 无效: %w", err)
	}
	return format.DateFormatter{Location: loc}, nil
}

func (c *Config) Addr() string { return fmt.Sprintf(":%d", c.App.Port) }

// NewLogger 构造 JSON 格式的生产日志；开发模式下使用控制台格式。
func NewLogger(c *Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL 无效: %w", err)
	}
	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("创建日志失败: %w", err)
	}
	return logger.With(zap.String("app", c.App.Name)), nil
}
