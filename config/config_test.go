package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/faktura/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "faktura", cfg.App.Name)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "invoice-${number}.pdf", cfg.Document.FileNamePattern)
	assert.Empty(t, cfg.Document.DefaultCurrency)

	g, err := cfg.Geometry()
	require.NoError(t, err)
	assert.Equal(t, 210.0, g.Width)
	assert.Equal(t, 15.0, g.Margin.Left)

	dates, err := cfg.Dates()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, dates.Location)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DOCUMENT_MARGIN", "36pt")
	t.Setenv("DOCUMENT_PAGE_SIZE", "letter")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.test,https://b.test")
	t.Setenv("DOCUMENT_TIMEZONE", "Europe/Berlin")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.Server.AllowedOrigins)

	g, err := cfg.Geometry()
	require.NoError(t, err)
	assert.InDelta(t, 215.9, g.Width, 1e-9)
	assert.InDelta(t, 12.7, g.Margin.Top, 1e-6)

	dates, err := cfg.Dates()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", dates.Location.String())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	for key, tc := range map[string]struct{ value, msg string }{
		"DOCUMENT_MARGIN":    {"-3mm", "DOCUMENT_MARGIN 无效"},
		"DOCUMENT_PAGE_SIZE": {"B7", "页面几何配置无效"},
		"DOCUMENT_TIMEZONE":  {"Mars/Olympus", "DOCUMENT_TIMEZONE 无效"},
		"PORT":               {"eighty", "解析配置失败"},
	} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, tc.value)
			_, err := config.Load()
			assert.ErrorContains(t, err, tc.msg)
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	cfg, err := config.Load()
	require.NoError(t, err)

	logger, err := config.NewLogger(cfg)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1))

	cfg.Log.Level = "loud"
	_, err = config.NewLogger(cfg)
	assert.Error(t, err)
}
