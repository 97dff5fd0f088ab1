package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/vending/internal/config"
	"github.com/aretw0/vending/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`
serial: VM-0042
extended: true
items:
  a:
    price: "6"
  b:
    name: cola
    stock: 2
`))
	require.NoError(t, err)

	assert.Equal(t, "VM-0042", cfg.Serial)
	assert.True(t, cfg.Extended)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, domain.Item{Name: "choco bar", Price: 6, Stock: 5}, cfg.Items.A)
	assert.Equal(t, domain.Item{Name: "cola", Price: 7, Stock: 2}, cfg.Items.B)
}

func TestParse_EmptyDocument(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultCatalog(), cfg.Items)
	assert.False(t, cfg.Extended)
	assert.True(t, strings.HasPrefix(cfg.Serial, "VM-"))
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := config.Parse([]byte("serail: typo\n"))
	assert.Error(t, err)
}

func TestParse_ValidationErrors(t *testing.T) {
	_, err := config.Parse([]byte(`
log_level: loud
items:
  a:
    price: 0
  b:
    stock: -1
`))
	require.Error(t, err)

	errs := config.ValidationErrors(err)
	require.Len(t, errs, 3)

	var keys []string
	for _, e := range errs {
		var ve *config.ValidationError
		require.True(t, errors.As(e, &ve))
		keys = append(keys, ve.Key)
	}
	assert.Equal(t, []string{"log_level", "items.a.price", "items.b.stock"}, keys)
	assert.Contains(t, err.Error(), "3 validation errors")
}

func TestParse_DuplicateItemNames(t *testing.T) {
	_, err := config.Parse([]byte(`
items:
  b:
    name: choco bar
`))
	require.Error(t, err)

	errs := config.ValidationErrors(err)
	require.Len(t, errs, 1)

	var ve *config.ValidationError
	require.True(t, errors.As(errs[0], &ve))
	assert.Equal(t, "items.b.name", ve.Key)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing optional file yields defaults", func(t *testing.T) {
		cfg, err := config.Load(filepath.Join(dir, "absent.yaml"), false)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultCatalog(), cfg.Items)
		assert.NotEmpty(t, cfg.Serial)
	})

	t.Run("missing required file fails", func(t *testing.T) {
		_, err := config.Load(filepath.Join(dir, "absent.yaml"), true)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(dir, "vending.yaml")
		require.NoError(t, os.WriteFile(path, []byte("serial: VM-FILE\nlog_format: json\n"), 0o644))

		cfg, err := config.Load(path, true)
		require.NoError(t, err)
		assert.Equal(t, "VM-FILE", cfg.Serial)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("broken yaml names the file", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("items: [a\n"), 0o644))

		_, err := config.Load(path, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken.yaml")
	})
}

func TestConfig_Logger(t *testing.T) {
	cfg := config.Default()

	logger, err := cfg.Logger(true)
	require.NoError(t, err)
	assert.NotNil(t, logger)

	cfg.LogFormat = "xml"
	_, err = cfg.Logger(false)
	assert.Error(t, err)
}
