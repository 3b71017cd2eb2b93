package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Shenika-D/ShadowFox-Internship/internal/errors"
)

func TestDefaults(t *testing.T) {
	c := Default()
	assert.Equal(t, "delhiaqi.csv", c.AirQuality.Input)
	assert.Equal(t, "cleaned_delhi_aqi.xlsx", c.AirQuality.Export)
	assert.Equal(t, "car_model_dataset.csv", c.CarPrice.Input)
	assert.Equal(t, 0.2, c.CarPrice.TestSize)
	assert.Equal(t, int64(42), c.CarPrice.Seed)
	assert.Equal(t, []string{"Model"}, c.CarPrice.Drop)
	assert.Equal(t, "png", c.Chart.Format)
	assert.Equal(t, 4, c.Chart.Workers)
	require.NoError(t, c.Validate())
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "datalab.yaml")
	require.NoError(t, os.WriteFile(path, []byte("out_dir: charts\ncarprice:\n  seed: 7\n"), 0o644))
	t.Setenv("DATALAB_CARPRICE_TEST_SIZE", "0.25")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "charts", c.OutDir)
	assert.Equal(t, int64(7), c.CarPrice.Seed)
	assert.Equal(t, 0.25, c.CarPrice.TestSize)
}

func TestLogLevelFallsBackToPlainEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", c.LogLevel)

	t.Setenv("DATALAB_LOG_LEVEL", "WARN")
	c, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "WARN", c.LogLevel)

	os.Unsetenv("DATALAB_LOG_LEVEL")
	path := filepath.Join(t.TempDir(), "datalab.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: ERROR\n"), 0o644))
	c, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ERROR", c.LogLevel)
}

func TestValidateRejectsBadSplit(t *testing.T) {
	c := Default()
	c.CarPrice.TestSize = 1.5
	err := c.Validate()
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeConfigInvalid, apperrors.Code(err))
}

func TestValidateRejectsDuplicateColumn(t *testing.T) {
	c := Default()
	c.CarPrice.Categorical = append(c.CarPrice.Categorical, "Year")
	assert.Error(t, c.Validate())
}

func TestValidateRejectsNoWorkers(t *testing.T) {
	c := Default()
	c.Chart.Workers = 0
	assert.Equal(t, apperrors.CodeConfigInvalid, apperrors.Code(c.Validate()))
}
