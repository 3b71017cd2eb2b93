package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	apperrors "github.com/Shenika-D/ShadowFox-Internship/internal/errors"
)

// Config is the complete run configuration. Every default is the literal the
// analysis has always used, so an empty environment reproduces the reference run.
type Config struct {
	LogLevel   string           `mapstructure:"log_level" yaml:"log_level"`
	OutDir     string           `mapstructure:"out_dir" yaml:"out_dir"`
	Chart      ChartConfig      `mapstructure:"chart" yaml:"chart"`
	AirQuality AirQualityConfig `mapstructure:"airquality" yaml:"airquality"`
	CarPrice   CarPriceConfig   `mapstructure:"carprice" yaml:"carprice"`
}

// ChartConfig selects the rendering backend handed to every chart.
type ChartConfig struct {
	Format  string `mapstructure:"format" yaml:"format"`
	DPI     int    `mapstructure:"dpi" yaml:"dpi"`
	Workers int    `mapstructure:"workers" yaml:"workers"`
}

type AirQualityConfig struct {
	Input  string `mapstructure:"input" yaml:"input"`
	Export string `mapstructure:"export" yaml:"export"`
}

type CarPriceConfig struct {
	Input       string   `mapstructure:"input" yaml:"input"`
	Target      string   `mapstructure:"target" yaml:"target"`
	Drop        []string `mapstructure:"drop" yaml:"drop"`
	Numeric     []string `mapstructure:"numeric" yaml:"numeric"`
	Categorical []string `mapstructure:"categorical" yaml:"categorical"`
	TestSize    float64  `mapstructure:"test_size" yaml:"test_size"`
	Seed        int64    `mapstructure:"seed" yaml:"seed"`
	Report      bool     `mapstructure:"report" yaml:"report"`
	ReportPath  string   `mapstructure:"report_path" yaml:"report_path"`
}

// DefaultNumeric and DefaultCategorical declare the car dataset schema.
var (
	DefaultNumeric = []string{
		"Year", "Engine HP", "Engine Cylinders", "Number of Doors",
		"highway MPG", "city mpg", "Popularity", "MSRP",
	}
	DefaultCategorical = []string{
		"Make", "Model", "Engine Fuel Type", "Transmission Type",
		"Driven_Wheels", "Market Category", "Vehicle Size", "Vehicle Style",
	}
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "INFO")
	v.SetDefault("out_dir", ".")
	v.SetDefault("chart.format", "png")
	v.SetDefault("chart.dpi", 96)
	v.SetDefault("chart.workers", 4)

	v.SetDefault("airquality.input", "delhiaqi.csv")
	v.SetDefault("airquality.export", "cleaned_delhi_aqi.xlsx")

	v.SetDefault("carprice.input", "car_model_dataset.csv")
	v.SetDefault("carprice.target", "MSRP")
	v.SetDefault("carprice.drop", []string{"Model"})
	v.SetDefault("carprice.numeric", DefaultNumeric)
	v.SetDefault("carprice.categorical", DefaultCategorical)
	v.SetDefault("carprice.test_size", 0.2)
	v.SetDefault("carprice.seed", 42)
	v.SetDefault("carprice.report", false)
	v.SetDefault("carprice.report_path", "msrp_report.yaml")
}

// Load reads configuration from defaults, an optional YAML file, a .env file
// and DATALAB_* environment variables.
// Precedence: env > config file > defaults. The plain LOG_LEVEL variable sets
// log_level only when neither the file nor DATALAB_LOG_LEVEL does.
func Load(cfgFile string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("DATALAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, apperrors.Wrapf(apperrors.WithCode(apperrors.CodeConfigInvalid, err), "read config %s", cfgFile)
		}
	}

	if _, ok := os.LookupEnv("DATALAB_LOG_LEVEL"); !ok && !v.InConfig("log_level") {
		if lvl, ok := os.LookupEnv("LOG_LEVEL"); ok {
			v.Set("log_level", lvl)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Default returns the configuration with no file and no environment.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return &c
}

// Validate rejects settings no run could use.
func (c *Config) Validate() error {
	if c.CarPrice.TestSize <= 0 || c.CarPrice.TestSize >= 1 {
		return apperrors.Newf(apperrors.CodeConfigInvalid, "carprice.test_size must be in (0,1), got %v", c.CarPrice.TestSize)
	}
	switch strings.ToLower(c.Chart.Format) {
	case "png", "jpg", "jpeg":
	default:
		return apperrors.Newf(apperrors.CodeConfigInvalid, "chart.format %q not supported", c.Chart.Format)
	}
	if c.Chart.DPI <= 0 {
		return apperrors.Newf(apperrors.CodeConfigInvalid, "chart.dpi must be positive")
	}
	if c.Chart.Workers < 1 {
		return apperrors.Newf(apperrors.CodeConfigInvalid, "chart.workers must be at least 1")
	}
	seen := map[string]bool{}
	for _, n := range append(append([]string{}, c.CarPrice.Numeric...), c.CarPrice.Categorical...) {
		if seen[n] {
			return apperrors.Newf(apperrors.CodeConfigInvalid, "column %q declared twice in carprice schema", n)
		}
		seen[n] = true
	}
	if !seen[c.CarPrice.Target] {
		return apperrors.Newf(apperrors.CodeConfigInvalid, "target %q missing from carprice schema", c.CarPrice.Target)
	}
	return nil
}
