package carprice

import (
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	apperrors "github.com/Shenika-D/ShadowFox-Internship/internal/errors"
)

// Report summarizes one regression run.
type Report struct {
	RunID       string    `yaml:"run_id"`
	Dataset     string    `yaml:"dataset"`
	RowsLoaded  int       `yaml:"rows_loaded"`
	RowsUnique  int       `yaml:"rows_after_dedup"`
	TrainRows   int       `yaml:"train_rows"`
	TestRows    int       `yaml:"test_rows"`
	Features    int       `yaml:"features"`
	Intercept   float64   `yaml:"intercept"`
	MSE         float64   `yaml:"mse"`
	RMSE        float64   `yaml:"rmse"`
	MAE         float64   `yaml:"mae"`
	R2          float64   `yaml:"r2"`
	GeneratedAt time.Time `yaml:"generated_at"`
}

func newReport(dataset string) *Report {
	return &Report{
		RunID:       uuid.NewString(),
		Dataset:     dataset,
		GeneratedAt: time.Now().UTC(),
	}
}

// WriteReport saves r as YAML at path.
func WriteReport(path string, r *Report) error {
	b, err := yaml.Marshal(r)
	if err != nil {
		return apperrors.Wrap(err, "marshal report")
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return apperrors.IOError("write report "+path, err)
	}
	return nil
}

// ReadReport loads a report written by WriteReport.
func ReadReport(path string) (*Report, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.IOError("read report "+path, err)
	}
	var r Report
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, apperrors.WithCode(apperrors.CodeParseError, err)
	}
	return &r, nil
}
