package airquality

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "github.com/Shenika-D/ShadowFox-Internship/internal/errors"
	"github.com/Shenika-D/ShadowFox-Internship/internal/logger"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/chart"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/data"
)

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		pm   float64
		want Category
	}{
		{0, Good},
		{50, Good},
		{50.1, Moderate},
		{100, Moderate},
		{150, UnhealthyForSensitive},
		{150.5, Unhealthy},
		{200, Unhealthy},
		{300, VeryUnhealthy},
		{301, Hazardous},
		{5000, Hazardous},
		{math.NaN(), Unknown},
		{-1, Unknown},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Classify(c.pm), "pm2_5=%v", c.pm)
	}
}

func TestClassifyIsMonotonic(t *testing.T) {
	prev := -1
	for v := 0.0; v <= 600; v += 0.5 {
		s := Classify(v).Severity()
		assert.GreaterOrEqual(t, s, prev, "pm2_5=%v", v)
		prev = s
	}
	assert.Equal(t, -1, Unknown.Severity())
	assert.Len(t, Categories(), 6)
}

func TestParseTimestamp(t *testing.T) {
	for _, s := range []string{
		"2024-01-01 13:00:00",
		"2024-01-01T13:00:00Z",
		"2024-01-01T13:00:00",
		"2024-01-01 13:00",
		"01/01/2024 13:00",
	} {
		ts, err := ParseTimestamp(s)
		require.NoError(t, err, s)
		assert.Equal(t, 13, ts.Hour(), s)
		assert.Equal(t, time.January, ts.Month(), s)
	}
	_, err := ParseTimestamp("yesterday")
	assert.Equal(t, apperrors.CodeParseError, apperrors.Code(err))
}

func TestDeriveTimeFeatures(t *testing.T) {
	f, err := data.NewFrame(data.NewCategorical(DateColumn, []string{"2024-01-01 00:00:00", "2023-11-25 23:00:00"}))
	require.NoError(t, err)

	ts, err := DeriveTimeFeatures(f, DateColumn)
	require.NoError(t, err)
	require.Len(t, ts, 2)

	weekday, _ := f.Strings("weekday")
	assert.Equal(t, []string{"Monday", "Saturday"}, weekday)
	month, _ := f.Float("month")
	assert.Equal(t, []float64{1, 11}, month)
	day, _ := f.Float("day")
	assert.Equal(t, []float64{1, 25}, day)
	hour, _ := f.Float("hour")
	assert.Equal(t, []float64{0, 23}, hour)

	bad, err := data.NewFrame(data.NewCategorical(DateColumn, []string{"2024-01-01", "not a date"}))
	require.NoError(t, err)
	_, err = DeriveTimeFeatures(bad, DateColumn)
	assert.Equal(t, apperrors.CodeParseError, apperrors.Code(err))
	assert.Contains(t, err.Error(), "row 1")
}

// writeCSV writes a synthetic dataset spanning several months, weekdays and
// every category. pm2_5 is missing on row 5.
func writeCSV(t *testing.T, dir string) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("date,co,no,no2,o3,so2,pm2_5,pm10,nh3\n")
	start := time.Date(2023, 11, 25, 0, 0, 0, 0, time.UTC)
	levels := []float64{20, 80, 120, 180, 250, 420}
	for i := 0; i < 48; i++ {
		ts := start.Add(time.Duration(i*37) * time.Hour)
		pm := fmt.Sprintf("%g", levels[i%len(levels)]+float64(i%5))
		if i == 5 {
			pm = ""
		}
		fmt.Fprintf(&b, "%s,%d,%g,%g,%g,%g,%s,%g,%g\n",
			ts.Format("2006-01-02 15:04:05"),
			600+i*10, float64(i%7), 30+float64(i%11), 5+float64(i%3)*2,
			20+float64(i%4), pm, 300+float64(i*3), 10+float64(i%6))
	}
	path := filepath.Join(dir, "delhiaqi.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	r, err := chart.NewRenderer(chart.Config{Dir: dir, Format: "png", DPI: 48, Workers: 3}, logger.Discard())
	require.NoError(t, err)

	var out bytes.Buffer
	res, err := Run(context.Background(), Options{
		Input:    writeCSV(t, dir),
		Export:   filepath.Join(dir, "cleaned_delhi_aqi.xlsx"),
		Renderer: r,
		Log:      logger.Discard(),
	}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Missing values:")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out.String()), SuccessMessage))
	for _, m := range res.Missing {
		if m.Column == PM25Column {
			assert.Equal(t, 1, m.Count)
		} else {
			assert.Zero(t, m.Count, m.Column)
		}
	}

	require.Len(t, res.Charts, 6)
	for _, p := range res.Charts {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0), p)
	}

	cats, _ := res.Frame.Strings(CategoryColumn)
	assert.Equal(t, string(Unknown), cats[5])
	assert.Equal(t, string(Good), cats[0])

	book, err := excelize.OpenFile(res.ExportPath)
	require.NoError(t, err)
	defer book.Close()
	rows, err := book.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 49)
	assert.Equal(t, res.Frame.Names(), rows[0])
	assert.Equal(t, CategoryColumn, rows[0][len(rows[0])-1])
	assert.Equal(t, string(Good), rows[1][len(rows[1])-1])
	assert.Equal(t, "", rows[6][6], "missing pm2_5 is a blank cell")
}

func TestRunMissingColumn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "short.csv")
	require.NoError(t, os.WriteFile(path, []byte("date,co\n2024-01-01 00:00:00,1\n"), 0o644))
	r, err := chart.NewRenderer(chart.Config{Dir: dir}, nil)
	require.NoError(t, err)

	_, err = Run(context.Background(), Options{Input: path, Export: filepath.Join(dir, "x.xlsx"), Renderer: r}, &bytes.Buffer{})
	assert.Equal(t, apperrors.CodeMissingColumn, apperrors.Code(err))
}
