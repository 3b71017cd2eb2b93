package airquality

import (
	"strings"
	"time"

	apperrors "github.com/Shenika-D/ShadowFox-Internship/internal/errors"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/data"
)

// Column names of the air-quality dataset.
const (
	DateColumn     = "date"
	PM25Column     = "pm2_5"
	CategoryColumn = "AQI_Category"
)

// Pollutants in the order the correlation heatmap shows them.
var Pollutants = []string{"co", "no", "no2", "o3", "so2", "pm2_5", "pm10", "nh3"}

// HourlyPollutants is the legend order of the all-pollutants chart.
var HourlyPollutants = []string{"pm2_5", "pm10", "co", "no", "no2", "o3", "so2", "nh3"}

// Weekdays in chart order.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Schema declares the columns read from the air-quality CSV.
func Schema() data.Schema {
	s := data.Schema{{Name: DateColumn, Kind: data.Categorical}}
	for _, p := range Pollutants {
		s = append(s, data.ColumnSpec{Name: p, Kind: data.Numeric})
	}
	return s
}

var layouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04",
	"02-01-2006 15:04",
}

// ParseTimestamp parses s with the first layout that accepts it.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.Newf(apperrors.CodeParseError, "unrecognized timestamp %q", s)
}

// DeriveTimeFeatures parses column and appends month, day, hour and weekday.
// The parsed timestamps are returned in row order.
func DeriveTimeFeatures(f *data.Frame, column string) ([]time.Time, error) {
	raw, err := f.Strings(column)
	if err != nil {
		return nil, err
	}
	n := len(raw)
	ts := make([]time.Time, n)
	month := make([]float64, n)
	day := make([]float64, n)
	hour := make([]float64, n)
	weekday := make([]string, n)
	for i, s := range raw {
		t, err := ParseTimestamp(s)
		if err != nil {
			return nil, apperrors.Wrapf(err, "row %d", i)
		}
		ts[i] = t
		month[i] = float64(t.Month())
		day[i] = float64(t.Day())
		hour[i] = float64(t.Hour())
		weekday[i] = t.Weekday().String()
	}

	for _, c := range []*data.Column{
		data.NewNumeric("month", month),
		data.NewNumeric("day", day),
		data.NewNumeric("hour", hour),
		data.NewCategorical("weekday", weekday),
	} {
		if err := f.Add(c); err != nil {
			return nil, err
		}
	}
	return ts, nil
}

// AddCategory classifies every pm2_5 reading into the AQI_Category column.
func AddCategory(f *data.Frame) error {
	pm, err := f.Float(PM25Column)
	if err != nil {
		return err
	}
	cats := make([]string, len(pm))
	for i, v := range pm {
		cats[i] = string(Classify(v))
	}
	return f.Add(data.NewCategorical(CategoryColumn, cats))
}
