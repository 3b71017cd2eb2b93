package data

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	apperrors "github.com/Shenika-D/ShadowFox-Internship/internal/errors"
	"github.com/Shenika-D/ShadowFox-Internship/internal/logger"
)

// NATokens are the cell values read as missing.
var NATokens = []string{"", "NA", "NaN", "nan", "null", "<nil>"}

// Loader reads CSV files into frames using an explicit schema.
type Loader struct {
	Schema Schema
	Log    *logger.Logger
}

// LoadCSV reads the CSV at path with the given schema.
func LoadCSV(path string, schema Schema) (*Frame, error) {
	return (&Loader{Schema: schema}).Load(path)
}

// Load opens path and reads it.
func (l *Loader) Load(path string) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.IOError("open "+path, err)
	}
	defer file.Close()

	f, err := l.Read(bufio.NewReader(file))
	if err != nil {
		return nil, apperrors.Wrapf(err, "load %s", path)
	}
	l.Log.Info("loaded %s: %d rows, %d columns", path, f.Len(), f.Width())
	return f, nil
}

// Read parses CSV data from r. Every schema column must be present in the
// header; columns the schema does not declare are skipped.
func (l *Loader) Read(r io.Reader) (*Frame, error) {
	if len(l.Schema) == 0 {
		return nil, apperrors.InvalidArgument("empty schema")
	}
	// Numeric columns are read as strings and parsed here so that a malformed
	// cell is an error rather than a missing value.
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(NATokens),
	)
	if df.Err != nil {
		return nil, apperrors.WithCode(apperrors.CodeParseError, df.Err)
	}

	present := make(map[string]bool, df.Ncol())
	for _, n := range df.Names() {
		present[n] = true
		if _, ok := l.Schema.Lookup(n); !ok {
			l.Log.Warn("column %q not in schema, ignored", n)
		}
	}

	frame := &Frame{index: make(map[string]int, len(l.Schema))}
	for _, spec := range l.Schema {
		if !present[spec.Name] {
			return nil, apperrors.MissingColumn(spec.Name)
		}
		s := df.Col(spec.Name)
		if s.Err != nil {
			return nil, apperrors.WithCode(apperrors.CodeParseError, s.Err)
		}
		var col *Column
		if spec.Kind == Numeric {
			values, err := parseNumeric(spec.Name, s)
			if err != nil {
				return nil, err
			}
			col = NewNumeric(spec.Name, values)
		} else {
			col = NewCategorical(spec.Name, stringsWithMissing(s))
		}
		if err := frame.Add(col); err != nil {
			return nil, err
		}
	}
	if frame.Len() == 0 {
		return nil, apperrors.New(apperrors.CodeEmptyDataset, "dataset has no rows")
	}
	return frame, nil
}

func stringsWithMissing(s series.Series) []string {
	recs := s.Records()
	nan := s.IsNaN()
	na := make(map[string]bool, len(NATokens))
	for _, t := range NATokens {
		na[t] = true
	}
	for i := range recs {
		if nan[i] || na[recs[i]] {
			recs[i] = ""
		}
	}
	return recs
}

// parseNumeric converts a string series to floats. NA cells become NaN; any
// other cell that is not a number is a PARSE_ERROR.
func parseNumeric(name string, s series.Series) ([]float64, error) {
	recs := s.Records()
	nan := s.IsNaN()
	out := make([]float64, len(recs))
	for i, rec := range recs {
		if nan[i] {
			out[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec), 64)
		if err != nil {
			return nil, apperrors.Newf(apperrors.CodeParseError,
				"column %q row %d: %q is not a number", name, i, rec)
		}
		out[i] = v
	}
	return out, nil
}
