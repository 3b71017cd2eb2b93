package airquality

import (
	"math"
	"time"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/Shenika-D/ShadowFox-Internship/internal/errors"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/data"
)

const exportSheet = "Sheet1"

// Export writes f to an xlsx workbook at path, one row per record under a
// header row. When timestamps is non-nil the date column is written as dates.
// Missing values are left blank.
func Export(path string, f *data.Frame, timestamps []time.Time) error {
	if timestamps != nil && len(timestamps) != f.Len() {
		return apperrors.DimensionMismatch("%d timestamps for %d rows", len(timestamps), f.Len())
	}
	book := excelize.NewFile()
	defer book.Close()

	if idx, err := book.GetSheetIndex(exportSheet); err != nil || idx == -1 {
		idx, err := book.NewSheet(exportSheet)
		if err != nil {
			return apperrors.IOError("create sheet", err)
		}
		book.SetActiveSheet(idx)
	}

	header := make([]interface{}, f.Width())
	for i, n := range f.Names() {
		header[i] = n
	}
	if err := book.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return apperrors.IOError("write header", err)
	}

	cols := f.Columns()
	row := make([]interface{}, len(cols))
	for r := 0; r < f.Len(); r++ {
		for c, col := range cols {
			row[c] = cellValue(col, r)
			if col.Name == DateColumn && timestamps != nil {
				row[c] = timestamps[r]
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return apperrors.Wrap(err, "cell name")
		}
		if err := book.SetSheetRow(exportSheet, cell, &row); err != nil {
			return apperrors.IOError("write row", err)
		}
	}

	if err := book.SaveAs(path); err != nil {
		return apperrors.IOError("save "+path, err)
	}
	return nil
}

func cellValue(col *data.Column, r int) interface{} {
	if col.Kind == data.Numeric {
		v := col.Num[r]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		return v
	}
	if col.Str[r] == "" {
		return nil
	}
	return col.Str[r]
}
