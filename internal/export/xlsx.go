// Package export renders tabular data as XLSX workbooks for download.
package export

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet is a single worksheet: a header row followed by data rows.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]interface{}
}

// WriteXLSX writes sheet as a one-sheet workbook to w.
func WriteXLSX(w io.Writer, sheet Sheet) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	name := sheet.Name
	if name == "" {
		name = "Sheet1"
	}
	if err := f.SetSheetName("Sheet1", name); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(sheet.Headers))
	for i, h := range sheet.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if len(sheet.Headers) > 0 {
		last, err := excelize.ColumnNumberToName(len(sheet.Headers))
		if err != nil {
			return err
		}
		if err := f.SetColWidth(name, "A", last, 16); err != nil {
			return err
		}
	}

	return f.Write(w)
}

// Serve streams sheet as an attachment named filename.
func Serve(c *gin.Context, filename string, sheet Sheet) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", ContentTypeXLSX)
	c.Status(http.StatusOK)
	if err := WriteXLSX(c.Writer, sheet); err != nil {
		// Headers are already out; all that is left is to log.
		slog.Error("[Export] Failed to write workbook", "file", filename, "error", err)
	}
}
