package board

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	CSVContentType  = "text/csv;charset=utf-8"
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// CreatedAtLayout is sortable and always written in UTC.
	CreatedAtLayout = "2006-01-02T15:04:05.000Z"

	xlsxSheet = "Ideas"
)

var exportHeader = []string{
	"ID", "Title", "Description", "Votes", "Category", "Themes",
	"Author Name", "Author Email", "Author Team", "Author Division", "Created At",
}

// ExportFilename suggests idea_export_YYYY-MM-DD.<ext> for the UTC date of now.
func ExportFilename(now time.Time, ext string) string {
	return fmt.Sprintf("idea_export_%s.%s", now.UTC().Format(time.DateOnly), ext)
}

func exportRow(idea Idea) []string {
	return []string{
		strconv.FormatInt(idea.ID, 10),
		idea.Title,
		idea.Description,
		strconv.Itoa(idea.Votes),
		string(idea.Category),
		strings.Join(idea.Themes, "; "),
		idea.AuthorName,
		idea.AuthorEmail,
		idea.AuthorTeam,
		idea.AuthorDivision,
		idea.CreatedAt.UTC().Format(CreatedAtLayout),
	}
}

// escapeCSVCell quotes only cells holding a comma, a double quote or a newline.
func escapeCSVCell(cell string) string {
	if !strings.ContainsAny(cell, ",\"\n") {
		return cell
	}
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}

// ExportCSV encodes ideas in the order given. Lines are joined by "\n" with no
// trailing newline.
func ExportCSV(ideas []Idea) ([]byte, error) {
	if len(ideas) == 0 {
		return nil, ErrNothingToExport
	}

	var buf bytes.Buffer
	buf.WriteString(strings.Join(exportHeader, ","))
	for _, idea := range ideas {
		row := exportRow(idea)
		for i, cell := range row {
			row[i] = escapeCSVCell(cell)
		}
		buf.WriteByte('\n')
		buf.WriteString(strings.Join(row, ","))
	}
	return buf.Bytes(), nil
}

// ExportXLSX writes the same columns as ExportCSV to a single "Ideas" sheet.
func ExportXLSX(ideas []Idea) ([]byte, error) {
	if len(ideas) == 0 {
		return nil, ErrNothingToExport
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), xlsxSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, idea := range ideas {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			idea.ID,
			idea.Title,
			idea.Description,
			idea.Votes,
			string(idea.Category),
			strings.Join(idea.Themes, "; "),
			idea.AuthorName,
			idea.AuthorEmail,
			idea.AuthorTeam,
			idea.AuthorDivision,
			idea.CreatedAt.UTC().Format(CreatedAtLayout),
		}
		if err := f.SetSheetRow(xlsxSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
