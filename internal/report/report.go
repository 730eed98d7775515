// Package report renders application exports as xlsx workbooks.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-job-board/models"
	"github.com/xuri/excelize/v2"
)

const (
	SheetName   = "Applications"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Header is the first row of the export sheet.
var Header = []any{"Name", "Email", "Phone", "Tech Skills", "Soft Skills", "Resume"}

var ErrRender = errors.New("error rendering report")

// FileName returns the attachment name for an export made on day.
func FileName(day time.Time) string {
	return "Applications-" + day.Format(models.ApplicationDateLayout) + ".xlsx"
}

// RenderApplications writes one row per application below the header.
func RenderApplications(rows []models.ApplicationExportRow, day time.Time) (models.ExportFile, error) {
	f := excelize.NewFile()
	defer f.Close()

	// the default sheet is renamed so the workbook holds a single sheet
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return models.ExportFile{}, fmt.Errorf("%w: %w", ErrRender, err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &Header); err != nil {
		return models.ExportFile{}, fmt.Errorf("%w: %w", ErrRender, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return models.ExportFile{}, fmt.Errorf("%w: %w", ErrRender, err)
		}

		values := []any{
			row.Applicant.Username,
			row.Applicant.Email,
			row.Applicant.MobileNumber,
			row.UserTechSkills.String(),
			row.UserSoftSkills.String(),
			row.UserResume,
		}
		if err = f.SetSheetRow(SheetName, cell, &values); err != nil {
			return models.ExportFile{}, fmt.Errorf("%w: %w", ErrRender, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return models.ExportFile{}, fmt.Errorf("%w: %w", ErrRender, err)
	}

	return models.ExportFile{
		FileName:    FileName(day),
		ContentType: ContentType,
		Content:     buf.Bytes(),
	}, nil
}
