// Package export renders the admin user roster as a spreadsheet and the
// completion certificate as a PDF.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/santgross/BIOFIT-EXPERT/internal/store"
)

// UsersSheet is the worksheet name of the roster export.
const UsersSheet = "Usuarios BIOFIT"

var userColumns = []struct {
	title string
	width float64
}{
	{"Nombre", 20},
	{"Apellido", 20},
	{"Email", 20},
	{"Celular", 15},
	{"Farmacia", 20},
	{"Representante", 20},
	{"Fecha Registro", 15},
}

// UsersFileName returns the default export file name for day.
func UsersFileName(day time.Time) string {
	return "usuarios_biofit_" + day.Format("2006-01-02") + ".xlsx"
}

// WriteUsers writes users as an xlsx workbook to w.
func WriteUsers(w io.Writer, users []store.UserSummary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), UsersSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(userColumns))
	for i, c := range userColumns {
		header[i] = c.title
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(UsersSheet, col, col, c.width); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}
	if err := f.SetSheetRow(UsersSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(userColumns), 1)
	if err := f.SetCellStyle(UsersSheet, "A1", last, bold); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}

	for i, u := range users {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			u.FirstName,
			u.LastName,
			u.Email,
			u.Phone,
			u.PharmacyName,
			u.RepresentativeName,
			u.CreatedAt.Local().Format("02/01/2006"),
		}
		if err := f.SetSheetRow(UsersSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// RegisteredOn counts users registered on the calendar day of t, in t's
// location.
func RegisteredOn(users []store.UserSummary, t time.Time) int {
	y, m, d := t.Date()
	n := 0
	for _, u := range users {
		uy, um, ud := u.CreatedAt.In(t.Location()).Date()
		if uy == y && um == m && ud == d {
			n++
		}
	}
	return n
}
