package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	programName = "BIOFIT EXPERT"
	issuerName  = "PharmaBrand S.A."
)

var brandGreen = [3]int{0x00, 0x96, 0x5E}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// SpanishDate formats t as "2 de enero de 2006".
func SpanishDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}

// Certificate is the content of a completion certificate.
type Certificate struct {
	FullName string
	IssuedAt time.Time
}

// CertificateFileName returns the default PDF name for a certificate issued on day.
func CertificateFileName(day time.Time) string {
	return "certificado_biofit_" + day.Format("2006-01-02") + ".pdf"
}

// WriteCertificate renders c as a landscape A4 PDF.
func WriteCertificate(w io.Writer, c Certificate) error {
	return writeCertificate(w, c, true)
}

// SaveCertificate writes c into dir under CertificateFileName and returns
// the file path.
func SaveCertificate(dir string, c Certificate) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create certificate dir: %w", err)
	}
	path := filepath.Join(dir, CertificateFileName(c.IssuedAt))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create certificate: %w", err)
	}
	if err := WriteCertificate(f, c); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close certificate: %w", err)
	}
	return path, nil
}

func writeCertificate(w io.Writer, c Certificate, compress bool) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetCompression(compress)
	pdf.SetCreationDate(c.IssuedAt)
	pdf.SetModificationDate(c.IssuedAt)
	pdf.SetTitle("Certificado "+programName, true)
	pdf.SetAuthor(issuerName, true)
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()

	pdf.SetDrawColor(brandGreen[0], brandGreen[1], brandGreen[2])
	pdf.SetLineWidth(3)
	pdf.Rect(8, 8, pageW-16, pageH-16, "D")

	center := func(y float64, family, style string, size float64, text string) {
		pdf.SetFont(family, style, size)
		pdf.SetXY(15, y)
		pdf.CellFormat(pageW-30, size*0.5, tr(text), "", 0, "C", false, 0, "")
	}

	pdf.SetTextColor(brandGreen[0], brandGreen[1], brandGreen[2])
	center(30, "Helvetica", "B", 34, "CERTIFICADO DE EXCELENCIA")

	pdf.SetTextColor(60, 60, 60)
	center(55, "Helvetica", "", 16, "Se certifica que")

	pdf.SetTextColor(20, 20, 20)
	center(72, "Helvetica", "B", 28, c.FullName)
	pdf.SetLineWidth(1)
	pdf.Line(50, 90, pageW-50, 90)

	pdf.SetTextColor(60, 60, 60)
	pdf.SetFont("Helvetica", "", 13)
	pdf.SetXY(35, 98)
	pdf.MultiCell(pageW-70, 7, tr("Ha completado exitosamente el programa de entrenamiento "+programName+
		", demostrando excelencia en el conocimiento de los beneficios, ventajas competitivas "+
		"y técnicas de venta del producto BIOFIT® - Fibra Natural de Psyllium Muciloide."), "", "C", false)

	pdf.SetTextColor(brandGreen[0], brandGreen[1], brandGreen[2])
	center(130, "Helvetica", "B", 18, "Embajador BIOFIT")

	pdf.SetTextColor(100, 100, 100)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(25, 160)
	pdf.CellFormat(80, 5, tr("FECHA DE EMISIÓN"), "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(20, 20, 20)
	pdf.CellFormat(80, 7, tr(SpanishDate(c.IssuedAt)), "", 0, "L", false, 0, "")

	pdf.SetDrawColor(40, 40, 40)
	pdf.SetLineWidth(0.5)
	pdf.Line(pageW/2-40, 165, pageW/2+40, 165)
	pdf.SetXY(pageW/2-40, 167)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(80, 6, "Firma Autorizada", "", 2, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(80, 5, issuerName, "", 0, "C", false, 0, "")

	pdf.SetTextColor(120, 120, 120)
	center(pageH-22, "Helvetica", "", 10, "BIOFIT® es un producto de "+issuerName)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render certificate: %w", err)
	}
	return nil
}
