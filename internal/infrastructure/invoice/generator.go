package invoice

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"rugcare.backend/internal/domain/entities"
)

const contentTypePDF = "application/pdf"

// PDFGenerator renders paid-job invoices with fpdf
type PDFGenerator struct{}

// NewPDFGenerator creates an invoice generator
func NewPDFGenerator() *PDFGenerator {
	return &PDFGenerator{}
}

// Filename returns the attachment name for a job's invoice
func Filename(jobNumber string) string {
	return "invoice-" + safeName(jobNumber, "invoice") + ".pdf"
}

// safeName keeps letters, digits, dash and underscore
func safeName(s, fallback string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, strings.TrimSpace(s))
	if name == "" {
		return fallback
	}
	return name
}

// Generate builds the invoice PDF for a confirmed payment
func (g *PDFGenerator) Generate(ctx context.Context, c *entities.ConfirmationContext) (*entities.InvoiceAttachment, error) {
	if c == nil {
		return nil, fmt.Errorf("generate invoice: missing confirmation context")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Invoice "+c.JobNumber, true)
	pdf.SetAuthor(c.BusinessName, true)
	pdf.AddPage()

	// business header
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(120, 8, tr(c.BusinessName))
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(70, 8, "INVOICE", "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range []string{c.BusinessAddress, c.BusinessPhone, c.BusinessEmail} {
		pdf.CellFormat(190, 5, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// invoice and client details
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(95, 6, "Bill to", "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, "Invoice details", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	left := []string{c.ClientName, c.ClientEmail, c.ClientPhone}
	right := []string{
		"Job: " + c.JobNumber,
		"Date paid: " + c.PaidAt.Format("Jan 2, 2006"),
		"Reference: " + c.PaymentIntentID,
	}
	for i := range left {
		pdf.CellFormat(95, 5, tr(left[i]), "", 0, "L", false, 0, "")
		pdf.CellFormat(95, 5, tr(right[i]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(8)

	// rug table
	widths := []float64{22, 38, 30, 70, 30}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(235, 235, 235)
	for i, h := range []string{"Rug", "Type", "Dimensions", "Services", "Total"} {
		align := "L"
		if i == len(widths)-1 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 7, h, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	if len(c.RugDetails) == 0 {
		pdf.CellFormat(190, 7, "Rug cleaning services", "1", 1, "L", false, 0, "")
	}
	for _, rug := range c.RugDetails {
		pdf.CellFormat(widths[0], 7, tr(rug.RugNumber), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, tr(rug.RugType), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, tr(rug.Dimensions), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 7, tr(truncate(strings.Join(rug.Services, ", "), 48)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[4], 7, "$"+rug.Total, "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(160, 8, "Total paid", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "$"+c.Amount, "1", 1, "R", false, 0, "")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(190, 5, "Thank you for your business.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}

	return &entities.InvoiceAttachment{
		Filename:      Filename(c.JobNumber),
		ContentType:   contentTypePDF,
		ContentBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		Content:       buf.Bytes(),
	}, nil
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
