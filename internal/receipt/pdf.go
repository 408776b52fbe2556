package receipt

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	pageMargin = 20.0
	lineHeight = 8.0
	labelWidth = 45.0
)

// PDFRenderer renders A4 receipts with fpdf.
type PDFRenderer struct{}

// NewPDFRenderer creates a new PDFRenderer
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (PDFRenderer) Render(ctx context.Context, r Receipt) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetTitle("Payment Receipt", false)
	pdf.SetCreator("WorkProof", false)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "WorkProof", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, lineHeight, "Payment Receipt", "B", 1, "L", false, 0, "")
	pdf.Ln(6)

	rows := [][2]string{
		{"Receipt No.", r.PaymentID},
		{"Date", r.PaidAt.Format("02 Jan 2006 15:04")},
		{"Worker", r.WorkerName},
		{"Phone", r.WorkerPhone},
		{"Status", r.Status},
	}
	if r.Notes != "" {
		rows = append(rows, [2]string{"Notes", r.Notes})
	}
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(labelWidth, lineHeight, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, lineHeight, tr(row[1]), "", "L", false)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(labelWidth, 10, "Amount Paid", "T", 0, "L", false, 0, "")
	pdf.CellFormat(0, 10, fmt.Sprintf("Rs. %.2f", r.Amount), "T", 1, "R", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "This receipt was generated electronically and is valid without a signature.", "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
