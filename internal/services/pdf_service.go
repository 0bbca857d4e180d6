package services

import (
	"bytes"
	"fmt"

	"vente-backend/internal/models"
	"vente-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// PDFService renders printable invoices.
type PDFService struct{}

func NewPDFService() *PDFService {
	return &PDFService{}
}

// RenderInvoice produces the printable FACTURE document: header with
// number and date, customer block, a product/quantity/unit-price/total
// table and the grand total. Amounts are in Ariary.
func (s *PDFService) RenderInvoice(invoice *models.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 22)
	pdf.CellFormat(190, 12, "FACTURE", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 6, "Invoice number", "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, "Date", "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(95, 7, invoice.Number, "B", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, timeutil.FormatEAT(invoice.IssueDate, timeutil.DisplayLayout), "B", 1, "R", false, 0, "")
	pdf.Ln(8)

	// Customer
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(190, 8, "Client", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(190, 7, invoice.CustomerName, "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Line table
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(85, 7, "Produit", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 7, "Quantite", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Prix unitaire", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 7, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, line := range invoice.Lines {
		pdf.CellFormat(85, 6, line.ProductName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%d", line.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f Ar", line.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f Ar", line.LineTotal), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	// Grand total and status
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(150, 8, "Total TTC", "T", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%.2f Ar", invoice.GrandTotal), "T", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Statut: %s", invoice.Status), "", 1, "R", false, 0, "")

	// Footer
	pdf.Ln(12)
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(190, 6, "Merci de votre confiance !", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
