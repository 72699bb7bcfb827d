package service

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"rebuy/internal/domain/entity"
)

// PDFService renders supplier offer quotations as downloadable PDFs.
type PDFService struct {
	companyName string
}

func NewPDFService(companyName string) *PDFService {
	return &PDFService{companyName: companyName}
}

func (s *PDFService) OfferQuotation(offer *entity.SupplierOffer, supplier *entity.User) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, s.companyName)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, "Supplier Quotation")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Quotation Ref: %s", offer.ID))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", offer.CreatedAt.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Supplier: %s %s", supplier.FirstName, supplier.LastName))
	pdf.Ln(6)
	if supplier.CompanyName != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Company: %s", supplier.CompanyName))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Status: %s", offer.Status))
	pdf.Ln(12)

	// Line item table
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(70, 8, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Quantity", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, "Unit Price (LKR)", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, "Total (LKR)", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(70, 8, offer.StockName, "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, fmt.Sprintf("%d", offer.Quantity), "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", offer.UnitPrice), "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", offer.Total()), "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(140, 8, "Grand Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", offer.Total()), "1", 1, "R", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Proposed delivery date: %s", offer.DeliveryDate.Format("2006-01-02")))
	pdf.Ln(6)
	if offer.Note != "" {
		pdf.MultiCell(0, 6, "Note: "+offer.Note, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering quotation PDF: %w", err)
	}

	return buf.Bytes(), nil
}
