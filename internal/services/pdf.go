package services

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"freshreminder/internal/models"
)

// PDFService generates the PDF receipt attached to purchase emails. The
// output is a minimal single-page PDF built by hand; receipts are short
// enough that a layout library would be overkill.
type PDFService struct{}

// NewPDFService creates a new PDF service
func NewPDFService() *PDFService {
	return &PDFService{}
}

// GenerateReceiptPDF renders the receipt lines and total as a one-page PDF.
func (s *PDFService) GenerateReceiptPDF(lines []models.ReceiptLine, total int, date time.Time) ([]byte, error) {
	for _, line := range lines {
		if line.Name == "" || line.Quantity <= 0 {
			return nil, errors.New("malformed receipt line")
		}
	}

	contentStream := s.buildContentStream(lines, total, date)

	var buffer bytes.Buffer
	buffer.WriteString("%PDF-1.4\n")

	var offsets []int

	writeObj := func(body string) {
		offsets = append(offsets, buffer.Len())
		buffer.WriteString(body)
	}

	writeObj("1 0 obj\n<<\n/Type /Catalog\n/Pages 2 0 R\n>>\nendobj\n\n")
	writeObj("2 0 obj\n<<\n/Type /Pages\n/Kids [3 0 R]\n/Count 1\n>>\nendobj\n\n")
	writeObj("3 0 obj\n<<\n/Type /Page\n/Parent 2 0 R\n/MediaBox [0 0 612 792]\n" +
		"/Contents 4 0 R\n/Resources <<\n/Font <<\n/F1 5 0 R\n/F2 6 0 R\n>>\n>>\n>>\nendobj\n\n")
	writeObj(fmt.Sprintf("4 0 obj\n<<\n/Length %d\n>>\nstream\n%s\nendstream\nendobj\n\n",
		len(contentStream), contentStream))
	writeObj("5 0 obj\n<<\n/Type /Font\n/Subtype /Type1\n/BaseFont /Helvetica\n>>\nendobj\n\n")
	writeObj("6 0 obj\n<<\n/Type /Font\n/Subtype /Type1\n/BaseFont /Helvetica-Bold\n>>\nendobj\n\n")

	xrefOffset := buffer.Len()
	buffer.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)+1))
	buffer.WriteString("0000000000 65535 f \n")
	for _, offset := range offsets {
		buffer.WriteString(fmt.Sprintf("%010d 00000 n \n", offset))
	}
	buffer.WriteString(fmt.Sprintf("trailer\n<<\n/Size %d\n/Root 1 0 R\n>>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xrefOffset))

	return buffer.Bytes(), nil
}

// buildContentStream lays out the receipt text top-down on the page.
func (s *PDFService) buildContentStream(lines []models.ReceiptLine, total int, date time.Time) string {
	var content strings.Builder

	y := 750
	writeLine := func(font string, size int, text string) {
		content.WriteString(fmt.Sprintf("BT\n/%s %d Tf\n50 %d Td\n(%s) Tj\nET\n",
			font, size, y, escapePDFText(text)))
		y -= size + 8
	}

	writeLine("F2", 18, "FreshReminder Receipt")
	writeLine("F1", 10, date.Format("January 2, 2006 15:04"))
	y -= 10

	for _, line := range lines {
		writeLine("F1", 12, fmt.Sprintf("%-40s x%d  %s", line.Name, line.Quantity, FormatCents(line.Price)))
	}

	y -= 10
	writeLine("F2", 14, fmt.Sprintf("Total: %s", FormatCents(total)))

	return content.String()
}

// escapePDFText escapes the characters PDF string literals reserve.
func escapePDFText(text string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(text)
}
