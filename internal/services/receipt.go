package services

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"freshreminder/internal/models"
)

// ReceiptService formats purchase receipts and dispatches them through the
// configured email transport. It implements ReceiptNotifier.
type ReceiptService struct {
	email         EmailSender
	pdf           *PDFService
	operatorEmail string
}

// NewReceiptService creates a new receipt service. operatorEmail receives a
// copy of every receipt.
func NewReceiptService(email EmailSender, pdf *PDFService, operatorEmail string) *ReceiptService {
	return &ReceiptService{
		email:         email,
		pdf:           pdf,
		operatorEmail: operatorEmail,
	}
}

var receiptBodyTemplate = template.Must(template.New("receipt").Parse(`
<html>
	<body>
		<h2>Thank you for shopping with FreshReminder!</h2>
		<p>Your purchase on {{.Date}} came to <strong>{{.Total}}</strong>.</p>
		<table>
			{{range .Lines}}<tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>{{.Price}}</td></tr>
			{{end}}
		</table>
		<p>Please find your detailed receipt attached as a PDF.</p>
		<p>Your groceries have been added to your fridge.</p>
	</body>
</html>
`))

type receiptBodyData struct {
	Date  string
	Total string
	Lines []receiptBodyLine
}

type receiptBodyLine struct {
	Name     string
	Quantity int
	Price    string
}

// SendReceipt renders the receipt email with its PDF attachment and sends
// it to the shopper, with a copy to the operator address.
func (s *ReceiptService) SendReceipt(toEmail string, lines []models.ReceiptLine, total int) error {
	now := time.Now()

	data := receiptBodyData{
		Date:  now.Format("January 2, 2006"),
		Total: FormatCents(total),
	}
	for _, line := range lines {
		data.Lines = append(data.Lines, receiptBodyLine{
			Name:     line.Name,
			Quantity: line.Quantity,
			Price:    FormatCents(line.Price),
		})
	}

	var body bytes.Buffer
	if err := receiptBodyTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render receipt body: %w", err)
	}

	pdfBytes, err := s.pdf.GenerateReceiptPDF(lines, total, now)
	if err != nil {
		return fmt.Errorf("failed to render receipt PDF: %w", err)
	}

	subject := "Receipt for your purchase"
	if err := s.email.Send(toEmail, subject, body.String(), pdfBytes, "receipt.pdf"); err != nil {
		return fmt.Errorf("failed to deliver receipt to %s: %w", toEmail, err)
	}

	if s.operatorEmail != "" && s.operatorEmail != toEmail {
		if err := s.email.Send(s.operatorEmail, subject, body.String(), pdfBytes, "receipt.pdf"); err != nil {
			return fmt.Errorf("failed to deliver receipt copy to operator: %w", err)
		}
	}

	return nil
}

// FormatCents renders an amount of cents as a dollar string, e.g. 1150 ->
// "$11.50".
func FormatCents(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
