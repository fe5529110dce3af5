package services

import (
	"errors"
	"strings"
	"testing"

	"freshreminder/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEmailSender captures sent mail and can be told to fail
type fakeEmailSender struct {
	sent []fakeEmail
	err  error
}

type fakeEmail struct {
	To             string
	Subject        string
	HTMLBody       string
	Attachment     []byte
	AttachmentName string
}

func (f *fakeEmailSender) Send(to, subject, htmlBody string, attachment []byte, attachmentName string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, fakeEmail{to, subject, htmlBody, attachment, attachmentName})
	return nil
}

var receiptLines = []models.ReceiptLine{
	{Name: "Milk", Quantity: 2, Price: 300},
	{Name: "Eggs", Quantity: 1, Price: 550},
}

func TestReceiptService_SendsToShopperAndOperator(t *testing.T) {
	sender := &fakeEmailSender{}
	svc := NewReceiptService(sender, NewPDFService(), "operator@example.com")

	err := svc.SendReceipt("shopper@example.com", receiptLines, 1150)
	require.NoError(t, err)
	require.Len(t, sender.sent, 2)

	shopper := sender.sent[0]
	assert.Equal(t, "shopper@example.com", shopper.To)
	assert.Contains(t, shopper.HTMLBody, "$11.50")
	assert.Contains(t, shopper.HTMLBody, "Milk")
	assert.Equal(t, "receipt.pdf", shopper.AttachmentName)
	assert.True(t, strings.HasPrefix(string(shopper.Attachment), "%PDF-1.4"))

	assert.Equal(t, "operator@example.com", sender.sent[1].To)
}

func TestReceiptService_DeliveryFailure(t *testing.T) {
	sender := &fakeEmailSender{err: errors.New("connection refused")}
	svc := NewReceiptService(sender, NewPDFService(), "operator@example.com")

	err := svc.SendReceipt("shopper@example.com", receiptLines, 1150)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to deliver receipt")
}

func TestReceiptService_RenderFailure(t *testing.T) {
	sender := &fakeEmailSender{}
	svc := NewReceiptService(sender, NewPDFService(), "")

	malformed := []models.ReceiptLine{{Name: "", Quantity: 0, Price: 100}}
	err := svc.SendReceipt("shopper@example.com", malformed, 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to render receipt")
	assert.Empty(t, sender.sent, "nothing should be sent when rendering fails")
}

func TestFormatCents(t *testing.T) {
	tests := []struct {
		cents int
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{1150, "$11.50"},
		{300, "$3.00"},
		{-250, "-$2.50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCents(tt.cents))
	}
}
