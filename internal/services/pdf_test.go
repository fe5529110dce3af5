package services

import (
	"strings"
	"testing"
	"time"

	"freshreminder/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFService_GenerateReceiptPDF(t *testing.T) {
	svc := NewPDFService()

	pdf, err := svc.GenerateReceiptPDF(receiptLines, 1150, time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	content := string(pdf)
	assert.True(t, strings.HasPrefix(content, "%PDF-1.4"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(content), "%%EOF"))
	assert.Contains(t, content, "Milk")
	assert.Contains(t, content, "Total: $11.50")
	assert.Contains(t, content, "March 14, 2026")
}

func TestPDFService_EscapesReservedCharacters(t *testing.T) {
	svc := NewPDFService()

	lines := []models.ReceiptLine{{Name: "Chips (salted)", Quantity: 1, Price: 250}}
	pdf, err := svc.GenerateReceiptPDF(lines, 250, time.Now())
	require.NoError(t, err)
	assert.Contains(t, string(pdf), `Chips \(salted\)`)
}

func TestPDFService_RejectsMalformedLines(t *testing.T) {
	svc := NewPDFService()

	tests := []struct {
		name  string
		lines []models.ReceiptLine
	}{
		{"empty name", []models.ReceiptLine{{Name: "", Quantity: 1, Price: 100}}},
		{"zero quantity", []models.ReceiptLine{{Name: "Milk", Quantity: 0, Price: 100}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GenerateReceiptPDF(tt.lines, 100, time.Now())
			assert.Error(t, err)
		})
	}
}
