package services

import "log"

// MockEmailService logs instead of sending; used in development when no
// SMTP server is configured. It implements EmailSender.
type MockEmailService struct{}

// NewMockEmailService creates a new mock email service
func NewMockEmailService() *MockEmailService {
	log.Println("Email service: using mock (no SMTP host configured)")
	return &MockEmailService{}
}

// Send logs the email instead of dispatching it
func (s *MockEmailService) Send(to, subject, htmlBody string, attachment []byte, attachmentName string) error {
	if attachment != nil {
		log.Printf("Mock Email: to=%s subject=%q attachment=%s (%d bytes)", to, subject, attachmentName, len(attachment))
	} else {
		log.Printf("Mock Email: to=%s subject=%q", to, subject)
	}
	return nil
}
