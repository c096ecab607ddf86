package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"os"
	"path/filepath"

	"github.com/mainagideon/storefront-api/models"
)

type OrderEmailData struct {
	Name    string
	OrderID uint
	Total   string
	Status  string
}

// SendOrderConfirmationEmail mails the buyer a confirmation after
// checkout commits. Skipped when no sender account is configured.
func SendOrderConfirmationEmail(user models.User, order models.Order) error {
	fromEmail := os.Getenv("FROM_EMAIL")
	if fromEmail == "" {
		return nil
	}

	data := OrderEmailData{
		Name:    user.FirstName,
		OrderID: order.ID,
		Total:   order.Total.StringFixed(2),
		Status:  order.Status,
	}

	templatePath := filepath.Join("templates", "order_confirmation.html")
	return sendEmail(user.Email, fmt.Sprintf("Order #%d confirmation", order.ID), data, templatePath)
}

func sendEmail(emailTo string, emailSubject string, data OrderEmailData, templatePath string) error {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return fmt.Errorf("template parse error: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	message := fmt.Sprintf(
		"From: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		os.Getenv("FROM_EMAIL"),
		emailSubject,
		body.String(),
	)

	auth := smtp.PlainAuth(
		"",
		os.Getenv("FROM_EMAIL"),
		os.Getenv("FROM_EMAIL_PASSWORD"),
		os.Getenv("FROM_EMAIL_SMTP"),
	)

	if err := smtp.SendMail(os.Getenv("SMTP_ADDRESS"), auth, os.Getenv("FROM_EMAIL"), []string{emailTo}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
