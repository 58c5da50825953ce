// internal/services/contact_service.go
package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/apfam/apfam-backend/internal/config"
	"github.com/apfam/apfam-backend/internal/models"
	"github.com/apfam/apfam-backend/internal/utils"
)

type ContactService struct {
	db     *gorm.DB
	config *config.Config
}

type ContactRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=255"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone,omitempty" validate:"omitempty,max=50"`
	ProductionType string `json:"production_type,omitempty" validate:"omitempty,max=255"`
	Message        string `json:"message" validate:"required,min=10"`
}

const contactEmailTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2E7D32;">Nova Mensagem de Contato - APFAM</h2>
  <p><strong>Nome:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Telefone:</strong> {{.Phone}}</p>
  <p><strong>Tipo de Produção/Interesse:</strong> {{.ProductionType}}</p>
  <hr />
  <h3>Mensagem:</h3>
  <p style="background-color: #f5f5f5; padding: 15px; border-radius: 5px;">{{.Message}}</p>
  <hr />
  <p style="font-size: 12px; color: #666;">Este email foi enviado através do formulário de contato do site da APFAM.</p>
</div>`

func NewContactService(db *gorm.DB, config *config.Config) *ContactService {
	return &ContactService{db: db, config: config}
}

// Submit stores the message and forwards it to the association's contact
// address. The record is kept even if the email send fails, so no
// submission is silently lost.
func (s *ContactService) Submit(req *ContactRequest) (*models.ContactMessage, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	message := &models.ContactMessage{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		ProductionType: req.ProductionType,
		Message:        req.Message,
	}
	if err := s.db.Create(message).Error; err != nil {
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}

	subject := fmt.Sprintf("Novo Contato: %s - %s", req.Name, req.ProductionType)
	body, err := s.renderTemplate(contactEmailTemplate, req)
	if err != nil {
		return nil, fmt.Errorf("failed to render email template: %w", err)
	}

	if err := s.sendEmail(s.config.Contact.Email, req.Email, subject, body); err != nil {
		logrus.WithError(err).Error("failed to forward contact message by email")
	}

	return message, nil
}

func (s *ContactService) ListMessages(params utils.PaginationParams) ([]models.ContactMessage, int64, error) {
	query := s.db.Model(&models.ContactMessage{})

	if params.Search != "" {
		searchTerm := "%" + params.Search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count contact messages: %w", err)
	}

	allowedSortFields := []string{"created_at", "name", "email"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var messages []models.ContactMessage
	if err := query.Find(&messages).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch contact messages: %w", err)
	}

	return messages, total, nil
}

func (s *ContactService) sendEmail(to, replyTo, subject, body string) error {
	if s.config.Email.SMTPHost == "" {
		// Email not configured, just log
		logrus.WithField("to", to).Info("SMTP not configured, contact email not sent")
		return nil
	}

	auth := smtp.PlainAuth("", s.config.Email.SMTPUsername, s.config.Email.SMTPPassword, s.config.Email.SMTPHost)

	msg := []byte(fmt.Sprintf(
		"To: %s\r\nReply-To: %s\r\nSubject: %s\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		to, replyTo, subject, body))

	addr := fmt.Sprintf("%s:%s", s.config.Email.SMTPHost, s.config.Email.SMTPPort)
	return smtp.SendMail(addr, auth, s.config.Email.FromEmail, []string{to}, msg)
}

func (s *ContactService) renderTemplate(templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New("email").Parse(templateStr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
