package mailer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/config"

	"gopkg.in/gomail.v2"
)

var (
	//go:embed templates/verification.html templates/password_recovery.html
	emailTemplates embed.FS

	verificationTemplate = template.Must(
		template.New("verification.html").ParseFS(emailTemplates, "templates/verification.html"))
	recoveryTemplate = template.Must(
		template.New("password_recovery.html").ParseFS(emailTemplates, "templates/password_recovery.html"))
)

type linkEmailData struct {
	Name string
	Link string
}

// Client sends the transactional emails this system produces. Failures are
// the caller's to log; nothing here retries.
type Client struct {
	cfg config.EmailConfig
}

func NewClient(cfg config.EmailConfig) *Client {
	return &Client{cfg: cfg}
}

func (c *Client) SendVerificationEmail(to, name, verificationLink string) error {
	body, err := render(verificationTemplate, linkEmailData{Name: name, Link: verificationLink})
	if err != nil {
		return fmt.Errorf("render verification template: %w", err)
	}
	return c.send(to, "Verificá tu cuenta - Lubricentro", body)
}

func (c *Client) SendPasswordRecoveryEmail(to, name, recoveryLink string) error {
	body, err := render(recoveryTemplate, linkEmailData{Name: name, Link: recoveryLink})
	if err != nil {
		return fmt.Errorf("render recovery template: %w", err)
	}
	return c.send(to, "Recuperá tu contraseña - Lubricentro", body)
}

func render(t *template.Template, data linkEmailData) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (c *Client) send(to, subject, htmlBody string) error {
	if c.cfg.Host == "" {
		return fmt.Errorf("smtp host is not configured")
	}

	from := c.cfg.FromAddress
	if from == "" {
		from = c.cfg.Username
	}
	if from == "" {
		return fmt.Errorf("smtp from address is not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(c.cfg.Host, c.cfg.Port, c.cfg.Username, c.cfg.Password)
	return d.DialAndSend(m)
}
