package mailing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMailerWithoutHostDropsMail(t *testing.T) {
	m := NewMailer(MailConfig{})
	assert.IsType(t, noopMailer{}, m)
	assert.NoError(t, m.SendMail("ana@email.com", "Olá", "<p>oi</p>"))
}

func TestSMTPMailerRejectsBadPort(t *testing.T) {
	m := NewMailer(MailConfig{SMTPHost: "smtp.example.com", SMTPPort: "smtp"})
	err := m.SendMail("ana@email.com", "Olá", "<p>oi</p>")
	assert.ErrorContains(t, err, "invalid SMTP_PORT")
}

func TestWelcomeBody(t *testing.T) {
	body := WelcomeBody("ana", "")
	assert.Contains(t, body, "Olá, ana!")
	assert.NotContains(t, body, "<a ")

	body = WelcomeBody("ana", "https://receitas.example.com")
	assert.Contains(t, body, `href="https://receitas.example.com"`)
}
