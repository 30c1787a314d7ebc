// Package mail implementa el puerto de notificaciones con un SMTP clásico
// (gomail). Si no hay SMTP configurado, los envíos se loguean y se descartan
// para que el flujo de desarrollo no dependa de un servidor de correo.
package mail

import (
	"fmt"
	"strings"
	"time"

	gomail "gopkg.in/gomail.v2"

	"github.com/jhoicas/election-api/internal/application/ports"
	"github.com/jhoicas/election-api/pkg/config"
	"github.com/jhoicas/election-api/pkg/logger"
)

var _ ports.Mailer = (*SMTPMailer)(nil)

// SMTPMailer envía los correos del sistema electoral vía SMTP.
type SMTPMailer struct {
	cfg config.SMTPConfig
	log *logger.Logger
}

// NewSMTPMailer construye el mailer.
func NewSMTPMailer(cfg config.SMTPConfig, log *logger.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, log: log}
}

// SendAccessCode envía al votante su código de acceso.
func (m *SMTPMailer) SendAccessCode(name, email, code string) error {
	html := fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; color: #333;">
	  <h1>Tu código de acceso está listo</h1>
	  <p>Hola <strong>%s</strong>,</p>
	  <p style="font-size: 24px; font-weight: bold; letter-spacing: 2px;">%s</p>
	  <p>Usá este código para iniciar sesión y votar.</p>
	  <p style="font-size: 12px; color: #718096;">Si no lo solicitaste, contactá al administrador.
	  © %d Sistema Electoral</p>
	</div>`, name, code, time.Now().Year())
	return m.send([]string{email}, "Tu código de acceso de votante", html)
}

// SendVoterRegisteredNotice avisa a admin/chairman del registro de un votante.
func (m *SMTPMailer) SendVoterRegisteredNotice(adminEmails []string, voterName, voterEmail string) error {
	html := fmt.Sprintf(`
	<p>Se registró un nuevo votante.</p>
	<p><strong>Nombre:</strong> %s</p>
	<p><strong>Email:</strong> %s</p>
	<p>Ingresá como administrador para generar su código de acceso.</p>`,
		voterName, voterEmail)
	return m.send(adminEmails, "Nuevo votante registrado", html)
}

func (m *SMTPMailer) send(to []string, subject, html string) error {
	if !m.cfg.Enabled() {
		m.log.Info().
			Str("to", strings.Join(to, ",")).
			Str("subject", subject).
			Msg("SMTP deshabilitado: correo descartado")
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
