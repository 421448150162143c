package email

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// Sender delivers plain-text email over SMTP. When no host is configured
// (local development) the message is logged to the console instead, so the
// flow stays testable without credentials.
type Sender struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// NewSender builds a Sender from config values.
func NewSender(host, port, username, password, from string) *Sender {
	return &Sender{Host: host, Port: port, Username: username, Password: password, From: from}
}

// Send delivers one message to a single recipient.
func (s *Sender) Send(to, subject, body string) error {
	if s.Host == "" {
		log.Println("====================================================")
		log.Printf("--- EMAIL (no SMTP host configured, logging only) ---")
		log.Printf("To: %s", to)
		log.Printf("Subject: %s", subject)
		log.Println(body)
		log.Println("====================================================")
		return nil
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.WriteString(body)

	addr := s.Host + ":" + s.Port
	var auth smtp.Auth
	if s.Username != "" {
		auth = smtp.PlainAuth("", s.Username, s.Password, s.Host)
	}

	if err := smtp.SendMail(addr, auth, s.From, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	return nil
}
