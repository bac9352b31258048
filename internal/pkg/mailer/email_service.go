package mailer

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendContactNotification(name, email, subject, message string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	// agencyInbox is the mailbox that receives contact-form submissions.
	agencyInbox string
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName, agencyInbox string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		senderName:  senderName,
		agencyInbox: agencyInbox,
	}
}

func (s *emailService) SendContactNotification(name, email, subject, message string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", s.agencyInbox)
	m.SetHeader("Reply-To", email)
	m.SetHeader("Subject", fmt.Sprintf("New contact message: %s", subject))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New message from the contact form</h2>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Subject:</strong> %s</p>
			<hr>
			<p>%s</p>
		</div>
	`, html.EscapeString(name), html.EscapeString(email), html.EscapeString(subject), html.EscapeString(message))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to forward contact message from %s: %v\n", email, err)
		return err
	}

	fmt.Printf("[MAILER] Contact message from %s forwarded to %s\n", email, s.agencyInbox)
	return nil
}
