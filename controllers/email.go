package controllers

import (
	"fmt"
	"io"

	"github.com/go-gomail/gomail"
)

// SendWelcomeEmail greets a doctor whose onboarding wizard just completed
func SendWelcomeEmail(firstName, email string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.SenderEmail)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to Online Doctors")
	m.SetBody("text/plain",
		"Hey "+firstName+",\n\nThank you for joining Online Doctors, we are so grateful to have you onboard.")

	d := gomail.NewDialer("smtp.gmail.com", 587, cfg.SenderEmail, cfg.SenderPassword)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}

	return nil
}

// SendVerificationEmail mails the one-time account verification link
func SendVerificationEmail(email, token string) error {
	link := cfg.AppBaseURL + "/verify-account/" + token

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.SenderEmail)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Verify your account")
	m.SetBody("text/plain", "Hey, verify your account by opening this link:\n"+link)

	d := gomail.NewDialer("smtp.gmail.com", 587, cfg.SenderEmail, cfg.SenderPassword)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}

	return nil
}

// SendBookingEmail sends the appointment confirmation with the PDF attached
func SendBookingEmail(msg, email, attachmentName string, attachmentData []byte) error {
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.SenderEmail)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Appointment Confirmation mail")
	m.SetBody("text/plain", msg)

	m.Attach(attachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(attachmentData)
		return err
	}))

	d := gomail.NewDialer("smtp.gmail.com", 587, cfg.SenderEmail, cfg.SenderPassword)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}

	return nil
}
