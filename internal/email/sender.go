package email

import "log"

// Sender delivers one-time verification codes. The core treats delivery as
// an opaque capability so tests and local development can swap it out.
type Sender interface {
	SendOTP(recipient string, code string) error
}

// LogSender writes codes to the process log instead of sending mail. Used
// when SMTP is not configured.
type LogSender struct{}

func (LogSender) SendOTP(recipient string, code string) error {
	log.Printf("email delivery disabled, OTP for %s: %s", recipient, code)
	return nil
}
