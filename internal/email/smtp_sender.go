package email

import (
	"fmt"
	"net/smtp"
	"strings"
)

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

type SMTPSender struct {
	config SMTPConfig
}

func NewSMTPSender(config SMTPConfig) *SMTPSender {
	return &SMTPSender{config: config}
}

func (sender *SMTPSender) SendOTP(recipient string, code string) error {
	message := strings.Join([]string{
		fmt.Sprintf("From: She&Soul <%s>", sender.config.From),
		fmt.Sprintf("To: %s", recipient),
		"Subject: Your She&Soul verification code",
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
		"",
		fmt.Sprintf("Your verification code is %s. It expires in 10 minutes.", code),
		"",
	}, "\r\n")

	address := sender.config.Host + ":" + sender.config.Port
	auth := smtp.PlainAuth("", sender.config.Username, sender.config.Password, sender.config.Host)
	if err := smtp.SendMail(address, auth, sender.config.From, []string{recipient}, []byte(message)); err != nil {
		return fmt.Errorf("send otp email: %w", err)
	}
	return nil
}
