package smtp

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

var Instance Provider

type Provider interface {
	IsConfigured() bool
	SendEMail(from, to, message, subject string) error
	SendEMailWithAttachment(from, to, message, subject, fileName string, file []byte) error
}

func Connect(user, password, host, port string, tlsEnabled bool) error {
	Instance = &impl{
		user:       user,
		password:   password,
		host:       host,
		port:       port,
		tlsEnabled: tlsEnabled,
	}
	return nil
}

type impl struct {
	user       string
	password   string
	host       string
	port       string
	tlsEnabled bool
}

func (i impl) IsConfigured() bool {
	return i.user != "" && i.host != "" && i.port != ""
}

func (i impl) SendEMail(from, to, message, subject string) (err error) {
	logger := log.WithField("sender", from)
	if i.user == "" || i.host == "" || i.port == "" {
		logger.Warn("Письмо не отправлено, тк не настроен smtp клиент")
		return nil
	}
	// Receiver email address.
	sendTo := []string{
		to,
	}
	// Authentication.
	auth := sasl.NewPlainClient("", i.user, i.password)
	mimeHeaders := "MIME-version: 1.0;\nContent-Type: text/plain; charset=\"UTF-8\";\r\n"
	body := strings.NewReader(fmt.Sprintf("Subject: %s - %s\n%s\r\n Отправитель: %s\r\n %s\r\n", "HRMS", subject, mimeHeaders, from, message))

	// Sending email.
	if i.tlsEnabled {
		err = smtp.SendMailTLS(i.host+":"+i.port, auth, i.user, sendTo, body)
	} else {
		err = smtp.SendMail(i.host+":"+i.port, auth, i.user, sendTo, body)
	}
	if err != nil {
		log.WithError(err).Error("Ошибка отправки сообщения")
		return err
	}
	logger.Info("письмо отправлено")
	return nil
}

// SendEMailWithAttachment - письмо с вложением (например, расчетный лист)
func (i impl) SendEMailWithAttachment(from, to, message, subject, fileName string, file []byte) error {
	logger := log.WithField("sender", from)
	if i.user == "" || i.host == "" || i.port == "" {
		logger.Warn("Письмо не отправлено, тк не настроен smtp клиент")
		return nil
	}
	port, err := strconv.Atoi(i.port)
	if err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("HRMS - %s", subject))
	m.SetBody("text/plain", message)
	m.Attach(fileName, gomail.SetCopyFunc(func(w io.Writer) error {
		_, wErr := w.Write(file)
		return wErr
	}))

	d := gomail.NewDialer(i.host, port, i.user, i.password)
	if err = d.DialAndSend(m); err != nil {
		log.WithError(err).Error("Ошибка отправки сообщения с вложением")
		return err
	}
	logger.Info("письмо с вложением отправлено")
	return nil
}
