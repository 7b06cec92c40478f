package notificator

import (
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/core-coin/tokenforge/internal/models"
	"github.com/core-coin/tokenforge/pkg/logger"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// EmailNotificator mails error notifications to an operator.
type EmailNotificator struct {
	logger *logger.Logger

	SMTPHost      string
	SMTPPort      int
	SMTPSender    string
	SMTPRecipient string

	SMTPAuth smtp.Auth

	sendMail sendMailFunc
}

func NewEmailNotificator(logger *logger.Logger, SMTPHost string, SMTPPort int, SMTPUser string, SMTPPassword string, SMTPSender string, SMTPRecipient string) *EmailNotificator {
	var auth smtp.Auth
	if SMTPUser != "" {
		auth = smtp.PlainAuth("", SMTPUser, SMTPPassword, SMTPHost)
	}

	return &EmailNotificator{
		logger:        logger,
		SMTPAuth:      auth,
		SMTPHost:      SMTPHost,
		SMTPPort:      SMTPPort,
		SMTPSender:    SMTPSender,
		SMTPRecipient: SMTPRecipient,
		sendMail:      smtp.SendMail,
	}
}

func (e *EmailNotificator) Name() string { return "email" }

func (e *EmailNotificator) Deliver(notification models.Notification) {
	if notification.Kind != models.NotificationError {
		return
	}

	addr := e.SMTPHost + ":" + strconv.Itoa(e.SMTPPort)
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		e.SMTPSender,
		e.SMTPRecipient,
		"tokenforge error",
		notification.Message,
	)
	if err := e.sendMail(addr, e.SMTPAuth, e.SMTPSender, []string{e.SMTPRecipient}, []byte(msg)); err != nil {
		e.logger.Error("Failed to send email notification", "error", err, "id", notification.ID)
	}
}
