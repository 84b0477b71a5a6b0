package mailer

import (
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/manhnd52/japanese-listening-trainer-sub001/internal/config"
	"github.com/manhnd52/japanese-listening-trainer-sub001/internal/logger"
)

// SMTPSender delivers daily reminder emails over SMTP. It implements
// engagement.ReminderSender: delivery failure is reported as false and
// logged, never propagated.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
	}
}

func (s *SMTPSender) Send(email, fullname string) bool {
	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		logger.Error("reminder mail from address: %v", err)
		return false
	}
	if err := msg.To(email); err != nil {
		logger.Error("reminder mail to %s: %v", email, err)
		return false
	}
	msg.Subject("今日のリスニング練習を忘れずに！")
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"%s さん、\n\n今日はまだリスニング練習をしていません。\n"+
			"数分でもいいので、続けていきましょう。ストリークを守りましょう！\n\n"+
			"— Japanese Listening Trainer",
		fullname,
	))

	client, err := mail.NewClient(s.host,
		mail.WithPort(s.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.username),
		mail.WithPassword(s.password),
	)
	if err != nil {
		logger.Error("smtp client: %v", err)
		return false
	}

	if err := client.DialAndSend(msg); err != nil {
		logger.Error("send reminder to %s: %v", email, err)
		return false
	}
	return true
}

// LogSender is the development fallback used when no SMTP host is
// configured: it just logs what would have been sent.
type LogSender struct{}

func (LogSender) Send(email, fullname string) bool {
	logger.Info("reminder (dry-run) to %s <%s>", fullname, email)
	return true
}
