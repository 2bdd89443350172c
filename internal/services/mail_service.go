// services/mail_service.go
package services

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"strings"
	texttemplate "text/template"
	"time"

	"go.uber.org/zap"
	"newlife/internal/config"
)

type IMailService interface {
	SendOtpCode(ctx context.Context, to, name, code string, ttl time.Duration) error
	SendWelcome(ctx context.Context, to, name string) error
}

type MailBranding struct {
	AppName    string
	AppBaseURL string
}

type smtpMailService struct {
	cfg      config.SMTPConfig
	brand    MailBranding
	htmlTpl  *template.Template
	textTpl  *texttemplate.Template
	dialer   *net.Dialer
	sendFunc func(to string, msg []byte) error
}

func NewSMTPMailService(cfg config.SMTPConfig, brand MailBranding) IMailService {
	s := &smtpMailService{
		cfg:     cfg,
		brand:   brand,
		htmlTpl: template.Must(template.New("html").Parse(baseHTMLTemplate)),
		textTpl: texttemplate.Must(texttemplate.New("text").Parse(plainTextTemplate)),
		dialer:  &net.Dialer{Timeout: 10 * time.Second},
	}
	s.sendFunc = s.deliver
	return s
}

func (s *smtpMailService) SendOtpCode(ctx context.Context, to, name, code string, ttl time.Duration) error {
	return s.sendTemplated(ctx, to, EmailData{
		Title:    "Your password reset code",
		Greeting: greetingFor(name),
		Intro:    "Use this code to reset your password. If you did not ask for it you can ignore this email.",
		Code:     code,
		Note:     fmt.Sprintf("The code expires in %d minutes and works once.", int(ttl.Minutes())),
	})
}

func (s *smtpMailService) SendWelcome(ctx context.Context, to, name string) error {
	return s.sendTemplated(ctx, to, EmailData{
		Title:     "Welcome to " + s.brand.AppName,
		Greeting:  greetingFor(name),
		Intro:     "Your account is ready. Plan a trip, let the assistant draft the days and keep an eye on the budget.",
		ButtonURL: strings.TrimRight(s.brand.AppBaseURL, "/") + "/trips/new",
		ButtonTxt: "Plan my first trip",
	})
}

func greetingFor(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Hi,"
	}
	return fmt.Sprintf("Hi %s,", strings.TrimSpace(name))
}

// ------------------- Rendering -------------------

type EmailData struct {
	Title     string
	Greeting  string
	Intro     string
	Code      string
	Note      string
	ButtonURL string
	ButtonTxt string
	AppName   string
	Year      int
}

const baseHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <title>{{.Title}}</title>
</head>
<body style="margin:0;padding:0;background:#f1f5f9;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Helvetica,Arial,sans-serif;color:#0f172a;">
  <div style="max-width:560px;margin:0 auto;padding:32px 16px;">
    <div style="background:#ffffff;border-radius:14px;overflow:hidden;box-shadow:0 10px 30px rgba(15,23,42,0.08);">
      <div style="padding:24px 28px;border-bottom:1px solid #e2e8f0;font-weight:700;font-size:20px;color:#0d9488;">{{.AppName}}</div>
      <div style="padding:28px;">
        <h1 style="margin:0 0 16px;font-size:24px;">{{.Title}}</h1>
        <p style="margin:0 0 12px;line-height:1.6;">{{.Greeting}}</p>
        <p style="margin:0 0 20px;line-height:1.6;color:#475569;">{{.Intro}}</p>
        {{if .Code}}
        <div style="margin:24px 0;padding:16px;text-align:center;font-size:32px;letter-spacing:10px;font-weight:700;background:#f0fdfa;border:1px dashed #5eead4;border-radius:10px;">{{.Code}}</div>
        {{end}}
        {{if .ButtonURL}}
        <p style="margin:24px 0;"><a href="{{.ButtonURL}}" style="display:inline-block;padding:14px 26px;background:#0d9488;color:#ffffff;text-decoration:none;border-radius:10px;font-weight:600;">{{.ButtonTxt}}</a></p>
        {{end}}
        {{if .Note}}<p style="margin:0;font-size:13px;color:#64748b;">{{.Note}}</p>{{end}}
      </div>
      <div style="padding:18px 28px;font-size:12px;color:#94a3b8;text-align:center;border-top:1px solid #e2e8f0;">&copy; {{.Year}} {{.AppName}}</div>
    </div>
  </div>
</body>
</html>`

const plainTextTemplate = `{{.Title}}

{{.Greeting}}

{{.Intro}}
{{if .Code}}
Code: {{.Code}}
{{end}}{{if .ButtonURL}}
{{.ButtonTxt}}: {{.ButtonURL}}
{{end}}{{if .Note}}
{{.Note}}
{{end}}
{{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) render(data EmailData) (html string, text string, err error) {
	data.AppName = s.brand.AppName
	data.Year = time.Now().Year()

	var hb, tb bytes.Buffer
	if err = s.htmlTpl.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err = s.textTpl.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}

func (s *smtpMailService) sendTemplated(ctx context.Context, to string, data EmailData) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	html, text, err := s.render(data)
	if err != nil {
		return err
	}
	return s.sendFunc(to, s.buildMessage(to, data.Title, html, text))
}

func (s *smtpMailService) buildMessage(to, subject, htmlBody, textBody string) []byte {
	boundary := fmt.Sprintf("alt_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = fmt.Fprintf(&msg, format, a...) }

	write("From: %s\r\n", s.formatFromHeader())
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", mime.BEncoding.Encode("UTF-8", subject))
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)
	return msg.Bytes()
}

// ------------------- SMTP Send -------------------

func (s *smtpMailService) deliver(to string, msg []byte) error {
	addr := net.JoinHostPort(s.cfg.Host, fmt.Sprint(s.cfg.Port))
	tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}

	var conn net.Conn
	var err error
	if s.cfg.UseSSL {
		// SMTPS, implicit TLS on 465
		conn, err = tls.DialWithDialer(s.dialer, "tcp", addr, tlsCfg)
	} else {
		conn, err = s.dialer.Dial("tcp", addr)
	}
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if !s.cfg.UseSSL {
		ok, _ := c.Extension("STARTTLS")
		if !ok {
			return fmt.Errorf("smtp server %s does not support STARTTLS", s.cfg.Host)
		}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	}

	if s.cfg.Username != "" {
		if err = c.Auth(smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)); err != nil {
			return err
		}
	}
	if err = c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err = c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) formatFromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("UTF-8", name), s.cfg.From)
}

// logMailService stands in when SMTP_HOST is unset.
type logMailService struct {
	logger *zap.Logger
}

func NewLogMailService(logger *zap.Logger) IMailService {
	return &logMailService{logger: logger}
}

func (l *logMailService) SendOtpCode(_ context.Context, to, _, code string, ttl time.Duration) error {
	l.logger.Info("smtp disabled, otp not mailed",
		zap.String("to", to),
		zap.Int("code_length", len(code)),
		zap.Duration("ttl", ttl))
	return nil
}

func (l *logMailService) SendWelcome(_ context.Context, to, _ string) error {
	l.logger.Info("smtp disabled, welcome mail skipped", zap.String("to", to))
	return nil
}
