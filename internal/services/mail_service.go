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
)

// BookingConfirmation is the content of the mail sent once a package
// booking has been paid.
type BookingConfirmation struct {
	To          string
	Name        string
	Code        string
	Title       string
	Destination string
	StartDate   string
	EndDate     string
	Travelers   int
	Amount      int64
	Currency    string
	Reference   string
}

type MailServiceInterface interface {
	SendBookingConfirmation(ctx context.Context, msg BookingConfirmation) error
}

// SMTPConfig holds the SMTP connection and branding settings.
type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	FromName   string
	UseSSL     bool // implicit TLS on 465, otherwise STARTTLS when offered
	RequireTLS bool
	AppName    string
	AppBaseURL string
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *texttemplate.Template
	logger  *zap.Logger
}

func NewSMTPMailService(cfg SMTPConfig, logger *zap.Logger) MailServiceInterface {
	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: template.Must(template.New("confirmationHTML").Parse(confirmationHTMLTemplate)),
		textTpl: texttemplate.Must(texttemplate.New("confirmationText").Parse(confirmationTextTemplate)),
		logger:  logger,
	}
}

func (s *smtpMailService) SendBookingConfirmation(_ context.Context, msg BookingConfirmation) error {
	subject := fmt.Sprintf("Booking confirmed: %s", msg.Code)
	html, text, err := s.render(s.emailData(msg))
	if err != nil {
		return err
	}
	if err := s.send(msg.To, subject, html, text); err != nil {
		return err
	}
	s.logger.Info("booking confirmation sent", zap.String("code", msg.Code), zap.String("to", msg.To))
	return nil
}

// logMailService stands in when no SMTP host is configured.
type logMailService struct {
	logger *zap.Logger
}

func NewLogMailService(logger *zap.Logger) MailServiceInterface {
	return &logMailService{logger: logger}
}

func (s *logMailService) SendBookingConfirmation(_ context.Context, msg BookingConfirmation) error {
	s.logger.Info("booking confirmation not mailed, smtp disabled",
		zap.String("code", msg.Code),
		zap.String("to", msg.To),
	)
	return nil
}

type emailData struct {
	AppName   string
	Title     string
	Greeting  string
	Rows      [][2]string
	ButtonURL string
	ButtonTxt string
	Year      int
}

func (s *smtpMailService) emailData(msg BookingConfirmation) emailData {
	name := strings.TrimSpace(msg.Name)
	if name == "" {
		name = "traveler"
	}
	data := emailData{
		AppName:  s.cfg.AppName,
		Title:    "Your trip is booked",
		Greeting: fmt.Sprintf("Hi %s, your booking for %s in %s is confirmed.", name, msg.Title, msg.Destination),
		Rows: [][2]string{
			{"Confirmation code", msg.Code},
			{"Dates", msg.StartDate + " to " + msg.EndDate},
			{"Travelers", fmt.Sprintf("%d", msg.Travelers)},
			{"Total paid", fmt.Sprintf("%s %d", msg.Currency, msg.Amount)},
			{"Payment reference", msg.Reference},
		},
		Year: time.Now().Year(),
	}
	if base := strings.TrimRight(s.cfg.AppBaseURL, "/"); base != "" {
		data.ButtonURL = base + "/bookings"
		data.ButtonTxt = "View my bookings"
	}
	return data
}

const confirmationHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; padding: 0; background: #f8fafc; color: #0f172a; font-family: -apple-system, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; }
    .container { max-width: 600px; margin: 32px auto; background: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 10px 30px rgba(0,0,0,0.08); }
    .header { padding: 24px 32px; background: #1e40af; color: #ffffff; font-weight: 700; letter-spacing: 0.5px; text-transform: uppercase; }
    .hero { padding: 32px; }
    h1 { margin: 0 0 16px; font-size: 24px; }
    p { margin: 0 0 20px; line-height: 1.6; color: #475569; }
    table { width: 100%; border-collapse: collapse; }
    td { padding: 10px 0; border-bottom: 1px solid #e2e8f0; font-size: 15px; }
    td.label { color: #64748b; width: 45%; }
    .btn { display: inline-block; margin-top: 24px; padding: 14px 28px; background: #2563eb; color: #ffffff !important; text-decoration: none; border-radius: 10px; font-weight: 600; }
    .footer { padding: 20px 32px; color: #64748b; font-size: 13px; text-align: center; background: #f8fafc; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">{{.AppName}}</div>
    <div class="hero">
      <h1>{{.Title}}</h1>
      <p>{{.Greeting}}</p>
      <table>
        {{range .Rows}}<tr><td class="label">{{index . 0}}</td><td>{{index . 1}}</td></tr>
        {{end}}
      </table>
      {{if .ButtonURL}}<a class="btn" href="{{.ButtonURL}}">{{.ButtonTxt}}</a>{{end}}
    </div>
    <div class="footer">© {{.Year}} {{.AppName}}</div>
  </div>
</body>
</html>`

const confirmationTextTemplate = `{{.Title}}

{{.Greeting}}

{{range .Rows}}{{index . 0}}: {{index . 1}}
{{end}}
{{if .ButtonURL}}{{.ButtonTxt}}: {{.ButtonURL}}
{{end}}
{{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) render(data emailData) (string, string, error) {
	var hb, tb bytes.Buffer
	if err := s.htmlTpl.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err := s.textTpl.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}

func (s *smtpMailService) compose(to, subject, htmlBody, textBody string) []byte {
	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = fmt.Fprintf(&msg, format, a...) }

	write("From: %s\r\n", s.formatFromHeader())
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
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

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	body := s.compose(to, subject, htmlBody, textBody)
	addr := net.JoinHostPort(s.cfg.Host, fmt.Sprintf("%d", s.cfg.Port))
	tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}

	var conn net.Conn
	var err error
	if s.cfg.UseSSL {
		conn, err = tls.DialWithDialer(&net.Dialer{Timeout: 10 * time.Second}, "tcp", addr, tlsCfg)
	} else {
		conn, err = (&net.Dialer{Timeout: 10 * time.Second}).Dial("tcp", addr)
	}
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if !s.cfg.UseSSL {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err = c.StartTLS(tlsCfg); err != nil {
				return err
			}
		} else if s.cfg.RequireTLS {
			return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
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
	if _, err = w.Write(body); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) formatFromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mime.BEncoding.Encode("utf-8", name), s.cfg.From)
}
