package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"log/slog"
	"strconv"
	texttemplate "text/template"
	"time"

	gomail "github.com/wneessen/go-mail"
)

const product = "Resume Builder"

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	htmlTemplates = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/*.html.tmpl"))
	textTemplates = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/*.txt.tmpl"))
)

// PasswordReset is the content of a password reset e-mail.
type PasswordReset struct {
	To        string
	Name      string
	ResetURL  string
	ExpiresIn time.Duration
}

type message struct {
	Subject string
	Text    string
	HTML    string
}

func (p PasswordReset) render(now time.Time) (message, error) {
	greeting := p.Name
	if greeting == "" {
		greeting = "there"
	}
	data := map[string]any{
		"Greeting":  greeting,
		"Product":   product,
		"ResetURL":  p.ResetURL,
		"ExpiresIn": humanMinutes(p.ExpiresIn),
		"Year":      now.Year(),
	}
	var html, text bytes.Buffer
	if err := htmlTemplates.ExecuteTemplate(&html, "password_reset.html.tmpl", data); err != nil {
		return message{}, fmt.Errorf("render html: %w", err)
	}
	if err := textTemplates.ExecuteTemplate(&text, "password_reset.txt.tmpl", data); err != nil {
		return message{}, fmt.Errorf("render text: %w", err)
	}
	return message{
		Subject: "Password Reset Request - " + product,
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}

func humanMinutes(d time.Duration) string {
	m := int(d.Round(time.Minute) / time.Minute)
	if m == 1 {
		return "1 minute"
	}
	return strconv.Itoa(m) + " minutes"
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Logger   *slog.Logger
}

// SMTPMailer delivers mail through an SMTP relay. STARTTLS is used when
// the server offers it.
type SMTPMailer struct {
	client *gomail.Client
	from   string
	now    func() time.Time
	logger *slog.Logger
}

func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15 * time.Second),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}
	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SMTPMailer{client: client, from: cfg.From, now: time.Now, logger: logger}, nil
}

func (m *SMTPMailer) SendPasswordReset(ctx context.Context, p PasswordReset) error {
	content, err := p.render(m.now())
	if err != nil {
		return err
	}
	msg := gomail.NewMsg()
	if err := msg.FromFormat(product, m.from); err != nil {
		return fmt.Errorf("from address: %w", err)
	}
	if err := msg.To(p.To); err != nil {
		return fmt.Errorf("to address: %w", err)
	}
	msg.Subject(content.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, content.Text)
	msg.AddAlternativeString(gomail.TypeTextHTML, content.HTML)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	m.logger.Info("password reset email sent", "to", p.To)
	return nil
}

// LogMailer writes the message to the log instead of sending it. It is
// used when no SMTP host is configured. The reset URL carries a live token,
// so it is only logged at debug level.
type LogMailer struct {
	Logger *slog.Logger
}

func (m LogMailer) SendPasswordReset(_ context.Context, p PasswordReset) error {
	content, err := p.render(time.Now())
	if err != nil {
		return err
	}
	logger := m.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("password reset email not sent (no SMTP configured)",
		"to", p.To, "subject", content.Subject)
	logger.Debug("password reset link", "to", p.To, "reset_url", p.ResetURL)
	return nil
}
