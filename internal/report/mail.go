package report

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/quat/dailyvocab/internal/vocab"
)

// MailConfig holds SMTP settings for the email deliverer.
type MailConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
	To   []string
}

// Mailer delivers the digest over SMTP with the transcript document
// attached.
type Mailer struct {
	cfg    MailConfig
	logger *zap.Logger
	now    func() time.Time

	// send is swappable for tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewMailer creates an SMTP deliverer.
func NewMailer(cfg MailConfig, logger *zap.Logger) *Mailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mailer{cfg: cfg, logger: logger, now: time.Now, send: smtp.SendMail}
}

// RenderAndDeliver renders the digest and mails it. A missing attachment is
// tolerated (the mail goes out without it); a transport failure is not.
func (m *Mailer) RenderAndDeliver(records []*vocab.Record, attachmentPath string) error {
	html, err := renderDigest(records, m.now())
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Daily English Vocabulary — %s", m.now().Format("January 02, 2006"))
	msg, err := m.buildMessage(subject, html, attachmentPath)
	if err != nil {
		return err
	}

	port := m.cfg.Port
	if port == 0 {
		port = 587
	}
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, port)

	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	}
	if err := m.send(addr, auth, m.from(), m.cfg.To, msg); err != nil {
		return fmt.Errorf("failed to send vocabulary email: %w", err)
	}

	m.logger.Info("delivered vocabulary email",
		zap.Strings("to", m.cfg.To),
		zap.Int("words", len(records)))
	return nil
}

func (m *Mailer) from() string {
	if m.cfg.From != "" {
		return m.cfg.From
	}
	return m.cfg.User
}

// buildMessage assembles a multipart/mixed message: HTML body plus the
// transcript document, base64-encoded.
func (m *Mailer) buildMessage(subject, html, attachmentPath string) ([]byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s\r\n", m.from())
	fmt.Fprintf(&buf, "To: %s\r\n", strings.Join(m.cfg.To, ", "))
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", w.Boundary())

	body, err := w.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/html; charset=UTF-8"},
	})
	if err != nil {
		return nil, err
	}
	if _, err := body.Write([]byte(html)); err != nil {
		return nil, err
	}

	if attachmentPath != "" {
		if err := m.attach(w, attachmentPath); err != nil {
			m.logger.Warn("skipping unreadable attachment",
				zap.String("path", attachmentPath), zap.Error(err))
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (m *Mailer) attach(w *multipart.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	name := filepath.Base(path)
	part, err := w.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {"text/plain; charset=UTF-8"},
		"Content-Transfer-Encoding": {"base64"},
		"Content-Disposition":       {fmt.Sprintf("attachment; filename=%q", name)},
	})
	if err != nil {
		return err
	}
	enc := base64.StdEncoding.EncodeToString(data)
	for len(enc) > 0 {
		n := 76
		if n > len(enc) {
			n = len(enc)
		}
		if _, err := fmt.Fprintf(part, "%s\r\n", enc[:n]); err != nil {
			return err
		}
		enc = enc[n:]
	}
	return nil
}
