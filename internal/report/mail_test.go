package report

import (
	"fmt"
	"net/smtp"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/quat/dailyvocab/internal/vocab"
)

type sentMail struct {
	addr string
	from string
	to   []string
	msg  []byte
}

func newTestMailer(cfg MailConfig, sent *sentMail, sendErr error) *Mailer {
	m := NewMailer(cfg, nil)
	m.now = func() time.Time { return testDay }
	m.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		if sendErr != nil {
			return sendErr
		}
		*sent = sentMail{addr: addr, from: from, to: to, msg: msg}
		return nil
	}
	return m
}

func TestMailerDeliver(t *testing.T) {
	attachment := filepath.Join(t.TempDir(), "transcript.txt")
	if err := os.WriteFile(attachment, []byte("transcript body"), 0644); err != nil {
		t.Fatal(err)
	}

	var sent sentMail
	m := newTestMailer(MailConfig{
		Host: "smtp.example.com",
		Port: 2525,
		User: "sender@example.com",
		Pass: "secret",
		From: "vocab@example.com",
		To:   []string{"learner@example.com"},
	}, &sent, nil)

	records := []*vocab.Record{vocab.New("eloquent", "raw")}
	if err := m.RenderAndDeliver(records, attachment); err != nil {
		t.Fatalf("RenderAndDeliver() error = %v", err)
	}

	if sent.addr != "smtp.example.com:2525" {
		t.Errorf("addr = %q", sent.addr)
	}
	if sent.from != "vocab@example.com" {
		t.Errorf("from = %q", sent.from)
	}
	if len(sent.to) != 1 || sent.to[0] != "learner@example.com" {
		t.Errorf("to = %v", sent.to)
	}

	msg := string(sent.msg)
	for _, want := range []string{
		"Subject: Daily English Vocabulary — March 15, 2026",
		"Content-Type: multipart/mixed",
		"eloquent",
		`attachment; filename="transcript.txt"`,
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q", want)
		}
	}
}

func TestMailerDefaultPort(t *testing.T) {
	var sent sentMail
	m := newTestMailer(MailConfig{
		Host: "smtp.example.com",
		To:   []string{"x@example.com"},
	}, &sent, nil)

	if err := m.RenderAndDeliver([]*vocab.Record{vocab.New("w", "raw")}, ""); err != nil {
		t.Fatal(err)
	}
	if sent.addr != "smtp.example.com:587" {
		t.Errorf("addr = %q, want default port 587", sent.addr)
	}
}

func TestMailerMissingAttachmentTolerated(t *testing.T) {
	var sent sentMail
	m := newTestMailer(MailConfig{Host: "h", To: []string{"x@example.com"}}, &sent, nil)

	err := m.RenderAndDeliver([]*vocab.Record{vocab.New("w", "raw")},
		filepath.Join(t.TempDir(), "gone.txt"))
	if err != nil {
		t.Fatalf("RenderAndDeliver() error = %v, want the mail to go out without attachment", err)
	}
	if strings.Contains(string(sent.msg), "attachment;") {
		t.Error("unreadable attachment should be skipped entirely")
	}
}

func TestMailerTransportFailure(t *testing.T) {
	var sent sentMail
	m := newTestMailer(MailConfig{Host: "h", To: []string{"x@example.com"}}, &sent,
		fmt.Errorf("connection refused"))

	if err := m.RenderAndDeliver([]*vocab.Record{vocab.New("w", "raw")}, ""); err == nil {
		t.Error("expected transport failure to propagate")
	}
}

func TestMailerFromFallsBackToUser(t *testing.T) {
	var sent sentMail
	m := newTestMailer(MailConfig{
		Host: "h",
		User: "user@example.com",
		To:   []string{"x@example.com"},
	}, &sent, nil)

	if err := m.RenderAndDeliver([]*vocab.Record{vocab.New("w", "raw")}, ""); err != nil {
		t.Fatal(err)
	}
	if sent.from != "user@example.com" {
		t.Errorf("from = %q, want the user address", sent.from)
	}
}
