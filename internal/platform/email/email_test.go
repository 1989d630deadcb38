package email

import (
	"context"
	"strings"
	"testing"

	"hrconsole/internal/platform/config"
)

func TestNewReturnsNoopWhenDisabled(t *testing.T) {
	mailer := New(config.Config{EmailEnabled: false, SMTPHost: "smtp.example.com"})
	if _, ok := mailer.(noopMailer); !ok {
		t.Fatalf("expected noop mailer, got %T", mailer)
	}
	if err := mailer.Send(context.Background(), "a@pts.rw", "b@pts.rw", "hi", "body"); err != nil {
		t.Fatalf("noop send: %v", err)
	}
	if _, ok := New(config.Config{EmailEnabled: true, SMTPHost: "smtp.example.com"}).(*smtpMailer); !ok {
		t.Fatal("expected smtp mailer when enabled")
	}
}

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("no-reply@pts.rw", "aline.u@pts.rw", "Leave approved", "line one\nline two"))

	if !strings.HasPrefix(msg, "From: no-reply@pts.rw\r\nTo: aline.u@pts.rw\r\nSubject: Leave approved\r\n") {
		t.Fatalf("unexpected headers: %q", msg)
	}
	if !strings.Contains(msg, "\r\n\r\nline one\r\nline two") {
		t.Fatalf("body not CRLF normalised: %q", msg)
	}
	if !strings.HasSuffix(msg, footer) {
		t.Fatal("missing footer")
	}
}

func TestBuildMessageEncodesSubject(t *testing.T) {
	msg := string(buildMessage("a@pts.rw", "b@pts.rw", "Congé approuvé", "x"))
	if !strings.Contains(msg, "Subject: =?utf-8?q?") {
		t.Fatalf("expected encoded subject: %q", msg)
	}
}
