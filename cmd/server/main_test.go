package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/inamate/motion/internal/auth"
)

func TestIssueTokenPrintsValidToken(t *testing.T) {
	svc := auth.NewService("test-secret")

	var buf bytes.Buffer
	if err := issueToken(&buf, svc, "editor", time.Hour); err != nil {
		t.Fatalf("issueToken: %v", err)
	}

	sub, err := svc.ValidateToken(strings.TrimSpace(buf.String()))
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if sub != "editor" {
		t.Errorf("subject = %q, want editor", sub)
	}
}

func TestIssueTokenRequiresSecret(t *testing.T) {
	var buf bytes.Buffer
	if err := issueToken(&buf, auth.NewService(""), "editor", time.Hour); err == nil {
		t.Fatal("expected error without a secret")
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %q, want nothing", buf.String())
	}
}
