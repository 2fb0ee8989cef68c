package auth

import (
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	sessions := NewSessionManager("test-secret", time.Hour)

	token, err := sessions.Issue("admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	user, err := sessions.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if user != "admin" {
		t.Errorf("subject = %q, want %q", user, "admin")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	sessions := NewSessionManager("test-secret", time.Hour)

	issued := time.Now()
	sessions.now = func() time.Time { return issued }
	token, err := sessions.Issue("admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	sessions.now = func() time.Time { return issued.Add(2 * time.Hour) }
	if _, err := sessions.Verify(token); err == nil {
		t.Error("expired token accepted")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewSessionManager("secret-a", time.Hour)
	verifier := NewSessionManager("secret-b", time.Hour)

	token, err := issuer.Issue("admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.Verify(token); err == nil {
		t.Error("token signed with a different secret accepted")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	sessions := NewSessionManager("test-secret", time.Hour)
	if _, err := sessions.Verify("not-a-token"); err == nil {
		t.Error("malformed token accepted")
	}
}
