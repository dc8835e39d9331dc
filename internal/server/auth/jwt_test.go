package auth

import (
	"testing"
	"time"

	"github.com/nick-0037/workout-tracker-api/internal/common"
)

func TestIssueAndDecode_Success(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec([]byte("super-secret"), time.Hour)

	tok, err := codec.Issue(42, "alice@example.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := codec.Decode(tok)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("user id mismatch: got %d want 42", claims.UserID)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("email mismatch: got %q", claims.Email)
	}
}

func TestDecode_Expired(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec([]byte("secret"), -1*time.Second)

	tok, err := codec.Issue(1, "u1@example.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = codec.Decode(tok)
	if err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
	if err != common.ErrTokenExpired {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

func TestDecode_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenCodec([]byte("right-secret"), time.Hour)
	tok, err := issuer.Issue(2, "u2@example.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewTokenCodec([]byte("wrong-secret"), time.Hour).Decode(tok)
	if err != common.ErrInvalidToken {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestDecode_MalformedString(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec([]byte("k"), time.Hour)
	_, err := codec.Decode("not.a.jwt")
	if err != common.ErrInvalidToken {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}
