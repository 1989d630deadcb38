package crypto

import (
	"bytes"
	"strings"
	"testing"
)

const testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestSealOpen(t *testing.T) {
	s, err := New(testKey)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if !s.Configured() {
		t.Fatal("expected configured sealer")
	}
	plain := []byte(`{"employees":[]}`)
	sealed, err := s.Seal("snapshot", plain)
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if bytes.Contains(sealed, plain) {
		t.Fatal("sealed data contains plaintext")
	}
	opened, err := s.Open("snapshot", sealed)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !bytes.Equal(opened, plain) {
		t.Fatalf("unexpected plaintext %q", opened)
	}
}

func TestOpenRejectsOtherPurposeAndTampering(t *testing.T) {
	s, _ := New(testKey)
	sealed, err := s.Seal("snapshot", []byte("payload"))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if _, err := s.Open("other", sealed); err == nil {
		t.Fatal("expected purpose mismatch to fail")
	}
	sealed[len(sealed)-1] ^= 0xff
	if _, err := s.Open("snapshot", sealed); err == nil {
		t.Fatal("expected tampered data to fail")
	}
	if _, err := s.Open("snapshot", []byte{9}); err != ErrMalformed {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestUnconfiguredPassesThrough(t *testing.T) {
	s, err := New("")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, err := s.Seal("snapshot", []byte("plain"))
	if err != nil || string(out) != "plain" {
		t.Fatalf("expected passthrough, got %q %v", out, err)
	}
}

func TestNewRejectsShortKey(t *testing.T) {
	if _, err := New(strings.Repeat("a", 10)); err == nil {
		t.Fatal("expected short key to be rejected")
	}
}
