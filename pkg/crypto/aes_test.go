package crypto

import (
	"errors"
	"strings"
	"testing"
)

var key = []byte("0123456789abcdef0123456789abcdef")

func TestEncryptDecrypt(t *testing.T) {
	plaintext := "1 21 12 75 123 456 78"

	encrypted, err := Encrypt(key, plaintext)
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	if encrypted == plaintext {
		t.Error("ciphertext equals plaintext")
	}

	decrypted, err := Decrypt(key, encrypted)
	if err != nil {
		t.Fatalf("Decrypt() error = %v", err)
	}
	if decrypted != plaintext {
		t.Errorf("decrypted = %q, want %q", decrypted, plaintext)
	}
}

func TestEncryptRandomNonce(t *testing.T) {
	a, err := Encrypt(key, "secret")
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	b, err := Encrypt(key, "secret")
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	if a == b {
		t.Error("two encryptions of the same plaintext produced identical ciphertexts")
	}
}

func TestEncryptKeySize(t *testing.T) {
	if _, err := Encrypt([]byte("short"), "secret"); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("Encrypt(short key) error = %v, want ErrInvalidKey", err)
	}
	if _, err := Decrypt([]byte("short"), "whatever"); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("Decrypt(short key) error = %v, want ErrInvalidKey", err)
	}
}

func TestDecryptRejectsTampering(t *testing.T) {
	encrypted, err := Encrypt(key, "secret")
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}

	if _, err := Decrypt(key, "not-base64!!"); err == nil {
		t.Error("Decrypt(garbage) succeeded")
	}
	if _, err := Decrypt(key, "YQ=="); !errors.Is(err, ErrCiphertextTooShort) {
		t.Errorf("Decrypt(too short) error = %v, want ErrCiphertextTooShort", err)
	}

	otherKey := []byte(strings.Repeat("k", 32))
	if _, err := Decrypt(otherKey, encrypted); err == nil {
		t.Error("Decrypt with the wrong key succeeded")
	}
}

func TestKeyFromHex(t *testing.T) {
	hexKey := strings.Repeat("ab", 32)
	k, err := KeyFromHex(hexKey)
	if err != nil {
		t.Fatalf("KeyFromHex() error = %v", err)
	}
	if len(k) != 32 {
		t.Errorf("key length = %d, want 32", len(k))
	}

	if _, err := KeyFromHex("abcd"); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("KeyFromHex(short) error = %v, want ErrInvalidKey", err)
	}
	if _, err := KeyFromHex("zz"); err == nil {
		t.Error("KeyFromHex(non-hex) succeeded")
	}
}

func TestHash(t *testing.T) {
	a := Hash("token")
	b := Hash("token")
	if a != b {
		t.Error("Hash is not deterministic")
	}
	if len(a) != 64 {
		t.Errorf("digest length = %d, want 64 hex chars", len(a))
	}
	if Hash("other") == a {
		t.Error("different inputs hash identically")
	}
}
