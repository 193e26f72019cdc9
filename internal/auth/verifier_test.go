package auth

import "testing"

func TestStaticKeyVerifier(t *testing.T) {
	v := NewStaticKeyVerifier("admin-secret-key")

	tests := []struct {
		name string
		key  string
		want bool
	}{
		{name: "correct key", key: "admin-secret-key", want: true},
		{name: "wrong key", key: "wrong-key", want: false},
		{name: "empty key", key: "", want: false},
		{name: "prefix of secret", key: "admin-secret", want: false},
		{name: "secret plus suffix", key: "admin-secret-key-extra", want: false},
		{name: "case differs", key: "Admin-Secret-Key", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.Verify(tt.key); got != tt.want {
				t.Errorf("Verify(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestStaticKeyVerifier_EmptySecret(t *testing.T) {
	v := NewStaticKeyVerifier("")

	if v.Verify("") {
		t.Error("empty key must never verify")
	}
	if v.Verify("anything") {
		t.Error("non-empty key must not verify against empty secret")
	}
}
