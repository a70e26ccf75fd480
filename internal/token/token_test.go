package token

import "testing"

func TestEncryptDeterministic(t *testing.T) {
	c, err := NewCipher("test-secret")
	if err != nil {
		t.Fatalf("NewCipher() error = %v", err)
	}

	p := Payload{
		Name:             "Jane Doe",
		OrganizationName: "Fakultas Teknik",
		CertificateID:    "CERT-20250101-GEN-AB12",
	}

	tok1, err := c.Encrypt(p)
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	tok2, err := c.Encrypt(p)
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}

	if tok1 != tok2 {
		t.Errorf("Encrypt() tidak deterministik: %q != %q", tok1, tok2)
	}

	// Payload berbeda harus menghasilkan token berbeda
	p2 := p
	p2.CertificateID = "CERT-20250101-GEN-XY99"
	tok3, _ := c.Encrypt(p2)
	if tok3 == tok1 {
		t.Error("payload berbeda menghasilkan token sama")
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	c, _ := NewCipher("test-secret")

	p := Payload{
		Name:             "Budi Santoso",
		OrganizationName: "Fakultas Teknik Unismuh Makassar",
		CertificateID:    "CERT-20250830-IF-K3M9",
	}

	tok, err := c.Encrypt(p)
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}

	got, err := c.Decrypt(tok)
	if err != nil {
		t.Fatalf("Decrypt() error = %v", err)
	}
	if *got != p {
		t.Errorf("Decrypt() = %+v, want %+v", got, p)
	}
}

func TestDecryptInvalid(t *testing.T) {
	c, _ := NewCipher("test-secret")

	tests := []struct {
		name string
		tok  string
	}{
		{name: "bukan base64", tok: "%%%tidak-valid%%%"},
		{name: "terlalu pendek", tok: "YWJj"},
		{name: "ciphertext dimodifikasi", tok: "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := c.Decrypt(tt.tok); err != ErrInvalidToken {
				t.Errorf("Decrypt() error = %v, want ErrInvalidToken", err)
			}
		})
	}

	// Token dari secret lain tidak boleh terbuka
	other, _ := NewCipher("secret-lain")
	tok, _ := other.Encrypt(Payload{Name: "X", OrganizationName: "Y", CertificateID: "Z"})
	if _, err := c.Decrypt(tok); err != ErrInvalidToken {
		t.Errorf("Decrypt() token secret lain: error = %v, want ErrInvalidToken", err)
	}
}
