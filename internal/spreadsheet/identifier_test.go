package spreadsheet

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"
	"time"
)

func fixedGenerator(seed int64) *Generator {
	return &Generator{
		Now:  func() time.Time { return time.Date(2025, time.January, 17, 10, 30, 0, 0, time.UTC) },
		Rand: rand.New(rand.NewSource(seed)),
	}
}

func TestVerificationIDFormat(t *testing.T) {
	g := fixedGenerator(42)

	got := g.VerificationID("Backend Developer Nest JS")

	re := regexp.MustCompile(`^CERT-\d{8}-BDNJ-[A-Z0-9]{4}$`)
	if !re.MatchString(got) {
		t.Errorf("VerificationID() = %q, tidak cocok %s", got, re)
	}
	if !strings.HasPrefix(got, "CERT-20250117-BDNJ-") {
		t.Errorf("VerificationID() = %q, tanggal/akronim salah", got)
	}
}

func TestVerificationIDAcronym(t *testing.T) {
	tests := []struct {
		name    string
		program string
		want    string
	}{
		{name: "empat kata", program: "Backend Developer Nest JS", want: "BDNJ"},
		{name: "lebih dari empat kata dipotong", program: "Satu Dua Tiga Empat Lima", want: "SDTE"},
		{name: "satu kata", program: "Informatika", want: "I"},
		{name: "kosong", program: "", want: "GEN"},
		{name: "hanya spasi", program: "   ", want: "GEN"},
		{name: "simbol dibuang", program: "@home * dev", want: "HD"},
		{name: "huruf kecil jadi kapital", program: "ai lab", want: "AL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := programAcronym(tt.program); got != tt.want {
				t.Errorf("programAcronym(%q) = %q, want %q", tt.program, got, tt.want)
			}
		})
	}
}

func TestVerificationIDDeterministicWithSeed(t *testing.T) {
	a := fixedGenerator(7)
	b := fixedGenerator(7)

	for i := 0; i < 5; i++ {
		idA := a.VerificationID("AI Lab")
		idB := b.VerificationID("AI Lab")
		if idA != idB {
			t.Fatalf("seed sama menghasilkan ID berbeda: %q != %q", idA, idB)
		}
	}
}

func TestIssueDate(t *testing.T) {
	g := fixedGenerator(1)

	if got := g.IssueDate(); got != "17 Januari 2025" {
		t.Errorf("IssueDate() = %q, want %q", got, "17 Januari 2025")
	}
}
