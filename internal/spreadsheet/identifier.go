package spreadsheet

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"
)

const suffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var bulan = [...]string{"", "Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember"}

// Generator menstempel ID verifikasi dan tanggal terbit pada record.
// Clock dan random source bisa diganti supaya output bisa diuji golden.
type Generator struct {
	Now  func() time.Time
	Rand *rand.Rand
}

func NewGenerator() *Generator {
	var seed int64
	var b [8]byte
	if _, err := crand.Read(b[:]); err == nil {
		seed = int64(binary.LittleEndian.Uint64(b[:]))
	} else {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		Now:  time.Now,
		Rand: rand.New(rand.NewSource(seed)),
	}
}

// VerificationID membuat kode verifikasi format CERT-YYYYMMDD-ACRO-XXXX.
// Akronim diambil dari huruf pertama maksimal 4 kata nama program;
// program kosong memakai "GEN". Sufiks 4 karakter base-36 acak.
func (g *Generator) VerificationID(program string) string {
	acronym := programAcronym(program)

	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = suffixAlphabet[g.Rand.Intn(len(suffixAlphabet))]
	}

	return fmt.Sprintf("CERT-%s-%s-%s", g.Now().Format("20060102"), acronym, suffix)
}

// IssueDate memformat tanggal terbit bentuk panjang, contoh: 17 Agustus 2025
func (g *Generator) IssueDate() string {
	now := g.Now()
	return fmt.Sprintf("%d %s %d", now.Day(), bulan[now.Month()], now.Year())
}

func programAcronym(program string) string {
	words := strings.Fields(program)
	if len(words) > 4 {
		words = words[:4]
	}

	var b strings.Builder
	for _, w := range words {
		// huruf alfanumerik pertama dari tiap kata; simbol di depan dilewati
		for _, r := range w {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(unicode.ToUpper(r))
				break
			}
		}
	}

	if b.Len() == 0 {
		return "GEN"
	}
	return b.String()
}
