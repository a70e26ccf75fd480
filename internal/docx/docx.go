// Package docx membaca dan menulis ulang dokumen DOCX (arsip zip berisi XML).
// Fokusnya pada text run di word/document.xml: teks placeholder sering
// terpecah ke beberapa run oleh editor sumber, sehingga pencarian token
// harus dilakukan pada teks gabungan, bukan per run.
package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrNotDocx = errors.New("file bukan dokumen DOCX yang valid")

const documentPath = "word/document.xml"

// textSegment satu elemen <w:t>, dengan posisi byte isi teksnya di XML
type textSegment struct {
	start int    // offset isi, tepat setelah '>'
	end   int    // offset '</w:t>'
	text  string // isi yang sudah di-unescape
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

var xmlUnescaper = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&amp;", "&",
)

// parseSegments memindai semua elemen <w:t> pada potongan XML.
// Prefix "<w:t" juga cocok dengan <w:tbl>, <w:tc>, <w:tab/> dan sejenisnya,
// jadi karakter setelah prefix harus penutup tag atau atribut.
func parseSegments(doc string) []textSegment {
	var segs []textSegment

	pos := 0
	for {
		idx := strings.Index(doc[pos:], "<w:t")
		if idx < 0 {
			break
		}
		tagStart := pos + idx
		after := tagStart + len("<w:t")
		if after >= len(doc) {
			break
		}

		switch doc[after] {
		case '>', ' ', '/':
			// elemen w:t asli
		default:
			pos = after
			continue
		}

		gt := strings.IndexByte(doc[after:], '>')
		if gt < 0 {
			break
		}
		openEnd := after + gt + 1

		// self-closing: tidak ada isi teks
		if doc[openEnd-2] == '/' {
			pos = openEnd
			continue
		}

		closeIdx := strings.Index(doc[openEnd:], "</w:t>")
		if closeIdx < 0 {
			break
		}
		contentEnd := openEnd + closeIdx

		segs = append(segs, textSegment{
			start: openEnd,
			end:   contentEnd,
			text:  xmlUnescaper.Replace(doc[openEnd:contentEnd]),
		})
		pos = contentEnd + len("</w:t>")
	}

	return segs
}

// readDocument mengambil isi word/document.xml dari arsip
func readDocument(templateBytes []byte) (*zip.Reader, string, error) {
	zr, err := zip.NewReader(bytes.NewReader(templateBytes), int64(len(templateBytes)))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrNotDocx, err)
	}

	for _, f := range zr.File {
		if f.Name != documentPath {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrNotDocx, err)
		}
		defer rc.Close()

		content, err := io.ReadAll(rc)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrNotDocx, err)
		}
		return zr, string(content), nil
	}

	return nil, "", fmt.Errorf("%w: %s tidak ditemukan", ErrNotDocx, documentPath)
}

// ExtractText mengembalikan teks dokumen, satu baris per paragraf.
// Dipakai untuk preview template dan penemuan placeholder saat upload.
func ExtractText(templateBytes []byte) (string, error) {
	_, doc, err := readDocument(templateBytes)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, para := range strings.Split(doc, "</w:p>") {
		var line strings.Builder
		for _, seg := range parseSegments(para) {
			line.WriteString(seg.text)
		}
		if line.Len() > 0 {
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(line.String())
		}
	}

	return b.String(), nil
}
