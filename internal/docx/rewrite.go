package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
)

// segmentEdit satu penggantian pada isi sebuah segment, dalam koordinat lokal
type segmentEdit struct {
	start, end int
	repl       string
}

// Rewrite mengganti token {{key}} di dalam template dengan nilai mapping.
// Token yang terpecah di beberapa run tetap dikenali: teks semua run
// diratakan dulu menjadi satu indeks, pencocokan dilakukan di sana, lalu
// hasil substitusi ditulis balik ke run sumber. Nilai pengganti masuk ke
// run pertama yang tersentuh token; run sisanya dikosongkan, sehingga
// formatting run pertama yang menang dan struktur dokumen tidak berubah.
//
// Token yang tidak punya mapping dibiarkan apa adanya. Mapping kosong
// mengembalikan input tanpa perubahan byte sama sekali.
func Rewrite(templateBytes []byte, mapping map[string]string) ([]byte, error) {
	if len(mapping) == 0 {
		return templateBytes, nil
	}

	zr, doc, err := readDocument(templateBytes)
	if err != nil {
		return nil, err
	}

	newDoc, changed := rewriteDocument(doc, mapping)
	if !changed {
		return templateBytes, nil
	}

	return repack(zr, []byte(newDoc))
}

func rewriteDocument(doc string, mapping map[string]string) (string, bool) {
	segs := parseSegments(doc)
	if len(segs) == 0 {
		return doc, false
	}

	// Pass 1: teks rata + offset flat tiap segment
	offsets := make([]int, len(segs)+1)
	var flatB strings.Builder
	for i, seg := range segs {
		offsets[i] = flatB.Len()
		flatB.WriteString(seg.text)
	}
	flat := flatB.String()
	offsets[len(segs)] = len(flat)

	// Pass 2: cari token di teks rata, kumpulkan edit per segment
	edits := make(map[int][]segmentEdit)
	changed := false

	for _, m := range placeholderRe.FindAllStringSubmatchIndex(flat, -1) {
		key := flat[m[2]:m[3]]
		value, ok := mapping[key]
		if !ok {
			continue
		}
		changed = true

		tokenStart, tokenEnd := m[0], m[1]
		first := true
		for i := range segs {
			segStart, segEnd := offsets[i], offsets[i+1]
			if segEnd <= tokenStart || segStart >= tokenEnd {
				continue
			}

			a := max(tokenStart, segStart)
			b := min(tokenEnd, segEnd)
			repl := ""
			if first {
				repl = value
				first = false
			}
			edits[i] = append(edits[i], segmentEdit{start: a - segStart, end: b - segStart, repl: repl})
		}
	}

	if !changed {
		return doc, false
	}

	// Terapkan edit per segment, dari belakang supaya offset tidak bergeser
	newText := make(map[int]string, len(edits))
	for i, list := range edits {
		sort.Slice(list, func(a, b int) bool { return list[a].start > list[b].start })
		text := segs[i].text
		for _, e := range list {
			text = text[:e.start] + e.repl + text[e.end:]
		}
		newText[i] = text
	}

	// Rakit ulang document.xml, hanya isi segment yang berubah
	var out strings.Builder
	out.Grow(len(doc))
	cursor := 0
	for i, seg := range segs {
		text, ok := newText[i]
		if !ok {
			continue
		}
		out.WriteString(doc[cursor:seg.start])
		out.WriteString(xmlEscaper.Replace(text))
		cursor = seg.end
	}
	out.WriteString(doc[cursor:])

	return out.String(), true
}

// repack menulis ulang arsip: entry selain document.xml disalin mentah
// (byte compressed asli), jadi bagian lain file tidak tersentuh.
func repack(zr *zip.Reader, newDoc []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, f := range zr.File {
		if f.Name == documentPath {
			w, err := zw.CreateHeader(&zip.FileHeader{
				Name:   f.Name,
				Method: zip.Deflate,
			})
			if err != nil {
				return nil, fmt.Errorf("gagal menulis %s: %w", f.Name, err)
			}
			if _, err := w.Write(newDoc); err != nil {
				return nil, fmt.Errorf("gagal menulis %s: %w", f.Name, err)
			}
			continue
		}

		rc, err := f.OpenRaw()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNotDocx, err)
		}
		header := f.FileHeader
		w, err := zw.CreateRaw(&header)
		if err != nil {
			return nil, fmt.Errorf("gagal menyalin %s: %w", f.Name, err)
		}
		if _, err := io.Copy(w, rc); err != nil {
			return nil, fmt.Errorf("gagal menyalin %s: %w", f.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("gagal menutup arsip: %w", err)
	}
	return buf.Bytes(), nil
}
