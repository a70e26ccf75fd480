package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="xml" ContentType="application/xml"/>
</Types>`

// buildDocx merakit arsip DOCX minimal di memori untuk pengujian
func buildDocx(t *testing.T, body string) []byte {
	t.Helper()

	documentXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body + `</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range map[string]string{
		"[Content_Types].xml": contentTypesXML,
		"word/document.xml":   documentXML,
	} {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func run(text string) string {
	return `<w:r><w:rPr><w:b/></w:rPr><w:t>` + text + `</w:t></w:r>`
}

func para(runs ...string) string {
	return `<w:p>` + strings.Join(runs, "") + `</w:p>`
}

func TestRewriteEmptyMapping(t *testing.T) {
	input := buildDocx(t, para(run("Halo {{nama}}")))

	out, err := Rewrite(input, nil)
	if err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}
	if !bytes.Equal(out, input) {
		t.Error("mapping kosong harus mengembalikan byte identik")
	}
}

func TestRewriteSingleRun(t *testing.T) {
	input := buildDocx(t, para(run("Diberikan kepada {{nama}} dari {{program}}")))

	out, err := Rewrite(input, map[string]string{"nama": "Jane", "program": "AI Lab"})
	if err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}

	text, err := ExtractText(out)
	if err != nil {
		t.Fatalf("ExtractText() error = %v", err)
	}
	if text != "Diberikan kepada Jane dari AI Lab" {
		t.Errorf("ExtractText() = %q", text)
	}
}

func TestRewriteRunSpanningToken(t *testing.T) {
	// Token {{foo}} terpecah di tiga run, artefak umum dari editor sumber
	input := buildDocx(t, para(run("Sertifikat {{f"), run("o"), run("o}} selesai")))

	out, err := Rewrite(input, map[string]string{"foo": "X"})
	if err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}

	text, err := ExtractText(out)
	if err != nil {
		t.Fatalf("ExtractText() error = %v", err)
	}
	if !strings.Contains(text, "X") {
		t.Errorf("hasil tidak memuat nilai pengganti: %q", text)
	}
	if strings.Contains(text, "{{") || strings.Contains(text, "foo") {
		t.Errorf("token mentah masih tersisa: %q", text)
	}
	if text != "Sertifikat X selesai" {
		t.Errorf("ExtractText() = %q", text)
	}
}

func TestRewriteUnmappedTokenUntouched(t *testing.T) {
	input := buildDocx(t, para(run("{{dikenal}} dan {{belum_diisi}}")))

	out, err := Rewrite(input, map[string]string{"dikenal": "OK"})
	if err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}

	text, _ := ExtractText(out)
	if text != "OK dan {{belum_diisi}}" {
		t.Errorf("ExtractText() = %q", text)
	}
}

func TestRewriteEscapesValue(t *testing.T) {
	input := buildDocx(t, para(run("{{v}}")))

	out, err := Rewrite(input, map[string]string{"v": "a<b & c"})
	if err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}

	text, _ := ExtractText(out)
	if text != "a<b & c" {
		t.Errorf("ExtractText() = %q", text)
	}
}

func TestRewritePreservesOtherEntries(t *testing.T) {
	input := buildDocx(t, para(run("{{nama}}")))

	out, err := Rewrite(input, map[string]string{"nama": "Jane"})
	if err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	if err != nil {
		t.Fatalf("hasil bukan zip valid: %v", err)
	}

	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	if !names["[Content_Types].xml"] || !names["word/document.xml"] {
		t.Errorf("entry arsip hilang: %v", names)
	}
}

func TestRewriteCorruptArchive(t *testing.T) {
	_, err := Rewrite([]byte("ini bukan zip"), map[string]string{"a": "b"})
	if !errors.Is(err, ErrNotDocx) {
		t.Errorf("Rewrite() error = %v, want ErrNotDocx", err)
	}
}

func TestExtractTextParagraphs(t *testing.T) {
	input := buildDocx(t, para(run("Baris satu"))+para(run("Baris dua")))

	text, err := ExtractText(input)
	if err != nil {
		t.Fatalf("ExtractText() error = %v", err)
	}
	if text != "Baris satu\nBaris dua" {
		t.Errorf("ExtractText() = %q", text)
	}
}

func TestParseSegmentsSkipsTableTags(t *testing.T) {
	// <w:tbl>, <w:tc>, <w:tab/> berawalan sama dengan <w:t>
	doc := `<w:tbl><w:tr><w:tc><w:p><w:r><w:tab/><w:t>isi</w:t></w:r></w:p></w:tc></w:tr></w:tbl>`
	segs := parseSegments(doc)
	if len(segs) != 1 || segs[0].text != "isi" {
		t.Errorf("parseSegments() = %+v", segs)
	}
}

func TestDiscoverPlaceholders(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "urutan kemunculan pertama",
			raw:  "{{b}} lalu {{a}} lalu {{b}} lagi",
			want: []string{"b", "a"},
		},
		{
			name: "spasi di dalam kurung",
			raw:  "{{ nama }} dan {{program}}",
			want: []string{"nama", "program"},
		},
		{
			name: "tanpa token",
			raw:  "teks biasa saja",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DiscoverPlaceholders(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DiscoverPlaceholders() = %v, want %v", got, tt.want)
			}
		})
	}
}
