package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/devnolife/sakti-certify/internal/config"
	"github.com/devnolife/sakti-certify/internal/model"
	"github.com/devnolife/sakti-certify/internal/render"
	"github.com/devnolife/sakti-certify/internal/token"
	"github.com/xuri/excelize/v2"
)

func newTestCertService(t *testing.T) CertificateService {
	t.Helper()

	cipher, err := token.NewCipher("rahasia-service-test")
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}
	renderer := render.NewRenderer(
		config.RenderConfig{OrganizationName: "Fakultas Teknik Unismuh"},
		"https://sakti.example.test",
		cipher,
		render.NewSeededTheme(7),
	)
	return NewCertificateService(renderer, cipher)
}

func buildBatchXLSX(t *testing.T, rows [][]string) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for i, r := range rows {
		for j, v := range r {
			cellName, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("CoordinatesToCellName: %v", err)
			}
			if err := f.SetCellValue(sheet, cellName, v); err != nil {
				t.Fatalf("SetCellValue: %v", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	return buf.Bytes()
}

func uploadTwoRows(t *testing.T, svc CertificateService) *model.BatchResult {
	t.Helper()

	data := buildBatchXLSX(t, [][]string{
		{"name", "program"},
		{"Jane Doe", "AI Laboratory"},
		{"Budi Santoso", "Teknik Informatika"},
	})
	res, err := svc.UploadBatch(context.Background(), data, "peserta.xlsx")
	if err != nil {
		t.Fatalf("UploadBatch: %v", err)
	}
	return res
}

func TestUploadBatchReplacesState(t *testing.T) {
	svc := newTestCertService(t)
	res := uploadTwoRows(t, svc)

	if len(res.Records) != 2 {
		t.Fatalf("jumlah record = %d, want 2", len(res.Records))
	}
	if res.Records[0].Name != "Jane Doe" {
		t.Errorf("Records[0].Name = %q", res.Records[0].Name)
	}

	cur, err := svc.CurrentBatch(context.Background())
	if err != nil {
		t.Fatalf("CurrentBatch: %v", err)
	}
	if len(cur.Records) != 2 {
		t.Errorf("CurrentBatch records = %d, want 2", len(cur.Records))
	}
}

func TestUploadBatchFailureKeepsPreviousBatch(t *testing.T) {
	svc := newTestCertService(t)
	uploadTwoRows(t, svc)

	_, err := svc.UploadBatch(context.Background(), []byte("bukan spreadsheet"), "rusak.xlsx")
	if !errors.Is(err, ErrSpreadsheetRead) {
		t.Fatalf("UploadBatch() error = %v, want ErrSpreadsheetRead", err)
	}

	cur, err := svc.CurrentBatch(context.Background())
	if err != nil {
		t.Fatalf("batch lama harus tetap tersedia: %v", err)
	}
	if len(cur.Records) != 2 {
		t.Errorf("batch lama = %d record, want 2", len(cur.Records))
	}
}

func TestUploadBatchStaleDecodeDiscarded(t *testing.T) {
	svc := newTestCertService(t)
	cs := svc.(*certificateService)

	started := make(chan struct{})
	release := make(chan struct{})
	cs.decode = func(data []byte, filename string) ([]model.CertificateRecord, []string, error) {
		if filename == "lambat.xlsx" {
			close(started)
			<-release
			return []model.CertificateRecord{{Name: "Batch Lama"}}, nil, nil
		}
		return []model.CertificateRecord{{Name: "Batch Baru"}}, nil, nil
	}

	// Unggahan A tertahan di tengah decode
	errA := make(chan error, 1)
	go func() {
		_, err := svc.UploadBatch(context.Background(), nil, "lambat.xlsx")
		errA <- err
	}()
	<-started

	// Unggahan B selesai duluan
	if _, err := svc.UploadBatch(context.Background(), nil, "cepat.xlsx"); err != nil {
		t.Fatalf("unggahan kedua: %v", err)
	}

	// A baru selesai sekarang; hasilnya sudah basi dan harus dibuang
	close(release)
	if err := <-errA; !errors.Is(err, ErrUploadSuperseded) {
		t.Fatalf("unggahan pertama error = %v, want ErrUploadSuperseded", err)
	}

	cur, err := svc.CurrentBatch(context.Background())
	if err != nil {
		t.Fatalf("CurrentBatch: %v", err)
	}
	if len(cur.Records) != 1 || cur.Records[0].Name != "Batch Baru" {
		t.Errorf("batch aktif = %+v, want Batch Baru", cur.Records)
	}
}

func TestCurrentBatchEmpty(t *testing.T) {
	svc := newTestCertService(t)

	if _, err := svc.CurrentBatch(context.Background()); !errors.Is(err, ErrEmptyBatch) {
		t.Errorf("CurrentBatch() error = %v, want ErrEmptyBatch", err)
	}
	if _, err := svc.Pages(context.Background()); !errors.Is(err, ErrEmptyBatch) {
		t.Errorf("Pages() error = %v, want ErrEmptyBatch", err)
	}
	if _, err := svc.Navigate(context.Background(), model.NavigateRequest{Action: "next"}); !errors.Is(err, ErrEmptyBatch) {
		t.Errorf("Navigate() error = %v, want ErrEmptyBatch", err)
	}
}

func TestNavigateWalksFrontBackInterleave(t *testing.T) {
	svc := newTestCertService(t)
	uploadTwoRows(t, svc)

	ctx := context.Background()
	steps := []struct {
		action    string
		wantIndex int
		wantFace  string
	}{
		{"next", 0, "back"},
		{"next", 1, "front"},
		{"next", 1, "back"},
		{"next", 1, "back"}, // mentok di halaman terakhir
		{"prev", 1, "front"},
		{"prev", 0, "back"},
		{"prev", 0, "front"},
		{"prev", 0, "front"}, // mentok di halaman pertama
		{"toggle", 0, "back"},
		{"toggle", 0, "front"},
	}

	for i, st := range steps {
		got, err := svc.Navigate(ctx, model.NavigateRequest{Action: st.action})
		if err != nil {
			t.Fatalf("langkah %d (%s): %v", i, st.action, err)
		}
		if got.Index != st.wantIndex || got.Face != st.wantFace {
			t.Errorf("langkah %d (%s) = index %d face %s, want index %d face %s",
				i, st.action, got.Index, got.Face, st.wantIndex, st.wantFace)
		}
		if got.Total != 2 {
			t.Errorf("langkah %d: Total = %d, want 2", i, got.Total)
		}
	}
}

func TestNavigateZoomClamped(t *testing.T) {
	svc := newTestCertService(t)
	uploadTwoRows(t, svc)
	ctx := context.Background()

	got, err := svc.Navigate(ctx, model.NavigateRequest{Action: "zoom", Zoom: 10})
	if err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if got.Zoom != MaxZoom {
		t.Errorf("zoom atas = %v, want %v", got.Zoom, MaxZoom)
	}

	got, err = svc.Navigate(ctx, model.NavigateRequest{Action: "zoom", Zoom: 0.01})
	if err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if got.Zoom != MinZoom {
		t.Errorf("zoom bawah = %v, want %v", got.Zoom, MinZoom)
	}
}

func TestNavigateFitUsesContainerWidth(t *testing.T) {
	svc := newTestCertService(t)
	uploadTwoRows(t, svc)

	got, err := svc.Navigate(context.Background(), model.NavigateRequest{Action: "fit", ContainerWidth: 5000})
	if err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if got.Zoom != 1.0 {
		t.Errorf("fit container lebar = %v, want 1.0", got.Zoom)
	}

	got, err = svc.Navigate(context.Background(), model.NavigateRequest{Action: "fit", ContainerWidth: 100})
	if err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if got.Zoom != 0.25 {
		t.Errorf("fit container sempit = %v, want 0.25", got.Zoom)
	}
}

func TestNavigateUnknownAction(t *testing.T) {
	svc := newTestCertService(t)
	uploadTwoRows(t, svc)

	if _, err := svc.Navigate(context.Background(), model.NavigateRequest{Action: "spin"}); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("Navigate() error = %v, want ErrInvalidAction", err)
	}
}

func TestPagesInterleavePerRecord(t *testing.T) {
	svc := newTestCertService(t)
	uploadTwoRows(t, svc)

	pages, err := svc.Pages(context.Background())
	if err != nil {
		t.Fatalf("Pages: %v", err)
	}
	if len(pages) != 4 {
		t.Fatalf("jumlah halaman = %d, want 4", len(pages))
	}
	if pages[0].Side != render.SideFront || pages[1].Side != render.SideBack || pages[1].RecordIndex != 0 {
		t.Errorf("urutan halaman awal salah: %+v", pages[:2])
	}
}

func TestPreviewFaceFollowsNavigation(t *testing.T) {
	svc := newTestCertService(t)
	uploadTwoRows(t, svc)
	ctx := context.Background()

	face, err := svc.PreviewFace(ctx, "tpl-1")
	if err != nil {
		t.Fatalf("PreviewFace: %v", err)
	}
	if face.Side != render.SideFront || face.Recipient != "Jane Doe" {
		t.Errorf("face awal = side %s recipient %q", face.Side, face.Recipient)
	}

	if _, err := svc.Navigate(ctx, model.NavigateRequest{Action: "toggle"}); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	face, err = svc.PreviewFace(ctx, "tpl-1")
	if err != nil {
		t.Fatalf("PreviewFace: %v", err)
	}
	if face.Side != render.SideBack {
		t.Errorf("setelah toggle side = %s, want back", face.Side)
	}
}

func TestBuildPrintPDF(t *testing.T) {
	svc := newTestCertService(t)
	uploadTwoRows(t, svc)

	pdf, err := svc.BuildPrintPDF(context.Background(), "tpl-1")
	if err != nil {
		t.Fatalf("BuildPrintPDF: %v", err)
	}
	if !strings.HasPrefix(string(pdf), "%PDF-") {
		t.Errorf("output bukan PDF, prefix = %q", string(pdf[:8]))
	}
}

func TestVerifyRoundTrip(t *testing.T) {
	cipher, err := token.NewCipher("rahasia-service-test")
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}
	renderer := render.NewRenderer(
		config.RenderConfig{OrganizationName: "Fakultas Teknik Unismuh"},
		"https://sakti.example.test",
		cipher,
		render.NewSeededTheme(1),
	)
	svc := NewCertificateService(renderer, cipher)

	tok, err := cipher.Encrypt(token.Payload{
		Name:             "Jane Doe",
		OrganizationName: "Fakultas Teknik Unismuh",
		CertificateID:    "CERT-20250117-AL-A1B2",
	})
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	got := svc.Verify(context.Background(), tok)
	if !got.IsValid {
		t.Fatalf("token sah dianggap tidak valid: %+v", got)
	}
	if got.Name != "Jane Doe" || got.CertificateID != "CERT-20250117-AL-A1B2" {
		t.Errorf("payload = %+v", got)
	}
	if !strings.Contains(got.Message, "Fakultas Teknik Unismuh") {
		t.Errorf("pesan harus menyebut penerbit, dapat %q", got.Message)
	}
}

func TestVerifyGarbageToken(t *testing.T) {
	svc := newTestCertService(t)

	got := svc.Verify(context.Background(), "bukan-token-yang-benar")
	if got.IsValid {
		t.Fatal("token sampah dianggap valid")
	}
	if got.Name != "" || got.CertificateID != "" {
		t.Errorf("token tidak valid tidak boleh membawa payload: %+v", got)
	}
}
