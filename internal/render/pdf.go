package render

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/devnolife/sakti-certify/internal/utils"
	"github.com/jung-kurt/gofpdf"
)

const qrImageSizePx = 256

// WritePDF merakit stream cetak: A4 landscape, margin nol, tepat satu
// face per halaman fisik, tanpa page break tersisa setelah halaman terakhir.
func WritePDF(faces []*Face) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	for i, face := range faces {
		pdf.AddPage()
		if err := paintFace(pdf, face, i); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("gagal generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func paintFace(pdf *gofpdf.Fpdf, face *Face, pageIdx int) error {
	drawFrame(pdf, face)
	drawBadge(pdf, face)

	switch face.Side {
	case SideFront:
		paintFront(pdf, face)
	case SideBack:
		paintBack(pdf, face)
	}

	return drawQRCodes(pdf, face, pageIdx)
}

// drawFrame border ganda menjorok dari tepi halaman
func drawFrame(pdf *gofpdf.Fpdf, face *Face) {
	inset := face.FrameInsetMM

	pdf.SetDrawColor(30, 41, 59)
	pdf.SetLineWidth(0.8)
	pdf.Rect(inset, inset, PageWidthMM-2*inset, PageHeightMM-2*inset, "D")

	pdf.SetLineWidth(0.2)
	pdf.Rect(inset+2, inset+2, PageWidthMM-2*(inset+2), PageHeightMM-2*(inset+2), "D")
}

// drawBadge region logo: lingkaran warna tema plus grid noise statis kecil
func drawBadge(pdf *gofpdf.Fpdf, face *Face) {
	r, g, b := hexToRGB(face.Badge.Color)
	pdf.SetFillColor(r, g, b)
	pdf.Circle(PageWidthMM/2, 32, 9, "F")

	cell := 1.2
	originX := PageWidthMM - face.FrameInsetMM - 14
	originY := face.FrameInsetMM + 4
	pdf.SetFillColor(203, 213, 225)
	for i, rowCells := range face.Badge.Noise {
		for j, on := range rowCells {
			if on {
				pdf.Rect(originX+float64(j)*cell, originY+float64(i)*cell, cell, cell, "F")
			}
		}
	}
}

func paintFront(pdf *gofpdf.Fpdf, face *Face) {
	gap := face.Spacing.SectionGapMM

	pdf.SetTextColor(30, 41, 59)
	pdf.SetFont("Times", "B", 30)
	pdf.SetXY(0, 52)
	pdf.CellFormat(PageWidthMM, 12, face.Title, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(100, 116, 139)
	pdf.SetXY(0, pdf.GetY()+gap)
	pdf.CellFormat(PageWidthMM, 6, "Diberikan kepada", "", 1, "C", false, 0, "")

	pdf.SetFont("Times", "B", 24)
	pdf.SetTextColor(15, 23, 42)
	pdf.SetXY(0, pdf.GetY()+face.Spacing.BlockGapMM)
	pdf.CellFormat(PageWidthMM, 11, face.Recipient, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	pdf.SetTextColor(51, 65, 85)
	pdf.SetXY(40, pdf.GetY()+gap)
	pdf.MultiCell(PageWidthMM-80, 6, face.Subtitle, "", "C", false)

	pdf.SetFont("Arial", "B", 13)
	pdf.SetTextColor(79, 70, 229)
	pdf.SetXY(0, pdf.GetY()+face.Spacing.BlockGapMM)
	pdf.CellFormat(PageWidthMM, 7, face.Program, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(100, 116, 139)
	pdf.SetXY(0, PageHeightMM-46)
	pdf.CellFormat(PageWidthMM, 5, fmt.Sprintf("Diterbitkan pada %s", face.IssueDate), "", 1, "C", false, 0, "")
	pdf.SetXY(0, pdf.GetY()+1)
	pdf.CellFormat(PageWidthMM, 5, fmt.Sprintf("No. Verifikasi: %s", face.VerificationID), "", 1, "C", false, 0, "")
}

func paintBack(pdf *gofpdf.Fpdf, face *Face) {
	inset := face.FrameInsetMM
	gap := face.Spacing.SectionGapMM
	left := inset + 8
	contentWidth := PageWidthMM - 2*(inset+8)

	y := inset + 10

	// Grid statistik: enam sel dua baris
	pdf.SetFont("Arial", "B", 10)
	cellW := contentWidth / 3
	for i, stat := range face.Stats {
		col := i % 3
		row := i / 3
		x := left + float64(col)*cellW
		cy := y + float64(row)*12

		pdf.SetTextColor(15, 23, 42)
		pdf.SetXY(x, cy)
		pdf.CellFormat(cellW, 6, stat.Value, "", 0, "C", false, 0, "")
		pdf.SetFont("Arial", "", 8)
		pdf.SetTextColor(100, 116, 139)
		pdf.SetXY(x, cy+5)
		pdf.CellFormat(cellW, 4, stat.Label, "", 0, "C", false, 0, "")
		pdf.SetFont("Arial", "B", 10)
	}
	y += 24 + gap

	// Bar kompetensi: lebar linier terhadap WidthPct
	pdf.SetFont("Arial", "", 9)
	barMaxW := contentWidth/2 - 10
	for _, bar := range face.Bars {
		pdf.SetTextColor(51, 65, 85)
		pdf.SetXY(left, y)
		pdf.CellFormat(50, 5, fmt.Sprintf("%s (%s)", bar.Name, bar.Level), "", 0, "L", false, 0, "")

		pdf.SetFillColor(226, 232, 240)
		pdf.Rect(left+52, y+1, barMaxW, 3, "F")
		r, g, b := hexToRGB(bar.ColorFrom)
		pdf.SetFillColor(r, g, b)
		pdf.Rect(left+52, y+1, barMaxW*bar.WidthPct/100, 3, "F")

		y += 5 + face.Spacing.BlockGapMM
	}
	y += gap

	// Rincian nilai
	pdf.SetFont("Arial", "B", 9)
	pdf.SetTextColor(15, 23, 42)
	for _, gr := range face.Grades {
		pdf.SetXY(left, y)
		pdf.CellFormat(60, 5, gr.Subject, "", 0, "L", false, 0, "")
		pdf.CellFormat(15, 5, gr.Grade, "", 0, "C", false, 0, "")
		pdf.CellFormat(20, 5, strconv.FormatFloat(gr.Score, 'f', -1, 64), "", 0, "R", false, 0, "")
		y += 5
	}
	y += gap

	// Panel analitik: polyline aktivitas mingguan
	if len(face.Weekly) > 1 {
		chartW := contentWidth / 2
		chartH := 24.0
		stepX := chartW / float64(len(face.Weekly)-1)

		pdf.SetDrawColor(79, 70, 229)
		pdf.SetLineWidth(0.4)
		for i := 1; i < len(face.Weekly); i++ {
			x1 := left + float64(i-1)*stepX
			x2 := left + float64(i)*stepX
			y1 := y + chartH - face.Weekly[i-1].Value/100*chartH
			y2 := y + chartH - face.Weekly[i].Value/100*chartH
			pdf.Line(x1, y1, x2, y2)
		}
		y += chartH + gap
	}

	// Catatan instruktur
	pdf.SetFont("Arial", "I", 9)
	pdf.SetTextColor(71, 85, 105)
	pdf.SetXY(left, y)
	pdf.MultiCell(contentWidth, 4.5, face.Feedback, "", "L", false)
}

// drawQRCodes dua QR di pojok bawah: tanda tangan digital kiri, verifikasi kanan
func drawQRCodes(pdf *gofpdf.Fpdf, face *Face, pageIdx int) error {
	qrs := []struct {
		qr QRCode
		x  float64
	}{
		{face.SignatureQR, face.FrameInsetMM + 6},
		{face.VerifyQR, PageWidthMM - face.FrameInsetMM - 28},
	}

	for i, item := range qrs {
		png, err := utils.GenerateQRCodePNG(item.qr.URL, qrImageSizePx)
		if err != nil {
			return err
		}

		// Nama image unik per halaman+posisi, gofpdf meng-cache berdasarkan nama
		name := fmt.Sprintf("qr-%d-%d", pageIdx, i)
		pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
		pdf.ImageOptions(name, item.x, PageHeightMM-face.FrameInsetMM-28, 22, 22, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")

		pdf.SetFont("Arial", "", 6)
		pdf.SetTextColor(100, 116, 139)
		pdf.SetXY(item.x-4, PageHeightMM-face.FrameInsetMM-5)
		pdf.CellFormat(30, 3, item.qr.Label, "", 0, "C", false, 0, "")
	}

	return nil
}

func hexToRGB(hex string) (int, int, int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 99, 102, 241 // fallback indigo
	}
	r, err1 := strconv.ParseInt(hex[1:3], 16, 0)
	g, err2 := strconv.ParseInt(hex[3:5], 16, 0)
	b, err3 := strconv.ParseInt(hex[5:7], 16, 0)
	if err1 != nil || err2 != nil || err3 != nil {
		return 99, 102, 241
	}
	return int(r), int(g), int(b)
}
