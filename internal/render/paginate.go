package render

// Page satu halaman output: satu record, satu sisi
type Page struct {
	RecordIndex int  `json:"record_index"`
	Side        Side `json:"side"`
}

// Paginate menyusun halaman cetak untuk n record dengan urutan ketat
// depan/belakang berselang-seling: rec0-depan, rec0-belakang, rec1-depan,
// dst. Tidak pernah semua-depan-dulu.
func Paginate(n int) []Page {
	pages := make([]Page, 0, n*2)
	for i := 0; i < n; i++ {
		pages = append(pages, Page{RecordIndex: i, Side: SideFront})
		pages = append(pages, Page{RecordIndex: i, Side: SideBack})
	}
	return pages
}

// FitZoom menghitung faktor zoom mode "fit": halaman menyesuaikan lebar
// container dikurangi padding tetap, dijepit ke [0.25, 1].
func FitZoom(containerWidth, padding, pageWidth float64) float64 {
	if pageWidth <= 0 {
		return 1
	}
	zoom := (containerWidth - padding) / pageWidth
	return min(1, max(0.25, zoom))
}
