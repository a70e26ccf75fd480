package render

import (
	"reflect"
	"testing"
)

func TestPaginateInterleaving(t *testing.T) {
	got := Paginate(2)

	want := []Page{
		{RecordIndex: 0, Side: SideFront},
		{RecordIndex: 0, Side: SideBack},
		{RecordIndex: 1, Side: SideFront},
		{RecordIndex: 1, Side: SideBack},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Paginate(2) = %v, want %v", got, want)
	}
}

func TestPaginateEmpty(t *testing.T) {
	if got := Paginate(0); len(got) != 0 {
		t.Errorf("Paginate(0) = %v, want kosong", got)
	}
}

func TestFitZoom(t *testing.T) {
	tests := []struct {
		name           string
		containerWidth float64
		want           float64
	}{
		{name: "pas persis", containerWidth: 1147, want: 1},
		{name: "container sangat lebar dijepit ke 1", containerWidth: 5000, want: 1},
		{name: "container sangat sempit dijepit ke 0.25", containerWidth: 100, want: 0.25},
		{name: "nol tetap 0.25", containerWidth: 0, want: 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitZoom(tt.containerWidth, FitPaddingPx, PageWidthPx)
			if got != tt.want {
				t.Errorf("FitZoom(%v) = %v, want %v", tt.containerWidth, got, tt.want)
			}
		})
	}
}

func TestFitZoomProportional(t *testing.T) {
	// Di antara kedua batas, zoom linier terhadap lebar container
	got := FitZoom(585.5, 24, 1123)
	want := 0.5
	if got != want {
		t.Errorf("FitZoom(585.5) = %v, want %v", got, want)
	}
}
