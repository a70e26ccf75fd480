package render

import (
	"math/rand"
	"sync"
	"time"
)

// Palet warna badge; pilihan warnanya dekoratif murni dan tidak boleh
// dijadikan sinyal kebenaran di pengujian
var badgePalette = []string{
	"#6366f1", "#8b5cf6", "#ec4899", "#f59e0b",
	"#10b981", "#06b6d4", "#3b82f6", "#ef4444",
}

const (
	noiseRows    = 8
	noiseCols    = 8
	noiseDensity = 0.4
)

// Theme sumber randomness dekoratif. Di produksi di-seed dari jam;
// di pengujian pakai NewSeededTheme supaya struktur bisa diperiksa
// tanpa mengunci identitas warna. Satu Theme dipakai bersama oleh
// semua request, jadi akses ke rnd diserialisasi.
type Theme struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewTheme() *Theme {
	return NewSeededTheme(time.Now().UnixNano())
}

func NewSeededTheme(seed int64) *Theme {
	return &Theme{rnd: rand.New(rand.NewSource(seed))}
}

// NewBadge memilih warna badge dan membangkitkan grid noise statis
func (t *Theme) NewBadge() Badge {
	t.mu.Lock()
	defer t.mu.Unlock()

	noise := make([][]bool, noiseRows)
	for i := range noise {
		noise[i] = make([]bool, noiseCols)
		for j := range noise[i] {
			noise[i][j] = t.rnd.Float64() < noiseDensity
		}
	}

	return Badge{
		Color: badgePalette[t.rnd.Intn(len(badgePalette))],
		Noise: noise,
	}
}
