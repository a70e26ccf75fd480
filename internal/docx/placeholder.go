package docx

import "regexp"

// placeholderRe sintaks token {{key}}; spasi di dalam kurung ditoleransi
var placeholderRe = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_][A-Za-z0-9_.\-]*)\s*\}\}`)

// DiscoverPlaceholders memindai teks template dan mengembalikan key unik
// dengan urutan kemunculan pertama dipertahankan.
func DiscoverPlaceholders(rawText string) []string {
	seen := make(map[string]bool)
	var keys []string

	for _, m := range placeholderRe.FindAllStringSubmatch(rawText, -1) {
		key := m[1]
		if seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}

	return keys
}
