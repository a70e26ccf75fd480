package model

// GradeItem satu baris rincian nilai pada sisi belakang sertifikat
type GradeItem struct {
	Subject string  `json:"subject"`
	Grade   string  `json:"grade"`
	Score   float64 `json:"score"`
}

// Competency satu bar kompetensi dengan bobot persentase
type Competency struct {
	Name      string  `json:"name"`
	Value     float64 `json:"value"` // persentase 0-100
	ColorFrom string  `json:"colorFrom"`
	ColorTo   string  `json:"colorTo"`
	Level     string  `json:"level"`
}

// CertificateRecord hasil normalisasi satu baris spreadsheet.
// Dibuat sekali saat upload dan tidak pernah dimutasi setelahnya.
type CertificateRecord struct {
	CertificateTitle string `json:"certificate_title"`
	Name             string `json:"name"`
	Program          string `json:"program"`
	Subtitle         string `json:"subtitle"`

	// Selalu diisi sistem, kolom sejenis di input diabaikan
	IssueDate      string `json:"issue_date"`
	VerificationID string `json:"verification_id"`

	Meetings      int     `json:"meetings"`
	TotalScore    float64 `json:"total_score"`
	Materials     int     `json:"materials"`
	Attendance    float64 `json:"attendance"`
	Assignments   float64 `json:"assignments"`
	Participation float64 `json:"participation"`

	Grades       []GradeItem  `json:"grades"`
	Competencies []Competency `json:"competencies"`
	WeeklyData   []float64    `json:"weekly_data"`

	Technologies          []string `json:"technologies"`
	FutureRecommendations []string `json:"future_recommendations"`
	InstructorFeedback    string   `json:"instructor_feedback"`
}

// BatchResult satu batch hasil upload spreadsheet, hidup di memori per sesi
type BatchResult struct {
	Records  []CertificateRecord `json:"records"`
	Warnings []string            `json:"warnings"`
}

// NavigateRequest aksi navigasi preview batch
type NavigateRequest struct {
	Action         string  `json:"action"` // next | prev | toggle | zoom | fit
	Zoom           float64 `json:"zoom,omitempty"`
	ContainerWidth float64 `json:"container_width,omitempty"`
}

// ViewState posisi preview saat ini
type ViewState struct {
	Index int     `json:"index"`
	Total int     `json:"total"`
	Face  string  `json:"face"` // front | back
	Zoom  float64 `json:"zoom"`
}

// VerifyResult untuk endpoint publik verifikasi token QR
type VerifyResult struct {
	IsValid          bool   `json:"is_valid"`
	Name             string `json:"name,omitempty"`
	OrganizationName string `json:"organization_name,omitempty"`
	CertificateID    string `json:"certificate_id,omitempty"`
	Message          string `json:"message"`
}
