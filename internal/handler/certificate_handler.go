package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/devnolife/sakti-certify/internal/model"
	"github.com/devnolife/sakti-certify/internal/response"
	"github.com/devnolife/sakti-certify/internal/service"
	"github.com/devnolife/sakti-certify/internal/utils"
	"github.com/go-chi/chi/v5"
)

type CertificateHandler struct {
	svc service.CertificateService
}

func NewCertificateHandler(svc service.CertificateService) *CertificateHandler {
	return &CertificateHandler{svc: svc}
}

// UploadBatch ingests a spreadsheet of participants
// @Summary      Upload certificate batch
// @Description  Upload an .xlsx or .xls participant spreadsheet; rows are normalized and replace the active batch
// @Tags         certificates
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Participant spreadsheet"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      422   {object}  response.Response
// @Router       /certificates/upload [post]
func (h *CertificateHandler) UploadBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, utils.MaxFileSize)
	if err := r.ParseMultipartForm(utils.MaxFileSize); err != nil {
		response.BadRequest(w, "File terlalu besar atau format tidak valid", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "File spreadsheet tidak ditemukan dalam request", nil)
		return
	}
	defer file.Close()

	name := strings.ToLower(header.Filename)
	if !strings.HasSuffix(name, ".xlsx") && !strings.HasSuffix(name, ".xls") {
		response.BadRequest(w, "Format spreadsheet hanya .xlsx dan .xls", nil)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		response.InternalError(w, "Gagal membaca file")
		return
	}

	batch, err := h.svc.UploadBatch(r.Context(), data, header.Filename)
	if err != nil {
		if errors.Is(err, service.ErrSpreadsheetRead) {
			response.UnprocessableEntity(w, err.Error(), nil)
			return
		}
		response.BadRequest(w, err.Error(), nil)
		return
	}

	response.Success(w, "Batch sertifikat berhasil diproses", batch)
}

// CurrentBatch returns the active batch
// @Summary      Get active batch
// @Description  Get the records and warnings of the most recent successful upload
// @Tags         certificates
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /certificates/batch [get]
func (h *CertificateHandler) CurrentBatch(w http.ResponseWriter, r *http.Request) {
	batch, err := h.svc.CurrentBatch(r.Context())
	if err != nil {
		response.NotFound(w, err.Error())
		return
	}

	response.Success(w, "Batch aktif berhasil diambil", batch)
}

// Pages lists the print page sequence
// @Summary      Get page sequence
// @Description  Get the front/back page ordering for the active batch
// @Tags         certificates
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /certificates/pages [get]
func (h *CertificateHandler) Pages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.svc.Pages(r.Context())
	if err != nil {
		response.NotFound(w, err.Error())
		return
	}

	response.Success(w, "Urutan halaman berhasil diambil", pages)
}

// Navigate moves the batch preview
// @Summary      Navigate preview
// @Description  Apply a preview action (next, prev, toggle, zoom, fit) and return the new view state
// @Tags         certificates
// @Accept       json
// @Produce      json
// @Param        request  body      model.NavigateRequest  true  "Navigation action"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /certificates/navigate [post]
func (h *CertificateHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req model.NavigateRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Format request tidak valid", err.Error())
		return
	}

	state, err := h.svc.Navigate(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyBatch):
			response.NotFound(w, err.Error())
		case errors.Is(err, service.ErrInvalidAction):
			response.BadRequest(w, err.Error(), nil)
		default:
			response.InternalError(w, "Gagal memproses navigasi")
		}
		return
	}

	response.Success(w, "Navigasi berhasil", state)
}

// Preview renders the currently shown face
// @Summary      Preview current face
// @Description  Render the face the preview is positioned on for the active record
// @Tags         certificates
// @Produce      json
// @Param        template_id  query     string  false  "Template ID to bind the face to"
// @Success      200          {object}  response.Response
// @Failure      404          {object}  response.Response
// @Router       /certificates/preview [get]
func (h *CertificateHandler) Preview(w http.ResponseWriter, r *http.Request) {
	face, err := h.svc.PreviewFace(r.Context(), r.URL.Query().Get("template_id"))
	if err != nil {
		if errors.Is(err, service.ErrEmptyBatch) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Gagal merender preview")
		return
	}

	response.Success(w, "Preview berhasil dirender", face)
}

// Print assembles the whole batch into one PDF
// @Summary      Print batch
// @Description  Render every record front then back into a single A4 landscape PDF
// @Tags         certificates
// @Produce      application/pdf
// @Param        template_id  query  string  false  "Template ID to bind the faces to"
// @Success      200  {file}    binary
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /certificates/print [get]
func (h *CertificateHandler) Print(w http.ResponseWriter, r *http.Request) {
	pdf, err := h.svc.BuildPrintPDF(r.Context(), r.URL.Query().Get("template_id"))
	if err != nil {
		if errors.Is(err, service.ErrEmptyBatch) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Gagal membuat PDF")
		return
	}

	filename := "sertifikat-batch-" + time.Now().Format("20060102") + ".pdf"
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// Verify checks a scanned QR token
// @Summary      Verify certificate token
// @Description  Decrypt a QR verification token and return the certificate holder data
// @Tags         verification
// @Produce      json
// @Param        token  path      string  true  "Encrypted verification token"
// @Success      200    {object}  response.Response
// @Failure      422    {object}  response.Response
// @Router       /verify/{token} [get]
func (h *CertificateHandler) Verify(w http.ResponseWriter, r *http.Request) {
	result := h.svc.Verify(r.Context(), chi.URLParam(r, "token"))
	if !result.IsValid {
		response.UnprocessableEntity(w, result.Message, result)
		return
	}

	response.Success(w, result.Message, result)
}

// VerifySignature checks the signature-side QR token
// @Summary      Verify signature token
// @Description  Decrypt the signature QR token; payload matches the verification token for the same certificate
// @Tags         verification
// @Produce      json
// @Param        token  path      string  true  "Encrypted signature token"
// @Success      200    {object}  response.Response
// @Failure      422    {object}  response.Response
// @Router       /verify/signature/{token} [get]
func (h *CertificateHandler) VerifySignature(w http.ResponseWriter, r *http.Request) {
	result := h.svc.Verify(r.Context(), chi.URLParam(r, "token"))
	if !result.IsValid {
		response.UnprocessableEntity(w, result.Message, result)
		return
	}

	response.Success(w, "Tanda tangan digital sah: "+result.Message, result)
}
