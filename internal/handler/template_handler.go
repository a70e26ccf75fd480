package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/devnolife/sakti-certify/internal/model"
	"github.com/devnolife/sakti-certify/internal/response"
	"github.com/devnolife/sakti-certify/internal/service"
	"github.com/devnolife/sakti-certify/internal/utils"
	"github.com/go-chi/chi/v5"
)

type TemplateHandler struct {
	svc service.TemplateService
}

func NewTemplateHandler(svc service.TemplateService) *TemplateHandler {
	return &TemplateHandler{svc: svc}
}

// Upload registers a new document template
// @Summary      Upload a template
// @Description  Upload a .docx template (max 10MB); placeholders are discovered automatically
// @Tags         templates
// @Accept       multipart/form-data
// @Produce      json
// @Param        file         formData  file    true   "Template .docx file"
// @Param        name         formData  string  true   "Template name"
// @Param        description  formData  string  false  "Template description"
// @Param        category     formData  string  true   "Category: surat, sertifikat, or laporan"
// @Param        is_global    formData  bool    false  "Visible to all units"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /templates [post]
func (h *TemplateHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, utils.MaxFileSize)
	if err := r.ParseMultipartForm(utils.MaxFileSize); err != nil {
		response.BadRequest(w, "File terlalu besar atau format tidak valid", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "File template tidak ditemukan dalam request", nil)
		return
	}
	defer file.Close()

	if _, ok := utils.AllowedTemplateTypes[header.Header.Get("Content-Type")]; !ok &&
		!strings.HasSuffix(strings.ToLower(header.Filename), ".docx") {
		response.BadRequest(w, "Format template hanya .docx", nil)
		return
	}

	req := model.UploadTemplateRequest{
		Name:        utils.SanitizeString(r.FormValue("name")),
		Description: utils.SanitizeString(r.FormValue("description")),
		Category:    strings.ToLower(strings.TrimSpace(r.FormValue("category"))),
		IsGlobal:    r.FormValue("is_global") == "true",
	}

	errs := utils.ValidationErrors{}
	if req.Name == "" {
		errs["name"] = "Nama template wajib diisi"
	}
	if req.Category == "" {
		errs["category"] = "Kategori wajib diisi"
	}
	if errs.HasErrors() {
		response.BadRequest(w, "Validasi gagal", errs)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		response.InternalError(w, "Gagal membaca file")
		return
	}

	tpl, err := h.svc.Upload(r.Context(), req, data)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCategory) {
			response.BadRequest(w, err.Error(), nil)
			return
		}
		response.BadRequest(w, "Gagal memproses template: "+err.Error(), nil)
		return
	}

	response.Created(w, "Template berhasil diupload", tpl)
}

// GetAll lists all templates
// @Summary      Get all templates
// @Description  Get the list of registered templates with their variable mappings
// @Tags         templates
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /templates [get]
func (h *TemplateHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	templates, err := h.svc.GetAll(r.Context())
	if err != nil {
		response.InternalError(w, "Gagal mengambil data template")
		return
	}

	response.Success(w, "Data template berhasil diambil", templates)
}

// GetByID retrieves a template by ID
// @Summary      Get template by ID
// @Description  Get one template including its extracted text and variables
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Template ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /templates/{id} [get]
func (h *TemplateHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	tpl, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Gagal mengambil data template")
		return
	}

	response.Success(w, "Data template berhasil diambil", tpl)
}

// GetMapping returns the variable mapping of a template
// @Summary      Get variable mapping
// @Description  Get the ordered variable mapping and its version
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Template ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /templates/{id}/variables [get]
func (h *TemplateHandler) GetMapping(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	mapping, err := h.svc.GetMapping(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Gagal mengambil mapping variabel")
		return
	}

	response.Success(w, "Mapping variabel berhasil diambil", mapping)
}

// SaveMapping replaces the variable mapping of a template
// @Summary      Save variable mapping
// @Description  Replace the full mapping; rejected with 409 when the stored version moved past the submitted one
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Template ID"
// @Param        request  body      model.SaveMappingRequest  true  "Full variable mapping plus last seen version"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /templates/{id}/variables [put]
func (h *TemplateHandler) SaveMapping(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req model.SaveMappingRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Format request tidak valid", err.Error())
		return
	}

	version, err := h.svc.SaveMapping(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTemplateNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, service.ErrMappingConflict):
			response.Conflict(w, err.Error())
		default:
			response.BadRequest(w, err.Error(), nil)
		}
		return
	}

	response.Success(w, "Mapping variabel berhasil disimpan", map[string]int64{"version": version})
}

// Download returns the template binary, rewritten when the mapping has values
// @Summary      Download template
// @Description  Download the .docx; when the mapping has filled values the file comes back rewritten with suffix _with_variables
// @Tags         templates
// @Produce      application/octet-stream
// @Param        id   path      string  true  "Template ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /templates/{id}/download [get]
func (h *TemplateHandler) Download(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	data, filename, err := h.svc.Download(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Gagal mengunduh template")
		return
	}

	w.Header().Set("Content-Type", utils.DocxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Export serializes a template as HTML or JSON
// @Summary      Export template
// @Description  Export a template as a standalone HTML document or a JSON mapping dump
// @Tags         templates
// @Produce      json
// @Param        id      path      string  true  "Template ID"
// @Param        format  path      string  true  "Export format: html or json"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /templates/{id}/export/{format} [get]
func (h *TemplateHandler) Export(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	format := strings.ToLower(chi.URLParam(r, "format"))

	switch format {
	case "html":
		data, filename, err := h.svc.ExportHTML(r.Context(), id)
		if err != nil {
			if errors.Is(err, service.ErrTemplateNotFound) {
				response.NotFound(w, err.Error())
				return
			}
			response.InternalError(w, "Gagal mengekspor template")
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)

	case "json":
		export, err := h.svc.ExportJSON(r.Context(), id)
		if err != nil {
			if errors.Is(err, service.ErrTemplateNotFound) {
				response.NotFound(w, err.Error())
				return
			}
			response.InternalError(w, "Gagal mengekspor template")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(export)

	default:
		response.BadRequest(w, "Format export harus html atau json", nil)
	}
}
