package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ekazakov/screening/api/http/presenter"
	"github.com/ekazakov/screening/pkg/screening"
)

type AnalyzeHandler struct {
	svc *screening.Service
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewAnalyzeHandler(svc *screening.Service) *AnalyzeHandler {
	return &AnalyzeHandler{svc: svc, maxBytes: 15 << 20} // 15MB
}

// Analyze scores one or more uploaded resumes against a job description.
// @Summary Analyze resumes against a job description
// @Description Accepts one or more resume files (PDF or DOCX) and a job description (explicit text or the preloaded default), and returns scores, insights and a summary per resume. Multiple resumes come back ranked by overall fit.
// @Tags    analysis
// @Accept  multipart/form-data
// @Produce json
// @Param   files formData file true "Resume files (PDF or DOCX), repeatable"
// @Param   jd formData string false "Job description text; overrides the default"
// @Param   use_static_jd formData boolean false "Use the preloaded default job description"
// @Security ApiKeyAuth
// @Success 200 {object} map[string]any "Single result, ranked batch, or a structured error when no JD is resolvable"
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /analyze/ [post]
func (h *AnalyzeHandler) Analyze(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "multipart form is required")
	}
	files := form.File["files"]
	if len(files) == 0 {
		return presenter.Error(c, http.StatusBadRequest, "at least one file is required")
	}

	jdText, err := h.svc.ResolveJobDescription(formValue(form, "jd"), formBool(form, "use_static_jd"))
	if err != nil {
		if errors.Is(err, screening.ErrNoJobDescription) {
			// Precondition failure, not a transport error: clients get a
			// structured payload, not a 4xx.
			return presenter.JSON(c, http.StatusOK, fiber.Map{
				"error": "No job description provided. Use jd=<text> or use_static_jd=true",
			})
		}
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	uploads := make([]screening.Upload, 0, len(files))
	for _, fh := range files {
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		if ext != ".pdf" && ext != ".docx" {
			return presenter.Error(c, http.StatusBadRequest,
				fmt.Sprintf("unsupported file format for %s: only pdf and docx are allowed", fh.Filename))
		}
		f, err := fh.Open()
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("failed to open %s", fh.Filename))
		}
		data, err := readAtMost(f, h.maxBytes)
		f.Close()
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("%s: %v", fh.Filename, err))
		}
		uploads = append(uploads, screening.Upload{Filename: fh.Filename, Data: data})
	}

	results, err := h.svc.Analyze(c.Context(), jdText, uploads)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("analysis failed: %v", err))
	}

	// A single resume comes back unwrapped; multiple come back ranked.
	if len(results) == 1 {
		return presenter.JSON(c, http.StatusOK, results[0])
	}
	return presenter.JSON(c, http.StatusOK, screening.Rank(results))
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}

func formValue(form *multipart.Form, key string) string {
	if vs := form.Value[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

func formBool(form *multipart.Form, key string) bool {
	v := strings.TrimSpace(formValue(form, key))
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
