package handlers

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	"control-system/internal/services"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

const pageTemplate = "index.tmpl"

// loadTemplates разбирает шаблоны страницы. src картинок уже разрешён
// ResolveImage и может быть data URL, поэтому помечается как безопасный.
func loadTemplates() *template.Template {
	return template.Must(template.New("").
		Funcs(template.FuncMap{
			"safeURL": func(s string) template.URL { return template.URL(s) },
		}).
		ParseFS(templatesFS, "templates/*.tmpl"))
}

// WebHandler отдаёт форму и обрабатывает её отправку
type WebHandler struct {
	submissions *services.SubmissionService
}

func NewWebHandler(submissions *services.SubmissionService) *WebHandler {
	return &WebHandler{submissions: submissions}
}

// Index GET /
func (h *WebHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, pageTemplate, NewPageDisplay("").View())
}

// Submit POST / - один цикл обработки отправки формы
func (h *WebHandler) Submit(c *gin.Context) {
	input := c.PostForm("tf")
	display := NewPageDisplay(input)

	_, err := h.submissions.Submit(c.Request.Context(), input, display)
	c.HTML(submitStatus(err), pageTemplate, display.View())
}

func submitStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, services.ErrInvalidFunction):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}
