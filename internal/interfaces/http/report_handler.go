package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hortidev/quitanda-api/internal/application/usecase"
)

// ReportHandler trata a exportação do relatório de período.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// PeriodoPDF devolve o relatório do período em PDF.
// GET /api/relatorios/periodo.pdf?inicio=YYYY-MM-DD&fim=YYYY-MM-DD
func (h *ReportHandler) PeriodoPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.GeneratePeriodReport(c.Context(), c.Query("inicio"), c.Query("fim"))
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="relatorio-periodo.pdf"`)
	return c.Send(pdf)
}
