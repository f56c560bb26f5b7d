package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hotelges/hotelges-backend/internal/domain/repositories"
	"github.com/hotelges/hotelges-backend/internal/handlers/dto"
	"github.com/hotelges/hotelges-backend/internal/services"
)

// RelatorioHandler lida com requisições HTTP de relatórios financeiros
type RelatorioHandler struct {
	relatorioService *services.RelatorioService
}

// NewRelatorioHandler cria um novo RelatorioHandler
func NewRelatorioHandler(relatorioService *services.RelatorioService) *RelatorioHandler {
	return &RelatorioHandler{
		relatorioService: relatorioService,
	}
}

// ResumoFinanceiro devolve o resumo financeiro do período informado
// via query string (inicio e fim, formato 2006-01-02, inclusivo)
func (h *RelatorioHandler) ResumoFinanceiro(c *gin.Context) {
	inicio := c.Query("inicio")
	fim := c.Query("fim")

	if !dataValida(inicio) || !dataValida(fim) {
		response := dto.NewErrorResponseI18n(
			c,
			"/problems/bad-request",
			"error.bad_request.title",
			"error.invalid_period",
			400,
		)
		c.JSON(http.StatusBadRequest, response)
		return
	}

	resumo, err := h.relatorioService.ResumoFinanceiro(c.Request.Context(), repositories.PeriodoFilters{
		Inicio: inicio,
		Fim:    fim,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToResumoFinanceiroResponse(resumo))
}

func dataValida(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
