package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hotelges/hotelges-backend/internal/domain/errors"
	"github.com/hotelges/hotelges-backend/internal/domain/repositories"
	"github.com/hotelges/hotelges-backend/internal/handlers/dto"
	"github.com/hotelges/hotelges-backend/internal/services"
)

// QuartoHandler lida com requisições HTTP do cadastro de quartos
type QuartoHandler struct {
	quartoService *services.QuartoService
}

// NewQuartoHandler cria um novo QuartoHandler
func NewQuartoHandler(quartoService *services.QuartoService) *QuartoHandler {
	return &QuartoHandler{
		quartoService: quartoService,
	}
}

// CreateQuarto cria um novo quarto
func (h *QuartoHandler) CreateQuarto(c *gin.Context) {
	var req dto.CreateQuartoRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, err))
		return
	}

	quarto, err := h.quartoService.CreateQuarto(c.Request.Context(), services.CreateQuartoInput{
		Numero:      req.Numero,
		Andar:       req.Andar,
		Categoria:   req.Categoria,
		ValorDiaria: req.ValorDiaria,
	})
	if err != nil {
		if errs.Is(err, errors.ErrNumeroQuartoJaExiste) {
			c.JSON(http.StatusConflict, dto.ConflictErrorResponseI18n(c, "error.room_number_conflict",
				map[string]interface{}{"Numero": req.Numero}))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusCreated, dto.ToQuartoResponse(quarto))
}

// GetQuarto busca um quarto por ID
func (h *QuartoHandler) GetQuarto(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	quarto, err := h.quartoService.GetQuarto(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errors.ErrQuartoNaoEncontrado) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Quarto"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToQuartoResponse(quarto))
}

// UpdateQuarto atualiza os campos informados de um quarto
func (h *QuartoHandler) UpdateQuarto(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateQuartoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, err))
		return
	}

	quarto, err := h.quartoService.UpdateQuarto(c.Request.Context(), id, services.UpdateQuartoInput{
		Andar:       req.Andar,
		Categoria:   req.Categoria,
		ValorDiaria: req.ValorDiaria,
		Situacao:    req.Situacao,
	})
	if err != nil {
		if errs.Is(err, errors.ErrQuartoNaoEncontrado) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Quarto"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToQuartoResponse(quarto))
}

// DeleteQuarto remove um quarto
func (h *QuartoHandler) DeleteQuarto(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.quartoService.DeleteQuarto(c.Request.Context(), id); err != nil {
		if errs.Is(err, errors.ErrQuartoNaoEncontrado) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Quarto"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.Status(http.StatusNoContent)
}

// ListQuartos lista quartos com filtros e paginação
func (h *QuartoHandler) ListQuartos(c *gin.Context) {
	page, pageSize := paginationFrom(c)
	filters := repositories.QuartoFilters{
		Page:     page,
		PageSize: pageSize,
	}
	if situacao := c.Query("situacao"); situacao != "" {
		filters.Situacao = &situacao
	}
	if categoria := c.Query("categoria"); categoria != "" {
		filters.Categoria = &categoria
	}

	quartos, err := h.quartoService.ListQuartos(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToQuartoResponses(quartos))
}
