package http

import (
	errs "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hotelges/hotelges-backend/internal/domain/errors"
	"github.com/hotelges/hotelges-backend/internal/domain/repositories"
	"github.com/hotelges/hotelges-backend/internal/handlers/dto"
	"github.com/hotelges/hotelges-backend/internal/services"
)

// FuncionarioHandler lida com requisições HTTP de funcionários
type FuncionarioHandler struct {
	funcionarioService *services.FuncionarioService
}

// NewFuncionarioHandler cria um novo FuncionarioHandler
func NewFuncionarioHandler(funcionarioService *services.FuncionarioService) *FuncionarioHandler {
	return &FuncionarioHandler{
		funcionarioService: funcionarioService,
	}
}

// GetFuncionario busca um funcionário por ID
func (h *FuncionarioHandler) GetFuncionario(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	funcionario, err := h.funcionarioService.GetFuncionario(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errors.ErrFuncionarioNaoEncontrado) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Funcionário"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToFuncionarioResponse(funcionario))
}

// ListFuncionarios lista funcionários com filtros e paginação
func (h *FuncionarioHandler) ListFuncionarios(c *gin.Context) {
	page, pageSize := paginationFrom(c)
	filters := repositories.FuncionarioFilters{
		Page:     page,
		PageSize: pageSize,
	}
	if raw := c.Query("cargo_id"); raw != "" {
		if cargoID, err := strconv.ParseUint(raw, 10, 32); err == nil {
			id := uint(cargoID)
			filters.CargoID = &id
		}
	}

	funcionarios, err := h.funcionarioService.ListFuncionarios(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToFuncionarioResponses(funcionarios))
}
