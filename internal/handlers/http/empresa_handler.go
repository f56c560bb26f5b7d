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

// EmpresaHandler lida com requisições HTTP do cadastro de empresas
type EmpresaHandler struct {
	empresaService *services.EmpresaService
}

// NewEmpresaHandler cria um novo EmpresaHandler
func NewEmpresaHandler(empresaService *services.EmpresaService) *EmpresaHandler {
	return &EmpresaHandler{
		empresaService: empresaService,
	}
}

// CreateEmpresa cria uma nova empresa conveniada
func (h *EmpresaHandler) CreateEmpresa(c *gin.Context) {
	var req dto.CreateEmpresaRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, err))
		return
	}

	empresa, err := h.empresaService.CreateEmpresa(c.Request.Context(), services.CreateEmpresaInput{
		RazaoSocial:  req.RazaoSocial,
		NomeFantasia: req.NomeFantasia,
		CNPJ:         req.CNPJ,
		Telefone:     req.Telefone,
	})
	if err != nil {
		if errs.Is(err, errors.ErrCNPJJaExiste) {
			c.JSON(http.StatusConflict, dto.ConflictErrorResponseI18n(c, "error.cnpj_conflict",
				map[string]interface{}{"CNPJ": req.CNPJ}))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusCreated, dto.ToEmpresaResponse(empresa))
}

// GetEmpresa busca uma empresa por ID
func (h *EmpresaHandler) GetEmpresa(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	empresa, err := h.empresaService.GetEmpresa(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errors.ErrEmpresaNaoEncontrada) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Empresa"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToEmpresaResponse(empresa))
}

// UpdateEmpresa atualiza uma empresa existente
func (h *EmpresaHandler) UpdateEmpresa(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.CreateEmpresaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, err))
		return
	}

	empresa, err := h.empresaService.UpdateEmpresa(c.Request.Context(), id, services.CreateEmpresaInput{
		RazaoSocial:  req.RazaoSocial,
		NomeFantasia: req.NomeFantasia,
		CNPJ:         req.CNPJ,
		Telefone:     req.Telefone,
	})
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrEmpresaNaoEncontrada):
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Empresa"))
		case errs.Is(err, errors.ErrCNPJJaExiste):
			c.JSON(http.StatusConflict, dto.ConflictErrorResponseI18n(c, "error.cnpj_conflict",
				map[string]interface{}{"CNPJ": req.CNPJ}))
		default:
			c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEmpresaResponse(empresa))
}

// DeleteEmpresa remove uma empresa
func (h *EmpresaHandler) DeleteEmpresa(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.empresaService.DeleteEmpresa(c.Request.Context(), id); err != nil {
		if errs.Is(err, errors.ErrEmpresaNaoEncontrada) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Empresa"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.Status(http.StatusNoContent)
}

// ListEmpresas lista empresas com filtros e paginação
func (h *EmpresaHandler) ListEmpresas(c *gin.Context) {
	page, pageSize := paginationFrom(c)
	filters := repositories.EmpresaFilters{
		RazaoSocial: c.Query("razao_social"),
		Page:        page,
		PageSize:    pageSize,
	}

	empresas, err := h.empresaService.ListEmpresas(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToEmpresaResponses(empresas))
}
