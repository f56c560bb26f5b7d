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

// PessoaHandler lida com requisições HTTP do cadastro de pessoas
type PessoaHandler struct {
	pessoaService *services.PessoaService
}

// NewPessoaHandler cria um novo PessoaHandler
func NewPessoaHandler(pessoaService *services.PessoaService) *PessoaHandler {
	return &PessoaHandler{
		pessoaService: pessoaService,
	}
}

// CreatePessoa cria uma nova pessoa
func (h *PessoaHandler) CreatePessoa(c *gin.Context) {
	var req dto.CreatePessoaRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, err))
		return
	}

	pessoa, err := h.pessoaService.CreatePessoa(c.Request.Context(), services.CreatePessoaInput{
		Nome:      req.Nome,
		Email:     req.Email,
		Documento: req.Documento,
		Telefone:  req.Telefone,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusCreated, dto.ToPessoaResponse(pessoa))
}

// GetPessoa busca uma pessoa por ID
func (h *PessoaHandler) GetPessoa(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	pessoa, err := h.pessoaService.GetPessoa(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errors.ErrPessoaNaoEncontrada) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Pessoa"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToPessoaResponse(pessoa))
}

// UpdatePessoa atualiza uma pessoa existente
func (h *PessoaHandler) UpdatePessoa(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.CreatePessoaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, err))
		return
	}

	pessoa, err := h.pessoaService.UpdatePessoa(c.Request.Context(), id, services.CreatePessoaInput{
		Nome:      req.Nome,
		Email:     req.Email,
		Documento: req.Documento,
		Telefone:  req.Telefone,
	})
	if err != nil {
		if errs.Is(err, errors.ErrPessoaNaoEncontrada) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Pessoa"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToPessoaResponse(pessoa))
}

// DeletePessoa remove uma pessoa
func (h *PessoaHandler) DeletePessoa(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.pessoaService.DeletePessoa(c.Request.Context(), id); err != nil {
		if errs.Is(err, errors.ErrPessoaNaoEncontrada) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Pessoa"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.Status(http.StatusNoContent)
}

// ListPessoas lista pessoas com filtros e paginação
func (h *PessoaHandler) ListPessoas(c *gin.Context) {
	page, pageSize := paginationFrom(c)
	filters := repositories.PessoaFilters{
		Nome:     c.Query("nome"),
		Page:     page,
		PageSize: pageSize,
	}

	pessoas, err := h.pessoaService.ListPessoas(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToPessoaResponses(pessoas))
}
