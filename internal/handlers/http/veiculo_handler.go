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

// VeiculoHandler lida com requisições HTTP do cadastro de veículos
type VeiculoHandler struct {
	veiculoService *services.VeiculoService
}

// NewVeiculoHandler cria um novo VeiculoHandler
func NewVeiculoHandler(veiculoService *services.VeiculoService) *VeiculoHandler {
	return &VeiculoHandler{
		veiculoService: veiculoService,
	}
}

// CreateVeiculo registra um veículo vinculado a uma pessoa
func (h *VeiculoHandler) CreateVeiculo(c *gin.Context) {
	var req dto.CreateVeiculoRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, err))
		return
	}

	veiculo, err := h.veiculoService.CreateVeiculo(c.Request.Context(), services.CreateVeiculoInput{
		Placa:    req.Placa,
		Modelo:   req.Modelo,
		Cor:      req.Cor,
		PessoaID: req.PessoaID,
	})
	if err != nil {
		if errs.Is(err, errors.ErrPessoaNaoEncontrada) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Pessoa"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusCreated, dto.ToVeiculoResponse(veiculo))
}

// GetVeiculo busca um veículo por ID
func (h *VeiculoHandler) GetVeiculo(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	veiculo, err := h.veiculoService.GetVeiculo(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errors.ErrVeiculoNaoEncontrado) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Veículo"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToVeiculoResponse(veiculo))
}

// UpdateVeiculo atualiza um veículo existente
func (h *VeiculoHandler) UpdateVeiculo(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.CreateVeiculoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, err))
		return
	}

	veiculo, err := h.veiculoService.UpdateVeiculo(c.Request.Context(), id, services.CreateVeiculoInput{
		Placa:    req.Placa,
		Modelo:   req.Modelo,
		Cor:      req.Cor,
		PessoaID: req.PessoaID,
	})
	if err != nil {
		if errs.Is(err, errors.ErrVeiculoNaoEncontrado) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Veículo"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToVeiculoResponse(veiculo))
}

// DeleteVeiculo remove um veículo
func (h *VeiculoHandler) DeleteVeiculo(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.veiculoService.DeleteVeiculo(c.Request.Context(), id); err != nil {
		if errs.Is(err, errors.ErrVeiculoNaoEncontrado) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Veículo"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.Status(http.StatusNoContent)
}

// ListVeiculos lista veículos com filtros e paginação
func (h *VeiculoHandler) ListVeiculos(c *gin.Context) {
	page, pageSize := paginationFrom(c)
	filters := repositories.VeiculoFilters{
		Placa:    c.Query("placa"),
		Page:     page,
		PageSize: pageSize,
	}
	if raw := c.Query("pessoa_id"); raw != "" {
		if pessoaID, err := strconv.ParseUint(raw, 10, 32); err == nil {
			id := uint(pessoaID)
			filters.PessoaID = &id
		}
	}

	veiculos, err := h.veiculoService.ListVeiculos(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToVeiculoResponses(veiculos))
}
