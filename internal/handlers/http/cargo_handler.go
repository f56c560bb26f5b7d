package http

import (
	"context"
	errs "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hotelges/hotelges-backend/internal/domain/errors"
	"github.com/hotelges/hotelges-backend/internal/handlers/dto"
	"github.com/hotelges/hotelges-backend/internal/services"
)

// CargoHandler lida com requisições HTTP de administração de cargos
type CargoHandler struct {
	cargoService *services.CargoService
}

// NewCargoHandler cria um novo CargoHandler
func NewCargoHandler(cargoService *services.CargoService) *CargoHandler {
	return &CargoHandler{
		cargoService: cargoService,
	}
}

// GetCargo retorna a árvore montada de um cargo
func (h *CargoHandler) GetCargo(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	cargo, err := h.cargoService.GetCargo(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errors.ErrCargoNaoEncontrado) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Cargo"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToCargoResponse(cargo))
}

// ListCargos retorna todas as árvores de cargo
func (h *CargoHandler) ListCargos(c *gin.Context) {
	cargos, err := h.cargoService.ListCargos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToCargoResponses(cargos))
}

// GrantTela concede a um cargo o acesso a uma tela (idempotente)
func (h *CargoHandler) GrantTela(c *gin.Context) {
	h.linkOp(c, "tela_id", h.cargoService.GrantTela)
}

// RevokeTela revoga de um cargo o acesso a uma tela (idempotente)
func (h *CargoHandler) RevokeTela(c *gin.Context) {
	h.linkOp(c, "tela_id", h.cargoService.RevokeTela)
}

// GrantPermissao concede a um cargo uma permissão (idempotente)
func (h *CargoHandler) GrantPermissao(c *gin.Context) {
	h.linkOp(c, "permissao_id", h.cargoService.GrantPermissao)
}

// RevokePermissao revoga de um cargo uma permissão (idempotente)
func (h *CargoHandler) RevokePermissao(c *gin.Context) {
	h.linkOp(c, "permissao_id", h.cargoService.RevokePermissao)
}

// linkOp fatora o padrão das quatro operações de vínculo: dois ids na
// rota, resposta 204 em caso de sucesso
func (h *CargoHandler) linkOp(c *gin.Context, param string, op func(ctx context.Context, cargoID, outroID uint) error) {
	cargoID, ok := parseIDParam(c)
	if !ok {
		return
	}

	raw := c.Param(param)
	outroID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || outroID == 0 {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, nil))
		return
	}

	if err := op(c.Request.Context(), cargoID, uint(outroID)); err != nil {
		if errs.Is(err, errors.ErrCargoNaoEncontrado) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Cargo"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.Status(http.StatusNoContent)
}
