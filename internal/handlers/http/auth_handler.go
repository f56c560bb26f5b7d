package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hotelges/hotelges-backend/internal/domain/errors"
	"github.com/hotelges/hotelges-backend/internal/handlers/dto"
	"github.com/hotelges/hotelges-backend/internal/handlers/middleware"
	"github.com/hotelges/hotelges-backend/internal/services"
)

// AuthHandler lida com requisições HTTP de autenticação
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login autentica o operador e emite o token de sessão.
// Qualquer falha de credencial responde o mesmo 401 genérico; conta
// sem funcionário vinculado é inconsistência de provisionamento (409).
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, err))
		return
	}

	token, _, err := h.authService.Login(c.Request.Context(), req.Username, req.Senha)
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrCredenciaisInvalidas):
			c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		case errs.Is(err, errors.ErrContaSemFuncionario):
			c.JSON(http.StatusConflict, dto.ConflictErrorResponseI18n(c, "error.account_without_employee"))
		default:
			c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		}
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		Type:  "Bearer",
	})
}

// Validate devolve a identidade embutida no token apresentado.
// A fase de autenticação já rodou; aqui só ecoamos o snapshot.
func (h *AuthHandler) Validate(c *gin.Context) {
	identidade, ok := middleware.IdentidadeFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToIdentidadeResponse(identidade))
}
