package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hotelges/hotelges-backend/internal/domain/entities"
	"github.com/hotelges/hotelges-backend/internal/domain/ports"
	"github.com/hotelges/hotelges-backend/internal/handlers/dto"
)

// IdentityContextKey é a chave usada para armazenar a identidade
// decodificada no contexto do Gin
const IdentityContextKey = "identidade"

// AuthMiddleware implementa o gate de requisições em duas fases:
// autenticação (token assinado válido) e autorização (tela exigida
// pela rota presente no cargo da identidade). Sem estado compartilhado:
// cada requisição é avaliada de forma independente.
type AuthMiddleware struct {
	codec       ports.TokenCodec
	logger      ports.Logger
	publicPaths []string
}

// NewAuthMiddleware cria o middleware de autenticação.
// publicPaths é a lista de prefixos de rota que pulam as duas fases
// (login, documentação, health)
func NewAuthMiddleware(codec ports.TokenCodec, logger ports.Logger, publicPaths []string) *AuthMiddleware {
	return &AuthMiddleware{
		codec:       codec,
		logger:      logger,
		publicPaths: publicPaths,
	}
}

// Authenticate é a fase 1: exige header "Authorization: Bearer <token>".
// Header ausente ou malformado rejeita antes de tocar o codec; qualquer
// falha de decodificação (assinatura, expiração, claims) responde o
// mesmo 401 genérico — a distinção fica apenas nos logs.
// Em caso de sucesso, a identidade é anexada ao contexto da requisição.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.isPublic(c.Request.URL.Path) {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		identidade, err := m.codec.Decode(tokenString)
		if err != nil {
			m.logger.Debug("token rejeitado",
				"path", c.Request.URL.Path,
				"motivo", err.Error(),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
			return
		}

		c.Set(IdentityContextKey, identidade)
		c.Next()
	}
}

// RequireTela é a fase 2: registrada explicitamente por rota ou por
// grupo, verifica se o cargo da identidade contém a tela exigida
// (comparação exata, case-sensitive). Rotas sem RequireTela são
// públicas após a autenticação.
func (m *AuthMiddleware) RequireTela(nome string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identidade, ok := IdentidadeFrom(c)
		if !ok {
			// Fase 1 não rodou ou a rota está na allow-list; sem
			// identidade não há como autorizar
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
			return
		}

		if !identidade.PodeAcessar(nome) {
			m.logger.Info("acesso negado",
				"username", identidade.Username,
				"cargo", identidade.Cargo.Nome,
				"tela", nome,
				"path", c.Request.URL.Path,
			)
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c, nome))
			return
		}

		c.Next()
	}
}

// IdentidadeFrom extrai a identidade autenticada do contexto da requisição
func IdentidadeFrom(c *gin.Context) (*entities.Identidade, bool) {
	v, exists := c.Get(IdentityContextKey)
	if !exists {
		return nil, false
	}
	identidade, ok := v.(*entities.Identidade)
	return identidade, ok
}

// isPublic verifica se o caminho está na allow-list de rotas públicas
func (m *AuthMiddleware) isPublic(path string) bool {
	for _, p := range m.publicPaths {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}
