package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hotelges/hotelges-backend/internal/domain/entities"
	"github.com/hotelges/hotelges-backend/internal/domain/ports"
	"github.com/hotelges/hotelges-backend/internal/infrastructure/token"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...any)  {}
func (nopLogger) Error(msg string, args ...any) {}
func (nopLogger) Debug(msg string, args ...any) {}
func (nopLogger) Warn(msg string, args ...any)  {}
func (l nopLogger) With(args ...any) ports.Logger {
	return l
}

func identidadeRecepcionista() *entities.Identidade {
	return &entities.Identidade{
		FuncionarioID: 1,
		ContaID:       1,
		Username:      "maria",
		PessoaID:      1,
		NomeCompleto:  "Maria Souza",
		DataAdmissao:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Cargo: entities.Cargo{
			ID:   1,
			Nome: "Recepcionista",
			Telas: []entities.Tela{
				{ID: 10, Nome: "CADASTRO", Permissoes: []entities.Permissao{}},
			},
		},
	}
}

func setupAuthRouter(t *testing.T, codec ports.TokenCodec) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authMw := NewAuthMiddleware(codec, nopLogger{}, []string{
		"/health",
		"/api/v1/auth/login",
	})

	router := gin.New()
	router.Use(authMw.Authenticate())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/api/v1/pessoas", authMw.RequireTela("CADASTRO"), func(c *gin.Context) {
		identidade, _ := IdentidadeFrom(c)
		c.JSON(http.StatusOK, gin.H{"username": identidade.Username})
	})
	router.GET("/api/v1/relatorios/financeiro", authMw.RequireTela("FINANCEIRO"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})

	return router
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	codec := token.NewJWTCodec("segredo-de-teste", time.Hour)
	router := setupAuthRouter(t, codec)

	tokenValido, err := codec.Encode(identidadeRecepcionista())
	if err != nil {
		t.Fatalf("falha ao emitir token: %v", err)
	}

	t.Run("rota pública dispensa token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/health", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("esperava status 200, obteve %d", w.Code)
		}
	})

	t.Run("rejeita requisição sem header Authorization", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/pessoas", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("esperava status 401, obteve %d", w.Code)
		}
	})

	t.Run("rejeita header sem prefixo Bearer", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/pessoas", nil)
		req.Header.Set("Authorization", tokenValido)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("esperava status 401, obteve %d", w.Code)
		}
	})

	t.Run("rejeita token adulterado com o mesmo 401 genérico", func(t *testing.T) {
		sufixo := "xx"
		if strings.HasSuffix(tokenValido, sufixo) {
			sufixo = "yy"
		}
		adulterado := tokenValido[:len(tokenValido)-2] + sufixo

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/pessoas", nil)
		req.Header.Set("Authorization", "Bearer "+adulterado)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("esperava status 401, obteve %d", w.Code)
		}
	})

	t.Run("rejeita token expirado", func(t *testing.T) {
		codecExpirado := token.NewJWTCodec("segredo-de-teste", -time.Minute)
		expirado, err := codecExpirado.Encode(identidadeRecepcionista())
		if err != nil {
			t.Fatalf("falha ao emitir token: %v", err)
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/pessoas", nil)
		req.Header.Set("Authorization", "Bearer "+expirado)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("esperava status 401, obteve %d", w.Code)
		}
	})

	t.Run("aceita token válido e anexa a identidade", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/pessoas", nil)
		req.Header.Set("Authorization", "Bearer "+tokenValido)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("esperava status 200, obteve %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"username":"maria"`) {
			t.Errorf("esperava identidade no contexto, obteve %s", w.Body.String())
		}
	})
}

func TestAuthMiddleware_RequireTela(t *testing.T) {
	codec := token.NewJWTCodec("segredo-de-teste", time.Hour)
	router := setupAuthRouter(t, codec)

	tokenValido, err := codec.Encode(identidadeRecepcionista())
	if err != nil {
		t.Fatalf("falha ao emitir token: %v", err)
	}

	t.Run("autoriza tela presente no cargo", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/pessoas", nil)
		req.Header.Set("Authorization", "Bearer "+tokenValido)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("esperava status 200, obteve %d", w.Code)
		}
	})

	t.Run("nega tela ausente do cargo com 403 nomeando a tela", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/relatorios/financeiro", nil)
		req.Header.Set("Authorization", "Bearer "+tokenValido)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("esperava status 403, obteve %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"tela":"FINANCEIRO"`) {
			t.Errorf("esperava a tela negada no corpo, obteve %s", w.Body.String())
		}
	})
}
