package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelges/hotelges-backend/internal/domain/entities"
	"github.com/hotelges/hotelges-backend/internal/domain/errors"
)

const testSecret = "chave-de-teste-nao-usar-em-producao"

func identidadeTeste() *entities.Identidade {
	return &entities.Identidade{
		FuncionarioID: 7,
		ContaID:       3,
		Username:      "maria.souza",
		PessoaID:      12,
		NomeCompleto:  "Maria de Souza",
		Email:         "maria@hotelges.com.br",
		DataAdmissao:  time.Date(2022, 3, 15, 0, 0, 0, 0, time.UTC),
		Cargo: entities.Cargo{
			ID:   2,
			Nome: "Gerente",
			Telas: []entities.Tela{
				{
					ID:   1,
					Nome: "CADASTRO",
					Permissoes: []entities.Permissao{
						{ID: 10, Codigo: "INCLUIR"},
						{ID: 11, Codigo: "EXCLUIR"},
					},
				},
				{ID: 2, Nome: "FINANCEIRO", Permissoes: []entities.Permissao{}},
			},
		},
	}
}

func TestJWTCodec_RoundTrip(t *testing.T) {
	codec := NewJWTCodec(testSecret, time.Hour)
	original := identidadeTeste()

	tokenString, err := codec.Encode(original)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	t.Run("token tem três segmentos separados por ponto", func(t *testing.T) {
		assert.Len(t, strings.Split(tokenString, "."), 3)
	})

	t.Run("decode devolve a identidade embutida na emissão", func(t *testing.T) {
		decodificada, err := codec.Decode(tokenString)
		require.NoError(t, err)
		assert.Equal(t, original, decodificada)
	})

	t.Run("árvore de cargo sobrevive ao round-trip", func(t *testing.T) {
		decodificada, err := codec.Decode(tokenString)
		require.NoError(t, err)
		require.Len(t, decodificada.Cargo.Telas, 2)
		assert.True(t, decodificada.Cargo.TemTela("CADASTRO"))
		assert.True(t, decodificada.Cargo.Telas[0].TemPermissao("EXCLUIR"))
		assert.Empty(t, decodificada.Cargo.Telas[1].Permissoes)
	})
}

func TestJWTCodec_Expiracao(t *testing.T) {
	// Prazo negativo emite um token já expirado com assinatura válida
	codec := NewJWTCodec(testSecret, -time.Minute)

	tokenString, err := codec.Encode(identidadeTeste())
	require.NoError(t, err)

	_, err = codec.Decode(tokenString)
	assert.ErrorIs(t, err, errors.ErrTokenExpirado)
}

func TestJWTCodec_AssinaturaAdulterada(t *testing.T) {
	codec := NewJWTCodec(testSecret, time.Hour)

	tokenString, err := codec.Encode(identidadeTeste())
	require.NoError(t, err)

	t.Run("byte alterado no segmento de assinatura", func(t *testing.T) {
		partes := strings.Split(tokenString, ".")
		require.Len(t, partes, 3)

		assinatura := []byte(partes[2])
		if assinatura[0] == 'A' {
			assinatura[0] = 'B'
		} else {
			assinatura[0] = 'A'
		}
		adulterado := partes[0] + "." + partes[1] + "." + string(assinatura)

		_, err := codec.Decode(adulterado)
		assert.ErrorIs(t, err, errors.ErrAssinaturaInvalida)
	})

	t.Run("token assinado com outra chave", func(t *testing.T) {
		outro := NewJWTCodec("outra-chave-completamente-diferente", time.Hour)
		tokenString, err := outro.Encode(identidadeTeste())
		require.NoError(t, err)

		_, err = codec.Decode(tokenString)
		assert.ErrorIs(t, err, errors.ErrAssinaturaInvalida)
	})
}

func TestJWTCodec_TokenMalformado(t *testing.T) {
	codec := NewJWTCodec(testSecret, time.Hour)

	t.Run("string que não é um token", func(t *testing.T) {
		_, err := codec.Decode("isto.nao.e-um-token")
		assert.ErrorIs(t, err, errors.ErrTokenMalformado)
	})

	t.Run("string vazia", func(t *testing.T) {
		_, err := codec.Decode("")
		assert.ErrorIs(t, err, errors.ErrTokenMalformado)
	})

	t.Run("token válido porém sem a claim de identidade", func(t *testing.T) {
		// Assinado com a mesma chave, mas carregando apenas claims registradas
		semIdentidade := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "maria.souza",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		assinado, err := semIdentidade.SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = codec.Decode(assinado)
		assert.ErrorIs(t, err, errors.ErrTokenMalformado)
	})

	t.Run("encode recusa identidade sem username", func(t *testing.T) {
		_, err := codec.Encode(&entities.Identidade{})
		assert.ErrorIs(t, err, errors.ErrTokenMalformado)
	})
}
