// Package token implementa o codec de tokens de sessão: uma Identidade
// completa (incluindo a árvore cargo/tela/permissão) é embutida como claim
// em um JWT assinado com chave simétrica. O servidor não guarda sessão:
// a validade é determinada apenas pela assinatura e pelo exp. Alterações
// de cargo feitas após a emissão só aparecem quando o token expira e um
// novo é emitido.
package token

import (
	goerrors "errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hotelges/hotelges-backend/internal/domain/entities"
	"github.com/hotelges/hotelges-backend/internal/domain/errors"
	"github.com/hotelges/hotelges-backend/internal/domain/ports"
)

// identidadeClaims embute a identidade como claim estruturada ao lado
// das claims registradas (sub, iat, exp)
type identidadeClaims struct {
	jwt.RegisteredClaims
	Identidade *entities.Identidade `json:"identidade"`
}

// JWTCodec implementa ports.TokenCodec usando HS256.
// A chave é carregada uma vez na inicialização do processo e tratada
// como somente-leitura; rotacioná-la invalida todos os tokens emitidos.
type JWTCodec struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewJWTCodec cria um novo codec com a chave e o prazo configurados
func NewJWTCodec(secret string, expiry time.Duration) ports.TokenCodec {
	return &JWTCodec{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}
}

// Encode serializa a identidade em um token assinado com
// iat = agora e exp = agora + prazo configurado
func (c *JWTCodec) Encode(identidade *entities.Identidade) (string, error) {
	if identidade == nil || identidade.Username == "" {
		return "", errors.ErrTokenMalformado
	}

	agora := c.now()
	claims := identidadeClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identidade.Username,
			IssuedAt:  jwt.NewNumericDate(agora),
			ExpiresAt: jwt.NewNumericDate(agora.Add(c.expiry)),
		},
		Identidade: identidade,
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Decode valida assinatura e expiração e rematerializa a Identidade
// embutida no momento da emissão (nunca rebuscada da fonte de verdade).
// Erros: ErrTokenExpirado, ErrAssinaturaInvalida, ErrTokenMalformado.
func (c *JWTCodec) Decode(tokenString string) (*entities.Identidade, error) {
	claims := &identidadeClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		switch {
		case goerrors.Is(err, jwt.ErrTokenExpired):
			return nil, errors.ErrTokenExpirado
		case goerrors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, errors.ErrAssinaturaInvalida
		default:
			return nil, errors.ErrTokenMalformado
		}
	}

	// Claims presentes mas sem a identidade completa não produzem
	// uma Identidade parcial
	if claims.Identidade == nil || claims.Identidade.Username == "" {
		return nil, errors.ErrTokenMalformado
	}

	return claims.Identidade, nil
}
