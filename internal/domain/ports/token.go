package ports

import "github.com/hotelges/hotelges-backend/internal/domain/entities"

// TokenCodec serializa uma Identidade em um token assinado com prazo
// de validade, e a desserializa de volta validando assinatura e expiração.
// Sem estado: nenhuma sessão é guardada no servidor; a validade do token
// é determinada inteiramente pela assinatura e pelo exp.
type TokenCodec interface {
	Encode(identidade *entities.Identidade) (string, error)
	Decode(token string) (*entities.Identidade, error)
}
