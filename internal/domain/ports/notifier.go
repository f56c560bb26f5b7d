package ports

import "time"

// Evento é uma notificação de auditoria transmitida aos clientes conectados
type Evento struct {
	Tipo     string    `json:"tipo"`
	Mensagem string    `json:"mensagem"`
	Autor    string    `json:"autor,omitempty"`
	Quando   time.Time `json:"quando"`
}

// Notifier publica eventos de auditoria (logins, alterações de cadastro)
// para interessados. Publicação nunca bloqueia o fluxo da requisição.
type Notifier interface {
	Publish(evento Evento)
}
