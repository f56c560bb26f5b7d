package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader é o header usado para propagar o id da requisição
const RequestIDHeader = "X-Request-ID"

// RequestID garante que toda requisição carregue um id único,
// reaproveitando o id enviado pelo cliente quando presente
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
