// Package notifications transmite eventos de auditoria em tempo real
// para clientes WebSocket conectados (painel de recepção, supervisão).
package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/hotelges/hotelges-backend/internal/domain/ports"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// A autenticação já rodou no middleware; a origem é validada pelo CORS
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub mantém o conjunto de clientes conectados e distribui eventos.
// Todo acesso ao conjunto acontece na goroutine de Run, via canais;
// não há mutex nem estado compartilhado.
type Hub struct {
	clients    map[*client]bool
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	logger     ports.Logger
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// NewHub cria o hub de notificações. Chame Run em uma goroutine antes
// de aceitar conexões ou publicar eventos.
func NewHub(logger ports.Logger) *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, sendBufferSize),
		logger:     logger,
	}
}

// Run processa registros, desconexões e broadcasts até o contexto
// ser cancelado, quando todas as conexões são encerradas
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				close(c.send)
				delete(h.clients, c)
			}
			return
		case c := <-h.register:
			h.clients[c] = true
			h.logger.Debug("cliente de notificações conectado", "total", len(h.clients))
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				h.logger.Debug("cliente de notificações desconectado", "total", len(h.clients))
			}
		case message := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					// Cliente lento não pode represar o hub
					delete(h.clients, c)
					close(c.send)
				}
			}
		}
	}
}

// Publish implementa ports.Notifier. Nunca bloqueia: se o hub estiver
// saturado o evento é descartado com um log de aviso.
func (h *Hub) Publish(evento ports.Evento) {
	payload, err := json.Marshal(evento)
	if err != nil {
		h.logger.Error("falha ao serializar evento", "tipo", evento.Tipo, "error", err)
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		h.logger.Warn("evento descartado, hub saturado", "tipo", evento.Tipo)
	}
}

// Handle promove a requisição HTTP para WebSocket e registra o cliente
func (h *Hub) Handle(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("falha no upgrade websocket", "error", err)
		return
	}

	cl := &client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
	h.register <- cl

	go cl.writePump()
	go cl.readPump()
}

// readPump descarta mensagens recebidas (o canal é somente-envio) e
// detecta a desconexão do cliente
func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump envia eventos e pings periódicos ao cliente
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
