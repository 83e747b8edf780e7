package handlers

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/iwtcode/flashforgeService/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const wsWriteTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// wsSubscriber реализует непрозрачный идентификатор наблюдателя поверх
// одного websocket-соединения. Запись в соединение сериализуется мьютексом:
// в один сокет могут одновременно писать циклы опроса нескольких принтеров.
type wsSubscriber struct {
	id   string
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *wsSubscriber) Key() string {
	return s.id
}

func (s *wsSubscriber) Send(msg models.PushMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return s.conn.WriteJSON(msg)
}

// ServeWS обслуживает push-протокол наблюдателей.
// Клиент отправляет сообщения subscribe / unsubscribe / snapshot, сервер
// отвечает subscribed / unsubscribed / snapshot / error. Параметры запроса
// ?ip= и ?interval_ms= задают предварительную подписку: она оформляется
// сразу после апгрейда и сопровождается немедленным разовым снапшотом.
// Закрытие соединения снимает наблюдателя со всех принтеров.
func (h *Handler) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("WebSocket upgrade failed", "error", err)
		return
	}

	sub := &wsSubscriber{id: uuid.New().String(), conn: conn}
	logger := h.logger.WithPrefix("WS")
	logger.Info("Observer connected", "subscriber", sub.id, "remote_addr", conn.RemoteAddr())

	defer func() {
		h.usecase.Disconnect(sub)
		_ = conn.Close()
		logger.Info("Observer disconnected", "subscriber", sub.id)
	}()

	// Предварительная подписка из параметров соединения.
	if ip := c.Query("ip"); ip != "" {
		intervalMs, err := strconv.ParseInt(c.DefaultQuery("interval_ms", "5000"), 10, 64)
		if err != nil {
			intervalMs = 5000
		}
		h.handleClientMessage(sub, models.ClientMessage{
			Type:       models.WSTypeSubscribe,
			IP:         ip,
			IntervalMs: intervalMs,
		})
		h.handleClientMessage(sub, models.ClientMessage{
			Type: models.WSTypeSnapshot,
			IP:   ip,
		})
	}

	for {
		var msg models.ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("Observer read failed", "subscriber", sub.id, "error", err)
			}
			return
		}
		h.handleClientMessage(sub, msg)
	}
}

func (h *Handler) handleClientMessage(sub *wsSubscriber, msg models.ClientMessage) {
	if net.ParseIP(msg.IP) == nil {
		_ = sub.Send(models.PushMessage{
			Type:  models.WSTypeError,
			IP:    msg.IP,
			Error: "invalid printer IP '" + msg.IP + "'",
		})
		return
	}

	switch msg.Type {
	case models.WSTypeSubscribe:
		interval := time.Duration(msg.IntervalMs) * time.Millisecond
		effective := h.usecase.Subscribe(msg.IP, interval, sub)
		_ = sub.Send(models.PushMessage{
			Type:       models.WSTypeSubscribed,
			IP:         msg.IP,
			IntervalMs: effective.Milliseconds(),
		})

	case models.WSTypeUnsubscribe:
		h.usecase.Unsubscribe(msg.IP, sub)
		_ = sub.Send(models.PushMessage{
			Type: models.WSTypeUnsubscribed,
			IP:   msg.IP,
		})

	case models.WSTypeSnapshot:
		snapshot := h.usecase.GetSnapshot(msg.IP)
		_ = sub.Send(models.PushMessage{
			Type: models.WSTypeSnapshot,
			IP:   msg.IP,
			Data: snapshot,
		})

	default:
		_ = sub.Send(models.PushMessage{
			Type:  models.WSTypeError,
			IP:    msg.IP,
			Error: "unknown message type '" + msg.Type + "'",
		})
	}
}
