package printer_service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/iwtcode/flashforgeService/internal/domain/entities"
	"github.com/iwtcode/flashforgeService/internal/domain/models"
	"github.com/iwtcode/flashforgeService/internal/interfaces"
	"github.com/iwtcode/flashforgeService/internal/middleware/logging"
	"gorm.io/gorm"
)

// SnapshotSource выдает снапшоты для цикла опроса.
type SnapshotSource interface {
	Assemble(ip string) *models.Snapshot
}

// hubEntry - запись хаба по одному принтеру. Инвариант: запись существует
// тогда и только тогда, когда множество ее наблюдателей непусто.
type hubEntry struct {
	ip          string
	interval    time.Duration
	subscribers map[string]interfaces.Subscriber
	ticker      *time.Ticker
	done        chan struct{}
	inFlight    atomic.Bool
}

// Hub управляет циклами опроса принтеров и рассылает снапшоты наблюдателям.
// Реестр записей и множества наблюдателей мутируются только под общим
// мьютексом; на каждый принтер одновременно выполняется не более одной
// сборки снапшота (single-flight).
type Hub struct {
	mu          sync.Mutex
	entries     map[string]*hubEntry
	history     map[string][]*models.Snapshot
	source      SnapshotSource
	producer    interfaces.KafkaService
	repo        interfaces.PrinterRepository
	logger      *logging.Logger
	minInterval time.Duration
	historySize int
}

// NewHub создает хаб подписок. repo может быть nil - тогда статус
// наблюдения в реестре не отслеживается.
func NewHub(source SnapshotSource, producer interfaces.KafkaService, repo interfaces.PrinterRepository, logger *logging.Logger, minInterval time.Duration, historySize int) *Hub {
	if minInterval <= 0 {
		minInterval = 500 * time.Millisecond
	}
	if historySize <= 0 {
		historySize = 30
	}
	return &Hub{
		entries:     make(map[string]*hubEntry),
		history:     make(map[string][]*models.Snapshot),
		source:      source,
		producer:    producer,
		repo:        repo,
		logger:      logger.WithPrefix("HUB"),
		minInterval: minInterval,
		historySize: historySize,
	}
}

// Subscribe регистрирует наблюдателя на принтере. Для первого наблюдателя
// создается запись и запускается цикл опроса; для последующих интервал
// записи может только уменьшаться (до нижней границы minInterval). Интервал
// не ослабляется автоматически при уходе быстрого наблюдателя. Возвращает
// действующий интервал записи.
func (h *Hub) Subscribe(ip string, interval time.Duration, sub interfaces.Subscriber) time.Duration {
	if interval < h.minInterval {
		interval = h.minInterval
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	entry, exists := h.entries[ip]
	if !exists {
		entry = &hubEntry{
			ip:          ip,
			interval:    interval,
			subscribers: map[string]interfaces.Subscriber{sub.Key(): sub},
		}
		h.entries[ip] = entry
		h.startLoopUnsafe(entry)
		h.markObservedUnsafe(ip, int(interval.Milliseconds()))
		h.logger.Info("Polling entry created", "ip", ip, "interval", interval)
		return entry.interval
	}

	entry.subscribers[sub.Key()] = sub
	if interval < entry.interval {
		h.stopLoopUnsafe(entry)
		entry.interval = interval
		h.startLoopUnsafe(entry)
		h.markObservedUnsafe(ip, int(interval.Milliseconds()))
		h.logger.Info("Polling entry retuned", "ip", ip, "interval", interval)
	}
	return entry.interval
}

// Unsubscribe убирает наблюдателя с принтера. Снятие последнего наблюдателя
// останавливает опрос и удаляет запись. Операция идемпотентна: повторное
// снятие или снятие с несуществующей записи - безвредный no-op.
func (h *Hub) Unsubscribe(ip string, sub interfaces.Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	entry, exists := h.entries[ip]
	if !exists {
		return
	}
	h.removeSubscriberUnsafe(entry, sub.Key())
}

// Disconnect убирает наблюдателя со всех принтеров, на которых он был
// зарегистрирован, с тем же правилом очистки опустевших записей.
func (h *Hub) Disconnect(sub interfaces.Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := sub.Key()
	for _, entry := range h.entries {
		h.removeSubscriberUnsafe(entry, key)
	}
}

// RequestOnce немедленно собирает снапшот принтера независимо от активных
// записей опроса; состояние хаба не меняется.
func (h *Hub) RequestOnce(ip string) *models.Snapshot {
	snapshot := h.source.Assemble(ip)

	h.mu.Lock()
	h.appendHistoryUnsafe(ip, snapshot)
	h.mu.Unlock()

	return snapshot
}

// History возвращает ограниченное окно последних снапшотов принтера.
func (h *Hub) History(ip string) []*models.Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()

	window := h.history[ip]
	out := make([]*models.Snapshot, len(window))
	copy(out, window)
	return out
}

// Shutdown останавливает все циклы опроса. Наблюдатели не уведомляются:
// их соединения закрывает транспортный слой.
func (h *Hub) Shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ip, entry := range h.entries {
		h.stopLoopUnsafe(entry)
		delete(h.entries, ip)
	}
	h.logger.Info("Subscription hub stopped")
}

// --- внутренние операции (вызываются только под h.mu) ---

func (h *Hub) removeSubscriberUnsafe(entry *hubEntry, key string) {
	if _, present := entry.subscribers[key]; !present {
		return
	}
	delete(entry.subscribers, key)

	if len(entry.subscribers) == 0 {
		h.stopLoopUnsafe(entry)
		delete(h.entries, entry.ip)
		h.markRegisteredUnsafe(entry.ip)
		h.logger.Info("Polling entry removed", "ip", entry.ip)
	}
}

func (h *Hub) startLoopUnsafe(entry *hubEntry) {
	entry.ticker = time.NewTicker(entry.interval)
	entry.done = make(chan struct{})
	go h.loop(entry, entry.ticker, entry.done)
}

func (h *Hub) stopLoopUnsafe(entry *hubEntry) {
	entry.ticker.Stop()
	close(entry.done)
}

func (h *Hub) loop(entry *hubEntry, ticker *time.Ticker, done chan struct{}) {
	h.logger.Debug("Polling goroutine started", "ip", entry.ip, "interval", entry.interval)
	defer h.logger.Debug("Polling goroutine stopped", "ip", entry.ip)

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			// Single-flight: пока предыдущая сборка не завершилась,
			// новые тики пропускаются, чтобы на один принтер не
			// копились параллельные транзакции.
			if !entry.inFlight.CompareAndSwap(false, true) {
				h.logger.Debug("Previous assembly still in flight, tick skipped", "ip", entry.ip)
				continue
			}
			go h.poll(entry)
		}
	}
}

func (h *Hub) poll(entry *hubEntry) {
	defer entry.inFlight.Store(false)
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("Polling tick failed unexpectedly", "ip", entry.ip, "panic", r)
			h.broadcast(entry.ip, models.PushMessage{
				Type:  models.WSTypeError,
				IP:    entry.ip,
				Error: fmt.Sprint(r),
			})
		}
	}()

	snapshot := h.source.Assemble(entry.ip)
	h.deliver(entry.ip, snapshot)
}

func (h *Hub) deliver(ip string, snapshot *models.Snapshot) {
	h.mu.Lock()
	entry, exists := h.entries[ip]
	if !exists {
		// Последний наблюдатель ушел, пока сборка была в полете:
		// результат отбрасывается.
		h.mu.Unlock()
		h.logger.Debug("Entry gone, snapshot discarded", "ip", ip)
		return
	}
	h.appendHistoryUnsafe(ip, snapshot)
	subscribers := h.copySubscribersUnsafe(entry)
	h.mu.Unlock()

	msg := models.PushMessage{Type: models.WSTypeSnapshot, IP: ip, Data: snapshot}
	for _, sub := range subscribers {
		if err := sub.Send(msg); err != nil {
			// Мертвый транспорт - не ошибка тика: наблюдатель
			// молча снимается с записи.
			h.logger.Warn("Subscriber send failed, removing", "ip", ip, "subscriber", sub.Key(), "error", err)
			h.Unsubscribe(ip, sub)
		}
	}

	h.produce(ip, snapshot)
}

func (h *Hub) broadcast(ip string, msg models.PushMessage) {
	h.mu.Lock()
	entry, exists := h.entries[ip]
	if !exists {
		h.mu.Unlock()
		return
	}
	subscribers := h.copySubscribersUnsafe(entry)
	h.mu.Unlock()

	for _, sub := range subscribers {
		if err := sub.Send(msg); err != nil {
			h.Unsubscribe(ip, sub)
		}
	}
}

func (h *Hub) copySubscribersUnsafe(entry *hubEntry) []interfaces.Subscriber {
	subs := make([]interfaces.Subscriber, 0, len(entry.subscribers))
	for _, sub := range entry.subscribers {
		subs = append(subs, sub)
	}
	return subs
}

func (h *Hub) appendHistoryUnsafe(ip string, snapshot *models.Snapshot) {
	window := append(h.history[ip], snapshot)
	if len(window) > h.historySize {
		window = window[len(window)-h.historySize:]
	}
	h.history[ip] = window
}

func (h *Hub) produce(ip string, snapshot *models.Snapshot) {
	if h.producer == nil {
		return
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		h.logger.Error("Failed to serialize snapshot for Kafka", "ip", ip, "error", err)
		return
	}
	if err := h.producer.Produce(context.Background(), []byte(ip), payload); err != nil {
		h.logger.Error("Failed to send snapshot to Kafka", "ip", ip, "error", err)
	}
}

func (h *Hub) markObservedUnsafe(ip string, intervalMs int) {
	if h.repo == nil {
		return
	}
	if err := h.repo.UpdateObservedState(ip, entities.StatusObserved, intervalMs); err != nil && err != gorm.ErrRecordNotFound {
		h.logger.Warn("Failed to update printer status in DB", "ip", ip, "error", err)
	}
}

func (h *Hub) markRegisteredUnsafe(ip string) {
	if h.repo == nil {
		return
	}
	if err := h.repo.UpdateObservedState(ip, entities.StatusRegistered, 0); err != nil && err != gorm.ErrRecordNotFound {
		h.logger.Warn("Failed to update printer status in DB", "ip", ip, "error", err)
	}
}
