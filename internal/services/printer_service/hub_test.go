package printer_service

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/iwtcode/flashforgeService/internal/domain/models"
	"github.com/stretchr/testify/require"
)

// stubSource отдает заранее сформированный снапшот и считает вызовы.
type stubSource struct {
	mu    sync.Mutex
	calls int
}

func (s *stubSource) Assemble(ip string) *models.Snapshot {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	snapshot := models.NewSnapshot(ip)
	snapshot.Timestamp = time.Now().UTC()
	return snapshot
}

func (s *stubSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// blockingSource имитирует медленный принтер: каждая сборка висит, пока не
// закрыт канал release.
type blockingSource struct {
	mu      sync.Mutex
	calls   int
	release chan struct{}
}

func newBlockingSource() *blockingSource {
	return &blockingSource{release: make(chan struct{})}
}

func (s *blockingSource) Assemble(ip string) *models.Snapshot {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	<-s.release

	snapshot := models.NewSnapshot(ip)
	snapshot.Timestamp = time.Now().UTC()
	return snapshot
}

func (s *blockingSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// stubSubscriber накапливает полученные сообщения; failSend имитирует
// мертвый транспорт.
type stubSubscriber struct {
	key      string
	failSend bool

	mu       sync.Mutex
	messages []models.PushMessage
}

func (s *stubSubscriber) Key() string { return s.key }

func (s *stubSubscriber) Send(msg models.PushMessage) error {
	if s.failSend {
		return errors.New("соединение закрыто")
	}
	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()
	return nil
}

func (s *stubSubscriber) received() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

func newTestHub(source SnapshotSource) *Hub {
	return NewHub(source, nil, nil, testLogger(), 500*time.Millisecond, 5)
}

func (h *Hub) entryInterval(t *testing.T, ip string) time.Duration {
	t.Helper()
	h.mu.Lock()
	defer h.mu.Unlock()
	entry, ok := h.entries[ip]
	require.True(t, ok, "Запись для %s должна существовать", ip)
	return entry.interval
}

func (h *Hub) entryCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

func TestSubscribeClampsInterval(t *testing.T) {
	h := newTestHub(&stubSource{})
	defer h.Shutdown()

	effective := h.Subscribe("192.168.1.50", 100*time.Millisecond, &stubSubscriber{key: "a"})
	require.Equal(t, 500*time.Millisecond, effective, "Интервал ниже минимума должен подниматься до нижней границы")
}

func TestSubscribeTightensIntervalOnly(t *testing.T) {
	h := newTestHub(&stubSource{})
	defer h.Shutdown()

	first := h.Subscribe("192.168.1.50", 5*time.Second, &stubSubscriber{key: "a"})
	require.Equal(t, 5*time.Second, first)

	// Более быстрый наблюдатель уплотняет опрос
	second := h.Subscribe("192.168.1.50", 2*time.Second, &stubSubscriber{key: "b"})
	require.Equal(t, 2*time.Second, second)
	require.Equal(t, 2*time.Second, h.entryInterval(t, "192.168.1.50"))

	// Более медленный - нет
	third := h.Subscribe("192.168.1.50", 10*time.Second, &stubSubscriber{key: "c"})
	require.Equal(t, 2*time.Second, third)
	require.Equal(t, 2*time.Second, h.entryInterval(t, "192.168.1.50"))
}

func TestIntervalNotLoosenedAfterFastObserverLeaves(t *testing.T) {
	h := newTestHub(&stubSource{})
	defer h.Shutdown()

	slow := &stubSubscriber{key: "slow"}
	fast := &stubSubscriber{key: "fast"}

	h.Subscribe("192.168.1.50", 5*time.Second, slow)
	h.Subscribe("192.168.1.50", time.Second, fast)
	require.Equal(t, time.Second, h.entryInterval(t, "192.168.1.50"))

	h.Unsubscribe("192.168.1.50", fast)
	require.Equal(t, time.Second, h.entryInterval(t, "192.168.1.50"), "Уход быстрого наблюдателя не ослабляет интервал")
}

func TestUnsubscribeLastObserverRemovesEntry(t *testing.T) {
	h := newTestHub(&stubSource{})
	defer h.Shutdown()

	sub := &stubSubscriber{key: "a"}
	h.Subscribe("192.168.1.50", time.Second, sub)
	require.Equal(t, 1, h.entryCount())

	h.Unsubscribe("192.168.1.50", sub)
	require.Equal(t, 0, h.entryCount(), "Снятие последнего наблюдателя удаляет запись")

	// Идемпотентность: повторное снятие и снятие с несуществующей записи безвредны
	h.Unsubscribe("192.168.1.50", sub)
	h.Unsubscribe("10.0.0.1", sub)
	require.Equal(t, 0, h.entryCount())
}

func TestDisconnectRemovesObserverEverywhere(t *testing.T) {
	h := newTestHub(&stubSource{})
	defer h.Shutdown()

	shared := &stubSubscriber{key: "shared"}
	other := &stubSubscriber{key: "other"}

	h.Subscribe("192.168.1.50", time.Second, shared)
	h.Subscribe("192.168.1.51", time.Second, shared)
	h.Subscribe("192.168.1.51", time.Second, other)
	require.Equal(t, 2, h.entryCount())

	h.Disconnect(shared)

	// Первая запись опустела и удалена, вторая живет за счет other
	require.Equal(t, 1, h.entryCount())
	require.Equal(t, time.Second, h.entryInterval(t, "192.168.1.51"))
}

func TestPollDeliversSnapshots(t *testing.T) {
	source := &stubSource{}
	h := newTestHub(source)
	defer h.Shutdown()

	sub := &stubSubscriber{key: "a"}
	h.Subscribe("192.168.1.50", 500*time.Millisecond, sub)

	require.Eventually(t, func() bool {
		return sub.received() >= 2
	}, 3*time.Second, 50*time.Millisecond, "Наблюдатель должен получать снапшоты по тикам")

	sub.mu.Lock()
	msg := sub.messages[0]
	sub.mu.Unlock()
	require.Equal(t, models.WSTypeSnapshot, msg.Type)
	require.Equal(t, "192.168.1.50", msg.IP)
	require.NotNil(t, msg.Data)
}

func TestDeadSubscriberSilentlyRemoved(t *testing.T) {
	source := &stubSource{}
	h := newTestHub(source)
	defer h.Shutdown()

	alive := &stubSubscriber{key: "alive"}
	dead := &stubSubscriber{key: "dead", failSend: true}

	h.Subscribe("192.168.1.50", 500*time.Millisecond, alive)
	h.Subscribe("192.168.1.50", 500*time.Millisecond, dead)

	require.Eventually(t, func() bool {
		h.mu.Lock()
		defer h.mu.Unlock()
		entry, ok := h.entries["192.168.1.50"]
		if !ok {
			return false
		}
		_, present := entry.subscribers["dead"]
		return !present && len(entry.subscribers) == 1
	}, 3*time.Second, 50*time.Millisecond, "Мертвый наблюдатель должен быть молча снят с записи")

	require.Eventually(t, func() bool {
		return alive.received() >= 1
	}, 3*time.Second, 50*time.Millisecond, "Живой наблюдатель продолжает получать снапшоты")
}

func TestSlowAssemblySkipsTicks(t *testing.T) {
	source := newBlockingSource()
	h := newTestHub(source)
	defer h.Shutdown()

	sub := &stubSubscriber{key: "a"}
	h.Subscribe("192.168.1.50", 500*time.Millisecond, sub)

	require.Eventually(t, func() bool {
		return source.callCount() == 1
	}, 3*time.Second, 50*time.Millisecond, "Первый тик должен запустить сборку")

	// За это время проходит еще несколько тиков; пока сборка висит,
	// каждый из них пропускается, а не ставится в очередь.
	time.Sleep(1800 * time.Millisecond)
	require.Equal(t, 1, source.callCount(), "На один принтер одновременно идет не более одной сборки")

	close(source.release)

	require.Eventually(t, func() bool {
		return source.callCount() >= 2
	}, 3*time.Second, 50*time.Millisecond, "После завершения сборки опрос продолжается")
}

func TestInFlightResultDiscardedAfterLastUnsubscribe(t *testing.T) {
	source := newBlockingSource()
	h := newTestHub(source)
	defer h.Shutdown()

	sub := &stubSubscriber{key: "a"}
	h.Subscribe("192.168.1.50", 500*time.Millisecond, sub)

	require.Eventually(t, func() bool {
		return source.callCount() == 1
	}, 3*time.Second, 50*time.Millisecond, "Сборка должна быть в полете")

	// Последний наблюдатель уходит, пока сборка висит
	h.Unsubscribe("192.168.1.50", sub)
	require.Equal(t, 0, h.entryCount())

	close(source.release)

	// Завершившейся сборке некому доставляться: результат отбрасывается
	time.Sleep(300 * time.Millisecond)
	require.Equal(t, 0, sub.received(), "Результат сборки после ухода последнего наблюдателя не рассылается")
}

func TestRequestOnceDoesNotTouchEntries(t *testing.T) {
	source := &stubSource{}
	h := newTestHub(source)
	defer h.Shutdown()

	snapshot := h.RequestOnce("192.168.1.50")
	require.NotNil(t, snapshot)
	require.Equal(t, "192.168.1.50", snapshot.Address)
	require.Equal(t, 0, h.entryCount(), "Разовый запрос не создает записей опроса")
	require.Equal(t, 1, source.callCount())
}

func TestHistoryWindowBounded(t *testing.T) {
	source := &stubSource{}
	h := newTestHub(source) // окно в 5 снапшотов

	for i := 0; i < 8; i++ {
		h.RequestOnce("192.168.1.50")
	}

	window := h.History("192.168.1.50")
	require.Len(t, window, 5, "Окно истории ограничено заданным размером")
}

func TestHistorySurvivesEntryRemoval(t *testing.T) {
	source := &stubSource{}
	h := newTestHub(source)
	defer h.Shutdown()

	sub := &stubSubscriber{key: "a"}
	h.Subscribe("192.168.1.50", 500*time.Millisecond, sub)

	require.Eventually(t, func() bool {
		return len(h.History("192.168.1.50")) >= 1
	}, 3*time.Second, 50*time.Millisecond)

	h.Unsubscribe("192.168.1.50", sub)
	require.NotEmpty(t, h.History("192.168.1.50"), "История доступна и после остановки опроса")
}

func TestShutdownStopsAllLoops(t *testing.T) {
	source := &stubSource{}
	h := newTestHub(source)

	h.Subscribe("192.168.1.50", 500*time.Millisecond, &stubSubscriber{key: "a"})
	h.Subscribe("192.168.1.51", 500*time.Millisecond, &stubSubscriber{key: "b"})
	require.Equal(t, 2, h.entryCount())

	h.Shutdown()
	require.Equal(t, 0, h.entryCount())

	calls := source.callCount()
	time.Sleep(1200 * time.Millisecond)
	require.Equal(t, calls, source.callCount(), "После остановки хаба опрос не продолжается")
}

func TestHistoryReturnsCopy(t *testing.T) {
	source := &stubSource{}
	h := newTestHub(source)

	h.RequestOnce("192.168.1.50")

	window := h.History("192.168.1.50")
	require.Len(t, window, 1)
	window[0] = nil

	again := h.History("192.168.1.50")
	require.NotNil(t, again[0], "History должен возвращать копию окна")
}
