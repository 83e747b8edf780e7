package printer_service

import (
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/iwtcode/flashforgeService/internal/domain/entities"
	"github.com/iwtcode/flashforgeService/internal/domain/models"
	"github.com/iwtcode/flashforgeService/internal/interfaces"
	"github.com/iwtcode/flashforgeService/internal/middleware/logging"
	"gorm.io/gorm"
)

// checkTimeout - короткий таймаут для проверки доступности принтера.
const checkTimeout = 2 * time.Second

// RegistryManager ведет пул зарегистрированных принтеров и их записи в БД.
type RegistryManager struct {
	mu     sync.RWMutex
	pool   map[string]*models.PrinterSession
	port   string
	dbRepo interfaces.PrinterRepository
	logger *logging.Logger
}

func NewRegistryManager(port string, dbRepo interfaces.PrinterRepository, logger *logging.Logger) *RegistryManager {
	return &RegistryManager{
		pool:   make(map[string]*models.PrinterSession),
		port:   port,
		dbRepo: dbRepo,
		logger: logger.WithPrefix("REGISTRY"),
	}
}

func (rm *RegistryManager) RegisterPrinter(req models.RegisterPrinterRequest) (*models.PrinterSession, error) {
	if net.ParseIP(req.IP) == nil {
		return nil, fmt.Errorf("неверный IP-адрес принтера: '%s'", req.IP)
	}

	existing, err := rm.dbRepo.GetByIP(req.IP)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("ошибка при проверке принтера в БД: %w", err)
	}
	if existing != nil {
		rm.mu.RLock()
		_, exists := rm.pool[existing.SessionID]
		rm.mu.RUnlock()
		if exists {
			return nil, fmt.Errorf("принтер '%s' уже зарегистрирован с SessionID: %s", req.IP, existing.SessionID)
		}
		rm.logger.Warn("Printer exists in DB but not in pool. Deleting old DB record and creating a new session.", "ip", req.IP)
		_ = rm.dbRepo.Delete(existing.SessionID)
	}

	if err := rm.checkPrinterConnection(req.IP); err != nil {
		return nil, fmt.Errorf("первичная проверка подключения провалена: %w", err)
	}

	sessionID := uuid.New().String()
	printerToSave := &entities.Printer{
		SessionID: sessionID,
		IP:        req.IP,
		Name:      req.Name,
		Status:    entities.StatusRegistered,
	}
	if err := rm.dbRepo.Create(printerToSave); err != nil {
		return nil, fmt.Errorf("не удалось сохранить принтер %s в БД: %w", sessionID, err)
	}

	session := &models.PrinterSession{
		SessionID: sessionID,
		IP:        req.IP,
		Name:      req.Name,
		CreatedAt: time.Now(),
		LastUsed:  time.Now(),
		UseCount:  1,
		IsHealthy: true,
	}

	rm.mu.Lock()
	defer rm.mu.Unlock()
	rm.pool[sessionID] = session

	rm.logger.Info("Printer registered successfully", "sessionID", sessionID, "ip", req.IP)
	return session, nil
}

func (rm *RegistryManager) RestorePrinter(printer entities.Printer) (*models.PrinterSession, error) {
	session := &models.PrinterSession{
		SessionID: printer.SessionID,
		IP:        printer.IP,
		Name:      printer.Name,
		CreatedAt: printer.CreatedAt,
		LastUsed:  time.Now(),
		IsHealthy: false, // По умолчанию нездоровый, пока не проверим
	}

	err := rm.checkPrinterConnection(printer.IP)
	session.IsHealthy = (err == nil)

	rm.mu.Lock()
	defer rm.mu.Unlock()
	rm.pool[printer.SessionID] = session

	return session, nil
}

func (rm *RegistryManager) GetAllPrinters() []*models.PrinterSession {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	sessions := make([]*models.PrinterSession, 0, len(rm.pool))
	for _, session := range rm.pool {
		sessions = append(sessions, session)
	}
	return sessions
}

func (rm *RegistryManager) DeletePrinter(sessionID string) error {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	if _, exists := rm.pool[sessionID]; !exists {
		err := rm.dbRepo.Delete(sessionID)
		if err != nil && err != gorm.ErrRecordNotFound {
			return fmt.Errorf("ошибка удаления сессии '%s' из БД: %w", sessionID, err)
		}
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("сессия '%s' не найдена ни в активном пуле, ни в БД", sessionID)
		}
		rm.logger.Info("Session (not in pool) successfully deleted from DB.", "sessionID", sessionID)
		return nil
	}

	delete(rm.pool, sessionID)

	if err := rm.dbRepo.Delete(sessionID); err != nil && err != gorm.ErrRecordNotFound {
		return fmt.Errorf("ошибка удаления сессии '%s' из БД: %w", sessionID, err)
	}

	rm.logger.Info("Session deleted successfully.", "sessionID", sessionID)
	return nil
}

func (rm *RegistryManager) CheckPrinter(sessionID string) (*models.PrinterSession, error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	session, exists := rm.pool[sessionID]
	if !exists {
		return nil, fmt.Errorf("сессия '%s' не найдена", sessionID)
	}

	previousHealth := session.IsHealthy
	err := rm.checkPrinterConnection(session.IP)
	session.IsHealthy = (err == nil)
	session.LastUsed = time.Now()
	session.UseCount++

	if previousHealth != session.IsHealthy {
		rm.logger.Info("Printer health status changed", "sessionID", sessionID, "from", previousHealth, "to", session.IsHealthy)
	}

	return session, err
}

// checkPrinterConnection проверяет, что управляющий порт принтера принимает
// TCP-соединения. Команды не отправляются.
func (rm *RegistryManager) checkPrinterConnection(ip string) error {
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(ip, rm.port), checkTimeout)
	if err != nil {
		return &NetworkError{Err: err}
	}
	return conn.Close()
}
