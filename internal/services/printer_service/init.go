package printer_service

import (
	"time"

	"github.com/iwtcode/flashforgeService/internal/config"
	"github.com/iwtcode/flashforgeService/internal/domain/entities"
	"github.com/iwtcode/flashforgeService/internal/domain/models"
	"github.com/iwtcode/flashforgeService/internal/interfaces"
	"github.com/iwtcode/flashforgeService/internal/middleware/logging"
)

type printerService struct {
	registry  *RegistryManager
	hub       *Hub
	assembler *Assembler
}

func NewPrinterService(cfg *config.AppConfig, repo interfaces.PrinterRepository, producer interfaces.KafkaService, logger *logging.Logger) interfaces.PrinterService {
	assembler := NewAssembler(cfg.Printer.Port, time.Duration(cfg.Printer.TimeoutMs)*time.Millisecond, logger)
	hub := NewHub(
		assembler,
		producer,
		repo,
		logger,
		time.Duration(cfg.Printer.MinIntervalMs)*time.Millisecond,
		cfg.Printer.HistorySize,
	)
	registry := NewRegistryManager(cfg.Printer.Port, repo, logger)

	return &printerService{
		registry:  registry,
		hub:       hub,
		assembler: assembler,
	}
}

// --- Реализация методов интерфейса PrinterService ---

func (s *printerService) RegisterPrinter(req models.RegisterPrinterRequest) (*models.PrinterSession, error) {
	return s.registry.RegisterPrinter(req)
}

func (s *printerService) RestorePrinter(printer entities.Printer) (*models.PrinterSession, error) {
	return s.registry.RestorePrinter(printer)
}

func (s *printerService) GetAllPrinters() []*models.PrinterSession {
	return s.registry.GetAllPrinters()
}

func (s *printerService) DeletePrinter(sessionID string) error {
	return s.registry.DeletePrinter(sessionID)
}

func (s *printerService) CheckPrinter(sessionID string) (*models.PrinterSession, error) {
	return s.registry.CheckPrinter(sessionID)
}

func (s *printerService) Subscribe(ip string, interval time.Duration, sub interfaces.Subscriber) time.Duration {
	return s.hub.Subscribe(ip, interval, sub)
}

func (s *printerService) Unsubscribe(ip string, sub interfaces.Subscriber) {
	s.hub.Unsubscribe(ip, sub)
}

func (s *printerService) Disconnect(sub interfaces.Subscriber) {
	s.hub.Disconnect(sub)
}

func (s *printerService) RequestOnce(ip string) *models.Snapshot {
	return s.hub.RequestOnce(ip)
}

func (s *printerService) History(ip string) []*models.Snapshot {
	return s.hub.History(ip)
}

func (s *printerService) Shutdown() {
	s.hub.Shutdown()
}

func (s *printerService) Assemble(ip string) *models.Snapshot {
	return s.assembler.Assemble(ip)
}

func (s *printerService) QueryInfo(ip string) (models.PrinterInfo, error) {
	raw, err := s.assembler.ExecuteQuery(ip, CmdInfo)
	if err != nil {
		return models.NewPrinterInfo(), err
	}
	return ParseInfo(raw), nil
}

func (s *printerService) QueryPosition(ip string) (models.HeadPosition, error) {
	raw, err := s.assembler.ExecuteQuery(ip, CmdPosition)
	if err != nil {
		return models.HeadPosition{}, err
	}
	return ParsePosition(raw), nil
}

func (s *printerService) QueryTemperatures(ip string) (models.Temperatures, error) {
	raw, err := s.assembler.ExecuteQuery(ip, CmdTemperature)
	if err != nil {
		return models.Temperatures{}, err
	}
	return ParseTemperatures(raw), nil
}

func (s *printerService) QueryProgress(ip string) (models.Progress, error) {
	raw, err := s.assembler.ExecuteQuery(ip, CmdProgress)
	if err != nil {
		return models.Progress{}, err
	}
	return ParseProgress(raw), nil
}

func (s *printerService) QueryStatus(ip string) (models.StatusInfo, error) {
	raw, err := s.assembler.ExecuteQuery(ip, CmdStatus)
	if err != nil {
		return models.NewStatusInfo(), err
	}
	return ParseStatus(raw), nil
}

func (s *printerService) SetLed(ip string, r, g, b int) (string, error) {
	return s.assembler.ExecuteControl(ip, CmdLedColor(r, g, b))
}

func (s *printerService) Pause(ip string) (string, error) {
	return s.assembler.ExecuteControl(ip, CmdPause)
}

func (s *printerService) Resume(ip string) (string, error) {
	return s.assembler.ExecuteControl(ip, CmdResume)
}

func (s *printerService) Cancel(ip string) (string, error) {
	return s.assembler.ExecuteControl(ip, CmdCancel)
}

func (s *printerService) Home(ip string) (string, error) {
	return s.assembler.ExecuteControl(ip, CmdHome)
}
