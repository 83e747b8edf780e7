package usecases

import (
	"time"

	"github.com/iwtcode/flashforgeService/internal/domain/entities"
	"github.com/iwtcode/flashforgeService/internal/domain/models"
	"github.com/iwtcode/flashforgeService/internal/interfaces"
)

type Usecase struct {
	printerSvc interfaces.PrinterService
}

func NewUsecase(printerSvc interfaces.PrinterService) interfaces.Usecases {
	return &Usecase{
		printerSvc: printerSvc,
	}
}

func (u *Usecase) RegisterPrinter(req models.RegisterPrinterRequest) (*models.PrinterSession, error) {
	return u.printerSvc.RegisterPrinter(req)
}

func (u *Usecase) RestorePrinter(printer entities.Printer) (*models.PrinterSession, error) {
	return u.printerSvc.RestorePrinter(printer)
}

func (u *Usecase) GetAllPrinters() []*models.PrinterSession {
	return u.printerSvc.GetAllPrinters()
}

func (u *Usecase) DeletePrinter(sessionID string) error {
	return u.printerSvc.DeletePrinter(sessionID)
}

func (u *Usecase) CheckPrinter(sessionID string) (*models.PrinterSession, error) {
	return u.printerSvc.CheckPrinter(sessionID)
}

func (u *Usecase) Subscribe(ip string, interval time.Duration, sub interfaces.Subscriber) time.Duration {
	return u.printerSvc.Subscribe(ip, interval, sub)
}

func (u *Usecase) Unsubscribe(ip string, sub interfaces.Subscriber) {
	u.printerSvc.Unsubscribe(ip, sub)
}

func (u *Usecase) Disconnect(sub interfaces.Subscriber) {
	u.printerSvc.Disconnect(sub)
}

func (u *Usecase) GetSnapshot(ip string) *models.Snapshot {
	return u.printerSvc.RequestOnce(ip)
}

func (u *Usecase) GetHistory(ip string) []*models.Snapshot {
	return u.printerSvc.History(ip)
}

func (u *Usecase) GetInfo(ip string) (models.PrinterInfo, error) {
	return u.printerSvc.QueryInfo(ip)
}

func (u *Usecase) GetPosition(ip string) (models.HeadPosition, error) {
	return u.printerSvc.QueryPosition(ip)
}

func (u *Usecase) GetTemperatures(ip string) (models.Temperatures, error) {
	return u.printerSvc.QueryTemperatures(ip)
}

func (u *Usecase) GetProgress(ip string) (models.Progress, error) {
	return u.printerSvc.QueryProgress(ip)
}

func (u *Usecase) GetStatus(ip string) (models.StatusInfo, error) {
	return u.printerSvc.QueryStatus(ip)
}

func (u *Usecase) SetLed(ip string, r, g, b int) (string, error) {
	return u.printerSvc.SetLed(ip, r, g, b)
}

func (u *Usecase) Pause(ip string) (string, error) {
	return u.printerSvc.Pause(ip)
}

func (u *Usecase) Resume(ip string) (string, error) {
	return u.printerSvc.Resume(ip)
}

func (u *Usecase) Cancel(ip string) (string, error) {
	return u.printerSvc.Cancel(ip)
}

func (u *Usecase) Home(ip string) (string, error) {
	return u.printerSvc.Home(ip)
}
