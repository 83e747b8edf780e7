package printer_service

import (
	"net"
	"time"

	"github.com/iwtcode/flashforgeService/internal/domain/models"
	"github.com/iwtcode/flashforgeService/internal/middleware/logging"
)

// Имена шагов сборки, попадающие в список ошибок снапшота.
const (
	StepUnlock      = "unlock"
	StepInfo        = "info"
	StepPosition    = "position"
	StepTemperature = "temperature"
	StepProgress    = "progress"
	StepStatus      = "status"
)

// Assembler собирает полный снапшот телеметрии принтера за один проход по
// фиксированной последовательности транзакций.
type Assembler struct {
	port    string
	timeout time.Duration
	execute func(address string, cmd Command, timeout time.Duration) (string, error)
	logger  *logging.Logger
}

// NewAssembler создает сборщик снапшотов. port - фиксированный управляющий
// порт принтеров, timeout - таймаут одной транзакции.
func NewAssembler(port string, timeout time.Duration, logger *logging.Logger) *Assembler {
	return &Assembler{
		port:    port,
		timeout: timeout,
		execute: ExecuteCommand,
		logger:  logger.WithPrefix("ASSEMBLER"),
	}
}

func (a *Assembler) address(ip string) string {
	return net.JoinHostPort(ip, a.port)
}

// Assemble выполняет упорядоченную последовательность шагов против принтера:
// unlock (всегда первым, best-effort), затем info, position, temperature,
// progress и status. Каждый шаг изолирован: его сбой записывается в Errors,
// категория заполняется дефолтной формой, а сборка продолжается. Повторных
// попыток внутри одного вызова нет. Метод никогда не возвращает nil - даже
// при полном отказе принтера снапшот полностью сформирован и датирован.
func (a *Assembler) Assemble(ip string) *models.Snapshot {
	snapshot := models.NewSnapshot(ip)

	// Разблокировка управления. Ее исход не влияет на выполнение
	// последующих шагов.
	if _, err := a.runStep(snapshot, StepUnlock, CmdUnlockControl); err != nil {
		a.logger.Debug("Unlock step failed, continuing", "ip", ip, "error", err)
	}

	if raw, err := a.runStep(snapshot, StepInfo, CmdInfo); err == nil {
		snapshot.Info = ParseInfo(raw)
	}
	if raw, err := a.runStep(snapshot, StepPosition, CmdPosition); err == nil {
		snapshot.Position = ParsePosition(raw)
	}
	if raw, err := a.runStep(snapshot, StepTemperature, CmdTemperature); err == nil {
		snapshot.Temperatures = ParseTemperatures(raw)
	}
	if raw, err := a.runStep(snapshot, StepProgress, CmdProgress); err == nil {
		snapshot.Progress = ParseProgress(raw)
	}
	if raw, err := a.runStep(snapshot, StepStatus, CmdStatus); err == nil {
		snapshot.Status = ParseStatus(raw)
	}

	snapshot.Timestamp = time.Now().UTC()
	return snapshot
}

// ExecuteControl выполняет одиночную управляющую команду, предварительно
// разблокировав управление, и возвращает сырой ответ принтера.
func (a *Assembler) ExecuteControl(ip string, cmd Command) (string, error) {
	address := a.address(ip)
	if _, err := a.execute(address, CmdUnlockControl, a.timeout); err != nil {
		return "", err
	}
	return a.execute(address, cmd, a.timeout)
}

// ExecuteQuery выполняет одиночную запросную команду без разблокировки.
func (a *Assembler) ExecuteQuery(ip string, cmd Command) (string, error) {
	return a.execute(a.address(ip), cmd, a.timeout)
}

func (a *Assembler) runStep(snapshot *models.Snapshot, step string, cmd Command) (string, error) {
	raw, err := a.execute(a.address(snapshot.Address), cmd, a.timeout)
	if err != nil {
		snapshot.Errors = append(snapshot.Errors, models.StepError{
			Step:   step,
			Reason: err.Error(),
		})
		return "", err
	}
	return raw, nil
}
