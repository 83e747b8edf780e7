package models

import "time"

// ValueUnknown подставляется в строковые поля, которые не удалось извлечь из
// ответа принтера. Числовые поля в этом случае остаются nil.
const ValueUnknown = "unknown"

// StepError описывает сбой одного шага сборки снапшота.
type StepError struct {
	Step   string `json:"step"`
	Reason string `json:"reason"`
}

// PrinterInfo содержит идентификацию принтера и размеры рабочей области.
type PrinterInfo struct {
	MachineType  string `json:"machine_type"`
	MachineName  string `json:"machine_name"`
	Firmware     string `json:"firmware"`
	SerialNumber string `json:"serial_number"`
	BuildVolumeX *int64 `json:"build_volume_x"`
	BuildVolumeY *int64 `json:"build_volume_y"`
	BuildVolumeZ *int64 `json:"build_volume_z"`
	ToolCount    *int64 `json:"tool_count"`
}

// HeadPosition содержит текущие координаты печатающей головки.
type HeadPosition struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
	Z *float64 `json:"z"`
}

// ToolTemperature - пара текущая/целевая температура одного нагревателя.
type ToolTemperature struct {
	Current *float64 `json:"current"`
	Target  *float64 `json:"target"`
}

// Temperatures содержит температуры экструдеров и стола.
// Tool1 присутствует только у двухэкструдерных моделей.
type Temperatures struct {
	Tool0 ToolTemperature  `json:"tool0"`
	Tool1 *ToolTemperature `json:"tool1,omitempty"`
	Bed   ToolTemperature  `json:"bed"`
}

// Progress содержит ход текущей печати.
type Progress struct {
	BytesPrinted *int64 `json:"bytes_printed"`
	BytesTotal   *int64 `json:"bytes_total"`
	Percent      int    `json:"percent"`
	LayerCurrent *int64 `json:"layer_current"`
	LayerTotal   *int64 `json:"layer_total"`
}

// StatusInfo содержит состояние принтера из ответа на запрос статуса.
type StatusInfo struct {
	MachineStatus string `json:"machine_status"`
	MoveMode      string `json:"move_mode"`
	Endstop       string `json:"endstop"`
	LedEnabled    *bool  `json:"led_enabled"`
	CurrentFile   string `json:"current_file"`
	StatusFlags   string `json:"status_flags"`
}

// Snapshot - агрегированная телеметрия одного принтера на момент опроса.
// Снапшот всегда полностью сформирован: недоступные категории заполняются
// значениями по умолчанию, а сбой каждого шага фиксируется в Errors.
type Snapshot struct {
	Address      string       `json:"address"`
	Info         PrinterInfo  `json:"info"`
	Position     HeadPosition `json:"position"`
	Temperatures Temperatures `json:"temperatures"`
	Progress     Progress     `json:"progress"`
	Status       StatusInfo   `json:"status"`
	Errors       []StepError  `json:"errors"`
	Timestamp    time.Time    `json:"timestamp"`
}

// NewSnapshot создает снапшот с дефолтной формой всех категорий.
func NewSnapshot(address string) *Snapshot {
	return &Snapshot{
		Address:      address,
		Info:         NewPrinterInfo(),
		Temperatures: Temperatures{},
		Status:       NewStatusInfo(),
		Errors:       make([]StepError, 0),
	}
}

// NewPrinterInfo возвращает PrinterInfo с неизвестными значениями.
func NewPrinterInfo() PrinterInfo {
	return PrinterInfo{
		MachineType:  ValueUnknown,
		MachineName:  ValueUnknown,
		Firmware:     ValueUnknown,
		SerialNumber: ValueUnknown,
	}
}

// NewStatusInfo возвращает StatusInfo с неизвестными значениями.
func NewStatusInfo() StatusInfo {
	return StatusInfo{
		MachineStatus: ValueUnknown,
		MoveMode:      ValueUnknown,
		Endstop:       ValueUnknown,
		CurrentFile:   ValueUnknown,
		StatusFlags:   ValueUnknown,
	}
}
