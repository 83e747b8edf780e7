package printer_service

import (
	"regexp"
	"strconv"

	"github.com/iwtcode/flashforgeService/internal/domain/models"
)

// Правила извлечения полей из текстовых ответов принтера. Каждое правило -
// это скомпилированный шаблон с одной группой захвата и тип преобразования.
// Таблица объявляется один раз и не содержит состояния, поэтому каждое поле
// можно разбирать независимо от транзакционного слоя.

type fieldKind int

const (
	fieldString fieldKind = iota
	fieldInt
	fieldFloat
)

type extractRule struct {
	pattern *regexp.Regexp
	kind    fieldKind
}

var extractRules = map[string]extractRule{
	// ~M115
	"machine_type":  {regexp.MustCompile(`(?m)^\s*Machine Type:\s*([^\r\n]+)`), fieldString},
	"machine_name":  {regexp.MustCompile(`(?m)^\s*Machine Name:\s*([^\r\n]+)`), fieldString},
	"firmware":      {regexp.MustCompile(`(?m)^\s*Firmware:\s*([^\r\n]+)`), fieldString},
	"serial_number": {regexp.MustCompile(`(?m)^\s*SN:\s*([^\r\n]+)`), fieldString},
	"volume_x":      {regexp.MustCompile(`X:\s*(\d+)`), fieldInt},
	"volume_y":      {regexp.MustCompile(`Y:\s*(\d+)`), fieldInt},
	"volume_z":      {regexp.MustCompile(`Z:\s*(\d+)`), fieldInt},
	"tool_count":    {regexp.MustCompile(`Tool Count:\s*(\d+)`), fieldInt},

	// ~M114
	"position_x": {regexp.MustCompile(`X:\s*(-?[\d.]+)`), fieldFloat},
	"position_y": {regexp.MustCompile(`Y:\s*(-?[\d.]+)`), fieldFloat},
	"position_z": {regexp.MustCompile(`Z:\s*(-?[\d.]+)`), fieldFloat},

	// ~M105
	"tool0_current": {regexp.MustCompile(`T0:\s*(-?[\d.]+)`), fieldFloat},
	"tool0_target":  {regexp.MustCompile(`T0:\s*-?[\d.]+\s*/\s*(-?[\d.]+)`), fieldFloat},
	"tool1_current": {regexp.MustCompile(`T1:\s*(-?[\d.]+)`), fieldFloat},
	"tool1_target":  {regexp.MustCompile(`T1:\s*-?[\d.]+\s*/\s*(-?[\d.]+)`), fieldFloat},
	"bed_current":   {regexp.MustCompile(`B:\s*(-?[\d.]+)`), fieldFloat},
	"bed_target":    {regexp.MustCompile(`B:\s*-?[\d.]+\s*/\s*(-?[\d.]+)`), fieldFloat},

	// ~M27
	"bytes_printed": {regexp.MustCompile(`byte\s*(\d+)\s*/\s*\d+`), fieldInt},
	"bytes_total":   {regexp.MustCompile(`byte\s*\d+\s*/\s*(\d+)`), fieldInt},
	"layer_current": {regexp.MustCompile(`Layer:\s*(\d+)\s*/\s*\d+`), fieldInt},
	"layer_total":   {regexp.MustCompile(`Layer:\s*\d+\s*/\s*(\d+)`), fieldInt},

	// ~M119
	"machine_status": {regexp.MustCompile(`MachineStatus:\s*(\S+)`), fieldString},
	"move_mode":      {regexp.MustCompile(`MoveMode:\s*(\S+)`), fieldString},
	"endstop":        {regexp.MustCompile(`(?m)^\s*Endstop:\s*([^\r\n]+)`), fieldString},
	"status_flags":   {regexp.MustCompile(`(?m)^\s*Status:\s*([^\r\n]+)`), fieldString},
	"led":            {regexp.MustCompile(`LED:\s*(\d+)`), fieldInt},
	"current_file":   {regexp.MustCompile(`CurrentFile:\s*([^\r\n]+)`), fieldString},
}

func matchField(raw, field string) (string, bool) {
	rule, ok := extractRules[field]
	if !ok {
		return "", false
	}
	m := rule.pattern.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ExtractString извлекает строковое поле; false - поле отсутствует.
func ExtractString(raw, field string) (string, bool) {
	return matchField(raw, field)
}

// ExtractInt извлекает целочисленное поле; nil - поле отсутствует или
// значение не является числом. Ошибка разбора никогда не прерывает парсинг.
func ExtractInt(raw, field string) *int64 {
	s, ok := matchField(raw, field)
	if !ok {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ExtractFloat извлекает вещественное поле; nil - поле отсутствует или
// значение не является числом.
func ExtractFloat(raw, field string) *float64 {
	s, ok := matchField(raw, field)
	if !ok {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseInfo разбирает ответ на ~M115.
func ParseInfo(raw string) models.PrinterInfo {
	info := models.NewPrinterInfo()
	if v, ok := ExtractString(raw, "machine_type"); ok {
		info.MachineType = v
	}
	if v, ok := ExtractString(raw, "machine_name"); ok {
		info.MachineName = v
	}
	if v, ok := ExtractString(raw, "firmware"); ok {
		info.Firmware = v
	}
	if v, ok := ExtractString(raw, "serial_number"); ok {
		info.SerialNumber = v
	}
	info.BuildVolumeX = ExtractInt(raw, "volume_x")
	info.BuildVolumeY = ExtractInt(raw, "volume_y")
	info.BuildVolumeZ = ExtractInt(raw, "volume_z")
	info.ToolCount = ExtractInt(raw, "tool_count")
	return info
}

// ParsePosition разбирает ответ на ~M114.
func ParsePosition(raw string) models.HeadPosition {
	return models.HeadPosition{
		X: ExtractFloat(raw, "position_x"),
		Y: ExtractFloat(raw, "position_y"),
		Z: ExtractFloat(raw, "position_z"),
	}
}

// ParseTemperatures разбирает ответ на ~M105. Второй экструдер включается в
// результат только если его показания присутствуют в ответе.
func ParseTemperatures(raw string) models.Temperatures {
	temps := models.Temperatures{
		Tool0: models.ToolTemperature{
			Current: ExtractFloat(raw, "tool0_current"),
			Target:  ExtractFloat(raw, "tool0_target"),
		},
		Bed: models.ToolTemperature{
			Current: ExtractFloat(raw, "bed_current"),
			Target:  ExtractFloat(raw, "bed_target"),
		},
	}
	if cur := ExtractFloat(raw, "tool1_current"); cur != nil {
		temps.Tool1 = &models.ToolTemperature{
			Current: cur,
			Target:  ExtractFloat(raw, "tool1_target"),
		}
	}
	return temps
}

// ParseProgress разбирает ответ на ~M27 и вычисляет процент завершения.
// Байтовый прогресс имеет приоритет; при его отсутствии или нулевом общем
// размере используется прогресс по слоям, иначе процент равен нулю.
func ParseProgress(raw string) models.Progress {
	p := models.Progress{
		BytesPrinted: ExtractInt(raw, "bytes_printed"),
		BytesTotal:   ExtractInt(raw, "bytes_total"),
		LayerCurrent: ExtractInt(raw, "layer_current"),
		LayerTotal:   ExtractInt(raw, "layer_total"),
	}
	p.Percent = computePercent(p)
	return p
}

func computePercent(p models.Progress) int {
	if p.BytesPrinted != nil && p.BytesTotal != nil && *p.BytesTotal > 0 {
		return int(*p.BytesPrinted * 100 / *p.BytesTotal)
	}
	if p.LayerCurrent != nil && p.LayerTotal != nil && *p.LayerTotal > 0 {
		return int(*p.LayerCurrent * 100 / *p.LayerTotal)
	}
	return 0
}

// ParseStatus разбирает ответ на ~M119.
func ParseStatus(raw string) models.StatusInfo {
	status := models.NewStatusInfo()
	if v, ok := ExtractString(raw, "machine_status"); ok {
		status.MachineStatus = v
	}
	if v, ok := ExtractString(raw, "move_mode"); ok {
		status.MoveMode = v
	}
	if v, ok := ExtractString(raw, "endstop"); ok {
		status.Endstop = v
	}
	if v, ok := ExtractString(raw, "status_flags"); ok {
		status.StatusFlags = v
	}
	if v, ok := ExtractString(raw, "current_file"); ok {
		status.CurrentFile = v
	}
	if led := ExtractInt(raw, "led"); led != nil {
		enabled := *led != 0
		status.LedEnabled = &enabled
	}
	return status
}
