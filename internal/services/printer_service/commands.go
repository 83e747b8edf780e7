package printer_service

import "fmt"

// Command - фиксированная ASCII-команда протокола управления принтером.
// Набор команд известен при инициализации и не меняется во время работы.
type Command string

const (
	CmdUnlockControl Command = "~M601 S1"
	CmdInfo          Command = "~M115"
	CmdPosition      Command = "~M114"
	CmdTemperature   Command = "~M105"
	CmdProgress      Command = "~M27"
	CmdStatus        Command = "~M119"
	CmdLedOn         Command = "~M146 r255 g255 b255"
	CmdLedOff        Command = "~M146 r0 g0 b0"
	CmdPause         Command = "~M25"
	CmdResume        Command = "~M24"
	CmdCancel        Command = "~M26"
	CmdHome          Command = "~G28"
)

// CmdLedColor возвращает команду установки произвольного цвета подсветки.
// Значения каналов ограничиваются диапазоном 0-255.
func CmdLedColor(r, g, b int) Command {
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return v
	}
	return Command(fmt.Sprintf("~M146 r%d g%d b%d", clamp(r), clamp(g), clamp(b)))
}
