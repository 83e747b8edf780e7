package printer_service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const rawInfoReply = "CMD M115 Received.\r\n" +
	"Machine Type: Flashforge Adventurer 5M\r\n" +
	"Machine Name: AD5M-01\r\n" +
	"Firmware: v2.4.5\r\n" +
	"SN: SNADVA1234567\r\n" +
	"X: 220 Y: 220 Z: 220\r\n" +
	"Tool Count: 1\r\n" +
	"ok\r\n"

const rawPositionReply = "CMD M114 Received.\r\n" +
	"X:102.500 Y:-3.250 Z:0.200 A:0 B:0\r\n" +
	"ok\r\n"

const rawTemperatureReply = "CMD M105 Received.\r\n" +
	"T0:210.4 /220.0 B:60.1 /60.0\r\n" +
	"ok\r\n"

const rawDualTemperatureReply = "CMD M105 Received.\r\n" +
	"T0:210.4 /220.0 T1:35.0 /0.0 B:60.1 /60.0\r\n" +
	"ok\r\n"

const rawProgressReply = "CMD M27 Received.\r\n" +
	"SD printing byte 50/200\r\n" +
	"Layer: 12/120\r\n" +
	"ok\r\n"

const rawStatusReply = "CMD M119 Received.\r\n" +
	"Endstop: X-max:0 Y-max:0 Z-max:0\r\n" +
	"MachineStatus: BUILDING_FROM_SD\r\n" +
	"MoveMode: MOVING\r\n" +
	"Status: S:1 L:0 J:0 F:0\r\n" +
	"LED: 1\r\n" +
	"CurrentFile: benchy.gcode\r\n" +
	"ok\r\n"

func TestParseInfo(t *testing.T) {
	info := ParseInfo(rawInfoReply)

	require.Equal(t, "Flashforge Adventurer 5M", info.MachineType)
	require.Equal(t, "AD5M-01", info.MachineName)
	require.Equal(t, "v2.4.5", info.Firmware)
	require.Equal(t, "SNADVA1234567", info.SerialNumber)

	require.NotNil(t, info.BuildVolumeX, "Объем по X должен быть извлечен")
	require.EqualValues(t, 220, *info.BuildVolumeX)
	require.NotNil(t, info.BuildVolumeY)
	require.EqualValues(t, 220, *info.BuildVolumeY)
	require.NotNil(t, info.BuildVolumeZ)
	require.EqualValues(t, 220, *info.BuildVolumeZ)
	require.NotNil(t, info.ToolCount)
	require.EqualValues(t, 1, *info.ToolCount)
}

func TestParseInfoMissingFields(t *testing.T) {
	info := ParseInfo("CMD M115 Received.\r\nok\r\n")

	require.Equal(t, "unknown", info.MachineType, "Отсутствующее строковое поле должно быть 'unknown'")
	require.Equal(t, "unknown", info.Firmware)
	require.Nil(t, info.BuildVolumeX, "Отсутствующее числовое поле должно быть nil")
	require.Nil(t, info.ToolCount)
}

func TestParsePosition(t *testing.T) {
	pos := ParsePosition(rawPositionReply)

	require.NotNil(t, pos.X)
	require.InDelta(t, 102.5, *pos.X, 0.001)
	require.NotNil(t, pos.Y)
	require.InDelta(t, -3.25, *pos.Y, 0.001)
	require.NotNil(t, pos.Z)
	require.InDelta(t, 0.2, *pos.Z, 0.001)
}

func TestParsePositionEmpty(t *testing.T) {
	pos := ParsePosition("CMD M114 Received.\r\nok\r\n")

	require.Nil(t, pos.X)
	require.Nil(t, pos.Y)
	require.Nil(t, pos.Z)
}

func TestParseTemperaturesSingleTool(t *testing.T) {
	temps := ParseTemperatures(rawTemperatureReply)

	require.NotNil(t, temps.Tool0.Current)
	require.InDelta(t, 210.4, *temps.Tool0.Current, 0.001)
	require.NotNil(t, temps.Tool0.Target)
	require.InDelta(t, 220.0, *temps.Tool0.Target, 0.001)

	require.NotNil(t, temps.Bed.Current)
	require.InDelta(t, 60.1, *temps.Bed.Current, 0.001)
	require.NotNil(t, temps.Bed.Target)
	require.InDelta(t, 60.0, *temps.Bed.Target, 0.001)

	require.Nil(t, temps.Tool1, "Второй экструдер не должен появляться без показаний T1")
}

func TestParseTemperaturesDualTool(t *testing.T) {
	temps := ParseTemperatures(rawDualTemperatureReply)

	require.NotNil(t, temps.Tool1, "Второй экструдер должен быть включен при наличии T1")
	require.NotNil(t, temps.Tool1.Current)
	require.InDelta(t, 35.0, *temps.Tool1.Current, 0.001)
	require.NotNil(t, temps.Tool1.Target)
	require.InDelta(t, 0.0, *temps.Tool1.Target, 0.001)
}

func TestParseProgressBytePriority(t *testing.T) {
	p := ParseProgress(rawProgressReply)

	require.NotNil(t, p.BytesPrinted)
	require.EqualValues(t, 50, *p.BytesPrinted)
	require.NotNil(t, p.BytesTotal)
	require.EqualValues(t, 200, *p.BytesTotal)
	require.NotNil(t, p.LayerCurrent)
	require.EqualValues(t, 12, *p.LayerCurrent)
	require.NotNil(t, p.LayerTotal)
	require.EqualValues(t, 120, *p.LayerTotal)

	// 50/200 байт, а не 12/120 слоев: байтовый прогресс в приоритете
	require.Equal(t, 25, p.Percent)
}

func TestParseProgressLayerFallback(t *testing.T) {
	p := ParseProgress("CMD M27 Received.\r\nSD printing byte 0/0\r\nLayer: 3/12\r\nok\r\n")

	require.Equal(t, 25, p.Percent, "При нулевом общем размере процент считается по слоям")
}

func TestParseProgressNoData(t *testing.T) {
	p := ParseProgress("CMD M27 Received.\r\nok\r\n")

	require.Nil(t, p.BytesPrinted)
	require.Nil(t, p.BytesTotal)
	require.Nil(t, p.LayerCurrent)
	require.Nil(t, p.LayerTotal)
	require.Equal(t, 0, p.Percent)
}

func TestParseProgressTruncatesDown(t *testing.T) {
	p := ParseProgress("SD printing byte 199/300\r\n")

	// 199*100/300 = 66.33, процент округляется вниз
	require.Equal(t, 66, p.Percent)
}

func TestParseStatus(t *testing.T) {
	status := ParseStatus(rawStatusReply)

	require.Equal(t, "BUILDING_FROM_SD", status.MachineStatus)
	require.Equal(t, "MOVING", status.MoveMode)
	require.Equal(t, "X-max:0 Y-max:0 Z-max:0", status.Endstop)
	require.Equal(t, "S:1 L:0 J:0 F:0", status.StatusFlags)
	require.Equal(t, "benchy.gcode", status.CurrentFile)

	require.NotNil(t, status.LedEnabled)
	require.True(t, *status.LedEnabled)
}

func TestParseStatusLedOff(t *testing.T) {
	status := ParseStatus("MachineStatus: READY\r\nLED: 0\r\n")

	require.Equal(t, "READY", status.MachineStatus)
	require.NotNil(t, status.LedEnabled)
	require.False(t, *status.LedEnabled)
}

func TestParseStatusMissingFields(t *testing.T) {
	status := ParseStatus("CMD M119 Received.\r\nok\r\n")

	require.Equal(t, "unknown", status.MachineStatus)
	require.Equal(t, "unknown", status.MoveMode)
	require.Equal(t, "unknown", status.Endstop)
	require.Equal(t, "unknown", status.CurrentFile)
	require.Nil(t, status.LedEnabled, "Состояние подсветки без данных должно быть nil")
}

func TestExtractIntUnparsable(t *testing.T) {
	// Группа захвата у tool_count числовая, поэтому нечисловой хвост в ответ
	// просто не матчится - поле отсутствует, а не ломает разбор.
	v := ExtractInt("Tool Count: abc", "tool_count")
	require.Nil(t, v)
}

func TestCmdLedColorClamp(t *testing.T) {
	require.Equal(t, Command("~M146 r255 g0 b128"), CmdLedColor(300, -5, 128))
	require.Equal(t, Command("~M146 r0 g0 b0"), CmdLedColor(0, 0, 0))
}
