package printer_service

import (
	"testing"
	"time"

	"github.com/iwtcode/flashforgeService/internal/middleware/logging"
	"github.com/stretchr/testify/require"
)

func testLogger() *logging.Logger {
	return logging.NewLogger(&logging.Config{Enabled: false}, "TEST")
}

// scriptedExecute подменяет транзакционный слой таблицей ответов по командам.
func scriptedExecute(replies map[Command]string, errs map[Command]error, calls *[]Command) func(string, Command, time.Duration) (string, error) {
	return func(address string, cmd Command, timeout time.Duration) (string, error) {
		if calls != nil {
			*calls = append(*calls, cmd)
		}
		if err, ok := errs[cmd]; ok {
			return "", err
		}
		return replies[cmd], nil
	}
}

func newTestAssembler(replies map[Command]string, errs map[Command]error, calls *[]Command) *Assembler {
	a := NewAssembler("8899", time.Second, testLogger())
	a.execute = scriptedExecute(replies, errs, calls)
	return a
}

func fullReplies() map[Command]string {
	return map[Command]string{
		CmdUnlockControl: "CMD M601 Received.\r\nControl Success.\r\nok\r\n",
		CmdInfo:          rawInfoReply,
		CmdPosition:      rawPositionReply,
		CmdTemperature:   rawTemperatureReply,
		CmdProgress:      rawProgressReply,
		CmdStatus:        rawStatusReply,
	}
}

func TestAssembleFullSuccess(t *testing.T) {
	var calls []Command
	a := newTestAssembler(fullReplies(), nil, &calls)

	snapshot := a.Assemble("192.168.1.50")
	require.NotNil(t, snapshot)

	require.Equal(t, "192.168.1.50", snapshot.Address)
	require.Empty(t, snapshot.Errors, "При полном успехе список ошибок должен быть пуст")
	require.False(t, snapshot.Timestamp.IsZero(), "Снапшот должен быть датирован")

	require.Equal(t, "Flashforge Adventurer 5M", snapshot.Info.MachineType)
	require.NotNil(t, snapshot.Position.X)
	require.NotNil(t, snapshot.Temperatures.Tool0.Current)
	require.Equal(t, 25, snapshot.Progress.Percent)
	require.Equal(t, "BUILDING_FROM_SD", snapshot.Status.MachineStatus)

	// Разблокировка всегда идет первым шагом
	require.Equal(t, []Command{CmdUnlockControl, CmdInfo, CmdPosition, CmdTemperature, CmdProgress, CmdStatus}, calls)
}

func TestAssemblePartialFailure(t *testing.T) {
	errs := map[Command]error{
		CmdPosition: ErrTimeout,
		CmdProgress: ErrTimeout,
	}
	a := newTestAssembler(fullReplies(), errs, nil)

	snapshot := a.Assemble("192.168.1.50")

	require.Len(t, snapshot.Errors, 2, "Каждый сбойный шаг фиксируется отдельно")
	steps := []string{snapshot.Errors[0].Step, snapshot.Errors[1].Step}
	require.Contains(t, steps, StepPosition)
	require.Contains(t, steps, StepProgress)

	// Сбой одного шага не мешает остальным
	require.Equal(t, "Flashforge Adventurer 5M", snapshot.Info.MachineType)
	require.Equal(t, "BUILDING_FROM_SD", snapshot.Status.MachineStatus)

	// Сбойные категории остаются в дефолтной форме
	require.Nil(t, snapshot.Position.X)
	require.Nil(t, snapshot.Progress.BytesPrinted)
	require.Equal(t, 0, snapshot.Progress.Percent)
}

func TestAssembleTotalFailure(t *testing.T) {
	errs := map[Command]error{
		CmdUnlockControl: ErrTimeout,
		CmdInfo:          ErrTimeout,
		CmdPosition:      ErrTimeout,
		CmdTemperature:   ErrTimeout,
		CmdProgress:      ErrTimeout,
		CmdStatus:        ErrTimeout,
	}
	a := newTestAssembler(nil, errs, nil)

	snapshot := a.Assemble("192.168.1.50")
	require.NotNil(t, snapshot, "Даже при полном отказе снапшот не должен быть nil")

	require.Len(t, snapshot.Errors, 6)
	require.False(t, snapshot.Timestamp.IsZero())

	// Форма снапшота полная: строки - unknown, числа - nil
	require.Equal(t, "unknown", snapshot.Info.MachineType)
	require.Equal(t, "unknown", snapshot.Status.MachineStatus)
	require.Nil(t, snapshot.Info.ToolCount)
	require.Nil(t, snapshot.Position.X)
	require.Nil(t, snapshot.Temperatures.Tool0.Current)
	require.Nil(t, snapshot.Temperatures.Tool1)
}

func TestAssembleUnlockFailureDoesNotBlock(t *testing.T) {
	errs := map[Command]error{CmdUnlockControl: ErrTimeout}
	a := newTestAssembler(fullReplies(), errs, nil)

	snapshot := a.Assemble("192.168.1.50")

	require.Len(t, snapshot.Errors, 1)
	require.Equal(t, StepUnlock, snapshot.Errors[0].Step)
	require.Equal(t, "Flashforge Adventurer 5M", snapshot.Info.MachineType, "Сбой разблокировки не должен останавливать сборку")
}

func TestExecuteControlUnlocksFirst(t *testing.T) {
	var calls []Command
	a := newTestAssembler(map[Command]string{
		CmdUnlockControl: "ok\r\n",
		CmdPause:         "CMD M25 Received.\r\nok\r\n",
	}, nil, &calls)

	reply, err := a.ExecuteControl("192.168.1.50", CmdPause)
	require.NoError(t, err)
	require.Contains(t, reply, "CMD M25 Received.")
	require.Equal(t, []Command{CmdUnlockControl, CmdPause}, calls)
}

func TestExecuteControlUnlockFailureAborts(t *testing.T) {
	var calls []Command
	a := newTestAssembler(nil, map[Command]error{CmdUnlockControl: ErrTimeout}, &calls)

	_, err := a.ExecuteControl("192.168.1.50", CmdPause)
	require.ErrorIs(t, err, ErrTimeout)
	require.Equal(t, []Command{CmdUnlockControl}, calls, "Управляющая команда не должна отправляться без разблокировки")
}

func TestExecuteQueryNoUnlock(t *testing.T) {
	var calls []Command
	a := newTestAssembler(map[Command]string{CmdInfo: rawInfoReply}, nil, &calls)

	raw, err := a.ExecuteQuery("192.168.1.50", CmdInfo)
	require.NoError(t, err)
	require.Contains(t, raw, "Machine Type")
	require.Equal(t, []Command{CmdInfo}, calls)
}
