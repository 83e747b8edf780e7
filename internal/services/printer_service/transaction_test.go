package printer_service

import (
	"bufio"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakePrinter поднимает TCP-сервер на свободном локальном порту и отвечает
// на каждую принятую строку через handler. Возврат пустой строки означает
// "не отвечать" (имитация зависшего принтера).
func fakePrinter(t *testing.T, handler func(line string) string) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "Не удалось поднять тестовый TCP-сервер")
	t.Cleanup(func() { ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func(conn net.Conn) {
				defer conn.Close()
				reader := bufio.NewReader(conn)
				line, err := reader.ReadString('\n')
				if err != nil {
					return
				}
				reply := handler(strings.TrimRight(line, "\r\n"))
				if reply == "" {
					// Держим соединение открытым до таймаута клиента
					time.Sleep(2 * time.Second)
					return
				}
				conn.Write([]byte(reply))
			}(conn)
		}
	}()

	return ln.Addr().String()
}

func TestExecuteCommandSuccess(t *testing.T) {
	addr := fakePrinter(t, func(line string) string {
		require.Equal(t, "~M115", line, "Команда должна приходить без CRLF")
		return "CMD M115 Received.\r\nMachine Type: Flashforge Adventurer 5M\r\nok\r\n"
	})

	raw, err := ExecuteCommand(addr, CmdInfo, time.Second)
	require.NoError(t, err)
	require.Contains(t, raw, "Machine Type: Flashforge Adventurer 5M")
}

func TestExecuteCommandFirstChunkOnly(t *testing.T) {
	addr := fakePrinter(t, func(line string) string {
		return "CMD M119 Received.\r\n"
	})

	raw, err := ExecuteCommand(addr, CmdStatus, time.Second)
	require.NoError(t, err)
	// Транзакция завершается по первому фрагменту, без ожидания продолжения
	require.Equal(t, "CMD M119 Received.\r\n", raw)
}

func TestExecuteCommandTimeout(t *testing.T) {
	addr := fakePrinter(t, func(line string) string {
		return "" // принтер принял команду и молчит
	})

	start := time.Now()
	_, err := ExecuteCommand(addr, CmdInfo, 200*time.Millisecond)
	elapsed := time.Since(start)

	require.ErrorIs(t, err, ErrTimeout)
	require.Less(t, elapsed, time.Second, "Таймаут должен сработать в отведенное время")
}

func TestExecuteCommandConnectionRefused(t *testing.T) {
	// Порт освобождается сразу после закрытия слушателя
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	ln.Close()

	_, err = ExecuteCommand(addr, CmdInfo, time.Second)
	require.Error(t, err)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr, "Отказ соединения должен оборачиваться в NetworkError")
}

func TestExecuteCommandAppendsCRLF(t *testing.T) {
	received := make(chan string, 1)
	addr := fakePrinter(t, func(line string) string {
		received <- line
		return "ok\r\n"
	})

	_, err := ExecuteCommand(addr, CmdPause, time.Second)
	require.NoError(t, err)

	select {
	case line := <-received:
		require.Equal(t, string(CmdPause), line)
	case <-time.After(time.Second):
		t.Fatal("Команда не дошла до сервера")
	}
}
