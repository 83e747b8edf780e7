package printer_service

import (
	"errors"
	"fmt"
	"net"
	"time"
)

// ErrTimeout возвращается, если принтер не ответил в отведенное время.
var ErrTimeout = errors.New("превышено время ожидания ответа от принтера")

// NetworkError оборачивает ошибку установки соединения или ввода-вывода.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("сетевая ошибка: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ExecuteCommand выполняет одну транзакцию с принтером: открывает новое
// TCP-соединение, отправляет команду с завершающим CRLF, дожидается первого
// фрагмента ответа и закрывает соединение. Пул соединений не используется -
// каждый вызов полностью самодостаточен.
//
// Ответ считается полученным по первому входящему фрагменту данных; сборка
// ответа из нескольких фрагментов не выполняется (документированное
// ограничение протокола). Таймаут отсчитывается от начала подключения;
// по его истечении соединение принудительно закрывается.
func ExecuteCommand(address string, cmd Command, timeout time.Duration) (string, error) {
	deadline := time.Now().Add(timeout)

	conn, err := net.DialTimeout("tcp", address, timeout)
	if err != nil {
		if isTimeout(err) {
			return "", ErrTimeout
		}
		return "", &NetworkError{Err: err}
	}
	defer conn.Close()

	if err := conn.SetDeadline(deadline); err != nil {
		return "", &NetworkError{Err: err}
	}

	if _, err := conn.Write([]byte(string(cmd) + "\r\n")); err != nil {
		if isTimeout(err) {
			return "", ErrTimeout
		}
		return "", &NetworkError{Err: err}
	}

	buf := make([]byte, 4096)
	n, err := conn.Read(buf)
	if err != nil {
		if isTimeout(err) {
			return "", ErrTimeout
		}
		return "", &NetworkError{Err: err}
	}

	return string(buf[:n]), nil
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
