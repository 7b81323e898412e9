package notifier

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
)

// Notifier принимает сообщения о событиях жизненного цикла ссылок
type Notifier interface {
	Notify(message string)
}

// Console печатает уведомления в поток вывода с префиксом [NOTIFY]
type Console struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsole создает уведомитель, пишущий в out
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Notify печатает сообщение; nil *Console ничего не делает
func (c *Console) Notify(message string) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintf(c.out, "[NOTIFY] %s\n", message)
}

// Log пишет уведомления в zap-логгер
type Log struct {
	logger *zap.Logger
}

// NewLog создает уведомитель поверх логгера
func NewLog(logger *zap.Logger) *Log {
	return &Log{logger: logger}
}

// Notify пишет сообщение в лог; nil *Log ничего не делает
func (l *Log) Notify(message string) {
	if l == nil {
		return
	}

	l.logger.Info("notification", zap.String("message", message))
}

// Multi рассылает уведомление всем получателям по порядку.
// Пустые интерфейсы пропускаются, nil-указатели Console и Log безопасны сами по себе.
type Multi []Notifier

// Combine объединяет несколько уведомителей в один
func Combine(notifiers ...Notifier) Multi {
	return Multi(notifiers)
}

func (m Multi) Notify(message string) {
	for _, n := range m {
		if n != nil {
			n.Notify(message)
		}
	}
}
