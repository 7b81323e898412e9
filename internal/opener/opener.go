package opener

import (
	"fmt"
	"io"

	"github.com/pkg/browser"
)

// Browser открывает адрес в системном браузере.
// Если браузер недоступен, печатает адрес в out и возвращает ошибку.
type Browser struct {
	out  io.Writer
	open func(url string) error
}

// NewBrowser создает Browser, использующий системный обработчик URL
func NewBrowser(out io.Writer) *Browser {
	return &Browser{
		out:  out,
		open: browser.OpenURL,
	}
}

func (b *Browser) Open(target string) error {
	if err := b.open(target); err != nil {
		fmt.Fprintf(b.out, "Browser not available; URL: %s\n", target)
		return fmt.Errorf("failed to open %s in browser: %w", target, err)
	}

	return nil
}
