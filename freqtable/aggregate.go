//go:build !solution

package freqtable

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

var ErrSourceUnavailable = errors.New("source unavailable")

const maxLineSize = 1 << 20

// Build считает частоты по уже разбитым строкам. Пустые строки пропускаются,
// остальные берутся как есть: без trim и без приведения регистра.
func Build(lines []string) *Table {
	t := newTable()
	for _, line := range lines {
		if line == "" {
			continue
		}
		t.add(line, 1)
	}
	return t
}

// Read строит таблицу из построчного источника.
func Read(r io.Reader) (*Table, error) {
	t := newTable()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		t.add(line, 1)
	}
	if err := scanner.Err(); err != nil {
		return Empty(), fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	return t, nil
}

// Load читает файл path. Если файл не открывается, возвращает пустую таблицу
// вместе с ErrSourceUnavailable, чтобы вызывающий мог продолжить работу.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Empty(), fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return t, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}
