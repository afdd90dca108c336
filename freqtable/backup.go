//go:build !solution

package freqtable

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	ErrSinkUnavailable = errors.New("sink unavailable")
	ErrMalformedBackup = errors.New("malformed backup line")
)

// Dump пишет пары "item count" по одной на строку в порядке обхода таблицы.
func Dump(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)
	var err error
	t.Range(func(item string, count int) bool {
		_, err = fmt.Fprintf(bw, "%s %d\n", item, count)
		return err == nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSinkUnavailable, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrSinkUnavailable, err)
	}
	return nil
}

// DumpFile создаёт (или перезаписывает) файл path и сохраняет в него таблицу.
func DumpFile(path string, t *Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSinkUnavailable, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrSinkUnavailable, cerr)
		}
	}()

	return Dump(f, t)
}

// ReadBackup восстанавливает таблицу из формата Dump.
// Строка делится по последнему пробелу, так что пробелы внутри названия допустимы.
func ReadBackup(r io.Reader) (*Table, error) {
	t := newTable()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		sep := strings.LastIndexByte(line, ' ')
		if sep <= 0 {
			return Empty(), fmt.Errorf("%w: line %d: %q", ErrMalformedBackup, lineNo, line)
		}
		count, err := strconv.Atoi(line[sep+1:])
		if err != nil || count < 1 {
			return Empty(), fmt.Errorf("%w: line %d: bad count %q", ErrMalformedBackup, lineNo, line[sep+1:])
		}
		t.add(line[:sep], count)
	}
	if err := scanner.Err(); err != nil {
		return Empty(), fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	return t, nil
}

// LoadBackup - ReadBackup для файла.
func LoadBackup(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Empty(), fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer f.Close()

	return ReadBackup(f)
}
