//go:build !solution

package querymenu

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"gitlab.com/slon/grocer/freqtable"
)

var (
	ErrNotFound      = errors.New("item not found")
	ErrInvalidChoice = errors.New("invalid choice")
	ErrInputClosed   = errors.New("input closed")
)

type Choice int

const (
	ChoiceSearch Choice = iota + 1
	ChoiceListAll
	ChoiceHistogram
	ChoiceExit
)

func (c Choice) String() string {
	switch c {
	case ChoiceSearch:
		return "search"
	case ChoiceListAll:
		return "list"
	case ChoiceHistogram:
		return "histogram"
	case ChoiceExit:
		return "exit"
	default:
		return fmt.Sprintf("choice(%d)", int(c))
	}
}

// ValidateChoice сообщает, является ли n одним из пунктов меню (1..4).
func ValidateChoice(n int) bool {
	return n >= int(ChoiceSearch) && n <= int(ChoiceExit)
}

type LookupMode string

const (
	// ModeScan сравнивает запрос с каждым ключом по порядку, приводя оба к нижнему регистру.
	ModeScan LookupMode = "scan"
	// ModeIndex строит индекс lowercase -> первый ключ один раз при создании меню.
	// Ответы совпадают с ModeScan, отличается только стоимость поиска.
	ModeIndex LookupMode = "index"
)

// Recorder получает события меню. Реализуется пакетом metrics.
type Recorder interface {
	Action(name string)
	Lookup(hit bool)
	InvalidChoice()
}

type nopRecorder struct{}

func (nopRecorder) Action(string) {}
func (nopRecorder) Lookup(bool) {}
func (nopRecorder) InvalidChoice() {}

type Options struct {
	Marker      rune
	ColumnWidth int
	Mode        LookupMode
	Logger      *zap.Logger
	Recorder    Recorder
}

// Bar - строка гистограммы: товар и count символов-маркеров.
type Bar struct {
	Item  string
	Marks string
}

// Menu обслуживает запросы к таблице частот. Таблица передаётся в меню целиком
// и дальше не меняется.
type Menu struct {
	table    *freqtable.Table
	marker   rune
	width    int
	logger   *zap.Logger
	recorder Recorder
	index    map[string]string
}

func New(table *freqtable.Table, opts Options) *Menu {
	if table == nil {
		table = freqtable.Empty()
	}
	m := &Menu{
		table:    table,
		marker:   opts.Marker,
		width:    opts.ColumnWidth,
		logger:   opts.Logger,
		recorder: opts.Recorder,
	}
	if m.marker == 0 {
		m.marker = '*'
	}
	if m.width <= 0 {
		m.width = 15
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}
	if m.recorder == nil {
		m.recorder = nopRecorder{}
	}

	if opts.Mode == ModeIndex {
		m.index = make(map[string]string, table.Len())
		table.Range(func(item string, _ int) bool {
			key := strings.ToLower(item)
			// При дубликатах по регистру остаётся первый ключ, как и при сканировании.
			if _, ok := m.index[key]; !ok {
				m.index[key] = item
			}
			return true
		})
	}
	return m
}

// Lookup ищет товар без учёта регистра и возвращает найденный ключ и его счётчик.
//
// Ключи в таблице хранятся с учётом регистра, поэтому если два ключа отличаются
// только регистром, всегда находится первый из них в лексикографическом порядке.
func (m *Menu) Lookup(query string) (string, int, error) {
	q := strings.ToLower(query)

	if m.index != nil {
		item, ok := m.index[q]
		if !ok {
			return "", 0, fmt.Errorf("%w: %q", ErrNotFound, q)
		}
		count, _ := m.table.Get(item)
		return item, count, nil
	}

	var (
		found freqtable.Entry
		ok    bool
	)
	m.table.Range(func(item string, count int) bool {
		if strings.ToLower(item) == q {
			found = freqtable.Entry{Item: item, Count: count}
			ok = true
			return false
		}
		return true
	})
	if !ok {
		return "", 0, fmt.Errorf("%w: %q", ErrNotFound, q)
	}
	return found.Item, found.Count, nil
}

// ListAll возвращает все записи по возрастанию ключа.
func (m *Menu) ListAll() []freqtable.Entry {
	return m.table.Entries()
}

func (m *Menu) Histogram() []Bar {
	bars := make([]Bar, 0, m.table.Len())
	m.table.Range(func(item string, count int) bool {
		bars = append(bars, Bar{Item: item, Marks: strings.Repeat(string(m.marker), count)})
		return true
	})
	return bars
}
