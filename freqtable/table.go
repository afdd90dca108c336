//go:build !solution

package freqtable

import (
	"github.com/google/btree"
)

const degree = 16

// Entry - одна строка таблицы: название товара и сколько раз он встретился.
type Entry struct {
	Item  string
	Count int
}

func lessByItem(a, b Entry) bool {
	return a.Item < b.Item
}

// Table хранит частоты в B-дереве, поэтому обход всегда идёт
// в лексикографическом порядке ключей.
// После построения таблица только читается.
type Table struct {
	tree  *btree.BTreeG[Entry]
	total int
}

func newTable() *Table {
	return &Table{tree: btree.NewG[Entry](degree, lessByItem)}
}

// Empty возвращает таблицу без записей.
func Empty() *Table {
	return newTable()
}

func (t *Table) add(item string, n int) {
	cur, ok := t.tree.Get(Entry{Item: item})
	if !ok {
		cur = Entry{Item: item}
	}
	cur.Count += n
	t.tree.ReplaceOrInsert(cur)
	t.total += n
}

// Get возвращает счётчик для точного (с учётом регистра) ключа.
func (t *Table) Get(item string) (int, bool) {
	e, ok := t.tree.Get(Entry{Item: item})
	if !ok {
		return 0, false
	}
	return e.Count, true
}

// Len - количество уникальных товаров.
func (t *Table) Len() int {
	return t.tree.Len()
}

// Total - сумма всех счётчиков, то есть число непустых входных строк.
func (t *Table) Total() int {
	return t.total
}

// Range вызывает f для всех записей по возрастанию ключа, пока f возвращает true.
func (t *Table) Range(f func(item string, count int) bool) {
	t.tree.Ascend(func(e Entry) bool {
		return f(e.Item, e.Count)
	})
}

// Entries возвращает все записи в порядке обхода.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, t.tree.Len())
	t.tree.Ascend(func(e Entry) bool {
		entries = append(entries, e)
		return true
	})
	return entries
}
