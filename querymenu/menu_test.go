//go:build !change

package querymenu

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"gitlab.com/slon/grocer/freqtable"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var groceries = []string{"Apple", "banana", "apple", "Apple"}

func TestValidateChoice(t *testing.T) {
	for _, tc := range []struct {
		n     int
		valid bool
	}{
		{n: -1, valid: false},
		{n: 0, valid: false},
		{n: 1, valid: true},
		{n: 2, valid: true},
		{n: 3, valid: true},
		{n: 4, valid: true},
		{n: 5, valid: false},
		{n: 100, valid: false},
	} {
		require.Equal(t, tc.valid, ValidateChoice(tc.n), "choice %d", tc.n)
	}
}

func TestLookup(t *testing.T) {
	for _, mode := range []LookupMode{ModeScan, ModeIndex} {
		t.Run(string(mode), func(t *testing.T) {
			m := New(freqtable.Build(groceries), Options{Mode: mode})

			for _, tc := range []struct {
				query string
				item  string
				count int
			}{
				// "Apple" идёт раньше "apple", поэтому выигрывает он
				{query: "APPLE", item: "Apple", count: 2},
				{query: "apple", item: "Apple", count: 2},
				{query: "aPpLe", item: "Apple", count: 2},
				{query: "banana", item: "banana", count: 1},
				{query: "BaNaNa", item: "banana", count: 1},
			} {
				item, count, err := m.Lookup(tc.query)
				require.NoError(t, err, tc.query)
				require.Equal(t, tc.item, item, tc.query)
				require.Equal(t, tc.count, count, tc.query)
			}

			for _, query := range []string{"", "cherry", "appl", "apple "} {
				_, _, err := m.Lookup(query)
				require.True(t, errors.Is(err, ErrNotFound), "query %q", query)
			}
		})
	}
}

func TestLookupEveryCaseVariant(t *testing.T) {
	table := freqtable.Build(strings.Split("Zucchini\nCranberries\nZucchini\nPotatoes\nPeas\nPeas\nPeas", "\n"))
	m := New(table, Options{})

	table.Range(func(item string, count int) bool {
		for _, q := range []string{item, strings.ToLower(item), strings.ToUpper(item)} {
			got, n, err := m.Lookup(q)
			require.NoError(t, err)
			require.Equal(t, item, got)
			require.Equal(t, count, n)
		}
		return true
	})
}

func TestListAll(t *testing.T) {
	m := New(freqtable.Build(groceries), Options{})

	expected := []freqtable.Entry{
		{Item: "Apple", Count: 2},
		{Item: "apple", Count: 1},
		{Item: "banana", Count: 1},
	}
	if diff := cmp.Diff(expected, m.ListAll()); diff != "" {
		t.Errorf("ListAll mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyTable(t *testing.T) {
	m := New(nil, Options{})

	require.Empty(t, m.ListAll())
	require.Empty(t, m.Histogram())
	_, _, err := m.Lookup("apple")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestHistogram(t *testing.T) {
	table := freqtable.Build([]string{"Apple", "banana", "apple", "Apple", "banana", "banana", "Kale"})

	for _, marker := range []rune{0, '#'} {
		m := New(table, Options{Marker: marker})
		want := "*"
		if marker != 0 {
			want = string(marker)
		}

		bars := m.Histogram()
		require.Len(t, bars, table.Len())
		for _, bar := range bars {
			count, ok := table.Get(bar.Item)
			require.True(t, ok)
			require.Equal(t, count, len(bar.Marks))
			require.Equal(t, strings.Repeat(want, count), bar.Marks)
		}
		require.Equal(t, []string{"Apple", "Kale", "apple", "banana"}, []string{
			bars[0].Item, bars[1].Item, bars[2].Item, bars[3].Item,
		})
	}
}

func TestChoiceString(t *testing.T) {
	require.Equal(t, "search", ChoiceSearch.String())
	require.Equal(t, "exit", ChoiceExit.String())
	require.Equal(t, "choice(9)", Choice(9).String())
}
