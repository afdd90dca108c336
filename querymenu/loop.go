//go:build !solution

package querymenu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	ruleWidth     = 50
	listRuleWidth = 25
)

// Run крутит меню, пока пользователь не выберет выход.
// Конец ввода в любой момент завершает цикл с ErrInputClosed.
func (m *Menu) Run(in io.Reader, out io.Writer) error {
	r := bufio.NewReader(in)
	for {
		m.printMenu(out)

		line, err := readLine(r)
		if err != nil {
			m.printGoodbye(out)
			return err
		}

		choice, err := parseChoice(line)
		if err != nil {
			m.logger.Debug("invalid menu choice", zap.String("input", line))
			m.recorder.InvalidChoice()
			fmt.Fprintln(out, "Invalid choice. Please enter a number between 1 and 4.")
			continue
		}

		m.recorder.Action(choice.String())
		if choice == ChoiceExit {
			m.printGoodbye(out)
			return nil
		}

		if err := m.execute(choice, r, out); err != nil {
			m.printGoodbye(out)
			return err
		}

		// Пауза перед повторным показом меню
		fmt.Fprint(out, "\nPress Enter to continue...")
		if _, err := readLine(r); err != nil {
			m.printGoodbye(out)
			return err
		}
	}
}

func (m *Menu) execute(choice Choice, r *bufio.Reader, out io.Writer) error {
	switch choice {
	case ChoiceSearch:
		fmt.Fprint(out, "\nEnter the item you wish to search for: ")
		query, err := readLine(r)
		if err != nil {
			return err
		}
		m.printLookup(out, query)
	case ChoiceListAll:
		m.printList(out)
	case ChoiceHistogram:
		m.printHistogram(out)
	default:
		return fmt.Errorf("%w: %d", ErrInvalidChoice, int(choice))
	}
	return nil
}

func (m *Menu) printLookup(out io.Writer, query string) {
	item, count, err := m.Lookup(query)
	if errors.Is(err, ErrNotFound) {
		m.logger.Debug("lookup miss", zap.String("query", query))
		m.recorder.Lookup(false)
		fmt.Fprintf(out, "\nItem '%s' not found in the data.\n", strings.ToLower(query))
		return
	}
	m.recorder.Lookup(true)
	fmt.Fprintf(out, "\nFrequency of '%s': %d\n", item, count)
}

func (m *Menu) printList(out io.Writer) {
	fmt.Fprintln(out, "\n=== All Items and Their Frequencies ===")
	fmt.Fprintf(out, "%-*s%s\n", m.width, "Item", "Frequency")
	fmt.Fprintln(out, strings.Repeat("-", listRuleWidth))
	for _, e := range m.ListAll() {
		fmt.Fprintf(out, "%-*s%d\n", m.width, e.Item, e.Count)
	}
}

func (m *Menu) printHistogram(out io.Writer) {
	fmt.Fprintln(out, "\n=== Item Frequency Histogram ===")
	for _, bar := range m.Histogram() {
		fmt.Fprintf(out, "%-*s%s\n", m.width, bar.Item, bar.Marks)
	}
}

func (m *Menu) printMenu(out io.Writer) {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(out, "\n%s\n", rule)
	fmt.Fprintln(out, "        CORNER GROCER ITEM TRACKER")
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "1. Search for item frequency")
	fmt.Fprintln(out, "2. Display all item frequencies")
	fmt.Fprintln(out, "3. Display frequency histogram")
	fmt.Fprintln(out, "4. Exit program")
	fmt.Fprintln(out, rule)
	fmt.Fprint(out, "Enter your choice (1-4): ")
}

func (m *Menu) printGoodbye(out io.Writer) {
	fmt.Fprintln(out, "\nThank you for using the Corner Grocer Item Tracking System!")
	fmt.Fprintln(out, "Goodbye!")
}

// parseChoice принимает только целое число в диапазоне меню, всё остальное - ErrInvalidChoice.
func parseChoice(line string) (Choice, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChoice, line)
	}
	if !ValidateChoice(n) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidChoice, n)
	}
	return Choice(n), nil
}

// readLine возвращает строку без перевода строки. Последняя строка без '\n'
// тоже считается строкой.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("%w: %w", ErrInputClosed, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
