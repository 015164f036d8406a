package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kerbaras/animes/pkg/app/styles"
)

type EntryListItem struct {
	ID       int
	Title    string
	Subtitle string
}

// EntryList is a scrollable, wrapping selection list of catalogue records.
type EntryList struct {
	Items         []EntryListItem
	SelectedIndex int
	Width         int
	Height        int
	EmptyText     string
}

func NewEntryList(emptyText string) *EntryList {
	return &EntryList{
		Items:         []EntryListItem{},
		SelectedIndex: 0,
		Width:         80,
		Height:        20,
		EmptyText:     emptyText,
	}
}

func (l *EntryList) SetItems(items []EntryListItem) {
	l.Items = items
	if l.SelectedIndex >= len(items) && len(items) > 0 {
		l.SelectedIndex = len(items) - 1
	}
	if len(items) == 0 {
		l.SelectedIndex = 0
	}
}

func (l *EntryList) Next() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex++
	if l.SelectedIndex >= len(l.Items) {
		l.SelectedIndex = 0
	}
}

func (l *EntryList) Prev() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex--
	if l.SelectedIndex < 0 {
		l.SelectedIndex = len(l.Items) - 1
	}
}

func (l *EntryList) Selected() *EntryListItem {
	if len(l.Items) == 0 || l.SelectedIndex >= len(l.Items) {
		return nil
	}
	return &l.Items[l.SelectedIndex]
}

// visibleRange returns the window of items that fits in Height rows while
// keeping the selection in view.
func (l *EntryList) visibleRange() (int, int) {
	rows := l.Height
	if rows < 1 {
		rows = 1
	}
	if len(l.Items) <= rows {
		return 0, len(l.Items)
	}

	start := l.SelectedIndex - rows/2
	if start < 0 {
		start = 0
	}
	end := start + rows
	if end > len(l.Items) {
		end = len(l.Items)
		start = end - rows
	}
	return start, end
}

func (l *EntryList) View() string {
	if len(l.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render(l.EmptyText)
		return lipgloss.Place(l.Width, l.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder
	start, end := l.visibleRange()

	for i := start; i < end; i++ {
		item := l.Items[i]
		id := styles.IDStyle.Render(fmt.Sprintf("#%-3d", item.ID))
		title := item.Title
		if i == l.SelectedIndex {
			title = styles.SelectedRowStyle.Render("▸ " + title)
		} else {
			title = styles.TextStyle.Render("  " + title)
		}

		row := fmt.Sprintf("%s %s", id, title)
		if item.Subtitle != "" {
			row += "  " + styles.MutedStyle.Render(item.Subtitle)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	if start > 0 || end < len(l.Items) {
		b.WriteString(styles.MutedStyle.Render(
			fmt.Sprintf("Showing %d-%d of %d", start+1, end, len(l.Items)),
		))
		b.WriteString("\n")
	}

	return b.String()
}
