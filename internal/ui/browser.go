package ui

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"mktest/internal/domain"
)

// ScaffoldFunc scaffolds one class and returns a status line for the
// details pane.
type ScaffoldFunc func(class domain.Class) (string, error)

// Browser is an interactive picker over classes that have no test yet.
type Browser struct{}

// NewBrowser creates a new Browser
func NewBrowser() *Browser {
	return &Browser{}
}

// Browse shows the classes in a TUI list. Enter scaffolds the selected
// class via the callback, q or Escape quits.
func (b *Browser) Browse(classes []domain.Class, scaffold ScaffoldFunc) error {
	if len(classes) == 0 {
		color.Green("✓ Every class already has a test file")
		return nil
	}

	app := tview.NewApplication()

	done := make(map[int]bool)

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	itemText := func(index int) string {
		class := classes[index]
		if done[index] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, class.Name)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, class.Name)
	}

	for i := range classes {
		list.AddItem(itemText(i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	showDetails := func(index int) {
		if index < 0 || index >= len(classes) {
			return
		}
		class := classes[index]
		detailsView.SetText(fmt.Sprintf(
			"[yellow]%s[white]\n\nsource: %s\ntest:   %s\n\nEnter scaffolds the test, q quits.",
			class.Name, class.SourcePath, class.TestPath))
	}
	showDetails(0)

	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		showDetails(index)
	})

	list.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		class := classes[index]
		if done[index] {
			detailsView.SetText(fmt.Sprintf("[yellow]%s[white]\n\nalready scaffolded in this session", class.Name))
			return
		}
		status, err := scaffold(class)
		if err != nil {
			detailsView.SetText(fmt.Sprintf("[red]error scaffolding %s: %v[white]", class.Name, err))
			return
		}
		done[index] = true
		list.SetItemText(index, itemText(index), "")
		detailsView.SetText(fmt.Sprintf("[yellow]%s[white]\n\n%s", class.Name, status))
	})

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})

	return app.SetRoot(flex, true).Run()
}
