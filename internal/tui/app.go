// Package tui provides the interactive Bubble Tea dashboard for billdue.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/billdue/internal/cli"
	"github.com/theirongolddev/billdue/internal/config"
	"github.com/theirongolddev/billdue/internal/model"
	"github.com/theirongolddev/billdue/internal/store"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// keyMap defines the dashboard keybindings.
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	First      key.Binding
	Last       key.Binding
	Add        key.Binding
	TogglePaid key.Binding
	Delete     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	Up:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
	Down:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
	Left:       key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "left")),
	Right:      key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "right")),
	First:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "first card")),
	Last:       key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "last card")),
	Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add a person")),
	TogglePaid: key.NewBinding(key.WithKeys("p", " "), key.WithHelp("p/space", "toggle paid")),
	Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete (y to confirm)")),
	Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
	Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

// App is the root Bubble Tea model.
type App struct {
	store  *store.Store
	cfg    config.Config
	people []model.Person
	now    func() time.Time

	// UI state
	width    int
	height   int
	cursor   int
	showHelp bool
	notice   string

	// Delete confirmation for the person under the cursor
	confirming bool

	// Add-person form (huh)
	addForm *huh.Form
	addVals addValues
}

// addValues holds the raw add-form fields before validation.
type addValues struct {
	name      string
	card      string
	day       int
	amountStr string
}

const (
	minTerminalWidth = 60
	cardOuterWidth   = 36

	statusBarHeight = 1
	minContentRows  = 5
)

// NewApp creates a new TUI app model over an already-hydrated store.
func NewApp(s *store.Store, cfg config.Config) App {
	return App{
		store:  s,
		cfg:    cfg,
		people: s.People(),
		now:    time.Now,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// refresh re-reads the list from the store and clamps the cursor.
func (a *App) refresh() {
	a.people = a.store.People()
	if a.cursor >= len(a.people) {
		a.cursor = len(a.people) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// columns returns how many person cards fit per row.
func (a App) columns() int {
	cols := a.width / cardOuterWidth
	if cols < 1 {
		cols = 1
	}
	return cols
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.addForm != nil {
			a.addForm = a.addForm.WithWidth(msg.Width).WithHeight(msg.Height - 2)
		}
		return a, nil

	case tea.KeyMsg:
		// Global: quit
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Add form intercepts all keys while active
		if a.addForm != nil {
			return a.updateAddForm(msg)
		}

		// Delete confirmation intercepts the next key
		if a.confirming {
			a.confirming = false
			if s := msg.String(); s == "y" || s == "Y" {
				a.deleteAtCursor()
			} else {
				a.notice = "Delete cancelled"
			}
			return a, nil
		}

		// Dismiss help
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		a.notice = ""

		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = true
		case key.Matches(msg, keys.Add):
			a.addVals = addValues{day: 1}
			a.addForm = newAddForm(&a.addVals)
			if a.width > 0 {
				a.addForm = a.addForm.WithWidth(a.width).WithHeight(a.height - 2)
			}
			return a, a.addForm.Init()
		case key.Matches(msg, keys.TogglePaid):
			a.togglePaidAtCursor()
		case key.Matches(msg, keys.Delete):
			if len(a.people) > 0 {
				a.confirming = true
			}
		case key.Matches(msg, keys.Down):
			if a.cursor+a.columns() < len(a.people) {
				a.cursor += a.columns()
			}
		case key.Matches(msg, keys.Up):
			if a.cursor-a.columns() >= 0 {
				a.cursor -= a.columns()
			}
		case key.Matches(msg, keys.Right):
			if a.cursor < len(a.people)-1 {
				a.cursor++
			}
		case key.Matches(msg, keys.Left):
			if a.cursor > 0 {
				a.cursor--
			}
		case key.Matches(msg, keys.First):
			a.cursor = 0
		case key.Matches(msg, keys.Last):
			a.cursor = len(a.people) - 1
			if a.cursor < 0 {
				a.cursor = 0
			}
		}
		return a, nil
	}

	// Forward unhandled messages to the add form (cursor blinks, etc.)
	if a.addForm != nil {
		return a.updateAddForm(msg)
	}

	return a, nil
}

func (a App) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.addForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.addForm = f
	}

	if a.addForm.State == huh.StateCompleted {
		a.submitAdd()
		a.addForm = nil
		return a, nil
	}

	if a.addForm.State == huh.StateAborted {
		a.addForm = nil
		a.notice = "Add cancelled"
		return a, nil
	}

	return a, cmd
}

// submitAdd converts the completed form into a store mutation.
func (a *App) submitAdd() {
	amount, err := strconv.ParseFloat(strings.TrimSpace(a.addVals.amountStr), 64)
	if err != nil || amount < 0 {
		// The form validates the amount; a bad value here means the form
		// was aborted mid-edit. Treat as cancelled.
		a.notice = "Add cancelled"
		return
	}

	p, err := a.store.Add(model.Draft{
		Name:         strings.TrimSpace(a.addVals.name),
		CardLastFour: cli.TruncateCardInput(a.addVals.card),
		BillingDate:  a.addVals.day,
		Amount:       amount,
	})
	if err != nil {
		a.notice = fmt.Sprintf("Could not save: %s", err)
		return
	}

	a.refresh()
	// Move the cursor to the new person (appended at the end).
	for i, q := range a.people {
		if q.ID == p.ID {
			a.cursor = i
		}
	}
	a.notice = fmt.Sprintf("Added %s", p.Name)
}

func (a *App) togglePaidAtCursor() {
	if a.cursor >= len(a.people) {
		return
	}
	p := a.people[a.cursor]
	if err := a.store.TogglePaid(p.ID); err != nil {
		a.notice = fmt.Sprintf("Could not save: %s", err)
		return
	}
	a.refresh()
	if a.people[a.cursor].IsPaid {
		a.notice = fmt.Sprintf("%s marked as paid", p.Name)
	} else {
		a.notice = fmt.Sprintf("%s marked as unpaid", p.Name)
	}
}

func (a *App) deleteAtCursor() {
	if a.cursor >= len(a.people) {
		return
	}
	p := a.people[a.cursor]
	if err := a.store.Remove(p.ID); err != nil {
		a.notice = fmt.Sprintf("Could not save: %s", err)
		return
	}
	a.refresh()
	a.notice = fmt.Sprintf("Removed %s", p.Name)
}

// newAddForm builds the add-person form: the same four fields and
// constraints as the original entry form.
func newAddForm(vals *addValues) *huh.Form {
	dayOptions := make([]huh.Option[int], 0, 31)
	for d := 1; d <= 31; d++ {
		dayOptions = append(dayOptions, huh.NewOption(strconv.Itoa(d), d))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("John Doe").
				Value(&vals.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Card last 4 digits").
				Placeholder("1234").
				CharLimit(4).
				Value(&vals.card).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("card digits are required")
					}
					return nil
				}),
			huh.NewSelect[int]().
				Title("Billing date (day of month)").
				Options(dayOptions...).
				Value(&vals.day),
			huh.NewInput().
				Title("Amount due").
				Placeholder("0.00").
				Value(&vals.amountStr).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil {
						return errors.New("amount must be a number")
					}
					if v < 0 {
						return errors.New("amount can't be negative")
					}
					return nil
				}),
		),
	).WithShowHelp(true)
}
