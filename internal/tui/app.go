// Package tui provides the interactive Bubble Tea dashboard for chitieu.
package tui

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/OxyzGiaHuy/ExpenseTracker/internal/config"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/ledger"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/model"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/tui/components"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/tui/theme"
)

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeConfirmDelete
	modeJump
	modeSetup
)

const (
	minTerminalWidth = 60
	splitWidth       = 110
	maxContentWidth  = 160
	minContentHeight = 5
)

// Options configures a new App.
type Options struct {
	Store     *ledger.Store
	StorePath string // shown in the status bar, "" for in-memory
	Location  *time.Location
	Now       func() time.Time

	Display config.DisplayConfig

	// LoadErr is the error returned by Store.Load, surfaced as a warning.
	LoadErr error

	// FirstRun opens the setup wizard before the dashboard.
	FirstRun bool
	Config   config.Config
}

// App is the root Bubble Tea model.
type App struct {
	store     *ledger.Store
	storePath string
	loc       *time.Location
	now       func() time.Time
	display   config.DisplayConfig

	// Navigation
	day         time.Time
	month       model.YearMonth
	monthPinned bool // set by [ and ]; otherwise the month follows day

	// Derived from the store on every change
	dayExpenses []model.Expense
	months      []model.YearMonth
	summary     model.MonthSummary

	cursor int
	mode   mode

	// Add form; draft survives the form so an ignored submit keeps its values
	addForm *huh.Form
	draft   *model.Draft
	addErr  string

	// Delete confirmation
	confirmForm *huh.Form
	pending     *ledger.PendingDelete
	approved    *bool

	// Jump to date
	jump    textinput.Model
	jumpErr string

	// First-run setup
	setupForm *huh.Form
	setupVals *SetupValues
	cfg       config.Config

	warning  string
	showHelp bool
	width    int
	height   int
}

// NewApp creates a new TUI app model over an already loaded store.
func NewApp(opts Options) App {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	display := opts.Display
	if display.ChartHeight < 4 {
		display.ChartHeight = config.DefaultConfig().Display.ChartHeight
	}

	ti := textinput.New()
	ti.Placeholder = "2006-01-02"
	ti.CharLimit = 10
	ti.Width = 12

	draft := model.NewDraft()
	a := App{
		store:     opts.Store,
		storePath: opts.StorePath,
		loc:       loc,
		now:       now,
		display:   display,
		day:       now().In(loc),
		draft:     &draft,
		jump:      ti,
		cfg:       opts.Config,
		warning:   loadWarning(opts.Store, opts.LoadErr),
	}
	if opts.FirstRun {
		vals := SetupValuesFrom(opts.Config)
		a.setupVals = &vals
		a.setupForm = NewSetupForm(a.setupVals)
		a.mode = modeSetup
	}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

func (a *App) recompute() {
	all := a.store.All()
	a.dayExpenses = ledger.ExpensesOnDay(all, a.day)
	a.months = ledger.AvailableMonths(all, a.loc)
	if !a.monthPinned {
		a.month = model.MonthOf(a.day, a.loc)
	}
	a.summary = ledger.SummarizeMonth(all, a.month, a.loc)

	if a.cursor >= len(a.dayExpenses) {
		a.cursor = len(a.dayExpenses) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) setDay(day time.Time) {
	a.day = day
	a.cursor = 0
	a.recompute()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(min(msg.Width, 80))
		}
		return a, nil

	case tea.MouseMsg:
		if a.mode != modeBrowse || a.showHelp {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.moveCursor(-1)
		case tea.MouseButtonWheelDown:
			a.moveCursor(1)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.mode {
		case modeSetup:
			if msg.String() == "esc" {
				a.setupForm = nil
				a.mode = modeBrowse
				return a, nil
			}
			return a.updateSetupForm(msg)
		case modeAdd:
			if msg.String() == "esc" {
				a.mode = modeBrowse
				a.addForm = nil
				a.addErr = ""
				return a, nil
			}
			return a.updateAddForm(msg)
		case modeConfirmDelete:
			if msg.String() == "esc" {
				return a.finishDelete(false), nil
			}
			return a.updateConfirmForm(msg)
		case modeJump:
			return a.updateJump(msg)
		}
		return a.updateBrowse(msg)
	}

	// Forward everything else (cursor blinks, form internals) to the active input.
	switch a.mode {
	case modeSetup:
		return a.updateSetupForm(msg)
	case modeAdd:
		return a.updateAddForm(msg)
	case modeConfirmDelete:
		return a.updateConfirmForm(msg)
	case modeJump:
		var cmd tea.Cmd
		a.jump, cmd = a.jump.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "h", "left":
		a.setDay(ledger.AdvanceDay(a.day, -1))
	case "l", "right":
		a.setDay(ledger.AdvanceDay(a.day, 1))
	case "t":
		a.monthPinned = false
		a.setDay(a.now().In(a.loc))
	case "j", "down":
		a.moveCursor(1)
	case "k", "up":
		a.moveCursor(-1)
	case "[":
		a.cycleMonth(1)
	case "]":
		a.cycleMonth(-1)
	case "a":
		a.mode = modeAdd
		a.addErr = ""
		a.addForm = NewAddForm(a.draft)
		return a, a.addForm.Init()
	case "d", "delete":
		return a.startDelete()
	case "g":
		a.mode = modeJump
		a.jumpErr = ""
		a.jump.SetValue("")
		return a, a.jump.Focus()
	case "esc":
		a.warning = ""
	}
	return a, nil
}

func (a *App) moveCursor(delta int) {
	c := a.cursor + delta
	if c >= 0 && c < len(a.dayExpenses) {
		a.cursor = c
	}
}

// cycleMonth steps through AvailableMonths; positive steps go to older
// months. A month with no records (the current day's, before any adds)
// is placed by its position in the ordering.
func (a *App) cycleMonth(older int) {
	if len(a.months) == 0 {
		return
	}
	idx := -1
	for i, m := range a.months {
		if m == a.month {
			idx = i
			break
		}
	}

	var next int
	if idx >= 0 {
		next = idx + older
	} else {
		firstOlder := sort.Search(len(a.months), func(i int) bool {
			return a.months[i].Before(a.month)
		})
		if older > 0 {
			next = firstOlder
		} else {
			next = firstOlder - 1
		}
	}
	if next < 0 || next >= len(a.months) {
		return
	}
	a.month = a.months[next]
	a.monthPinned = true
	a.recompute()
}

// ─── Add ────────────────────────────────────────────────────────

func (a App) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.addForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.addForm = f
	}

	switch a.addForm.State {
	case huh.StateCompleted:
		return a.submitDraft()
	case huh.StateAborted:
		a.mode = modeBrowse
		a.addForm = nil
		return a, nil
	}
	return a, cmd
}

// submitDraft adds the draft on the current day. An incomplete draft is
// ignored and the form reopens with its values.
func (a App) submitDraft() (tea.Model, tea.Cmd) {
	e, err := a.store.Add(*a.draft, a.day)

	var pe *ledger.PersistError
	switch {
	case err == nil:
	case errors.As(err, &pe):
		a.warning = persistWarning(pe)
	case errors.Is(err, ledger.ErrIncompleteDraft):
		a.addErr = ""
		a.addForm = NewAddForm(a.draft)
		return a, a.addForm.Init()
	default:
		a.addErr = err.Error()
		a.addForm = NewAddForm(a.draft)
		return a, a.addForm.Init()
	}

	*a.draft = model.NewDraft()
	a.addForm = nil
	a.addErr = ""
	a.mode = modeBrowse
	a.recompute()
	for i, de := range a.dayExpenses {
		if de.ID == e.ID {
			a.cursor = i
		}
	}
	return a, nil
}

// ─── Delete ─────────────────────────────────────────────────────

func (a App) startDelete() (tea.Model, tea.Cmd) {
	if len(a.dayExpenses) == 0 {
		return a, nil
	}
	p, err := a.store.RequestDelete(a.dayExpenses[a.cursor].ID)
	if err != nil {
		a.warning = err.Error()
		return a, nil
	}
	approved := false
	a.pending = p
	a.approved = &approved
	a.confirmForm = newDeleteConfirm(p.Expense, a.approved)
	a.mode = modeConfirmDelete
	return a, a.confirmForm.Init()
}

func (a App) updateConfirmForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.confirmForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.confirmForm = f
	}

	switch a.confirmForm.State {
	case huh.StateCompleted:
		return a.finishDelete(*a.approved), nil
	case huh.StateAborted:
		return a.finishDelete(false), nil
	}
	return a, cmd
}

// finishDelete feeds the user's decision to the store. Declining leaves
// the list untouched.
func (a App) finishDelete(approved bool) App {
	_, err := a.store.ResolveDelete(a.pending, approved)
	var pe *ledger.PersistError
	if errors.As(err, &pe) {
		a.warning = persistWarning(pe)
	}
	a.pending = nil
	a.approved = nil
	a.confirmForm = nil
	a.mode = modeBrowse
	a.recompute()
	return a
}

// ─── Jump to date ───────────────────────────────────────────────

func (a App) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeBrowse
		a.jump.Blur()
		return a, nil
	case "enter":
		day, err := ledger.ParseDay(strings.TrimSpace(a.jump.Value()), a.loc, a.day)
		if err != nil {
			a.jumpErr = "ngày không hợp lệ, dùng dạng YYYY-MM-DD"
			return a, nil
		}
		a.mode = modeBrowse
		a.jump.Blur()
		a.setDay(day)
		return a, nil
	}

	var cmd tea.Cmd
	a.jump, cmd = a.jump.Update(msg)
	return a, cmd
}

// ─── Setup ──────────────────────────────────────────────────────

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		a.setupVals.Apply(&a.cfg)
		if err := config.Save(a.cfg); err != nil {
			a.warning = fmt.Sprintf("không lưu được cấu hình: %v", err)
		}
		theme.SetActive(a.cfg.Appearance.Theme)
		a.display.ShowShareChart = a.cfg.Display.ShowShareChart
		a.setupForm = nil
		a.mode = modeBrowse
		return a, nil
	case huh.StateAborted:
		a.setupForm = nil
		a.mode = modeBrowse
		return a, nil
	}
	return a, cmd
}

// ─── Warnings ───────────────────────────────────────────────────

func loadWarning(s *ledger.Store, err error) string {
	switch {
	case errors.Is(err, ledger.ErrMalformedData):
		return fmt.Sprintf("dữ liệu hỏng, đã sao lưu vào %s.corrupt", s.Key())
	case err != nil:
		return err.Error()
	case s != nil && s.Skipped() > 0:
		return fmt.Sprintf("bỏ qua %d bản ghi lỗi", s.Skipped())
	}
	return ""
}

func persistWarning(pe *ledger.PersistError) string {
	return fmt.Sprintf("không lưu được (%s): %v", pe.Op, pe.Err)
}

// ─── Helpers ────────────────────────────────────────────────────

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

// placeCenter centers block in the terminal.
func (a App) placeCenter(block string) string {
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, block)
}

var _ tea.Model = App{}

// browseHints are the shortcuts shown under the panels.
var browseHints = []components.KeyHint{
	{Key: "←→", Label: "ngày"},
	{Key: "t", Label: "hôm nay"},
	{Key: "g", Label: "đến ngày"},
	{Key: "a", Label: "thêm"},
	{Key: "d", Label: "xóa"},
	{Key: "[]", Label: "tháng"},
	{Key: "?", Label: "trợ giúp"},
}
