// Package tui is the terminal front end: a Bubble Tea program over the same
// dashboard controller the HTTP API uses.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"docdash/internal/dashboard"
	"docdash/internal/form"
	"docdash/internal/model"
	"docdash/internal/session"
)

type screen int

const (
	screenLogin screen = iota
	screenDashboard
)

// textFields are edited through text inputs; the rest cycle with left/right.
var textFields = map[form.Field]bool{
	form.FieldName:   true,
	form.FieldNumber: true,
	form.FieldLink:   true,
}

// App is the root Bubble Tea model.
type App struct {
	ctx  context.Context
	gate *session.Gate
	log  *zap.Logger

	screen screen
	dash   *dashboard.Dashboard
	view   dashboard.View

	table     table.Model
	rowIDs    []string
	search    textinput.Model
	searching bool

	inputs map[form.Field]*textinput.Model
	focus  int

	status string
	err    error

	width  int
	height int
}

// Option customizes App construction.
type Option func(*App)

func WithLogger(log *zap.Logger) Option {
	return func(a *App) {
		if log != nil {
			a.log = log
		}
	}
}

func WithContext(ctx context.Context) Option {
	return func(a *App) {
		if ctx != nil {
			a.ctx = ctx
		}
	}
}

// New creates the app on the login screen.
func New(gate *session.Gate, opts ...Option) *App {
	search := textinput.New()
	search.Placeholder = "Search by name or number"
	search.Prompt = "/ "

	a := &App{
		ctx:    context.Background(),
		gate:   gate,
		log:    zap.NewNop(),
		search: search,
		table: table.New(
			table.WithColumns(columns(100)),
			table.WithFocused(true),
			table.WithHeight(10),
		),
		inputs: make(map[form.Field]*textinput.Model),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.table.SetColumns(columns(msg.Width))
		if h := msg.Height - 22; h > 3 {
			a.table.SetHeight(h)
		}
		return a, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.screen == screenLogin {
			return a.updateLogin(msg)
		}
		return a.updateDashboard(msg)
	}
	return a, nil
}

func (a *App) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "enter":
		if err := a.gate.Login(a.ctx); err != nil {
			a.err = err
			a.log.Error("login failed", zap.Error(err))
			return a, nil
		}
		d, err := a.gate.Dashboard()
		if err != nil {
			a.err = err
			return a, nil
		}
		a.dash = d
		a.screen = screenDashboard
		a.err = nil
		a.status = "Logged in"
		a.search.SetValue("")
		a.refresh()
	}
	return a, nil
}

func (a *App) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.err = nil
	switch a.view.Modal.Kind {
	case dashboard.ModalAdd, dashboard.ModalEdit:
		return a.updateForm(msg)
	case dashboard.ModalDelete:
		return a.updateDelete(msg)
	}
	if a.searching {
		return a.updateSearch(msg)
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "L":
		a.gate.Logout()
		a.dash = nil
		a.view = dashboard.View{}
		a.screen = screenLogin
		a.status = "Logged out"
		return a, nil
	case "/":
		a.searching = true
		return a, a.search.Focus()
	case "d":
		a.cycleFilter(model.FilterDivision)
	case "c":
		a.cycleFilter(model.FilterCategory)
	case "s":
		a.cycleFilter(model.FilterStatus)
	case "r":
		a.dash.ResetFilters(a.ctx)
		a.search.SetValue("")
		a.status = "Filters reset"
	case "a":
		a.loadForm(a.dash.OpenAdd())
	case "e":
		if id, ok := a.selectedID(); ok {
			m, err := a.dash.OpenEdit(a.ctx, id)
			a.setErr(err)
			if err == nil {
				a.loadForm(m)
			}
		}
	case "x":
		if id, ok := a.selectedID(); ok {
			_, err := a.dash.OpenDelete(a.ctx, id)
			a.setErr(err)
		}
	default:
		var cmd tea.Cmd
		a.table, cmd = a.table.Update(msg)
		return a, cmd
	}
	a.refresh()
	return a, nil
}

func (a *App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		a.searching = false
		a.search.Blur()
		return a, nil
	}
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	_, err := a.dash.SetFilter(a.ctx, string(model.FilterSearch), a.search.Value())
	a.setErr(err)
	a.refresh()
	return a, cmd
}

func (a *App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := form.Fields()
	current := fields[a.focus]

	switch msg.Type {
	case tea.KeyEsc:
		a.dash.Close()
		a.status = "Changes discarded"
		a.refresh()
		return a, nil
	case tea.KeyTab:
		return a, a.setFocus((a.focus + 1) % len(fields))
	case tea.KeyShiftTab:
		return a, a.setFocus((a.focus + len(fields) - 1) % len(fields))
	case tea.KeyEnter:
		a.submit()
		return a, nil
	case tea.KeyLeft, tea.KeyRight:
		if !textFields[current] {
			step := 1
			if msg.Type == tea.KeyLeft {
				step = -1
			}
			next := cycleValue(enumValues(current), a.view.Modal.Fields[string(current)], step)
			_, err := a.dash.SetField(string(current), next)
			a.setErr(err)
			a.refresh()
			return a, nil
		}
	}

	in, ok := a.inputs[current]
	if !ok {
		return a, nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	_, err := a.dash.SetField(string(current), in.Value())
	a.setErr(err)
	a.refresh()
	return a, cmd
}

func (a *App) updateDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		a.submit()
	case "n", "esc":
		a.dash.Close()
		a.status = "Deletion cancelled"
		a.refresh()
	}
	return a, nil
}

func (a *App) submit() {
	res, err := a.dash.Submit(a.ctx)
	if err != nil {
		a.setErr(err)
		a.refresh()
		return
	}
	switch {
	case res.Removed:
		a.status = "Document deleted"
	case res.Kind == dashboard.ModalDelete:
		a.status = "Document was already gone"
	case res.Committed && res.Document != nil:
		a.status = fmt.Sprintf("Saved %s", res.Document.Name)
	case res.Committed:
		a.status = "Document no longer exists; nothing saved"
	default:
		a.status = form.ReviewTitle
	}
	a.log.Debug("modal submitted", zap.String("kind", string(res.Kind)), zap.String("state", res.State))
	a.refresh()
}

func (a *App) cycleFilter(field model.FilterField) {
	next := cycleValue(filterValues(field), a.view.Criteria.Get(field), 1)
	_, err := a.dash.SetFilter(a.ctx, string(field), next)
	a.setErr(err)
}

func (a *App) selectedID() (string, bool) {
	i := a.table.Cursor()
	if i < 0 || i >= len(a.rowIDs) {
		a.status = "No document selected"
		return "", false
	}
	return a.rowIDs[i], true
}

// loadForm copies the modal's field values into fresh text inputs.
func (a *App) loadForm(m dashboard.ModalView) {
	a.inputs = make(map[form.Field]*textinput.Model)
	for _, f := range form.Fields() {
		if !textFields[f] {
			continue
		}
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 200
		in.SetValue(m.Fields[string(f)])
		a.inputs[f] = &in
	}
	a.setFocus(0)
}

func (a *App) setFocus(i int) tea.Cmd {
	a.focus = i
	var cmd tea.Cmd
	for f, in := range a.inputs {
		if f == form.Fields()[i] {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
	}
	return cmd
}

func (a *App) setErr(err error) {
	if err != nil {
		a.err = err
		a.log.Debug("action rejected", zap.Error(err))
	}
}

// refresh re-reads the view and rebuilds the table rows.
func (a *App) refresh() {
	if a.dash == nil {
		return
	}
	v, err := a.dash.View(a.ctx)
	if err != nil {
		a.err = err
		return
	}
	a.view = v

	rows := make([]table.Row, 0, len(v.Documents))
	a.rowIDs = a.rowIDs[:0]
	for _, d := range v.Documents {
		rows = append(rows, table.Row{d.Name, d.Number, string(d.Division), string(d.Category), string(d.Status), d.CreatedDate()})
		a.rowIDs = append(a.rowIDs, d.ID)
	}
	a.table.SetRows(rows)
	if c := a.table.Cursor(); c >= len(rows) && len(rows) > 0 {
		a.table.SetCursor(len(rows) - 1)
	}
}

func columns(width int) []table.Column {
	name := 28
	if width > 100 {
		name += (width - 100) / 2
	}
	return []table.Column{
		{Title: "Name", Width: name},
		{Title: "Number", Width: 12},
		{Title: "Division", Width: 22},
		{Title: "Category", Width: 10},
		{Title: "Status", Width: 10},
		{Title: "Created", Width: 10},
	}
}

func filterValues(field model.FilterField) []string {
	out := []string{model.Wildcard}
	switch field {
	case model.FilterDivision:
		out = append(out, stringsOf(model.Divisions())...)
	case model.FilterCategory:
		out = append(out, stringsOf(model.Categories())...)
	case model.FilterStatus:
		out = append(out, stringsOf(model.Statuses())...)
	}
	return out
}

func enumValues(field form.Field) []string {
	switch field {
	case form.FieldDivision:
		return stringsOf(model.Divisions())
	case form.FieldCategory:
		return stringsOf(model.Categories())
	case form.FieldStatus:
		return stringsOf(model.Statuses())
	}
	return nil
}

func stringsOf[T ~string](vs []T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}

// cycleValue returns the neighbour of cur in values, wrapping at both ends.
func cycleValue(values []string, cur string, step int) string {
	if len(values) == 0 {
		return cur
	}
	idx := 0
	for i, v := range values {
		if strings.EqualFold(v, cur) {
			idx = i
			break
		}
	}
	return values[((idx+step)%len(values)+len(values))%len(values)]
}
