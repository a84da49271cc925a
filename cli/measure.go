package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cargeo.dev/cargeo/geometry"
	ms "cargeo.dev/cargeo/settings"
	"cargeo.dev/cargeo/utils"
)

type measureState int

const (
	showFields measureState = iota
	editField
)

type fieldItem struct {
	input    geometry.Input
	value    float64
	supplied bool
	invalid  bool
}

func (i fieldItem) Title() string {
	if i.invalid {
		return invalidStyle.Render(i.input.Label() + " (invalid)")
	}
	return i.input.Label()
}

func (i fieldItem) Description() string {
	if !i.supplied {
		return fmt.Sprintf("%s: not measured", i.input)
	}
	return fmt.Sprintf("%s: %s mm", i.input, i.text())
}

func (i fieldItem) FilterValue() string { return i.input.Label() + " " + i.input.String() }

func (i fieldItem) text() string {
	if !i.supplied {
		return ""
	}
	return fmt.Sprint(i.value)
}

// measureModel lists every input next to the live alignment sheet. Derived
// values whose displayed text changed with the last edit are highlighted.
type measureModel struct {
	list      list.Model
	state     measureState
	textInput textinput.Model
	selected  geometry.Input
	engine    *geometry.Engine
	invalid   map[geometry.Input]bool
	trackers  map[geometry.Derived]*utils.Tracker[string]
	changed   map[geometry.Derived]string
	err       error
}

func newMeasureModel(engine *geometry.Engine) measureModel {
	m := measureModel{
		engine:   engine,
		invalid:  map[geometry.Input]bool{},
		trackers: map[geometry.Derived]*utils.Tracker[string]{},
		changed:  map[geometry.Derived]string{},
	}
	for _, d := range geometry.DerivedValues() {
		m.trackers[d] = &utils.Tracker[string]{}
	}
	m.list = list.New(m.fields(), list.NewDefaultDelegate(), 0, 0)
	m.list.Title = "Readings"
	m.track()
	return m
}

func (m measureModel) fields() []list.Item {
	items := []list.Item{}
	for _, in := range geometry.Inputs() {
		items = append(items, fieldItem{
			input:    in,
			value:    m.engine.Input(in),
			supplied: m.engine.Supplied(in),
			invalid:  m.invalid[in],
		})
	}
	return items
}

// track records the displayed text of every derived value and keeps the
// previous text of the ones that changed since the last call.
func (m measureModel) track() {
	snapshot := m.engine.Snapshot()
	for _, d := range geometry.DerivedValues() {
		text := snapshot.Get(d).Format(ms.Settings.Decimals, ms.Settings.BlankUnresolved)
		tracker := m.trackers[d]
		if tracker.Update(text) {
			m.changed[d] = tracker.LastValue
		} else {
			delete(m.changed, d)
		}
	}
}

// apply commits the edited text. Empty text clears a reading; text that does
// not parse leaves the value alone and marks the field invalid.
func (m *measureModel) apply(text string) {
	in := m.selected
	var err error
	if strings.TrimSpace(text) == "" && in.Reading() {
		m.engine.Clear(in)
	} else {
		err = m.engine.SetInput(in.String(), text)
	}
	utils.Logde(err)
	m.err = err
	m.invalid[in] = err != nil
	m.track()
}

func (m measureModel) refresh() (measureModel, tea.Cmd) {
	for in := range m.invalid {
		delete(m.invalid, in)
	}
	m.err = nil
	m.state = showFields
	m.track()
	return m, m.list.SetItems(m.fields())
}

func (m measureModel) Update(msg tea.Msg, mm *uiModel) (measureModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == editField {
			switch msg.Type {
			case tea.KeyEnter:
				m.apply(m.textInput.Value())
				m.state = showFields
				return m, m.list.SetItems(m.fields())
			case tea.KeyEsc:
				m.state = showFields
				return m, nil
			}
			var cmd tea.Cmd
			m.textInput, cmd = m.textInput.Update(msg)
			return m, cmd
		}
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.Type {
		case tea.KeyEnter:
			it, ok := m.list.SelectedItem().(fieldItem)
			if !ok {
				return m, nil
			}
			m.selected = it.input
			m.textInput = newValueInput(it.text())
			m.state = editField
			return m, textinput.Blink
		case tea.KeyEsc:
			if m.list.FilterState() == list.Unfiltered {
				mm.state = showMenu
				return m, nil
			}
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width/2-h, msg.Height-v)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func newValueInput(current string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "mm"
	ti.CharLimit = 32
	ti.SetValue(current)
	ti.Focus()
	return ti
}

func (m measureModel) View() string {
	left := m.list.View()
	if m.state == editField {
		left = fmt.Sprintf(
			"%s\n\n%s\n\n%s",
			m.selected.Label(),
			m.textInput.View(),
			"(enter to apply, empty to clear, esc to cancel)",
		)
	}
	if m.err != nil {
		left += "\n\n" + invalidStyle.Render(m.err.Error())
	}

	s := newSheet(m.engine, ms.Settings)
	s.changed = m.changed
	return docStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", s.String()))
}
