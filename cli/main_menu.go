package cli

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"cargeo.dev/cargeo/geometry"
	ms "cargeo.dev/cargeo/settings"
)

type mainState int

const (
	showMenu mainState = iota
	showMeasure
	showSettings
)

type uiModel struct {
	list     list.Model
	state    mainState
	engine   *geometry.Engine
	measure  measureModel
	settings settingsModel
}

type item struct {
	title, desc string
	state       mainState
	reset       bool
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

func initialModel() uiModel {
	items := []list.Item{
		item{title: "Measure", desc: "Enter laser readings and watch the alignment update", state: showMeasure},
		item{title: "Settings", desc: "Change how values are shown and logged", state: showSettings},
		item{title: "Reset Measurements", desc: "Forget every reading and go back to the nominal car", reset: true},
	}

	engine := geometry.NewEngine()
	listDelegate := list.NewDefaultDelegate()
	m := uiModel{
		list:     list.New(items, listDelegate, 0, 0),
		engine:   engine,
		measure:  newMeasureModel(engine),
		settings: getSettingsModel(),
	}
	m.list.Title = ms.APP_NAME
	return m
}

func (m uiModel) Init() tea.Cmd {
	return nil
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEnter && m.state == showMenu && m.list.FilterState() != list.Filtering {
			it, ok := m.list.SelectedItem().(item)
			if !ok {
				return m, nil
			}
			if it.reset {
				m.engine.Reset()
				var cmd tea.Cmd
				m.measure, cmd = m.measure.refresh()
				return m, cmd
			}
			m.state = it.state
			return m, nil
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		m.measure, _ = m.measure.Update(msg, &m)
		m.settings, _ = m.settings.Update(msg, &m)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case showMeasure:
		m.measure, cmd = m.measure.Update(msg, &m)
	case showSettings:
		m.settings, cmd = m.settings.Update(msg, &m)
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m uiModel) View() string {
	switch m.state {
	case showMeasure:
		return m.measure.View()
	case showSettings:
		return m.settings.View()
	}
	return docStyle.Render(m.list.View())
}

func interactive() error {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "interactive sheet failed")
	}
	return nil
}
