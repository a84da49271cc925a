package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	ms "cargeo.dev/cargeo/settings"
)

type settingsState int

const (
	showSettingsMenu settingsState = iota
	settingsExit
	settingsInput
	saveSettings
)

type settingsItem struct {
	title, desc string
	key         string
	state       settingsState
}

func (i settingsItem) Title() string { return i.title }
func (i settingsItem) Description() string {
	if i.key == "" {
		return i.desc
	}
	value, _ := ms.Settings.Get(i.key)
	return fmt.Sprintf("%s (now %s)", i.desc, value)
}
func (i settingsItem) FilterValue() string { return i.title }

type settingsModel struct {
	list         list.Model
	state        settingsState
	textInput    textinput.Model
	selectedItem settingsItem
	message      string
}

func (m settingsModel) Update(msg tea.Msg, mm *uiModel) (settingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter && m.state == showSettingsMenu && m.list.FilterState() != list.Filtering {
			it, ok := m.list.SelectedItem().(settingsItem)
			if !ok {
				return m, nil
			}
			m.selectedItem = it
			m.message = ""
			switch it.state {
			case settingsExit:
				mm.state = showMenu
			case settingsInput:
				value, _ := ms.Settings.Get(it.key)
				m.textInput = textinput.New()
				m.textInput.SetValue(value)
				m.textInput.Focus()
				m.state = settingsInput
				return m, textinput.Blink
			case saveSettings:
				m.message = "Settings saved"
				if err := ms.Settings.Save(); err != nil {
					m.message = invalidStyle.Render(err.Error())
				}
			}
			return m, nil
		}
		if m.state == settingsInput {
			switch msg.Type {
			case tea.KeyEnter:
				m.state = showSettingsMenu
				m.message = ""
				if err := ms.Settings.Set(m.selectedItem.key, m.textInput.Value()); err != nil {
					m.message = invalidStyle.Render(err.Error())
				}
				// values shown in the sheet depend on the settings
				mm.measure.track()
				return m, nil
			case tea.KeyEsc:
				m.state = showSettingsMenu
				return m, nil
			}
			var cmd tea.Cmd
			m.textInput, cmd = m.textInput.Update(msg)
			return m, cmd
		}
		if msg.Type == tea.KeyEsc && m.list.FilterState() == list.Unfiltered {
			mm.state = showMenu
			return m, nil
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-2)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m settingsModel) View() string {
	switch m.state {
	case settingsInput:
		return docStyle.Render(fmt.Sprintf(
			"%s\n\n%s\n\n%s",
			m.selectedItem.Title(),
			m.textInput.View(),
			"(esc to cancel)",
		) + "\n")
	default:
		view := m.list.View()
		if m.message != "" {
			view += "\n" + m.message
		}
		return docStyle.Render(view)
	}
}

func getSettingsModel() settingsModel {
	items := []list.Item{
		settingsItem{
			title: "Set Log Level",
			desc:  "How verbose logging is: debug, info, warn or error",
			key:   "log_level",
			state: settingsInput,
		},
		settingsItem{
			title: "Decimals",
			desc:  "Number of decimals shown for every value",
			key:   "decimals",
			state: settingsInput,
		},
		settingsItem{
			title: "Blank Unresolved Values",
			desc:  "Show -- instead of 0.00 for values that still miss a reading",
			key:   "blank_unresolved",
			state: settingsInput,
		},
		settingsItem{
			title: "Save Settings",
			desc:  "Persists any updates to the settings across runs",
			state: saveSettings,
		},
		settingsItem{
			title: "Return to Main Menu",
			desc:  "Exit settings and return to the main menu",
			state: settingsExit,
		},
	}

	listDelegate := list.NewDefaultDelegate()
	m := settingsModel{list: list.New(items, listDelegate, 0, 0)}
	m.list.Title = "Settings"
	return m
}
