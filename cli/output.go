package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"cargeo.dev/cargeo/geometry"
	ms "cargeo.dev/cargeo/settings"
)

var (
	docStyle     = lipgloss.NewStyle().Margin(1, 2)
	sheetStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	headingStyle = lipgloss.NewStyle().Bold(true)
	changedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	footerStyle  = lipgloss.NewStyle().Faint(true)
)

// sheet renders the derived values laid out like the alignment form: one
// block per axle with the hubs either side of the track width, then the car
// angle and camber. Values in changed are highlighted next to the text they
// had before.
type sheet struct {
	snapshot geometry.Snapshot
	settings ms.CargeoSettings
	changed  map[geometry.Derived]string
}

func newSheet(e *geometry.Engine, s ms.CargeoSettings) sheet {
	return sheet{snapshot: e.Snapshot(), settings: s}
}

func (s sheet) value(d geometry.Derived) string {
	text := s.snapshot.Get(d).Format(s.settings.Decimals, s.settings.BlankUnresolved)
	unit := ""
	if d.Angle() {
		unit = "°"
	}
	if before, ok := s.changed[d]; ok {
		return changedStyle.Render(text+unit) + footerStyle.Render(fmt.Sprintf(" (was %s%s)", before, unit))
	}
	return text + unit
}

func (s sheet) axle(title string, front bool) string {
	left, right := geometry.RearLeft, geometry.RearRight
	width, total := geometry.TrackWidthRear, geometry.TotalToeRear
	widthLabel := "Width"
	if front {
		left, right = geometry.FrontLeft, geometry.FrontRight
		width, total = geometry.TrackWidthFront, geometry.TotalToeFront
		widthLabel = "Front Width"
	}

	lines := []string{
		headingStyle.Render(title),
		fmt.Sprintf("Toe Left: %s   Toe Right: %s", s.value(geometry.Toe(left)), s.value(geometry.Toe(right))),
		fmt.Sprintf("%s   %s: %s   %s", s.value(geometry.HubOffset(left)), widthLabel, s.value(width), s.value(geometry.HubOffset(right))),
		fmt.Sprintf("Total Toe: %s", s.value(total)),
	}
	return strings.Join(lines, "\n")
}

func (s sheet) camber() string {
	lines := []string{
		headingStyle.Render("Camber"),
		fmt.Sprintf("Front  Camber Left: %s   Camber Right: %s", s.value(geometry.CamberFrontLeft), s.value(geometry.CamberFrontRight)),
		fmt.Sprintf("Rear   Camber Left: %s   Camber Right: %s", s.value(geometry.CamberRearLeft), s.value(geometry.CamberRearRight)),
	}
	return strings.Join(lines, "\n")
}

func (s sheet) String() string {
	blocks := []string{
		s.axle("Front axle", true),
		fmt.Sprintf("Car angle: %s", s.value(geometry.CarYawAngle)),
		s.axle("Rear axle", false),
		s.camber(),
		fmt.Sprintf("Laser half angle: %s", s.value(geometry.LaserHalfAngle)),
		footerStyle.Render(fmt.Sprintf("%s %s", ms.APP_NAME, ms.APP_VERSION)),
	}
	return sheetStyle.Render(strings.Join(blocks, "\n\n"))
}

type inputOutput struct {
	Value    float64 `json:"value"`
	Supplied bool    `json:"supplied"`
}

type derivedOutput struct {
	// nil unless resolved; JSON has no NaN or infinity
	Value *float64       `json:"value"`
	State geometry.State `json:"state"`
}

type calcOutput struct {
	Inputs  map[string]inputOutput   `json:"inputs"`
	Derived map[string]derivedOutput `json:"derived"`
}

func writeJSON(w io.Writer, e *geometry.Engine) error {
	out := calcOutput{
		Inputs:  map[string]inputOutput{},
		Derived: map[string]derivedOutput{},
	}
	for _, in := range geometry.Inputs() {
		out.Inputs[in.String()] = inputOutput{Value: e.Input(in), Supplied: e.Supplied(in)}
	}
	snapshot := e.Snapshot()
	for _, d := range geometry.DerivedValues() {
		v := snapshot.Get(d)
		entry := derivedOutput{State: v.State}
		if v.Resolved() {
			val := v.V
			entry.Value = &val
		}
		out.Derived[d.String()] = entry
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(out), "could not write json output")
}
