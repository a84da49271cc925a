package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"

	"cargeo.dev/cargeo/geometry"
	ms "cargeo.dev/cargeo/settings"
	"cargeo.dev/cargeo/utils"
)

const promptDone = "Done"

// promptItems lists every input with its current value, followed by the
// entry that ends the session.
func promptItems(e *geometry.Engine) []string {
	items := []string{}
	for _, in := range geometry.Inputs() {
		value := "not measured"
		if e.Supplied(in) {
			value = fmt.Sprint(e.Input(in))
		}
		items = append(items, fmt.Sprintf("%s (%s): %s", in.Label(), in, value))
	}
	return append(items, promptDone)
}

func validateReading(in geometry.Input) promptui.ValidateFunc {
	return func(text string) error {
		if strings.TrimSpace(text) == "" && in.Reading() {
			return nil
		}
		_, err := geometry.ParseValue(text)
		return err
	}
}

// applyPromptValue stores text for in; empty text clears a reading.
func applyPromptValue(e *geometry.Engine, in geometry.Input, text string) error {
	if strings.TrimSpace(text) == "" && in.Reading() {
		e.Clear(in)
		return nil
	}
	return e.SetInput(in.String(), text)
}

func prompt(w io.Writer) error {
	e := geometry.NewEngine()
	inputs := geometry.Inputs()
	cursor := 0

	for {
		fmt.Fprintln(w, newSheet(e, ms.Settings))

		sel := promptui.Select{
			Label:     "Select a reading to enter",
			Items:     promptItems(e),
			Size:      12,
			CursorPos: cursor,
		}
		idx, _, err := sel.Run()
		if err == promptui.ErrInterrupt || err == promptui.ErrEOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "could not select a reading")
		}
		if idx == len(inputs) {
			return nil
		}
		cursor = idx
		in := inputs[idx]

		current := ""
		if e.Supplied(in) {
			current = fmt.Sprint(e.Input(in))
		}
		p := promptui.Prompt{
			Label:     fmt.Sprintf("%s (mm)", in.Label()),
			Default:   current,
			AllowEdit: true,
			Validate:  validateReading(in),
		}
		text, err := p.Run()
		if err == promptui.ErrInterrupt || err == promptui.ErrAbort {
			continue
		}
		if err == promptui.ErrEOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "could not read value")
		}
		utils.Logwe(applyPromptValue(e, in, text))
	}
}
