package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"cargeo.dev/cargeo/geometry"
	"cargeo.dev/cargeo/params"
	ms "cargeo.dev/cargeo/settings"
)

func Handle() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func inputCategory(in geometry.Input) string {
	switch {
	case !in.Reading():
		return "Vehicle"
	case in <= geometry.Wbbr:
		return "Toe readings"
	default:
		return "Camber readings"
	}
}

func calcFlags() []cli.Flag {
	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Print inputs and derived values as JSON",
		},
		&cli.StringFlag{
			Name:  "decimals",
			Usage: "Number of decimals shown, overrides the stored setting",
		},
	}
	for _, in := range geometry.Inputs() {
		flags = append(flags, &cli.StringFlag{
			Category: inputCategory(in),
			Name:     in.String(),
			Usage:    fmt.Sprintf("%s in mm", in.Label()),
		})
	}
	return flags
}

func calc(ctx context.Context, cmd *cli.Command) error {
	e := geometry.NewEngine()
	for _, in := range geometry.Inputs() {
		if !cmd.IsSet(in.String()) {
			continue
		}
		if err := e.SetInput(in.String(), cmd.String(in.String())); err != nil {
			return err
		}
	}

	w := cmd.Root().Writer
	if cmd.Bool("json") {
		return writeJSON(w, e)
	}

	s := ms.Settings
	if cmd.IsSet("decimals") {
		if err := s.Set("decimals", cmd.String("decimals")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, newSheet(e, s))
	return err
}

func listParams(w io.Writer) error {
	exists, err := params.Exists(params.ParamsPath)
	if err != nil {
		return err
	}
	if !exists {
		_, err = fmt.Fprintf(w, "nothing stored in %s\n", params.ParamsPath)
		return err
	}
	names, err := params.GetParams()
	if err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintf(w, "%s\n", params.ParamPath(name)); err != nil {
			return err
		}
	}
	return nil
}

func settingsCommand() *cli.Command {
	return &cli.Command{
		Name:  "settings",
		Usage: "Show or change the stored settings",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Print the current settings",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, err := fmt.Fprint(cmd.Root().Writer, ms.Settings.String())
					return err
				},
			},
			{
				Name:      "set",
				Usage:     "Change and save one setting",
				ArgsUsage: "KEY VALUE",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() != 2 {
						return cli.Exit("usage: settings set KEY VALUE", 1)
					}
					if err := ms.Settings.Set(cmd.Args().Get(0), cmd.Args().Get(1)); err != nil {
						return err
					}
					return ms.Settings.Save()
				},
			},
			{
				Name:  "stored",
				Usage: "List the parameters kept in the params directory",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return listParams(cmd.Root().Writer)
				},
			},
			{
				Name:  "reset",
				Usage: "Remove the stored settings and use the defaults",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return ms.Settings.Reset()
				},
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprint(cmd.Root().Writer, ms.Settings.String())
			return err
		},
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:    "cargeo",
		Usage:   "Compute wheel alignment from laser distance readings",
		Version: ms.APP_VERSION,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level for this run (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.IsSet("log-level") {
				ms.ApplyLogLevel(cmd.String("log-level"))
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Edit readings in a full screen alignment sheet",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return interactive()
				},
			},
			{
				Name:    "prompt",
				Aliases: []string{"p"},
				Usage:   "Edit readings one prompt at a time",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return prompt(cmd.Root().Writer)
				},
			},
			{
				Name:    "calc",
				Aliases: []string{"c"},
				Usage:   "Compute the alignment once from flags",
				Flags:   calcFlags(),
				Action:  calc,
			},
			settingsCommand(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return interactive()
		},
	}
}
