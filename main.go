package main

import (
	"cargeo.dev/cargeo/cli"
	ms "cargeo.dev/cargeo/settings"
)

func main() {
	ms.Settings.Load()
	cli.Handle()
}
