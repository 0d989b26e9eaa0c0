package main

import (
	"github.com/cristalhq/acmd"
)

// platformCommands holds commands only available on some platforms.
var platformCommands []acmd.Command

// cli: https://github.com/cristalhq/acmd
func main() {
	cmds := []acmd.Command{
		{
			Name:        "run",
			Description: "Run the demo router, reading one route per line from stdin",
			ExecFunc:    runStdin,
		},
		{
			Name:        "config-gen",
			Description: "Write the default config file",
			ExecFunc:    runConfigGenerate,
		},
		{
			Name:        "config-verify",
			Description: "Load and validate a config file",
			ExecFunc:    runConfigVerify,
		},
	}
	cmds = append(cmds, platformCommands...)

	r := acmd.RunnerOf(cmds, acmd.Config{
		AppName: "coordinatorx",
		Version: "2026.1",
	})
	if err := r.Run(); err != nil {
		r.Exit(err)
	}
}
