package main

import (
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "appsctl",
		Usage: "prepare apps to run inside their Linux filesystem",
		Commands: []*cli.Command{
			startCmd(),
			appsCmd(),
			sessionsCmd(),
			filesystemsCmd(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
