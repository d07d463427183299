package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

const version = "0.1.0"

func main() {
	app := &cli.App{
		Name:    "ai-marketplace",
		Usage:   "AI model and prompt marketplace API",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env",
				Usage:   "configuration profile (development, production, test)",
				EnvVars: []string{"MKT_ENV"},
			},
		},
		Commands: []*cli.Command{
			cmdServe,
			cmdStats,
		},
		// serve is the default command
		Action: cmdServe.Action,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("ai-marketplace: %v", err)
	}
}
