package main

import (
	"os"

	"sort_attack_list/internal/app"
	"sort_attack_list/internal/cli"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func main() {
	app.SetupEnvironment()

	cmd := cli.NewRootCommand(afero.NewOsFs(), os.Stdin, os.Stdout)
	if err := cmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("Failed to sort attack list")
	}
}
