package cli

import (
	"fmt"
	"io"

	"sort_attack_list/internal/app"
	"sort_attack_list/internal/commandlist"
	"sort_attack_list/internal/config"
	"sort_attack_list/internal/processing"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// NewRootCommand builds the sort_attack_list command. Files, including
// config.ini, are resolved on fs.
func NewRootCommand(fs afero.Fs, stdin io.Reader, stdout io.Writer) *cobra.Command {
	v := viper.New()
	v.SetFs(fs)

	var configPath, outputPath string

	cmd := &cobra.Command{
		Use:   "sort_attack_list [inputList]",
		Short: "Sort attack list from travian builder",
		Long: "Reads an attack list export (file or stdin), annotates every command with its\n" +
			"distance from the configured home position, optionally keeps only the first\n" +
			"command per target position, and writes the result to the output file.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlags(v, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(v, configPath)
			if err != nil {
				return err
			}

			cfg.OutputPath = outputPath
			if len(args) == 1 {
				cfg.InputPath = args[0]
			}

			log.Debug().
				Str("config", cfg.ConfigPath).
				Str("input", cfg.InputPath).
				Str("output", cfg.OutputPath).
				Str("mode", cfg.Mode).
				Msg("Starting attack list sort")

			store := commandlist.NewStore(fs, stdin, stdout)
			_, err = processing.NewAttackListProcessor(store, cfg).Run(cmd.Context())
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "path to the INI configuration")
	flags.StringVarP(&outputPath, "output", "o", config.DefaultOutputPath, `output file ("-" for stdout)`)
	flags.String("mode", config.DefaultMode, `pipeline mode: "legacy" (input order) or "sorted" (distance order)`)

	return cmd
}

// bindFlags hands the --mode flag to viper. The flag only wins when given;
// otherwise config.ini or the environment decide.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if err := v.BindPFlag(config.KeyPipelineMode, flags.Lookup("mode")); err != nil {
		return fmt.Errorf("failed to bind mode flag: %w", err)
	}
	return nil
}
