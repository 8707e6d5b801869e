package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbc2qif/kbc2qif/internal/buildinfo"
	"github.com/kbc2qif/kbc2qif/internal/logging"
)

const usage = "Usage: kbc2qif CSV_IN ASSET_ACCT INCOME_ACCT EXPENSE_ACCT"

// NewRootCommand creates the kbc2qif command.
func NewRootCommand() *cobra.Command {
	var opts convertOptions

	rootCmd := &cobra.Command{
		Use:     "kbc2qif CSV_IN ASSET_ACCT INCOME_ACCT EXPENSE_ACCT",
		Short:   "Convert a KBC CSV export into a QIF file",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          checkArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.SetupLogging(cmd.ErrOrStderr(), opts.verbose)
			if err := runConvert(cmd.OutOrStdout(), log, args, opts); err != nil {
				log.WithError(err).Error("Convert.Error")
				return err
			}
			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "YAML file with format, delimiter, encoding and column names")
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file with KBC2QIF_* overrides, ignored if missing")
	flags.StringVar(&opts.writeConfig, "write-config", "", "save the effective settings to this YAML file before converting")
	flags.StringVarP(&opts.output, "output", "o", "", "write QIF to this file instead of stdout")
	flags.StringVar(&opts.encoding, "encoding", "", "input charset, e.g. utf-8, latin1, windows-1252")
	flags.StringVar(&opts.format, "format", "", "input format")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")

	return rootCmd
}

// checkArgs prints the usage line whenever the argument count is off, but
// only refuses to run when there are too few arguments to convert anything.
func checkArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 4 {
		fmt.Fprintln(cmd.ErrOrStderr(), usage)
	}
	if len(args) < 4 {
		return fmt.Errorf("expected 4 arguments, got %d", len(args))
	}
	return nil
}
