package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/odootools/attrsmigrate/migrate"
)

func main() {
	var dryRun, verbose bool

	cmd := &cobra.Command{
		Use:   "attrsmigrate <pattern>...",
		Short: "Rewrite legacy attrs notation in view XML files",
		Long: `attrsmigrate rewrites view XML files in place: the deprecated attrs
domain notation becomes inline boolean expressions, and numeric
invisible flags on fields inside tree views become column_invisible.

Each argument is a glob pattern; matched files are processed one by
one. A file is only overwritten when all of its transforms succeed.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()

			if dryRun {
				log.Warn().Msg("dry run enabled, no files will be modified")
			}

			m := &migrate.Migrator{DryRun: dryRun}
			return m.Run(args)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "compute and report every transform without writing any file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
