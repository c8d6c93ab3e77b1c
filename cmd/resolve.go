package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/contextwire/mentions/internal/logging"
)

func newResolveCmd() *cobra.Command {
	var (
		flags engineFlags
		debug bool
	)

	cmd := &cobra.Command{
		Use:   "resolve [file]",
		Short: "Resolve mentions in a file or stdin and print the result",
		Long: `resolve reads text from the given file (or stdin when no file is
given), resolves every @resource:// mention through the configured
resolvers, and prints the substituted text to stdout.

Mentions that cannot be resolved are left verbatim in the output and
reported on stderr.

Examples:
  mentions resolve --fs docs=./docs prompt.txt
  echo "see @resource://docs/readme.md" | mentions resolve --fs docs=./docs
  mentions resolve --set notes:/today="standup at 10" prompt.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(debug)

			var text []byte
			var err error
			if len(args) == 1 {
				text, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", args[0], err)
				}
			} else {
				text, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
			}

			eng, _, err := buildEngine(flags, logger)
			if err != nil {
				return err
			}

			result := eng.ResolveAll(cmd.Context(), string(text))

			fmt.Fprint(os.Stdout, result.Text)

			for _, resErr := range result.Errors {
				logger.Warn("unresolved mention",
					logging.Server(resErr.Mention.Server),
					logging.Path(resErr.Mention.Path),
					logging.Err(resErr.Err))
			}
			if len(result.Errors) > 0 {
				return fmt.Errorf("%d mention(s) could not be resolved", len(result.Errors))
			}
			return nil
		},
	}

	addEngineFlags(cmd, &flags)
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")

	return cmd
}
