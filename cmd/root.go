package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the mentions application
var rootCmd = &cobra.Command{
	Use:   "mentions",
	Short: "Resolves @resource:// mentions embedded in text",
	Long: `mentions scans text for embedded resource references like
@resource://server/path, resolves each reference through pluggable
resolvers (filesystem, in-memory, HTTP), and substitutes the resolved
content back into the text.

It can run as:
  - A standalone CLI tool (resolve)
  - An MCP (Model Context Protocol) server for AI assistants (serve)`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "mentions version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newResolveCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}
