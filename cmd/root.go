package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the letterdrive application
var rootCmd = &cobra.Command{
	Use:   "letterdrive",
	Short: "HTTP relay that stores letters as Google Docs in Drive",
	Long: `letterdrive is a backend relay for a letter-writing client. It authenticates
users with Google OAuth2 and creates, lists, and reads letter documents stored
as Google Docs inside a dedicated Drive folder.

The service keeps no state of its own: every request carries a bearer access
token and is translated into an ordered sequence of Google API calls.`,
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
	rootCmd.SetVersionTemplate(`{{printf "letterdrive version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}
