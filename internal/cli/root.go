package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the sync CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "canvas2notion",
		Short: "Sync Canvas assignments into a Notion database",
		Long: `canvas2notion reads assignments from your favorited Canvas courses and
mirrors each one as a row in a Notion database, flipping the Completed
checkbox when Canvas reports a submission.

Credentials come from the environment: NOTION_KEY, CANVAS_KEY, NOTION_DB,
CANVAS_URL. Course-name mappings live in config/config.yaml.`,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewSyncCommand(opts))

	return cmd
}
