package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temirov/cnnkit/internal/buildinfo"
)

const (
	versionCommandUseConstant              = "version"
	versionCommandShortDescriptionConstant = "Print distribution metadata"
	versionOutputTemplateConstant          = "%s\nrepository: %s\nissues: %s\n"
)

// newVersionCommand reports build metadata without loading configuration or opening the log file.
func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   versionCommandUseConstant,
		Short: versionCommandShortDescriptionConstant,
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return nil
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			_, printError := fmt.Fprintf(command.OutOrStdout(), versionOutputTemplateConstant, buildinfo.String(), buildinfo.RepositoryURL(), buildinfo.BugTrackerURL())
			return printError
		},
	}
}
