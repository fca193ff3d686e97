package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cookworks/cookreport/internal/output"
	"github.com/cookworks/cookreport/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetInfo()
			output.Print(fmt.Sprintf("cookreport version %s\n", info.Version))
			output.Print(fmt.Sprintf("  Commit: %s\n", info.GitCommit))
			output.Print(fmt.Sprintf("  Built:  %s\n", info.BuildDate))
			output.Print(fmt.Sprintf("  Go:     %s\n", info.GoVersion))
			return nil
		},
	}
}
