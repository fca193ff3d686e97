// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cookworks/cookreport/internal/output"
	"github.com/cookworks/cookreport/pkg/report"
)

var (
	// Global flags
	scaleFlag     float64
	datastoreFlag string
	aisleFlag     string
	pantryFlag    string
	outputFlag    string
	verboseFlag   bool
)

// NewRootCmd creates the root command for the cookreport CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cookreport <recipe.cook> <template>",
		Short: "Render a Cooklang recipe through a Jinja-style template",
		Long: `cookreport reads a Cooklang recipe and a Jinja-style template and writes
the rendered report. Templates can scale quantities, build merged shopping
lists, group ingredients by aisle, and look up values from a YAML datastore
directory via db("dir.file.key").`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetupLogging(verboseFlag)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(args[0], args[1])
		},
	}

	rootCmd.Flags().Float64Var(&scaleFlag, "scale", 1, "Scale factor applied to ingredient quantities")
	rootCmd.Flags().StringVar(&datastoreFlag, "datastore", "", "Datastore root directory for db() lookups")
	rootCmd.Flags().StringVar(&aisleFlag, "aisle", "", "Aisle configuration file for aisled()")
	rootCmd.Flags().StringVar(&pantryFlag, "pantry", "", "Pantry configuration file for pantry filters")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write the report to a file instead of stdout")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

func runRender(recipePath, templatePath string) error {
	recipe, err := os.ReadFile(recipePath)
	if err != nil {
		return fmt.Errorf("reading recipe: %w", err)
	}
	tpl, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("reading template: %w", err)
	}

	builder := report.NewConfigBuilder().Scale(scaleFlag)
	if datastoreFlag != "" {
		builder.DatastorePath(datastoreFlag)
	}
	builder.AislePath(checkOptionalFile("aisle", aisleFlag))
	builder.PantryPath(checkOptionalFile("pantry", pantryFlag))

	output.Debug("rendering report",
		"recipe", recipePath,
		"template", templatePath,
		"scale", scaleFlag,
	)

	rendered, err := report.RenderWithConfig(string(recipe), string(tpl), builder.Build())
	if err != nil {
		return err
	}

	if outputFlag == "" || outputFlag == "-" {
		output.Print(rendered)
		return nil
	}
	if err := os.WriteFile(outputFlag, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	output.Debug("wrote report", "path", outputFlag)
	return nil
}

// checkOptionalFile warns when an optional configuration file is not
// readable and drops it, matching the library's treat-as-absent behavior.
func checkOptionalFile(kind, path string) string {
	if path == "" {
		return ""
	}
	if _, err := os.Stat(path); err != nil {
		output.Warn(kind+" file not readable, ignoring", "path", path, "err", err)
		return ""
	}
	return path
}
