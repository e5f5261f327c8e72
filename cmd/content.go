package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/santgross/BIOFIT-EXPERT/internal/content"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Validate or export training content packs",
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a JSON content pack against the schema and the pairing rules",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := content.LoadFile(args[0], version)
		if err != nil {
			return err
		}
		fmt.Printf("%s: content pack %q is valid\n", args[0], p.Version)
		for _, m := range content.AllModules() {
			fmt.Printf("  %-22s levels %v\n", m.DisplayName(), p.LevelsWithContent(m))
		}
		return nil
	},
}

var contentExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the built-in content pack as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			return content.Export(cmd.OutOrStdout(), content.Builtin())
		}
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		if err := content.Export(f, content.Builtin()); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	},
}

func init() {
	contentExportCmd.Flags().StringP("out", "o", "", "Output file (default stdout)")

	contentCmd.AddCommand(contentValidateCmd)
	contentCmd.AddCommand(contentExportCmd)
}
