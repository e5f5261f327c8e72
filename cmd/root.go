package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "biofit",
	Short: "BIOFIT EXPERT pharmacy-staff training",
	Long:  "BIOFIT EXPERT: gamified terminal training for pharmacy staff on BIOFIT (Psyllium Muciloide).",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides BIOFIT_DB env var)")
	rootCmd.PersistentFlags().String("env-file", ".env", "Optional .env file with BIOFIT_* settings")
	rootCmd.Flags().String("cert-dir", ".", "Directory where certificate PDFs are saved")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(certificateCmd)
	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}
