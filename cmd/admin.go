package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/santgross/BIOFIT-EXPERT/internal/export"
	"github.com/santgross/BIOFIT-EXPERT/internal/progress"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrator reports",
}

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List registered trainees, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, nil)
		if err != nil {
			return err
		}
		defer d.Close()

		users, err := d.store.ListUsers(cmd.Context())
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		now := time.Now()
		fmt.Printf("Total users: %d   Registered today: %d\n\n", len(users), export.RegisteredOn(users, now))
		if len(users) == 0 {
			return nil
		}

		fmt.Printf("%-24s  %-30s  %-20s  %6s  %-9s  %s\n", "Name", "Email", "Pharmacy", "Points", "Level", "Registered")
		fmt.Println(strings.Repeat("─", 110))
		for _, u := range users {
			fmt.Printf("%-24s  %-30s  %-20s  %6d  %-9s  %s\n",
				truncate(u.FullName(), 24),
				truncate(u.Email, 30),
				truncate(u.PharmacyName, 20),
				u.Points,
				progress.LevelName(u.Level),
				u.CreatedAt.Local().Format("02/01/2006"),
			)
		}
		return nil
	},
}

var adminExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export registered trainees to an .xlsx file",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, nil)
		if err != nil {
			return err
		}
		defer d.Close()

		users, err := d.store.ListUsers(cmd.Context())
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = export.UsersFileName(time.Now())
		}
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		if err := export.WriteUsers(f, users); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", out, err)
		}
		d.logger.Info("users exported", "path", out, "count", len(users))
		fmt.Printf("Exported %d users to %s\n", len(users), out)
		return nil
	},
}

func init() {
	adminExportCmd.Flags().StringP("out", "o", "", "Output file (default usuarios_biofit_<date>.xlsx)")

	adminCmd.AddCommand(adminUsersCmd)
	adminCmd.AddCommand(adminExportCmd)
}
