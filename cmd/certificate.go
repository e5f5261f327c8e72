package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/santgross/BIOFIT-EXPERT/internal/export"
	"github.com/santgross/BIOFIT-EXPERT/internal/progress"
)

var certificateCmd = &cobra.Command{
	Use:   "certificate",
	Short: "Save a trainee's completion certificate as PDF",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, nil)
		if err != nil {
			return err
		}
		defer d.Close()
		ctx := cmd.Context()

		email, _ := cmd.Flags().GetString("email")
		u, err := userByEmail(ctx, d, email)
		if err != nil {
			return err
		}
		p, err := d.progress.Load(ctx, u.ID)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		if !progress.CertificateEligible(p, d.pack.Thresholds) {
			return fmt.Errorf("%s is not eligible yet: %d/4 modules complete, %d/%d points",
				u.Email, progress.ModulesCompleted(p), p.Points, d.pack.Thresholds.Maestro)
		}

		dir, _ := cmd.Flags().GetString("out")
		path, err := export.SaveCertificate(dir, export.Certificate{FullName: u.FullName(), IssuedAt: time.Now()})
		if err != nil {
			return err
		}
		d.logger.Info("certificate issued", "user_id", u.ID, "path", path)
		fmt.Println("Certificate saved to", path)
		return nil
	},
}

func init() {
	certificateCmd.Flags().String("email", "", "Trainee email")
	certificateCmd.Flags().StringP("out", "o", ".", "Output directory")
}
