package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset a trainee's progress",
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
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return fmt.Errorf("this erases all progress of %s; rerun with --yes to confirm", u.Email)
		}
		if err := d.store.ProgressRepo().Reset(ctx, u.ID); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
		d.logger.Warn("progress reset", "user_id", u.ID)
		fmt.Printf("Progress of %s reset.\n", u.Email)
		return nil
	},
}

func init() {
	resetCmd.Flags().String("email", "", "Trainee email")
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
