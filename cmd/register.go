package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/santgross/BIOFIT-EXPERT/internal/account"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a trainee account",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, nil)
		if err != nil {
			return err
		}
		defer d.Close()

		f := cmd.Flags()
		var in account.RegisterInput
		in.FirstName, _ = f.GetString("first-name")
		in.LastName, _ = f.GetString("last-name")
		in.Email, _ = f.GetString("email")
		in.Phone, _ = f.GetString("phone")
		in.PharmacyName, _ = f.GetString("pharmacy")
		in.RepresentativeName, _ = f.GetString("representative")
		in.Password, _ = f.GetString("password")
		in.PrivacyAccepted, _ = f.GetBool("accept-privacy")

		u, err := d.accounts.Register(cmd.Context(), in)
		if err != nil {
			return fmt.Errorf("register: %w", err)
		}
		fmt.Printf("Registered %s <%s> (id %s)\n", u.FullName(), u.Email, u.ID)
		if d.accounts.IsAdmin(u) {
			fmt.Println("This account has admin access.")
		}
		return nil
	},
}

func init() {
	f := registerCmd.Flags()
	f.String("first-name", "", "First name")
	f.String("last-name", "", "Last name")
	f.String("email", "", "Email address")
	f.String("phone", "", "Mobile phone")
	f.String("pharmacy", "", "Pharmacy name")
	f.String("representative", "", "Sales representative (optional)")
	f.String("password", "", "Password (6 to 72 characters)")
	f.Bool("accept-privacy", false, "Accept the privacy policy")
}
