package cmd

import (
	"fmt"
	"time"

	"bookmychair/models"
	"bookmychair/utils"

	"github.com/spf13/cobra"
)

var (
	tokenSub   string
	tokenRole  string
	tokenEmail string
	tokenName  string
	tokenTTL   time.Duration
)

// tokenCmd mints bearer tokens for local testing. Production tokens come
// from the auth service.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a signed access token for development",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.ValidRole(tokenRole) {
			return fmt.Errorf("role must be %q or %q", models.RoleEmployee, models.RoleAdmin)
		}
		if tokenSub == "" {
			return fmt.Errorf("--sub is required")
		}
		token, err := utils.GenerateToken(models.User{
			ID:    tokenSub,
			Email: tokenEmail,
			Name:  tokenName,
			Role:  tokenRole,
		}, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSub, "sub", "", "user id")
	tokenCmd.Flags().StringVar(&tokenRole, "role", models.RoleEmployee, "employee or admin")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "user email")
	tokenCmd.Flags().StringVar(&tokenName, "name", "", "display name")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
}
