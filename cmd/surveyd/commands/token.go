package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/demoworks/surveyd/internal/api/auth"
	"github.com/demoworks/surveyd/internal/cli/output"
	"github.com/demoworks/surveyd/pkg/config"
)

var (
	tokenUserID  string
	tokenGroupID string
	tokenAdmin   bool
	tokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Generate a development bearer token",
	Long: `Generate a bearer token signed with the configured auth secret.

Production tokens come from the identity provider. This command exists for
development and testing: the generated token is accepted by any surveyd
instance configured with the same secret and issuer.

Examples:
  # Token for a regular user in a group
  surveyd token --group-id 7f3e...

  # Admin token with a longer lifetime
  surveyd token --admin --ttl 24h

  # Token for a specific user id
  surveyd token --user-id alice --group-id 7f3e...`,
	RunE: runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUserID, "user-id", "", "Token subject (default: random UUID)")
	tokenCmd.Flags().StringVar(&tokenGroupID, "group-id", "", "Tenant group id (default: random UUID)")
	tokenCmd.Flags().BoolVar(&tokenAdmin, "admin", false, "Grant the administrator role")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", time.Hour, "Token lifetime")
}

func runToken(cmd *cobra.Command, args []string) error {
	cfg, err := config.MustLoad(GetConfigFile())
	if err != nil {
		return err
	}

	secret := cfg.API.GetAuthSecret()
	if secret == "" {
		return fmt.Errorf("no auth secret configured; set api.auth.secret or %s", "SURVEYD_AUTH_SECRET")
	}

	userID := tokenUserID
	if userID == "" {
		userID = uuid.NewString()
	}
	groupID := tokenGroupID
	if groupID == "" {
		groupID = uuid.NewString()
	}

	token, err := auth.SignToken(auth.Config{
		Secret: secret,
		Issuer: cfg.API.Auth.Issuer,
	}, auth.TokenRequest{
		UserID:  userID,
		GroupID: groupID,
		Admin:   tokenAdmin,
		TTL:     tokenTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}

	_ = output.SimpleTable(os.Stdout, [][2]string{
		{"User ID", userID},
		{"Group ID", groupID},
		{"Admin", fmt.Sprintf("%t", tokenAdmin)},
		{"Expires", time.Now().Add(tokenTTL).UTC().Format(time.RFC3339)},
	})
	fmt.Println()
	fmt.Println(token)

	return nil
}
