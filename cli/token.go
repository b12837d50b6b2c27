package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rpupo63/personal-blog/auth"
	"github.com/spf13/cobra"
)

var (
	tokenSecret  string
	tokenSubject string
	tokenTTL     time.Duration
)

func init() {
	RootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&tokenSecret, "secret", "", "signing secret (defaults to $JWT_SECRET)")
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "owner", "token subject")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", auth.DefaultTTL, "token lifetime")
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for publishing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		secret := tokenSecret
		if secret == "" {
			secret = os.Getenv("JWT_SECRET")
		}
		if secret == "" {
			return errors.New("a secret is required: pass --secret or set JWT_SECRET")
		}

		issuer, err := auth.NewIssuer(secret)
		if err != nil {
			return err
		}
		token, err := issuer.Issue(tokenSubject, tokenTTL)
		if err != nil {
			return fmt.Errorf("error signing token: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}
