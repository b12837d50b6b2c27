package cli

import (
	"fmt"

	"github.com/rpupo63/personal-blog/models"
	"github.com/spf13/cobra"
)

var (
	contactName    string
	contactEmail   string
	contactMessage string
)

func init() {
	RootCmd.AddCommand(contactCmd)

	contactCmd.Flags().StringVar(&contactName, "name", "", "your name")
	contactCmd.Flags().StringVar(&contactEmail, "email", "", "your email address")
	contactCmd.Flags().StringVar(&contactMessage, "message", "", "the message")
}

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a message through the contact form",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := requestContext(cmd)
		defer cancel()

		msg, err := newClient().SubmitContact(ctx, models.ContactRequest{
			Name:    contactName,
			Email:   contactEmail,
			Message: contactMessage,
		})
		if err != nil {
			return fmt.Errorf("error sending message: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), headingColor.Sprint(msg))
		return nil
	},
}
