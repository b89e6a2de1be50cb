package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/panic-button/internal/service/client"
)

// newTriggerCommand builds the panic and safe commands.
func newTriggerCommand(kind, short string) *cobra.Command {
	var latitude, longitude float64

	command := &cobra.Command{
		Use:   kind,
		Short: short,
		Long: short + `

A location snapshot is attached when both --lat and --lng are given.
Without it contacts receive "Location not available".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			var location client.Location

			if cmd.Flags().Changed("lat") {
				location.Latitude = &latitude
			}

			if cmd.Flags().Changed("lng") {
				location.Longitude = &longitude
			}

			return client.ChangeStatus(ctx, options(cmd), kind, location)
		},
	}

	command.Flags().Float64Var(&latitude, "lat", 0, "latitude of the current location")
	command.Flags().Float64Var(&longitude, "lng", 0, "longitude of the current location")
	command.MarkFlagsRequiredTogether("lat", "lng")

	return command
}

// newStatusCommand builds the status command.
func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show your stored status and last known location.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			return client.ShowStatus(ctx, options(cmd))
		},
	}
}

// newContactsCommand builds the contacts command group.
func newContactsCommand() *cobra.Command {
	contacts := &cobra.Command{
		Use:   "contacts",
		Short: "Manage the people alerted by panic and safe.",
	}

	contacts.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List your contacts in the order they are alerted.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				ctx, stop := signalContext()
				defer stop()

				return client.ListContacts(ctx, options(cmd))
			},
		},
		&cobra.Command{
			Use:   "add NAME PHONE",
			Short: "Add a contact.",
			Args:  cobra.ExactArgs(2), //nolint:mnd // Name and phone.
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, stop := signalContext()
				defer stop()

				return client.AddContact(ctx, options(cmd), args[0], args[1])
			},
		},
	)

	return contacts
}
