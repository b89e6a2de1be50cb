package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/oshokin/panic-button/internal/config"
	"github.com/oshokin/panic-button/internal/logger"
	pb "github.com/oshokin/panic-button/internal/pb/v1"
	"github.com/oshokin/panic-button/internal/service/common"
)

// Options configures a connection to the panic server.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string
	// ServerAddress overrides server address from config when specified.
	ServerAddress string
	// Token overrides the session token from config when specified.
	Token string
	// Output receives the text shown to the user.
	Output io.Writer
}

// Location is an optional coordinate pair given on the command line.
type Location struct {
	Latitude  *float64
	Longitude *float64
}

var errNoToken = errors.New("no session token: pass --token or set token in the settings")

// ChangeStatus declares panic or safe and prints the summary.
func ChangeStatus(ctx context.Context, opts *Options, kind string, location Location) error {
	ctx = logger.WithFields(logger.WithName(ctx, "panic-button"), "kind", kind)

	return withClient(ctx, opts, func(client *common.Client) error {
		logger.Info(ctx, "Sending status change")

		response, err := client.ChangeStatus(ctx, &pb.ChangeStatusRequest{
			Kind:      kind,
			Latitude:  location.Latitude,
			Longitude: location.Longitude,
		})
		if err != nil {
			return err
		}

		logger.InfoKV(ctx, "Status changed",
			"event_id", response.GetEventId(),
			"notified", len(response.GetNotified()),
			"failed", len(response.GetFailed()),
		)

		_, err = fmt.Fprintln(opts.Output, response.GetSummary())

		return err
	})
}

// ShowStatus prints the stored status.
func ShowStatus(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "panic-button")

	return withClient(ctx, opts, func(client *common.Client) error {
		response, err := client.GetStatus(ctx)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(opts.Output, formatStatus(response))

		return err
	})
}

// ListContacts prints the contact list, one contact per line.
func ListContacts(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "panic-button")

	return withClient(ctx, opts, func(client *common.Client) error {
		contacts, err := client.ListContacts(ctx)
		if err != nil {
			return err
		}

		if len(contacts) == 0 {
			_, err = fmt.Fprintln(opts.Output, "No contacts yet.")

			return err
		}

		for _, contact := range contacts {
			if _, err = fmt.Fprintf(opts.Output, "%d\t%s\t%s\n", contact.GetId(), contact.GetName(), contact.GetPhone()); err != nil {
				return err
			}
		}

		return nil
	})
}

// AddContact adds a contact and prints it.
func AddContact(ctx context.Context, opts *Options, name, phone string) error {
	ctx = logger.WithName(ctx, "panic-button")

	return withClient(ctx, opts, func(client *common.Client) error {
		contact, err := client.AddContact(ctx, name, phone)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(opts.Output, "Added contact %s (%s)\n", contact.GetName(), contact.GetPhone())

		return err
	})
}

// withClient loads the settings, dials the server and runs fn.
func withClient(ctx context.Context, opts *Options, fn func(client *common.Client) error) error {
	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	if level, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(level)
	}

	// Flags override the settings.
	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	token := cfg.Token
	if opts.Token != "" {
		token = opts.Token
	}

	if token == "" {
		return errNoToken
	}

	// Calls wait for the server's fan-out, so they use rpc_timeout.
	client, err := common.Dial(ctx, serverAddress,
		common.WithCallTimeout(cfg.RPCTimeout),
		common.WithToken(token),
	)
	if err != nil {
		return err
	}

	// Close connection on function exit.
	defer func() {
		_ = client.Close()
	}()

	logger.DebugKV(ctx, "Connected", "server_address", serverAddress)

	return fn(client)
}

// formatStatus renders a stored status as one line.
func formatStatus(status *pb.GetStatusResponse) string {
	if status == nil {
		return "<nil status>"
	}

	line := "Status: " + status.GetStatus()

	if status.Latitude != nil && status.Longitude != nil {
		line += fmt.Sprintf(", last known location: %v,%v", status.GetLatitude(), status.GetLongitude())
	}

	if status.GetUpdatedAt() != nil {
		line += " (updated " + status.GetUpdatedAt().AsTime().Format(time.RFC3339) + ")"
	}

	return line
}
