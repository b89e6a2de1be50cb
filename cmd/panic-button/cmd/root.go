package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/panic-button/internal/config"
	"github.com/oshokin/panic-button/internal/service/client"
	"github.com/oshokin/panic-button/internal/version"
)

var (
	// cfgPath stores the configuration file path.
	cfgPath string
	// serverAddress overrides server_addr from the settings.
	serverAddress string
	// token overrides the session token from the settings.
	token string

	// rootCmd represents the base command of the panic button client.
	rootCmd = &cobra.Command{
		Use:   "panic-button",
		Short: "Tell your contacts you are in danger, or safe again.",
		Long: `Client of the panic button server.

"panic" and "safe" record your status and send an SMS to every contact in your list.
Sending is attempted once per contact; the summary lists who was notified and who was not.
The server address and session token are read from the configuration file unless
given as flags.`,
		SilenceUsage: true,
	}
)

// Execute runs the panic-button CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// options builds client options from the persistent flags.
func options(cmd *cobra.Command) *client.Options {
	return &client.Options{
		ConfigPath:    cfgPath,
		ServerAddress: serverAddress,
		Token:         token,
		Output:        cmd.OutOrStdout(),
	}
}

// signalContext returns a context canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	flags.StringVarP(&serverAddress, "server", "s", "", "server address, overrides server_addr")
	flags.StringVarP(&token, "token", "t", "", "session token, overrides token")

	rootCmd.AddCommand(
		newTriggerCommand("panic", "Declare an emergency and alert your contacts."),
		newTriggerCommand("safe", "Declare you are safe and notify your contacts."),
		newStatusCommand(),
		newContactsCommand(),
	)
}
