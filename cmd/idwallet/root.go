package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-id-wallet/internal/client"
	"github.com/MKhiriev/go-id-wallet/internal/config"
	"github.com/MKhiriev/go-id-wallet/internal/service"
	"github.com/MKhiriev/go-id-wallet/models"
)

// cli carries the flag-bound configuration shared by every command.
type cli struct {
	flags *config.StructuredConfig
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "idwallet",
		Short: "Identity wallet client",
		Long: `idwallet binds a wallet to an identity and keeps documents and their
access grants in sync with the backend.

Session state survives between invocations only with a local database:
  idwallet --db ~/.idwallet/wallet.db connect

Examples:
  idwallet connect
  idwallet signup --email ana@example.com --password secret --name "Ana Lopez"
  idwallet identity register --name "Ana Lopez" --email ana@example.com
  idwallet doc create --type INE --number ABC123 --issued 2020-01-01
  idwallet doc share 7 GTARGET...
  idwallet status`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	c.flags = config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		c.connectCmd(),
		c.disconnectCmd(),
		c.loginCmd(),
		c.signupCmd(),
		c.logoutCmd(),
		c.identityCmd(),
		c.docCmd(),
		c.statusCmd(),
		c.signCmd(),
		c.watchCmd(),
		versionCmd(),
	)

	return root
}

// run builds the app, restores the previous session and hands the app to fn.
func (c *cli) run(cmd *cobra.Command, fn func(ctx context.Context, app *client.App) error) error {
	return c.runWith(cmd, nil, fn)
}

func (c *cli) runWith(cmd *cobra.Command, opts []client.Option, fn func(ctx context.Context, app *client.App) error) error {
	ctx := cmd.Context()

	cfg, err := config.GetClientConfig(c.flags)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	app, err := client.NewApp(ctx, cfg, append([]client.Option{client.WithNotifier(printNotice)}, opts...)...)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			app.Logger().Err(err).Msg("closing app")
		}
	}()

	if _, err = app.Restore(ctx); err != nil && !errors.Is(err, service.ErrSessionReset) {
		return fmt.Errorf("restore session: %w", err)
	}

	return fn(ctx, app)
}

func printNotice(n models.Notice) {
	switch n.Level {
	case models.NoticeWarning:
		pterm.Warning.Println(n.Message)
	default:
		pterm.Info.Println(n.Message)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			info := buildInfo()
			pterm.Printfln("Build version: %s", info.BuildVersion())
			pterm.Printfln("Build date: %s", info.BuildDate())
			pterm.Printfln("Build commit: %s", info.BuildCommit())
		},
	}
}
