package main

import (
	"context"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-id-wallet/internal/client"
	"github.com/MKhiriev/go-id-wallet/models"
)

func (c *cli) connectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect",
		Short: "Connect the wallet and load its identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, app *client.App) error {
				acc, err := app.Engine.Connect(ctx)
				if err != nil {
					return err
				}
				pterm.Success.Printfln("Wallet %s connected (%s)", acc.Address, acc.Provider)
				printState(app)
				return nil
			})
		},
	}
}

func (c *cli) disconnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect",
		Short: "Forget the wallet and the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, app *client.App) error {
				app.Engine.Disconnect(ctx)
				pterm.Success.Println("Disconnected")
				return nil
			})
		},
	}
}

func (c *cli) loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Open a backend session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, app *client.App) error {
				session, err := app.Engine.Login(ctx, email, password)
				if err != nil {
					return err
				}
				pterm.Success.Printfln("Logged in as %s", session.DisplayName)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func (c *cli) signupCmd() *cobra.Command {
	var email, password, name string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account bound to the wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, app *client.App) error {
				session, err := app.Engine.SignUp(ctx, email, password, name)
				if err != nil {
					return err
				}
				pterm.Success.Printfln("Account created for %s (%s)", session.DisplayName, session.PublicAddress)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.Flags().StringVar(&name, "name", "", "Full name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the backend session and keep the wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, app *client.App) error {
				app.Engine.Logout(ctx)
				pterm.Success.Println("Logged out")
				return nil
			})
		},
	}
}

func (c *cli) signCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <xdr>",
		Short: "Sign a transaction envelope with the wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, app *client.App) error {
				signed, err := app.Engine.SignTransaction(ctx, args[0])
				if err != nil {
					return err
				}
				pterm.Println(signed)
				return nil
			})
		},
	}
}

func (c *cli) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Refresh in the background until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			onRefresh := client.WithRefreshCallback(func(_ *models.IdentityRecord, err error) {
				if err != nil {
					pterm.Warning.Printfln("Refresh failed: %v", err)
					return
				}
				pterm.Info.Printfln("Refreshed at %s", time.Now().Format(time.TimeOnly))
			})
			return c.runWith(cmd, []client.Option{onRefresh}, func(ctx context.Context, app *client.App) error {
				printState(app)
				app.StartWorkers(ctx)
				pterm.Info.Println("Watching for changes, press Ctrl+C to stop")
				<-ctx.Done()
				pterm.Info.Println("Stopping")
				return nil
			})
		},
	}
}
