package main

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-id-wallet/internal/client"
)

func (c *cli) identityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "identity",
		Short: "Manage the on-record identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(c.identityRegisterCmd(), c.identityShowCmd())

	return cmd
}

func (c *cli) identityRegisterCmd() *cobra.Command {
	var name, email, rfc string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register an identity for the wallet",
		Long: `Register a display name for the connected wallet. Email and RFC are kept
locally; without --rfc a placeholder derived from the address is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, app *client.App) error {
				identity, err := app.Engine.RegisterIdentity(ctx, name, email, rfc)
				if err != nil {
					return err
				}
				pterm.Success.Printfln("Identity registered for %s", identity.PublicAddress)
				printIdentity(&identity)
				printLatestHistory(app)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Contact email")
	cmd.Flags().StringVar(&rfc, "rfc", "", "Tax id; a placeholder is generated when empty")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func (c *cli) identityShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the hydrated identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, app *client.App) error {
				identity, ok := app.Engine.Identity()
				if !ok {
					pterm.Info.Println("No identity registered for this wallet")
					return nil
				}
				printIdentity(&identity)
				return nil
			})
		},
	}
}
