package main

import (
	"context"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-id-wallet/internal/client"
	"github.com/MKhiriev/go-id-wallet/models"
)

func (c *cli) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the session state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, app *client.App) error {
				printState(app)
				return nil
			})
		},
	}
}

func printState(app *client.App) {
	snap := app.Engine.Snapshot()

	wallet, session := "-", "-"
	if snap.Wallet != nil {
		wallet = snap.Wallet.Address + " (" + snap.Wallet.Provider + ")"
	}
	if snap.Session != nil {
		session = snap.Session.Email
	}

	_ = pterm.DefaultTable.WithData(pterm.TableData{
		{"State", string(snap.State)},
		{"Wallet", wallet},
		{"Session", session},
		{"Documents", strconv.Itoa(len(snap.Documents))},
		{"Shared with me", strconv.Itoa(len(snap.SharedWithMe))},
		{"Grants", strconv.Itoa(len(snap.Permissions))},
	}).Render()

	if snap.Identity != nil {
		printIdentity(snap.Identity)
	}
}

func printIdentity(identity *models.IdentityRecord) {
	_ = pterm.DefaultTable.WithData(pterm.TableData{
		{"Name", identity.DisplayName},
		{"Address", identity.PublicAddress},
		{"Email", identity.Email},
		{"RFC", identity.RFC},
		{"Verified", strconv.FormatBool(identity.Verified)},
	}).Render()
}

// printLatestHistory shows the entry the last operation appended.
func printLatestHistory(app *client.App) {
	entries := app.Engine.History()
	if len(entries) == 0 {
		return
	}
	e := entries[0]
	line := e.Timestamp + "  " + e.Title + ": " + e.Description
	if e.TxRef != "" {
		line += " [tx " + e.TxRef + "]"
	}
	pterm.Info.Println(line)
}
