package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-id-wallet/internal/client"
	"github.com/MKhiriev/go-id-wallet/internal/document"
	"github.com/MKhiriev/go-id-wallet/models"
)

func (c *cli) docCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doc",
		Short: "Create documents and manage who can view them",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(c.docCreateCmd(), c.docShareCmd(), c.docRevokeCmd(), c.docListCmd())

	return cmd
}

func (c *cli) docCreateCmd() *cobra.Command {
	var in models.NewDocument
	var expires string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Tokenize a document for the current identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if expires != "" {
				in.ExpiryDate = &expires
			}
			return c.run(cmd, func(ctx context.Context, app *client.App) error {
				doc, err := app.Engine.CreateDocument(ctx, in)
				if err != nil {
					return err
				}
				pterm.Success.Printfln("Document #%d created, hash %s", doc.ID, doc.Hash)
				printLatestHistory(app)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&in.Type, "type", "", "Document type, e.g. INE")
	cmd.Flags().StringVar(&in.Number, "number", "", "Document number")
	cmd.Flags().StringVar(&in.IssueDate, "issued", "", "Issue date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&expires, "expires", "", "Expiry date (YYYY-MM-DD), optional")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("number")
	_ = cmd.MarkFlagRequired("issued")

	return cmd
}

func (c *cli) docShareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "share <document-id> <target-address>",
		Short: "Grant an address access to a document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseDocumentID(args[0])
			if err != nil {
				return err
			}
			return c.run(cmd, func(ctx context.Context, app *client.App) error {
				perm, err := app.Engine.ShareDocument(ctx, id, args[1])
				if err != nil {
					return err
				}
				pterm.Success.Printfln("Document #%d shared with %s", perm.DocumentID, perm.Target)
				printLatestHistory(app)
				return nil
			})
		},
	}
}

func (c *cli) docRevokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke <document-id> <target-address>",
		Short: "Revoke an address's access to a document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseDocumentID(args[0])
			if err != nil {
				return err
			}
			return c.run(cmd, func(ctx context.Context, app *client.App) error {
				if err := app.Engine.RevokePermission(ctx, id, args[1]); err != nil {
					return err
				}
				pterm.Success.Printfln("Access to document #%d revoked for %s", id, args[1])
				printLatestHistory(app)
				return nil
			})
		},
	}
}

func (c *cli) docListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List owned documents, shared documents and grants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, app *client.App) error {
				snap := app.Engine.Snapshot()

				pterm.DefaultSection.Println("Owned documents")
				printDocuments(snap.Documents)

				pterm.DefaultSection.Println("Shared with me")
				printDocuments(snap.SharedDocuments)

				pterm.DefaultSection.Println("Grants")
				printPermissions(snap.Permissions)
				return nil
			})
		},
	}
}

func parseDocumentID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid document id %q", raw)
	}
	return id, nil
}

func printDocuments(docs []models.DocumentRecord) {
	if len(docs) == 0 {
		pterm.Info.Println("None")
		return
	}

	data := pterm.TableData{{"ID", "Type", "Number", "Issued", "Expires", "Hash", "Shared with"}}
	for _, d := range docs {
		expires := "-"
		if d.Metadata.ExpiryDate != nil {
			expires = *d.Metadata.ExpiryDate
		}
		data = append(data, []string{
			strconv.FormatInt(d.ID, 10),
			d.Metadata.Type,
			d.Metadata.Number,
			d.Metadata.IssueDate,
			expires,
			document.Short(d.Hash),
			strconv.Itoa(len(d.SharedWith)),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printPermissions(perms []models.PermissionRecord) {
	if len(perms) == 0 {
		pterm.Info.Println("None")
		return
	}

	data := pterm.TableData{{"Document", "Target", "Granted at"}}
	for _, p := range perms {
		data = append(data, []string{
			strconv.FormatInt(p.DocumentID, 10),
			p.Target,
			p.GrantedAt.UTC().Format(models.TimestampLayout),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
