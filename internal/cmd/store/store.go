// Package store implements the one-shot "store" command: it syncs the store
// from the remote profile, persists it and prints it.
package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/jumbohome/jumbo-monitor/internal/jumbo"
	"github.com/jumbohome/jumbo-monitor/internal/settings"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Cmd = cobra.Command{
	Use:   "store",
	Short: "sync & show the Jumbo store for this account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		session := jumbo.NewSession(
			viper.GetString("jumbo.username"),
			viper.GetString("jumbo.password"),
			http.DefaultClient,
			slog.Default(),
		)
		client := jumbo.NewClient(session, http.DefaultClient, slog.Default())

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		s := settings.Settings{Path: filepath.Join(filepath.Dir(viper.ConfigFileUsed()), "store.yaml")}
		return ShowStore(cmd.Context(), client, s, encoder)
	},
}

// StoreSyncer syncs the store from the remote profile.
type StoreSyncer interface {
	SyncStore(context.Context) (jumbo.Store, error)
}

// StoreSaver persists the synced store.
type StoreSaver interface {
	SaveStore(jumbo.Store) error
}

// Encoder writes the synced store to the user.
type Encoder interface {
	Encode(any) error
}

// ShowStore syncs the store, persists it through saver and writes it to e.
func ShowStore(ctx context.Context, client StoreSyncer, saver StoreSaver, e Encoder) error {
	store, err := client.SyncStore(ctx)
	if err != nil {
		return err
	}
	if err = saver.SaveStore(store); err != nil {
		return err
	}
	return e.Encode(store)
}
