// Package basket implements the one-shot "basket" commands: show the current
// basket and add a product to it.
package basket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/jumbohome/jumbo-monitor/internal/jumbo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Cmd = cobra.Command{
		Use:   "basket",
		Short: "inspect & modify the Jumbo basket",
	}

	showCmd = cobra.Command{
		Use:   "show",
		Short: "show the current basket contents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Show(cmd.Context(), newClient(), jsonEncoder())
		},
	}

	addCmd = cobra.Command{
		Use:   "add <sku>",
		Short: "add one unit of a product to the basket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Add(cmd.Context(), newClient(), args[0], jsonEncoder())
		},
	}
)

func init() {
	Cmd.AddCommand(&showCmd, &addCmd)
}

func newClient() *jumbo.Client {
	session := jumbo.NewSession(
		viper.GetString("jumbo.username"),
		viper.GetString("jumbo.password"),
		http.DefaultClient,
		slog.Default(),
	)
	return jumbo.NewClient(session, http.DefaultClient, slog.Default())
}

func jsonEncoder() *json.Encoder {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder
}

// BasketClient is the part of the Jumbo client the basket commands use.
type BasketClient interface {
	GetBasket(context.Context) (jumbo.Basket, error)
	AddProduct(context.Context, string) (json.RawMessage, error)
}

// Encoder writes results to the user.
type Encoder interface {
	Encode(any) error
}

// Show writes the current basket contents to e.
func Show(ctx context.Context, client BasketClient, e Encoder) error {
	basket, err := client.GetBasket(ctx)
	if err != nil {
		return fmt.Errorf("basket: %w", err)
	}
	return e.Encode(basket)
}

// Add adds one unit of sku to the basket and writes the remote response to e.
func Add(ctx context.Context, client BasketClient, sku string, e Encoder) error {
	response, err := client.AddProduct(ctx, sku)
	if err != nil {
		return fmt.Errorf("basket: add %s: %w", sku, err)
	}
	return e.Encode(response)
}
