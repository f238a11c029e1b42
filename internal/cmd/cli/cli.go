// Package cli defines the jumbo-monitor command tree.
package cli

import (
	"log/slog"
	"os"
	"time"

	"github.com/clambin/go-common/charmer"
	"github.com/jumbohome/jumbo-monitor/internal/cmd/basket"
	"github.com/jumbohome/jumbo-monitor/internal/cmd/monitor"
	"github.com/jumbohome/jumbo-monitor/internal/cmd/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFilename string
	RootCmd        = cobra.Command{
		Use:   "jumbo-monitor",
		Short: "Monitor for Jumbo orders & delivery slots",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			charmer.SetJSONLogger(cmd, viper.GetBool("debug"))
		},
	}
)

var args = charmer.Arguments{
	"debug":                  {Default: false, Help: "Log debug messages"},
	"jumbo.username":         {Default: "", Help: "Jumbo account username"},
	"jumbo.password":         {Default: "", Help: "Jumbo account password"},
	"poller.orders.interval": {Default: 15 * time.Minute, Help: "Order poller interval"},
	"poller.slots.interval":  {Default: 5 * time.Minute, Help: "Delivery-slot poller interval"},
	"tokens.fallback":        {Default: "Geen mogelijkheden", Help: "Token value for days without available slots"},
	"exporter.addr":          {Default: ":9090", Help: "Address of Prometheus exporter"},
	"health.addr":            {Default: ":8080", Help: "Address of /health and /tokens endpoints"},
	"slack.token":            {Default: "", Help: "Slack token for order notifications"},
}

func init() {
	cobra.OnInitialize(initConfig)
	RootCmd.PersistentFlags().StringVar(&configFilename, "config", "", "Configuration file")
	RootCmd.PersistentFlags().Bool("debug", false, "Log debug messages")
	_ = viper.BindPFlag("debug", RootCmd.PersistentFlags().Lookup("debug"))

	RootCmd.AddCommand(&monitor.Cmd, &store.Cmd, &basket.Cmd)
}

func initConfig() {
	if configFilename != "" {
		viper.SetConfigFile(configFilename)
	} else {
		viper.AddConfigPath("/etc/jumbo-monitor/")
		viper.AddConfigPath("$HOME/.jumbo-monitor")
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
	}

	if err := charmer.SetDefaults(viper.GetViper(), args); err != nil {
		panic("failed to set viper defaults: " + err.Error())
	}

	viper.SetEnvPrefix("JUMBO_MONITOR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		slog.Error("failed to read config file", "err", err)
		os.Exit(1)
	}
}
