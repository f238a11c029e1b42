// Package monitor wires up and runs the jumbo-monitor daemon.
package monitor

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/clambin/go-common/taskmanager"
	"github.com/clambin/go-common/taskmanager/httpserver"
	promserver "github.com/clambin/go-common/taskmanager/prometheus"
	"github.com/jumbohome/jumbo-monitor/internal/availability"
	"github.com/jumbohome/jumbo-monitor/internal/collector"
	"github.com/jumbohome/jumbo-monitor/internal/health"
	"github.com/jumbohome/jumbo-monitor/internal/jumbo"
	"github.com/jumbohome/jumbo-monitor/internal/orderstatus"
	"github.com/jumbohome/jumbo-monitor/internal/poller"
	"github.com/jumbohome/jumbo-monitor/internal/settings"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/slack-go/slack"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Cmd = cobra.Command{
	Use:   "monitor",
	Short: "run the order & delivery-slot monitor",
	RunE: func(cmd *cobra.Command, _ []string) error {
		m, err := New(viper.GetViper(), prometheus.DefaultRegisterer, slog.Default())
		if err != nil {
			return err
		}
		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		return m.Run(ctx)
	},
}

// New builds the task manager running all monitor tasks.
func New(cfg *viper.Viper, registry prometheus.Registerer, logger *slog.Logger) (*taskmanager.Manager, error) {
	username := cfg.GetString("jumbo.username")
	password := cfg.GetString("jumbo.password")
	if username == "" || password == "" {
		return nil, fmt.Errorf("jumbo: %w", jumbo.ErrNotConfigured)
	}

	httpClient := instrumentedHTTPClient(registry)
	session := jumbo.NewSession(username, password, httpClient, logger.With(slog.String("component", "session")))
	client := jumbo.NewClient(session, httpClient, logger.With(slog.String("component", "client")))

	store := settings.Settings{Path: filepath.Join(filepath.Dir(cfg.ConfigFileUsed()), "store.yaml")}
	if persisted, ok, err := store.LoadStore(); err != nil {
		logger.Warn("failed to load persisted store", slog.Any("err", err))
	} else if ok {
		client.SetStore(&persisted)
	}

	return taskmanager.New(makeTasks(cfg, client, store, registry, logger)...), nil
}

func makeTasks(cfg *viper.Viper, client *jumbo.Client, store settings.Settings, registry prometheus.Registerer, l *slog.Logger) []taskmanager.Task {
	var tasks []taskmanager.Task

	// Pollers
	orderPoller := poller.New(poller.Orders(client), cfg.GetDuration("poller.orders.interval"), l.With(slog.String("component", "orderpoller")))
	tasks = append(tasks, orderPoller)
	slotPoller := poller.New(poller.Slots(client, store, l.With(slog.String("component", "slotpoller"))), cfg.GetDuration("poller.slots.interval"), l.With(slog.String("component", "slotpoller")))
	tasks = append(tasks, slotPoller)

	// Order change detection
	notifiers := orderstatus.Notifiers{orderstatus.SLogNotifier{Logger: l.With(slog.String("component", "notifier"))}}
	if token := cfg.GetString("slack.token"); token != "" {
		notifiers = append(notifiers, &orderstatus.SlackNotifier{
			Logger:      l.With(slog.String("component", "slack")),
			SlackSender: slack.New(token),
		})
	}
	tasks = append(tasks, orderstatus.New(orderPoller, notifiers, l.With(slog.String("component", "orderstatus"))))

	// Availability tokens
	registryTokens := &availability.Registry{}
	builder := availability.Builder{
		Fallback: cfg.GetString("tokens.fallback"),
		Logger:   l.With(slog.String("component", "availability")),
	}
	tasks = append(tasks, availability.New(slotPoller, builder, registryTokens, l.With(slog.String("component", "availability"))))

	// Collector
	coll := &collector.Collector{OrderPoller: orderPoller, SlotPoller: slotPoller, Logger: l.With(slog.String("component", "collector"))}
	if registry != nil {
		registry.MustRegister(coll)
	}
	tasks = append(tasks, coll)

	// Prometheus server
	tasks = append(tasks, promserver.New(promserver.WithAddr(cfg.GetString("exporter.addr"))))

	// Health & token endpoints
	h := health.New(orderPoller, slotPoller, l.With(slog.String("component", "health")))
	tasks = append(tasks, h)
	r := http.NewServeMux()
	r.Handle("/health", h)
	r.Handle("/tokens", registryTokens)
	tasks = append(tasks, httpserver.New(cfg.GetString("health.addr"), r))

	return tasks
}
