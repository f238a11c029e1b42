package orderstatus

import "log/slog"

// SLogNotifier reports changed orders to the log.
type SLogNotifier struct {
	Logger *slog.Logger
}

var _ Notifier = SLogNotifier{}

func (s SLogNotifier) Notify(update Update) {
	s.Logger.Info("order updated",
		slog.String("id", update.Order.ID),
		slog.String("status", update.Order.Status),
		slog.String("window", update.Message),
	)
}
