package metrics

import (
	"context"

	"github.com/osse101/LootRoller_Go/internal/domain"
	"github.com/osse101/LootRoller_Go/internal/event"
	"github.com/osse101/LootRoller_Go/internal/logger"
)

// Register subscribes the collector to the session events
func (c *Collector) Register(bus event.Bus) {
	for _, eventType := range []event.Type{event.SessionStarted, event.ItemRolled} {
		bus.Subscribe(eventType, c.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (c *Collector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	c.EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.SessionStarted:
		payload, err := event.DecodePayload[domain.SessionStartedPayload](evt.Payload)
		if err != nil {
			c.EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		for slot, item := range payload.Items {
			c.ItemLevel.WithLabelValues(string(slot)).Set(float64(item.ItemLevel))
		}

	case event.ItemRolled:
		payload, err := event.DecodePayload[domain.ItemRolledPayload](evt.Payload)
		if err != nil {
			c.EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		c.RollsTotal.WithLabelValues(string(payload.Slot)).Inc()
		c.RaritiesRolled.WithLabelValues(payload.Item.Rarity.String()).Inc()
		c.ItemLevel.WithLabelValues(string(payload.Slot)).Set(float64(payload.Item.ItemLevel))
		if payload.DowngradeSuppressed {
			c.DowngradesSuppressed.Inc()
		}
		if payload.NameFallback {
			c.NameFallbacks.Inc()
		}
	}

	return nil
}
