package upgrade

import (
	"context"
	"fmt"

	"github.com/osse101/LootRoller_Go/internal/domain"
	"github.com/osse101/LootRoller_Go/internal/equipment"
	"github.com/osse101/LootRoller_Go/internal/event"
	"github.com/osse101/LootRoller_Go/internal/logger"
	"github.com/osse101/LootRoller_Go/internal/loot"
	"github.com/osse101/LootRoller_Go/internal/naming"
	"github.com/osse101/LootRoller_Go/internal/utils"
)

// Options configures a roll session
type Options struct {
	Mode           domain.Mode
	StartItemLevel int
	Source         utils.Source
}

// RollResult describes one completed roll.
type RollResult struct {
	Sequence            int
	Slot                domain.Slot
	Previous            domain.Item
	Item                domain.Item
	CandidateRarity     domain.Rarity
	DowngradeSuppressed bool
	NameFallback        bool
	Items               map[domain.Slot]domain.Item // full state after the roll
}

// Service owns the equipment of one interactive session.
type Service interface {
	Roll(ctx context.Context) RollResult
	Mode() domain.Mode
	Slots() []domain.Slot
	Items() map[domain.Slot]domain.Item
	RollCount() int
}

type service struct {
	set      *equipment.Set
	roller   *loot.Roller
	names    *naming.Generator
	intn     func(int) int // Injectable for testing
	bus      event.Bus
	sequence int
	rolls    int
}

// NewService builds the starting equipment and publishes a session started
// event. A nil bus disables publishing; a zero Source uses the global one.
func NewService(ctx context.Context, opts Options, bus event.Bus) (Service, error) {
	if !opts.Mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidMode, opts.Mode)
	}
	if opts.StartItemLevel < 0 {
		return nil, fmt.Errorf("%w: start item level %d", domain.ErrInvalidInput, opts.StartItemLevel)
	}

	src := opts.Source
	if src.Float == nil || src.Intn == nil {
		src = utils.DefaultSource()
	}

	words := naming.WeaponWords
	if opts.Mode == domain.ModeEquipment {
		words = naming.EquipmentWords
	}

	s := &service{
		roller: loot.NewRoller(src.Float),
		names:  naming.NewGenerator(words, src.Intn),
		intn:   src.Intn,
		bus:    bus,
	}

	set, err := equipment.NewSet(opts.Mode, func(domain.Slot) domain.Item {
		s.sequence++
		name, _ := s.names.Generate(s.sequence)
		return domain.Item{
			Name:      name,
			Rarity:    domain.LowestRarity(),
			ItemLevel: opts.StartItemLevel,
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build starting equipment: %w", err)
	}
	s.set = set

	logger.FromContext(ctx).Info(LogMsgSessionStarted, LogFieldMode, opts.Mode, "slots", set.Len())
	s.publish(ctx, event.NewSessionStartedEvent(domain.SessionStartedPayload{
		Mode:  opts.Mode,
		Items: set.Snapshot(),
	}, logger.GetSessionID(ctx)))

	return s, nil
}

// Roll picks a target slot, rolls its level and rarity, applies the
// downgrade guard, names the result and replaces the slot's item.
func (s *service) Roll(ctx context.Context) RollResult {
	log := logger.FromContext(ctx)

	slot, current, err := s.set.Pick(s.intn)
	if err != nil {
		log.Error(LogMsgPickFailed, LogFieldSlot, slot, LogFieldError, err)
	}

	newLevel := s.roller.RollItemLevel(current.ItemLevel)
	candidate := s.roller.RollRarity(ctx)
	rarity, suppressed := loot.ResolveRarity(current, newLevel, candidate)
	if suppressed {
		log.Debug(LogMsgDowngradeSuppressed,
			LogFieldSlot, slot,
			LogFieldCandidate, candidate.String(),
			LogFieldRarity, rarity.String())
	}

	s.sequence++
	name, fallback := s.names.Generate(s.sequence)
	if fallback {
		log.Info(LogMsgNameFallback, LogFieldSequence, s.sequence, LogFieldName, name)
	}

	item := domain.Item{Name: name, Rarity: rarity, ItemLevel: newLevel}
	if _, err := s.set.Replace(slot, item); err != nil {
		// Pick only yields known slots and item is always valid here
		log.Error(LogMsgReplaceFailed, LogFieldSlot, slot, LogFieldError, err)
	}
	s.rolls++

	result := RollResult{
		Sequence:            s.sequence,
		Slot:                slot,
		Previous:            current,
		Item:                item,
		CandidateRarity:     candidate,
		DowngradeSuppressed: suppressed,
		NameFallback:        fallback,
		Items:               s.set.Snapshot(),
	}

	log.Debug(LogMsgItemRolled,
		LogFieldSlot, slot,
		LogFieldSequence, s.sequence,
		LogFieldOldLevel, current.ItemLevel,
		LogFieldNewLevel, newLevel,
		LogFieldRarity, rarity.String(),
		LogFieldName, name)

	s.publish(ctx, event.NewItemRolledEvent(domain.ItemRolledPayload{
		Sequence:            result.Sequence,
		Slot:                result.Slot,
		Previous:            result.Previous,
		Item:                result.Item,
		CandidateRarity:     result.CandidateRarity,
		DowngradeSuppressed: result.DowngradeSuppressed,
		NameFallback:        result.NameFallback,
	}, logger.GetSessionID(ctx)))

	return result
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, LogFieldEvent, evt.Type, LogFieldError, err)
	}
}

// Mode returns the slot layout of the session
func (s *service) Mode() domain.Mode {
	return s.set.Mode()
}

// Slots returns the slot order of the session
func (s *service) Slots() []domain.Slot {
	return s.set.Slots()
}

// Items returns a copy of the current slot state
func (s *service) Items() map[domain.Slot]domain.Item {
	return s.set.Snapshot()
}

// RollCount returns how many rolls have been performed
func (s *service) RollCount() int {
	return s.rolls
}
