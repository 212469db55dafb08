package roll_bench

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/LootRoller_Go/internal/domain"
	"github.com/osse101/LootRoller_Go/internal/event"
	"github.com/osse101/LootRoller_Go/internal/loot"
	"github.com/osse101/LootRoller_Go/internal/metrics"
	"github.com/osse101/LootRoller_Go/internal/naming"
	"github.com/osse101/LootRoller_Go/internal/upgrade"
	"github.com/osse101/LootRoller_Go/internal/utils"
)

func newService(b *testing.B, mode domain.Mode, bus event.Bus) upgrade.Service {
	b.Helper()
	svc, err := upgrade.NewService(context.Background(), upgrade.Options{
		Mode:           mode,
		StartItemLevel: domain.StartItemLevel,
		Source:         utils.SeededSource(1),
	}, bus)
	if err != nil {
		b.Fatalf("NewService failed: %v", err)
	}
	return svc
}

func BenchmarkRoll_Weapon(b *testing.B) {
	svc := newService(b, domain.ModeWeapon, nil)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		svc.Roll(ctx)
	}
}

func BenchmarkRoll_EquipmentWithMetrics(b *testing.B) {
	bus := event.NewMemoryBus()
	metrics.NewCollector(prometheus.NewRegistry()).Register(bus)
	svc := newService(b, domain.ModeEquipment, bus)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		svc.Roll(ctx)
	}
}

func BenchmarkRarityForRoll(b *testing.B) {
	src := utils.SeededSource(2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = loot.RarityForRoll(src.Float() * loot.RarityRollScale)
	}
}

func BenchmarkGenerate_ExhaustedRegistry(b *testing.B) {
	gen := naming.NewGenerator(naming.WeaponWords, utils.SeededSource(3).Intn)
	for _, p := range naming.WeaponWords.Prefixes {
		for _, s := range naming.WeaponWords.Suffixes {
			gen.Reserve(p + " " + s)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gen.Generate(i)
	}
}
