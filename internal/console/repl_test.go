package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LootRoller_Go/internal/domain"
	"github.com/osse101/LootRoller_Go/internal/upgrade"
	"github.com/osse101/LootRoller_Go/internal/utils"
)

func weaponSession() *MockSession {
	items := map[domain.Slot]domain.Item{
		domain.SlotWeapon: {Name: "Steel Edge", Rarity: domain.RarityCommon, ItemLevel: 100},
	}
	sess := new(MockSession)
	sess.On("Mode").Return(domain.ModeWeapon)
	sess.On("Slots").Return([]domain.Slot{domain.SlotWeapon})
	sess.On("Items").Return(items)
	sess.On("RollCount").Return(0).Maybe()
	return sess
}

func rollResult(name string) upgrade.RollResult {
	item := domain.Item{Name: name, Rarity: domain.RarityGreen, ItemLevel: 101}
	return upgrade.RollResult{
		Slot:  domain.SlotWeapon,
		Item:  item,
		Items: map[domain.Slot]domain.Item{domain.SlotWeapon: item},
	}
}

func TestRun_RollsUntilQuit(t *testing.T) {
	sess := weaponSession()
	sess.On("Roll", mock.Anything).Return(rollResult("Holy Sabre")).Twice()

	var out bytes.Buffer
	err := Run(context.Background(), strings.NewReader("\nanything\n Q \nignored\n"), &out, sess)

	require.NoError(t, err)
	sess.AssertNumberOfCalls(t, "Roll", 2)
	assert.Contains(t, out.String(), "Holy Sabre")
	assert.True(t, strings.HasSuffix(out.String(), MsgFarewell+"\n"))
}

func TestRun_QuitImmediately(t *testing.T) {
	sess := weaponSession()

	var out bytes.Buffer
	err := Run(context.Background(), strings.NewReader("q\n"), &out, sess)

	require.NoError(t, err)
	sess.AssertNotCalled(t, "Roll", mock.Anything)
	assert.Contains(t, out.String(), MsgBanner)
	assert.Contains(t, out.String(), "Steel Edge")
	assert.Contains(t, out.String(), MsgFarewell)
}

func TestRun_EndOfInputEndsSession(t *testing.T) {
	sess := weaponSession()
	sess.On("Roll", mock.Anything).Return(rollResult("Cursed Edge")).Once()

	var out bytes.Buffer
	err := Run(context.Background(), strings.NewReader("\n"), &out, sess)

	require.NoError(t, err)
	sess.AssertNumberOfCalls(t, "Roll", 1)
	assert.Contains(t, out.String(), MsgFarewell)
}

func TestRun_WithRealSession(t *testing.T) {
	svc, err := upgrade.NewService(context.Background(), upgrade.Options{
		Mode:           domain.ModeEquipment,
		StartItemLevel: domain.StartItemLevel,
		Source:         utils.SeededSource(21),
	}, nil)
	require.NoError(t, err)

	var out bytes.Buffer
	err = Run(context.Background(), strings.NewReader(strings.Repeat("\n", 5)+"q\n"), &out, svc)

	require.NoError(t, err)
	assert.Equal(t, 5, svc.RollCount())
	assert.Equal(t, 5, strings.Count(out.String(), MsgNewMarker))
	assert.Equal(t, 6, strings.Count(out.String(), MsgCurrentEquipment))
}

func TestRun_WriteErrorStops(t *testing.T) {
	sess := weaponSession()

	err := Run(context.Background(), strings.NewReader("\n"), failingWriter{}, sess)

	require.Error(t, err)
	sess.AssertNotCalled(t, "Roll", mock.Anything)
}
