package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/osse101/LootRoller_Go/internal/domain"
	"github.com/osse101/LootRoller_Go/internal/logger"
	"github.com/osse101/LootRoller_Go/internal/upgrade"
)

// Session is the roll state driven by the loop
type Session interface {
	Roll(ctx context.Context) upgrade.RollResult
	Mode() domain.Mode
	Slots() []domain.Slot
	Items() map[domain.Slot]domain.Item
	RollCount() int
}

// Run prints the starting state and then performs one roll per input line
// until the quit token or end of input. It returns an error only when
// reading input or writing output fails.
func Run(ctx context.Context, in io.Reader, out io.Writer, sess Session) error {
	log := logger.FromContext(ctx)
	r := NewRenderer(out)

	if err := r.Banner(sess.Mode(), sess.Slots(), sess.Items()); err != nil {
		return err
	}
	if err := r.Render(sess.Mode(), sess.Slots(), sess.Items(), nil); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		if err := r.Prompt(); err != nil {
			return err
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			log.Info(LogMsgEndOfInput, LogFieldRolls, sess.RollCount())
			return r.Farewell()
		}

		if IsQuit(scanner.Text()) {
			log.Info(LogMsgQuit, LogFieldRolls, sess.RollCount())
			return r.Farewell()
		}

		result := sess.Roll(ctx)
		if err := r.Render(sess.Mode(), sess.Slots(), result.Items, &result.Slot); err != nil {
			return err
		}
	}
}
