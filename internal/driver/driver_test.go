package driver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/retroenv/retrochip8/internal/frontend/headless"
	"github.com/retroenv/retrochip8/internal/interpreter"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func newTestMachine(t *testing.T, program ...byte) *interpreter.Interpreter {
	t.Helper()
	interp := interpreter.New(log.NewTestLogger(t), interpreter.Options{Seed: 1})
	assert.NoError(t, interp.LoadProgram(program))
	return interp
}

func TestNew_InvalidRate(t *testing.T) {
	logger := log.NewTestLogger(t)
	machine := newTestMachine(t)

	_, err := New(logger, machine, headless.New(nil), Config{InstructionRate: 0, TimerRate: 60})
	assert.ErrorContains(t, err, "clock rate must be positive")

	_, err = New(logger, machine, headless.New(nil), Config{InstructionRate: 700, TimerRate: -1})
	assert.Error(t, err)
}

func TestRun_StepLimit(t *testing.T) {
	// draw the glyph for 5 and loop forever
	machine := newTestMachine(t,
		0x60, 0x05, // ld V0, $05
		0xF0, 0x29, // ld F, V0
		0xD0, 0x05, // drw V0, V0, 5
		0x12, 0x06, // jp $206
	)
	fe := headless.New(nil)

	drv, err := New(log.NewTestLogger(t), machine, fe, Config{
		InstructionRate: 10000,
		TimerRate:       60,
		MaxSteps:        20,
	})
	assert.NoError(t, err)

	assert.NoError(t, drv.Run(context.Background()))
	assert.Equal(t, uint64(20), drv.Steps())
	assert.Equal(t, 1, fe.Frames())
	assert.False(t, machine.NeedsRedraw())

	frame := fe.Frame()
	assert.True(t, frame.Pixel(5, 5))
	assert.False(t, frame.Pixel(4, 5))
}

func TestRun_MachineError(t *testing.T) {
	machine := newTestMachine(t, 0x00, 0xEE)

	drv, err := New(log.NewTestLogger(t), machine, headless.New(nil), Config{
		InstructionRate: 10000,
		TimerRate:       60,
	})
	assert.NoError(t, err)

	err = drv.Run(context.Background())
	assert.True(t, errors.Is(err, interpreter.ErrStackUnderflow))
	assert.ErrorContains(t, err, "running program")
}

func TestRun_ContextCancelled(t *testing.T) {
	machine := newTestMachine(t, 0x12, 0x00) // jp $200

	drv, err := New(log.NewTestLogger(t), machine, headless.New(nil), Config{
		InstructionRate: 1000,
		TimerRate:       60,
	})
	assert.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err = drv.Run(ctx)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestRun_FrontendClosed(t *testing.T) {
	machine := newTestMachine(t, 0x12, 0x00) // jp $200
	fe := headless.New(nil)

	drv, err := New(log.NewTestLogger(t), machine, fe, Config{
		InstructionRate: 1000,
		TimerRate:       60,
	})
	assert.NoError(t, err)

	go func() {
		time.Sleep(20 * time.Millisecond)
		_ = fe.Close()
	}()
	assert.NoError(t, drv.Run(context.Background()))
}

func TestRun_KeyEvents(t *testing.T) {
	machine := newTestMachine(t,
		0xF3, 0x0A, // ld V3, K
		0x12, 0x02, // jp $202
	)
	fe := headless.New(nil)

	drv, err := New(log.NewTestLogger(t), machine, fe, Config{
		InstructionRate: 2000,
		TimerRate:       60,
	})
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	result := make(chan error, 1)
	go func() { result <- drv.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	fe.Press(0xB, true)
	time.Sleep(50 * time.Millisecond)
	cancel()

	assert.True(t, errors.Is(<-result, context.Canceled))
	assert.Equal(t, uint8(0xB), machine.Snapshot().V[3])
	assert.True(t, machine.KeyPressed(0xB))
}

func TestRun_Timers(t *testing.T) {
	machine := newTestMachine(t,
		0x60, 0xFF, // ld V0, $FF
		0xF0, 0x15, // ld DT, V0
		0x12, 0x04, // jp $204
	)

	drv, err := New(log.NewTestLogger(t), machine, headless.New(nil), Config{
		InstructionRate: 1000,
		TimerRate:       1000,
	})
	assert.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = drv.Run(ctx)

	assert.True(t, drv.Ticks() > 0)
	assert.True(t, machine.DelayTimer() < 0xFF)
}
