package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/delaneyj/slotparty/slots"
)

type systemReady struct {
	Firmware string
}

type telemetryUpdate struct {
	Temperature float64
	Load        float64
}

type productionStep struct {
	Step    string
	Percent int
}

type emergencyStop struct {
	Code   int
	Reason string
}

var errHardwareFailure = errors.New("hardware failure")

const failingBatch = "BATCH_ERR_99"

// controller drives a production line and announces its progress on one
// emitter.
type controller struct {
	*slots.Emitter

	steps    int
	interval time.Duration
}

func newController(exec slots.Executor, steps int, interval time.Duration) (*controller, error) {
	e, err := slots.NewEmitter(
		slots.WithName("factory"),
		slots.WithExecutor(exec),
		slots.Supports[systemReady](),
		slots.Supports[telemetryUpdate](),
		slots.Supports[productionStep](),
		slots.Supports[emergencyStop](),
	)
	if err != nil {
		return nil, err
	}
	return &controller{Emitter: e, steps: steps, interval: interval}, nil
}

// run pushes one batch through the line. A failing batch trips the emergency
// stop and waits for the given interlock to acknowledge it before reporting
// the failure.
func (c *controller) run(ctx context.Context, batch string, interlock slots.Connection[emergencyStop, string]) (string, error) {
	slots.Broadcast(ctx, c.Emitter, systemReady{Firmware: "v2.0.4-LTS"})

	for i := 0; i < c.steps; i++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.interval):
		}
		slots.Broadcast(ctx, c.Emitter, telemetryUpdate{
			Temperature: 45.5 + float64(i),
			Load:        800 + float64(i*50),
		})
		slots.Broadcast(ctx, c.Emitter, productionStep{
			Step:    "Assembling",
			Percent: (i + 1) * 100 / c.steps,
		})
	}

	if batch == failingBatch {
		ack, err := slots.Capture1(ctx, c.Emitter, emergencyStop{
			Code:   99,
			Reason: "Thermal Overload Detected",
		}, interlock).Await(ctx)
		if err != nil {
			return "", fmt.Errorf("emergency stop for %s: %w", batch, err)
		}
		return "", fmt.Errorf("%s (%s): %w", batch, ack, errHardwareFailure)
	}
	return batch + " SUCCESS", nil
}

func progressBar(step string, percent int) string {
	const width = 20
	pos := width * percent / 100
	return fmt.Sprintf("[PROD] %-15s [%s%s] %d%%", step, strings.Repeat("#", pos), strings.Repeat(" ", width-pos), percent)
}
