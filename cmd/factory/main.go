package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/delaneyj/slotparty/pool"
	"github.com/delaneyj/slotparty/slots"
	"github.com/urfave/cli/v3"
)

const (
	workersKey  = "workers"
	stepsKey    = "steps"
	intervalKey = "interval"
)

func main() {
	cmd := &cli.Command{
		Name:  "factory",
		Usage: "Run a simulated production line on top of package slots",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  workersKey,
				Usage: "Worker pool size",
				Value: 8,
			},
			&cli.UintFlag{
				Name:  stepsKey,
				Usage: "Telemetry heartbeats per batch",
				Value: 5,
			},
			&cli.DurationFlag{
				Name:  intervalKey,
				Usage: "Delay between heartbeats",
				Value: 100 * time.Millisecond,
			},
		},
		Action: runFactory,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func header(title string) {
	bar := strings.Repeat("=", 50)
	fmt.Printf("\n%s\n SYSTEM: %s\n%s\n", bar, title, bar)
}

func runFactory(ctx context.Context, cmd *cli.Command) error {
	steps := int(cmd.Uint(stepsKey))
	if steps < 1 {
		return fmt.Errorf("--%s must be at least 1", stepsKey)
	}

	p := pool.New(pool.WithWorkers(int(cmd.Uint(workersKey))))
	defer p.Stop(context.Background())

	c, err := newController(p, steps, cmd.Duration(intervalKey))
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(ctx); err != nil {
			log.Printf("closing controller: %v", err)
		}
		st := c.Stats()
		log.Printf("tasks: %d spawned, %d completed, %d failed", st.Spawned, st.Completed, st.Failed)
	}()

	subs := slots.NewSubscriptions()
	defer subs.Dispose()

	telemetry, err := slots.ConnectFunc(c.Emitter, func(ctx context.Context, t telemetryUpdate) error {
		fmt.Printf("[TELEMETRY] Temp: %.1f°C | Load: %.0fkW\n", t.Temperature, t.Load)
		return nil
	}, slots.WithSlotName("telemetry-dashboard"))
	if err != nil {
		return err
	}
	subs.Add(telemetry)

	ui, err := slots.ConnectFunc(c.Emitter, func(ctx context.Context, s productionStep) error {
		fmt.Println(progressBar(s.Step, s.Percent))
		return nil
	}, slots.WithSlotName("production-ui"))
	if err != nil {
		return err
	}
	subs.Add(ui)

	ready, err := slots.ConnectFunc(c.Emitter, func(ctx context.Context, r systemReady) error {
		fmt.Printf("[READY] firmware %s\n", r.Firmware)
		return nil
	})
	if err != nil {
		return err
	}
	subs.Add(ready)

	interlock, err := slots.Connect(c.Emitter, func(ctx context.Context, s emergencyStop) (string, error) {
		fmt.Fprintf(os.Stderr, "\n[!!! EMERGENCY STOP !!!]\nError: %d | Reason: %s\n", s.Code, s.Reason)
		return fmt.Sprintf("interlock engaged for code %d", s.Code), nil
	}, slots.WithSlotName("safety-interlock"))
	if err != nil {
		return err
	}
	subs.Add(interlock)

	siren, err := slots.ConnectFunc(c.Emitter, func(ctx context.Context, s emergencyStop) error {
		fmt.Println("[SIREN] evacuate line")
		return nil
	})
	if err != nil {
		return err
	}
	subs.Add(siren)

	header("STARTING NOMINAL PRODUCTION")
	res, err := c.run(ctx, "GOLD_BATCH_001", interlock)
	if err != nil {
		return err
	}
	log.Print(res)

	header("STARTING STRESS TEST (FAILURE SIMULATION)")
	// headless run, the interlock stays armed
	ui.Disable()

	_, err = c.run(ctx, failingBatch, interlock)
	switch {
	case errors.Is(err, errHardwareFailure):
		log.Printf("Pipeline terminated: %v", err)
	case err != nil:
		return err
	default:
		return errors.New("failing batch completed")
	}
	return nil
}
