package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/delaneyj/slotparty/slots"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

type reading struct {
	Value float64
	Seq   int
}

func latency(ctx context.Context, cmd *cli.Command) error {
	sc, err := loadScenario(cmd.String(configKey))
	if err != nil {
		return err
	}
	exec, stop, err := sc.executor()
	if err != nil {
		return err
	}
	defer stop()

	log.Printf("warming up")
	if _, err := measureLatency(ctx, exec, sc.Slots[0], sc.Iterations); err != nil {
		return err
	}

	tbl := table.NewWriter()
	tbl.SetTitle(fmt.Sprintf("Broadcast latency (%s executor)", sc.Executor))
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"slots", "avg", "min", "p75", "p99", "max"})

	for _, n := range sc.Slots {
		log.Printf("Running %d slots x %d broadcasts", n, sc.Iterations)
		calc, err := measureLatency(ctx, exec, n, sc.Iterations)
		if err != nil {
			return err
		}
		tbl.AppendRows([]table.Row{
			{
				n,
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if cmd.Bool(tableKey) {
		tbl.Render()
	}
	return nil
}

// measureLatency times a broadcast to n slots until every handler has run.
func measureLatency(ctx context.Context, exec slots.Executor, n, iters int) (*tachymeter.Metrics, error) {
	e, err := slots.NewEmitter(
		slots.WithName(fmt.Sprintf("latency-%d", n)),
		slots.Supports[reading](),
		slots.WithExecutor(exec),
	)
	if err != nil {
		return nil, err
	}
	defer e.Close(ctx)

	sink := make([]float64, n)
	for i := 0; i < n; i++ {
		if _, err := slots.ConnectFunc(e, func(ctx context.Context, r reading) error {
			sink[i] = r.Value
			return nil
		}); err != nil {
			return nil, err
		}
	}

	tach := tachymeter.New(&tachymeter.Config{Size: iters})
	for i := 0; i < iters; i++ {
		start := time.Now()
		slots.Broadcast(ctx, e, reading{Value: float64(i), Seq: i})
		if err := e.Scope().Drain(ctx); err != nil {
			return nil, err
		}
		tach.AddTime(time.Since(start))
	}
	return tach.Calc(), nil
}
