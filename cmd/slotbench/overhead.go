package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/delaneyj/slotparty/slots"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

type overheadResult struct {
	dispatches  int64
	broadcast   time.Duration
	connect     time.Duration
	disconnect  time.Duration
	spawned     uint64
	handlerRuns int64
}

func overhead(ctx context.Context, cmd *cli.Command) error {
	log.Print("Starting slot overhead benchmark, please wait...")
	defer log.Print("Finished slot overhead benchmark")

	sc, err := loadScenario(cmd.String(configKey))
	if err != nil {
		return err
	}
	exec, stop, err := sc.executor()
	if err != nil {
		return err
	}
	defer stop()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"slots", "broadcasts", "tasks", "per broadcast", "per task",
		"dispatch rate", "connect", "disconnect",
	})

	for _, n := range sc.Slots {
		log.Printf("Running %d slots", n)
		res, err := measureOverhead(ctx, exec, n, sc.Iterations)
		if err != nil {
			return err
		}
		if res.handlerRuns != int64(res.spawned) {
			return fmt.Errorf("%d slots: spawned %d tasks but %d ran", n, res.spawned, res.handlerRuns)
		}

		perBroadcast := res.broadcast / time.Duration(res.dispatches)
		perTask := res.broadcast / time.Duration(max(res.handlerRuns, 1))
		rate := float64(res.handlerRuns) / res.broadcast.Seconds()

		table.Append([]string{
			strconv.Itoa(n),
			humanize.Comma(res.dispatches),
			humanize.Comma(res.handlerRuns),
			perBroadcast.String(),
			perTask.String(),
			humanize.SIWithDigits(rate, 2, "tasks/s"),
			(res.connect / time.Duration(n)).String(),
			(res.disconnect / time.Duration(n)).String(),
		})
	}

	if cmd.Bool(tableKey) {
		table.Render()
	}
	return nil
}

func measureOverhead(ctx context.Context, exec slots.Executor, n, iters int) (overheadResult, error) {
	res := overheadResult{dispatches: int64(iters)}

	e, err := slots.NewEmitter(
		slots.WithName(fmt.Sprintf("overhead-%d", n)),
		slots.Supports[int](),
		slots.WithExecutor(exec),
	)
	if err != nil {
		return res, err
	}
	defer e.Close(ctx)

	var runs atomic.Int64
	counted := func(ctx context.Context, v int) error {
		runs.Add(1)
		return nil
	}

	conns := make([]slots.Connection[int, slots.Void], n)
	start := time.Now()
	for i := range conns {
		if conns[i], err = slots.ConnectFunc(e, counted); err != nil {
			return res, err
		}
	}
	res.connect = time.Since(start)

	start = time.Now()
	for i := 0; i < iters; i++ {
		slots.Broadcast(ctx, e, i)
	}
	if err := e.Scope().Drain(ctx); err != nil {
		return res, err
	}
	res.broadcast = time.Since(start)
	res.spawned = e.Stats().Spawned
	res.handlerRuns = runs.Load()

	start = time.Now()
	for _, c := range conns {
		c.Disconnect()
	}
	res.disconnect = time.Since(start)

	return res, nil
}
