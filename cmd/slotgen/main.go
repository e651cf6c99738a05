package main

import (
	"context"
	"fmt"
	"go/format"
	"log"
	"os"
	"time"

	"github.com/delaneyj/slotparty/cmd/slotgen/templates"
	"github.com/urfave/cli/v3"
)

const (
	arityCountKey = "count"
	outputKey     = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "slotgen",
		Usage: "Generate the fixed-arity Emit/Capture functions for package slots",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityCountKey,
				Usage: "Highest number of connections a generated Emit/Capture accepts",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "File to write",
				Value: "slots/arity_gen.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for slots started !")
	defer func() {
		log.Printf("Codegen for slots finished in %v", time.Since(start))
	}()

	count := int(cmd.Uint(arityCountKey))
	if count < 1 {
		return fmt.Errorf("--%s must be at least 1", arityCountKey)
	}
	out := cmd.String(outputKey)
	log.Printf("Arity: 1..%d -> %s", count, out)

	contents, err := format.Source([]byte(templates.ArityGen(count)))
	if err != nil {
		return fmt.Errorf("formatting generated code: %w", err)
	}
	return os.WriteFile(out, contents, 0644)
}
