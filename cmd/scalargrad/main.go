// Package main provides the scalargrad CLI.
//
// Commands:
//
//	scalargrad version
//	scalargrad train [-epochs N] [-lr F] [-momentum F] [-optimizer sgd|adam] [-layers 4,4,1] [-seed N] [-log-every N] [-save FILE] [-load FILE]
//	scalargrad graph [-o FILE]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/checkpoint"
	"github.com/born-ml/scalargrad/internal/nn"
	"github.com/born-ml/scalargrad/internal/train"
	"github.com/born-ml/scalargrad/internal/viz"
)

const version = "v0.1.0"

// The parity demo: target is -1 when the feature sum is odd, 1 when even.
var (
	demoInputs  = [][]float64{{1, 1, 1}, {0, 2, 4}, {-2, 4, 2}, {3, 1, 3}}
	demoTargets = []float64{-1, 1, 1, -1}
)

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage(os.Stdout)
		return
	}

	var err error
	switch os.Args[1] {
	case "version":
		fmt.Printf("scalargrad %s\n", version)
	case "train":
		err = runTrain(os.Args[2:])
	case "graph":
		err = runGraph(os.Args[2:])
	default:
		usage(os.Stderr)
		os.Exit(2)
	}
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "scalargrad - scalar reverse-mode autodiff")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  train      Train an MLP on the parity demo")
	fmt.Fprintln(w, "  graph      Write the DOT graph of L = (a*b + c) * f")
}

func runTrain(args []string) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	defaults := train.DefaultConfig()
	epochs := fs.Int("epochs", defaults.Epochs, "Number of training epochs")
	lr := fs.Float64("lr", defaults.LR, "Learning rate")
	momentum := fs.Float64("momentum", 0, "SGD momentum")
	optimizer := fs.String("optimizer", defaults.Optimizer, "Optimizer: sgd or adam")
	layers := fs.String("layers", "4,4,1", "Comma-separated neurons per layer")
	seed := fs.Uint64("seed", 0, "Initialization seed (0 = random)")
	logEvery := fs.Int("log-every", defaults.LogEvery, "Log loss every N epochs (0 = off)")
	save := fs.String("save", "", "Write trained parameters to this SafeTensors file")
	load := fs.String("load", "", "Initialize parameters from this SafeTensors file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	widths, err := parseLayers(*layers)
	if err != nil {
		return err
	}

	var opts []nn.Option
	if *seed != 0 {
		opts = append(opts, nn.WithSeed(*seed))
	}
	model, err := nn.NewMLP(len(demoInputs[0]), widths, opts...)
	if err != nil {
		return err
	}

	if *load != "" {
		if _, err := checkpoint.Load(*load, model.Parameters()); err != nil {
			return fmt.Errorf("load %s: %w", *load, err)
		}
		log.Printf("Loaded %d parameters from %s", len(model.Parameters()), *load)
	}

	log.Printf("Targets: %v", demoTargets)
	history, err := train.Fit(model, demoInputs, demoTargets, train.Config{
		Epochs:    *epochs,
		LR:        *lr,
		Momentum:  *momentum,
		Optimizer: *optimizer,
		LogEvery:  *logEvery,
		Logger:    log.Default(),
	})
	if err != nil {
		return err
	}

	best, bestEpoch := history.Best()
	log.Printf("Final loss %.6f (best %.6f at epoch %d)", history.Final(), best, bestEpoch+1)
	log.Println("Final predictions:")
	for i, p := range train.Predict(model, demoInputs) {
		log.Printf("  %v -> %+.4f (target %+.0f)", demoInputs[i], p, demoTargets[i])
	}

	if *save != "" {
		meta := map[string]string{
			"layers": *layers,
			"epochs": strconv.Itoa(*epochs),
			"loss":   strconv.FormatFloat(history.Final(), 'g', -1, 64),
		}
		if err := checkpoint.Save(*save, model.Parameters(), meta); err != nil {
			return fmt.Errorf("save %s: %w", *save, err)
		}
		log.Printf("Saved %d parameters to %s", len(model.Parameters()), *save)
	}
	return nil
}

func runGraph(args []string) error {
	fs := flag.NewFlagSet("graph", flag.ContinueOnError)
	out := fs.String("o", "", "Output file (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a := autodiff.NewLabeled("a", 2.0)
	b := autodiff.NewLabeled("b", -3.0)
	c := autodiff.NewLabeled("c", 10.0)
	f := autodiff.NewLabeled("f", -2.0)
	e := a.Mul(b).SetLabel("e")
	d := e.Add(c).SetLabel("d")
	L := d.Mul(f).SetLabel("L")
	L.Backward()

	if *out == "" {
		return viz.WriteDOT(os.Stdout, L)
	}

	//nolint:gosec // G304: output path is user-provided
	file, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create %s: %w", *out, err)
	}
	if err := viz.WriteDOT(file, L); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

func parseLayers(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	widths := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid layer width %q: %w", p, err)
		}
		widths = append(widths, n)
	}
	return widths, nil
}
