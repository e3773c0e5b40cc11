// Command densefsa runs beam-pruned dense-graph intersection over a
// serialized decoding graph and emission batch, writing the pruned
// lattice back out in the same format.
package main

import (
	"log"
	"os"

	"github.com/arrowlat/densefsa/fsa"
	"github.com/arrowlat/densefsa/intersect"
	"github.com/arrowlat/densefsa/kernel"
	"github.com/arrowlat/densefsa/serialize"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// VERSION is injected by buildflags.
var VERSION = "SELFBUILD"

func main() {
	app := cli.NewApp()
	app.Name = "densefsa"
	app.Usage = "beam-pruned dense-graph intersection for speech decoding"
	app.Version = VERSION
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "graph, g", Usage: "path to a serialized FsaVec decoding graph (required)"},
		cli.StringFlag{Name: "emissions, e", Usage: "path to a serialized DenseEmissions batch (required)"},
		cli.StringFlag{Name: "out, o", Usage: "path to write the pruned FsaVec lattice (required)"},
		cli.Float64Flag{Name: "search-beam", Value: float64(intersect.DefaultOptions().SearchBeam), Usage: "dynamic forward beam target"},
		cli.Float64Flag{Name: "output-beam", Value: float64(intersect.DefaultOptions().OutputBeam), Usage: "fixed backward beam"},
		cli.IntFlag{Name: "min-active", Value: int(intersect.DefaultOptions().MinActive), Usage: "soft lower bound on active states per sequence"},
		cli.IntFlag{Name: "max-active", Value: int(intersect.DefaultOptions().MaxActive), Usage: "soft upper bound on active states per sequence"},
		cli.IntFlag{Name: "parallelism, p", Value: 0, Usage: "worker goroutine budget; 0 uses GOMAXPROCS"},
		cli.BoolFlag{Name: "validate", Usage: "cross-check the pruned lattice against its arc maps before writing it out"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("densefsa: %v", err)
	}
}

func run(c *cli.Context) error {
	graphPath, emissionsPath, outPath := c.String("graph"), c.String("emissions"), c.String("out")
	if graphPath == "" || emissionsPath == "" || outPath == "" {
		return errors.New("densefsa: --graph, --emissions, and --out are all required")
	}

	aFsas, err := readFsaVec(graphPath)
	if err != nil {
		return err
	}
	bFsas, err := readDenseEmissions(emissionsPath)
	if err != nil {
		return err
	}

	opts := intersect.Options{
		SearchBeam: float32(c.Float64("search-beam")),
		OutputBeam: float32(c.Float64("output-beam")),
		MinActive:  int32(c.Int("min-active")),
		MaxActive:  int32(c.Int("max-active")),
	}

	ctx := kernel.NewHostContext(c.Int("parallelism"))
	ofsa, arcMapA, arcMapB, err := intersect.IntersectDensePruned(ctx, aFsas, bFsas, opts)
	if err != nil {
		return errors.Wrap(err, "densefsa: intersection failed")
	}
	log.Printf("densefsa: pruned lattice has %d FSAs, %d arcs (arc_map_a/b each len %d)",
		ofsa.NumGraphs(), len(ofsa.Values), len(arcMapA))

	if c.Bool("validate") {
		if err := intersect.ValidateArcMaps(ofsa, arcMapA, arcMapB, aFsas, bFsas); err != nil {
			return errors.Wrap(err, "densefsa: arc map validation failed")
		}
		log.Print("densefsa: arc map validation passed")
	}

	out, err := os.Create(outPath)
	if err != nil {
		return errors.Wrapf(err, "densefsa: creating %s", outPath)
	}
	defer out.Close()
	if err := serialize.WriteFsaVec(out, ofsa); err != nil {
		return errors.Wrap(err, "densefsa: writing pruned lattice")
	}
	return nil
}

func readFsaVec(path string) (fsa.FsaVec, error) {
	f, err := os.Open(path)
	if err != nil {
		return fsa.FsaVec{}, errors.Wrapf(err, "densefsa: opening graph %s", path)
	}
	defer f.Close()
	v, err := serialize.ReadFsaVec(f)
	if err != nil {
		return fsa.FsaVec{}, errors.Wrapf(err, "densefsa: reading graph %s", path)
	}
	return v, nil
}

func readDenseEmissions(path string) (fsa.DenseEmissions, error) {
	f, err := os.Open(path)
	if err != nil {
		return fsa.DenseEmissions{}, errors.Wrapf(err, "densefsa: opening emissions %s", path)
	}
	defer f.Close()
	d, err := serialize.ReadDenseEmissions(f)
	if err != nil {
		return fsa.DenseEmissions{}, errors.Wrapf(err, "densefsa: reading emissions %s", path)
	}
	if err := d.Validate(); err != nil {
		return fsa.DenseEmissions{}, errors.Wrapf(err, "densefsa: validating emissions %s", path)
	}
	return d, nil
}
