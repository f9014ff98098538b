// Command transmission sweeps the Landauer transmission of a
// tight-binding chain between two semi-infinite leads and renders the
// curve T(E) to a PNG.
//
// The chain has unit hopping and zero on-site energy, so the band spans
// E ∈ [-2, 2]; an optional impurity on the middle site dents the
// otherwise flat ballistic plateau.
//
// Usage:
//
//	transmission [-sites 8] [-impurity 0] [-from -2.5] [-to 2.5]
//	             [-points 401] [-eta 1e-6] [-workers 0] [-o transmission.png]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/negf/blockmat"
	"github.com/katalvlaran/negf/ensemble"
	"github.com/katalvlaran/negf/transport"
	"github.com/katalvlaran/negf/zmat"
)

func main() {
	var (
		sites    = flag.Int("sites", 8, "number of device sites")
		impurity = flag.Float64("impurity", 0, "on-site energy of the middle device site")
		from     = flag.Float64("from", -2.5, "sweep start energy")
		to       = flag.Float64("to", 2.5, "sweep end energy")
		points   = flag.Int("points", 401, "number of energy points")
		eta      = flag.Float64("eta", 1e-6, "imaginary broadening added to the energy")
		workers  = flag.Int("workers", 0, "worker pool size, 0 = all cores")
		out      = flag.String("o", "transmission.png", "output PNG path")
	)
	flag.Parse()

	if *sites < 1 || *points < 2 || *to <= *from {
		flag.Usage()
		os.Exit(2)
	}

	energies := make([]float64, *points)
	step := (*to - *from) / float64(*points-1)
	for i := range energies {
		energies[i] = *from + step*float64(i)
	}

	results := transport.Sweep(*points, func(i int) transport.System {
		return chainSystem(*sites, *impurity, complex(energies[i], *eta))
	}, transport.LeftToRight,
		[]ensemble.Option{
			ensemble.WithWorkers(*workers),
			ensemble.WithProgress(func(f float64) {
				fmt.Fprintf(os.Stderr, "\rsweep %3.0f%%", 100*f)
			}),
		})
	fmt.Fprintln(os.Stderr)

	pts := make(plotter.XYs, 0, *points)
	for i, r := range results {
		if r.Err != nil {
			log.Printf("E=%+.4f: %v", energies[i], r.Err)

			continue
		}
		pts = append(pts, plotter.XY{X: energies[i], Y: r.Value})
	}
	if len(pts) == 0 {
		log.Fatal("no energy point produced a transmission value")
	}

	if err := render(pts, *out); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s (%d points)\n", *out, len(pts))
}

// chainSystem assembles the inverse-Green's-function form of the device
// and its two single-site leads at complex energy e.
func chainSystem(sites int, impurity float64, e complex128) transport.System {
	m := zmat.NewGeneral(sites, sites)
	for i := 0; i < sites; i++ {
		m.Data[i*m.Stride+i] = e
		if i+1 < sites {
			m.Data[i*m.Stride+i+1] = 1
			m.Data[(i+1)*m.Stride+i] = 1
		}
	}
	m.Data[(sites/2)*m.Stride+sites/2] -= complex(impurity, 0)

	sizes := make([]int, sites)
	for i := range sizes {
		sizes[i] = 1
	}
	dev, err := blockmat.NewView(m, sizes)
	if err != nil {
		log.Fatal(err)
	}

	unit := zmat.NewGeneral(1, 1)
	unit.Data[0] = 1
	onsite := zmat.NewGeneral(1, 1)
	onsite.Data[0] = e
	lead := transport.Lead{H: onsite, V: unit}

	return transport.System{
		Device:        dev,
		Left:          lead,
		Right:         lead,
		CouplingLeft:  unit,
		CouplingRight: unit,
	}
}

// render draws T(E) and saves the PNG.
func render(pts plotter.XYs, path string) error {
	p := plot.New()
	p.Title.Text = "Landauer transmission"
	p.X.Label.Text = "E"
	p.Y.Label.Text = "T(E)"
	p.Y.Min = 0

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("plot line: %w", err)
	}
	p.Add(line, plotter.NewGrid())

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
