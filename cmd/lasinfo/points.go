package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/maruel/subcommands"

	"github.com/robert-malhotra/go-las/las/point"
	"github.com/robert-malhotra/go-las/las/stats"
)

var cmdPoints = &subcommands.Command{
	UsageLine: "points [-n 10] [-stats] <file.las>",
	ShortDesc: "prints points of a LAS file",
	CommandRun: func() subcommands.CommandRun {
		c := &pointsRun{}
		c.init()
		c.Flags.IntVar(&c.limit, "n", 10, "number of points to print")
		c.Flags.BoolVar(&c.stats, "stats", false, "summarize all points instead of printing them")
		return c
	},
}

type pointsRun struct {
	commandBase
	limit int
	stats bool
}

func (c *pointsRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	if len(args) != 1 {
		fmt.Fprintln(a.GetErr(), "points: expected exactly one file")
		return 1
	}
	b, h, err := c.open(args[0])
	if err != nil {
		log.Errorf("%s: %v", args[0], err)
		return 1
	}
	if compressed(b) {
		log.Errorf("%s: LAZ compressed points are not supported", args[0])
		return 1
	}

	n := h.NumPoints
	if !c.stats && uint64(c.limit) < n {
		n = uint64(c.limit)
	}
	pts, err := readPoints(b, h, n)
	if err != nil {
		log.Errorf("%s: %v", args[0], err)
		return 1
	}

	out := a.GetOut()
	if c.stats {
		s, err := stats.Summarize(pts)
		if err != nil {
			log.Errorf("%s: %v", args[0], err)
			return 1
		}
		printSummary(out, h, s)
		return 0
	}
	for i, p := range pts {
		printPoint(out, i, h, p)
	}
	return 0
}

// readPoints decodes the first n points. Each record is PointRecordLen bytes;
// anything past the format's size is extra bytes and skipped.
func readPoints(b []byte, h fileHeader, n uint64) ([]point.Point, error) {
	if h.PointFormat.Size() == 0 {
		return nil, fmt.Errorf("%w: %d", point.ErrUnknownFormat, h.PointFormat)
	}
	size := uint64(h.PointRecordLen)
	if int(size) < h.PointFormat.Size() {
		return nil, fmt.Errorf("record length %d is shorter than %s (%d bytes)",
			size, h.PointFormat, h.PointFormat.Size())
	}

	pts := make([]point.Point, 0, min(n, uint64(len(b))/size))
	for i := uint64(0); i < n; i++ {
		off := uint64(h.PointOffset) + i*size
		if off+size > uint64(len(b)) {
			return nil, fmt.Errorf("point %d at offset %d is past the end of the file", i, off)
		}
		p, _, err := point.Decode(h.PointFormat, b[off:off+size])
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		pts = append(pts, p)
	}
	return pts, nil
}

func printPoint(w io.Writer, i int, h fileHeader, p point.Point) {
	a := p.Attributes()
	x := float64(a.X)*h.Scale[0] + h.Offset[0]
	y := float64(a.Y)*h.Scale[1] + h.Offset[1]
	z := float64(a.Z)*h.Scale[2] + h.Offset[2]
	fmt.Fprintf(w, "%d: %.3f %.3f %.3f  i=%d r=%d/%d c=%d angle=%.3f",
		i, x, y, z, a.Intensity, a.ReturnNumber, a.NumberOfReturns, a.Classification, a.ScanAngle)
	if t, ok := p.(point.HasTime); ok {
		fmt.Fprintf(w, " t=%.6f", t.GPSTime())
	}
	if c, ok := p.(point.HasColor); ok {
		rgb := c.Color()
		fmt.Fprintf(w, " rgb=%d,%d,%d", rgb.Red, rgb.Green, rgb.Blue)
	}
	if n, ok := p.(point.HasNearInfrared); ok {
		fmt.Fprintf(w, " nir=%d", n.NIR())
	}
	if wp, ok := p.(point.HasWavePacket); ok {
		fmt.Fprintf(w, " wave=%d@%d", wp.WavePacket().DescriptorIndex, wp.WavePacket().ByteOffset)
	}
	fmt.Fprintln(w)
}

func printSummary(w io.Writer, h fileHeader, s stats.Summary) {
	fmt.Fprintf(w, "Points: %d\n", s.Count)
	for i, ax := range []stats.Axis{s.X, s.Y, s.Z} {
		name := "XYZ"[i : i+1]
		fmt.Fprintf(w, "%s: min %.3f max %.3f mean %.3f stddev %.3f\n", name,
			ax.Min*h.Scale[i]+h.Offset[i], ax.Max*h.Scale[i]+h.Offset[i],
			ax.Mean*h.Scale[i]+h.Offset[i], ax.StdDev*h.Scale[i])
	}
	fmt.Fprintf(w, "Intensity: mean %.1f stddev %.1f\n", s.Intensity.Mean, s.Intensity.StdDev)
	if s.WithTime > 0 {
		fmt.Fprintf(w, "GPS time: %.6f to %.6f\n", s.GPSTime.Min, s.GPSTime.Max)
	}
	fmt.Fprintf(w, "Shape: linearity %.3f planarity %.3f scattering %.3f\n",
		s.Shape.Linearity, s.Shape.Planarity, s.Shape.Scattering)

	classes := make([]int, 0, len(s.Classes))
	for c := range s.Classes {
		classes = append(classes, int(c))
	}
	sort.Ints(classes)
	for _, c := range classes {
		fmt.Fprintf(w, "class %3d: %d\n", c, s.Classes[uint8(c)])
	}
}
