package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/maruel/subcommands"
)

var cmdInfo = &subcommands.Command{
	UsageLine: "info <file.las>",
	ShortDesc: "prints the public header and region sizes of a LAS file",
	CommandRun: func() subcommands.CommandRun {
		c := &infoRun{}
		c.init()
		return c
	},
}

type infoRun struct {
	commandBase
}

func (c *infoRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	if len(args) != 1 {
		fmt.Fprintln(a.GetErr(), "info: expected exactly one file")
		return 1
	}
	b, h, err := c.open(args[0])
	if err != nil {
		log.Errorf("%s: %v", args[0], err)
		return 1
	}

	out := a.GetOut()
	fmt.Fprintf(out, "File:            %s (%s)\n", args[0], humanize.Bytes(uint64(len(b))))
	fmt.Fprintf(out, "Version:         %d.%d\n", h.VersionMajor, h.VersionMinor)
	fmt.Fprintf(out, "Project ID:      %s\n", h.ProjectID)
	fmt.Fprintf(out, "System ID:       %s\n", h.SystemID)
	fmt.Fprintf(out, "Software:        %s\n", h.Software)
	fmt.Fprintf(out, "Header size:     %d\n", h.HeaderSize)
	var vlrBytes uint64
	if h.PointOffset > uint32(h.HeaderSize) {
		vlrBytes = uint64(h.PointOffset - uint32(h.HeaderSize))
	}
	fmt.Fprintf(out, "VLRs:            %d (%s)\n", h.NumVLRs, humanize.Bytes(vlrBytes))
	fmt.Fprintf(out, "Point format:    %d (record length %d, core size %d)\n",
		h.PointFormat, h.PointRecordLen, h.PointFormat.Size())
	fmt.Fprintf(out, "Points:          %s (%s)\n", humanize.Comma(int64(h.NumPoints)),
		humanize.Bytes(h.NumPoints*uint64(h.PointRecordLen)))
	fmt.Fprintf(out, "Scale:           %g %g %g\n", h.Scale[0], h.Scale[1], h.Scale[2])
	fmt.Fprintf(out, "Offset:          %g %g %g\n", h.Offset[0], h.Offset[1], h.Offset[2])
	if h.NumEVLRs > 0 {
		fmt.Fprintf(out, "EVLRs:           %d at offset %d (%s)\n", h.NumEVLRs, h.EVLRStart,
			humanize.Bytes(uint64(len(b))-min(h.EVLRStart, uint64(len(b)))))
	}
	if compressed(b) {
		fmt.Fprintln(out, "Compression:     LAZ (points not readable)")
	}
	return 0
}
