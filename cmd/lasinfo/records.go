package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/maruel/subcommands"

	"github.com/robert-malhotra/go-las/las"
)

var cmdRecords = &subcommands.Command{
	UsageLine: "records [-evlr=false] <file.las>",
	ShortDesc: "lists the VLRs and EVLRs of a LAS file",
	LongDesc:  "Decodes every VLR in the header area and, for LAS 1.4 files, every EVLR after the point data.",
	CommandRun: func() subcommands.CommandRun {
		c := &recordsRun{}
		c.init()
		c.Flags.BoolVar(&c.evlrs, "evlr", true, "also list extended VLRs")
		return c
	},
}

type recordsRun struct {
	commandBase
	evlrs bool
}

func (c *recordsRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	if len(args) != 1 {
		fmt.Fprintln(a.GetErr(), "records: expected exactly one file")
		return 1
	}
	b, h, err := c.open(args[0])
	if err != nil {
		log.Errorf("%s: %v", args[0], err)
		return 1
	}

	reg := las.StandardRegistry()
	out := a.GetOut()

	vlrs, n, err := reg.DecodeVLRs(b[h.HeaderSize:], int(h.NumVLRs))
	if err != nil {
		log.Errorf("decoding VLRs: %v", err)
		return 1
	}
	log.Debugf("decoded %d VLRs from %d bytes", len(vlrs), n)
	if end := uint64(h.HeaderSize) + uint64(n); end != uint64(h.PointOffset) {
		log.Warningf("VLRs end at %d but points start at %d", end, h.PointOffset)
	}
	for i, v := range vlrs {
		printRecord(out, "VLR", i, v.Header().UserID, v.Header().RecordID, v.Description, v.Payload)
	}

	if !c.evlrs || h.NumEVLRs == 0 {
		return 0
	}
	if h.EVLRStart > uint64(len(b)) {
		log.Errorf("EVLR start %d is past the end of the file (%d bytes)", h.EVLRStart, len(b))
		return 1
	}
	evlrs, _, err := reg.DecodeEVLRs(b[h.EVLRStart:], int(h.NumEVLRs))
	if err != nil {
		log.Errorf("decoding EVLRs: %v", err)
		return 1
	}
	for i, e := range evlrs {
		printRecord(out, "EVLR", i, e.Header().UserID, e.Header().RecordID, e.Description, e.Payload)
	}
	return 0
}

func printRecord(w io.Writer, kind string, i int, userID string, recordID uint16, desc string, p las.Payload) {
	fmt.Fprintf(w, "%s %d: %s/%d %q (%s)\n", kind, i, userID, recordID, desc,
		humanize.Bytes(uint64(p.PayloadSize())))

	switch p := p.(type) {
	case las.ClassificationLookup:
		for _, e := range p.Entries {
			fmt.Fprintf(w, "    class %3d  %s\n", e.Class, e.Description)
		}
	case las.TextAreaDescription:
		fmt.Fprintf(w, "    %s\n", p.Text)
	case las.WaveformPacketDescriptor:
		fmt.Fprintf(w, "    index %d: %d samples of %d bits every %d ps, gain %g offset %g\n",
			p.Index, p.Samples, p.BitsPerSample, p.TemporalSpacing, p.DigitizerGain, p.DigitizerOffset)
	case las.GeoKeyDirectory:
		fmt.Fprintf(w, "    GeoKey directory %d.%d.%d, %d keys\n",
			p.KeyDirectoryVersion, p.KeyRevision, p.MinorRevision, len(p.Keys))
		for _, k := range p.Keys {
			fmt.Fprintf(w, "    key %5d  location %5d  count %d  value %d\n",
				k.KeyID, k.TIFFTagLocation, k.Count, k.ValueOffset)
		}
	case las.GeoDoubleParams:
		fmt.Fprintf(w, "    %v\n", p.Values)
	case las.GeoASCIIParams:
		fmt.Fprintf(w, "    %q\n", p.Text)
	case las.WKT:
		fmt.Fprintf(w, "    %s\n", p.Text())
	}
}
