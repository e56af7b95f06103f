// Command lasinfo prints the records and points of a LAS file.
package main

import (
	"flag"
	"os"

	"github.com/maruel/subcommands"
	logging "github.com/op/go-logging"
)

const logFormat = `%{color}[%{time:15:04:05.000} %{shortfile} %{level:.4s}]%{color:reset} %{message}`

var log = logging.MustGetLogger("lasinfo")

var application = &subcommands.DefaultApplication{
	Name:  "lasinfo",
	Title: "Inspect the header, records and points of LAS files.",
	Commands: []*subcommands.Command{
		cmdInfo,
		cmdRecords,
		cmdPoints,
		subcommands.CmdHelp,
	},
}

// setupLogging sends log output to stderr. Verbose runs include debug
// messages.
func setupLogging(verbose bool) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(logFormat))
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.WARNING, "")
	if verbose {
		leveled.SetLevel(logging.DEBUG, "")
	}
	logging.SetBackend(leveled)
}

// commandBase holds the flags shared by every command.
type commandBase struct {
	subcommands.CommandRunBase
	verbose bool
}

func (c *commandBase) init() {
	c.Flags.BoolVar(&c.verbose, "v", false, "log debug output to stderr")
}

// open reads a whole LAS file and parses its header.
func (c *commandBase) open(path string) ([]byte, fileHeader, error) {
	setupLogging(c.verbose)

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fileHeader{}, err
	}
	h, err := readHeader(b)
	if err != nil {
		return nil, fileHeader{}, err
	}
	log.Debugf("%s: LAS %d.%d, %d VLRs, %d EVLRs, %d points of format %d",
		path, h.VersionMajor, h.VersionMinor, h.NumVLRs, h.NumEVLRs, h.NumPoints, h.PointFormat)
	return b, h, nil
}

func main() {
	flag.Parse()
	os.Exit(subcommands.Run(application, flag.Args()))
}
