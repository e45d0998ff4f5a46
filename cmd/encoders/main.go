// Command encoders reads a file of posting lists and writes a compressed
// cmp/TOC file pair, per original_source/src/encoders.cpp's CLI: a
// positional EncoderID and input filename, plus -p (progress) and -r
// (resume) flags.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/invidx/pfor/codec"
	"github.com/invidx/pfor/container"
)

const usage = `Usage: encoders [Options] <EncoderID> <infilename>
Options
     -p: Show a progress indicator
     -r: Try to resume if a broken encoded file exists

EncoderID	EncoderName
---
	0	Gamma
	1	Delta
	2	Variable Byte
	3	Binary Interpolative
	4	Simple 9
	5	Simple 16
	6	PForDelta
	7	OPTPForDelta
	8	VSEncodingBlocks
	9	VSE-R
	10	VSEncodingRest
	11	VSEncodingBlocksHybrid
	12	VSEncodingSimple v1
	13	VSEncodingSimple v2
`

// usageError marks an argument error that should print the usage banner
// instead of a bare error, mirroring __usage()'s combined message+listing.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg + "\n" + usage }

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("encoders", flag.ContinueOnError)
	progress := fs.Bool("p", false, "show a progress indicator")
	resume := fs.Bool("r", false, "try to resume if a broken encoded file exists")
	fs.Usage = func() {}
	if err := fs.Parse(args); err != nil {
		return &usageError{msg: err.Error()}
	}

	rest := fs.Args()
	if len(rest) != 2 {
		return &usageError{msg: "expected <EncoderID> <infilename>"}
	}

	encID, err := strconv.Atoi(rest[0])
	if err != nil || encID < 0 || encID >= int(codec.NumEncoders) {
		return &usageError{msg: fmt.Sprintf("EncoderID %q invalid", rest[0])}
	}

	infile := rest[1]
	if _, err := os.Stat(infile); err != nil {
		return err
	}

	id := codec.ID(encID)
	cmpPath := infile + id.Ext()
	tocPath := cmpPath + ".TOC"

	var logger *log.Logger
	if *progress {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	w, err := container.NewWriter(id, container.DefaultOptions(), logger)
	if err != nil {
		return err
	}
	return w.Run(infile, cmpPath, tocPath, *resume)
}
