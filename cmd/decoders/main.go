// Command decoders reads a cmp/TOC file pair produced by encoders and
// writes the recovered posting lists back out as whitespace-separated text,
// one list per line, to the given output file (or stdout if omitted).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/invidx/pfor/codec"
	"github.com/invidx/pfor/container"
)

const usage = `Usage: decoders [Options] <EncoderID> <infilename> [outfilename]
Options
     -p: Show a progress indicator

infilename is the original list file's name (the cmp/TOC pair is derived
from it the same way encoders derives them: <infilename><ext> and
<infilename><ext>.TOC). outfilename defaults to stdout.

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

type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg + "\n" + usage }

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("decoders", flag.ContinueOnError)
	progress := fs.Bool("p", false, "show a progress indicator")
	fs.Usage = func() {}
	if err := fs.Parse(args); err != nil {
		return &usageError{msg: err.Error()}
	}

	rest := fs.Args()
	if len(rest) != 2 && len(rest) != 3 {
		return &usageError{msg: "expected <EncoderID> <infilename> [outfilename]"}
	}

	encID, err := strconv.Atoi(rest[0])
	if err != nil || encID < 0 || encID >= int(codec.NumEncoders) {
		return &usageError{msg: fmt.Sprintf("EncoderID %q invalid", rest[0])}
	}

	id := codec.ID(encID)
	infile := rest[1]
	cmpPath := infile + id.Ext()
	tocPath := cmpPath + ".TOC"

	out := io.Writer(os.Stdout)
	if len(rest) == 3 {
		f, err := os.Create(rest[2])
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	r, err := container.Open(cmpPath, tocPath, id)
	if err != nil {
		return err
	}
	defer r.Close()

	w := bufio.NewWriter(out)
	defer w.Flush()

	for i := 0; i < r.Len(); i++ {
		if *progress && r.Len() > 0 && i%1_000_000 == 0 {
			log.Printf("decoded %d/%d lists", i, r.Len())
		}
		list, err := r.Decode(i)
		if err != nil {
			return err
		}
		for j, v := range list {
			if j > 0 {
				if _, err := w.WriteString(" "); err != nil {
					return err
				}
			}
			if _, err := w.WriteString(strconv.FormatUint(uint64(v), 10)); err != nil {
				return err
			}
		}
		if _, err := w.WriteString("\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}
