// SPDX-License-Identifier: EPL-2.0

// Command wavhdr inspects WAV headers and converts audio for 8-bit mono
// playback.
//
//	wavhdr [-v] info [-max-scan N] [-pad] file...
//	wavhdr [-v] chunks file
//	wavhdr [-v] convert [-rate R] input output.wav
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ik5/wavhdr"
	"github.com/ik5/wavhdr/formats/wav"
	"github.com/ik5/wavhdr/header"
)

const usage = `usage: wavhdr [-v] <command> [flags] args

commands:
  info [-max-scan N] [-pad] file...   validate headers for playback
  chunks file                         list RIFF chunks
  convert [-rate R] input output.wav  convert WAV, AIFF, MP3 or Ogg Vorbis
`

var errUsage = errors.New("invalid usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("wavhdr", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }

	verbose := fs.Bool("v", false, "log chunk scanning and conversion at debug level")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := logrus.New()
	log.SetOutput(stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	var err error

	switch cmd, rest := fs.Arg(0), fs.Args()[1:]; cmd {
	case "info":
		err = info(rest, stdout, stderr, log)
	case "chunks":
		err = chunks(rest, stdout, stderr)
	case "convert":
		err = convert(rest, stdout, stderr, log)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		fs.Usage()
		return 2
	}

	switch {
	case errors.Is(err, errUsage):
		return 2
	case err != nil:
		log.WithError(err).Error(fs.Arg(0) + " failed")
		return 1
	}

	return 0
}

func info(args []string, stdout, stderr io.Writer, log *logrus.Logger) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	fs.SetOutput(stderr)

	maxScan := fs.Uint("max-scan", header.DefaultMaxScan, "highest offset the data chunk may start at")
	pad := fs.Bool("pad", false, "skip the pad byte after odd-sized chunks")

	if err := fs.Parse(args); err != nil || fs.NArg() == 0 {
		fmt.Fprintln(stderr, "usage: wavhdr info [-max-scan N] [-pad] file...")
		return errUsage
	}

	opts := []header.Option{header.WithMaxScan(uint32(*maxScan))}
	if *pad {
		opts = append(opts, header.WithPadOddChunks())
	}

	failed := 0

	for _, path := range fs.Args() {
		entry := log.WithField("file", path)

		fileOpts := append([]header.Option{header.WithLogger(entry)}, opts...)

		fields, err := inspect(path, fileOpts...)
		switch {
		case err == nil:
			fmt.Fprintf(stdout, "%s: %v (%v)\n", path, fields, fields.Duration())
		case errors.Is(err, header.ErrUnsupportedCapability):
			fmt.Fprintf(stdout, "%s: cannot be played: %v\n", path, fields)
			entry.WithError(err).Warn("unsupported format")
			failed++
		default:
			entry.WithError(err).Warn("invalid header")
			failed++
		}
	}

	if failed > 0 {
		return errors.Errorf("%d of %d files rejected", failed, fs.NArg())
	}

	return nil
}

func inspect(path string, opts ...header.Option) (header.Fields, error) {
	f, err := os.Open(path)
	if err != nil {
		return header.Fields{}, errors.Wrap(err, "open")
	}
	defer f.Close()

	fields, err := wavhdr.Inspect(f, opts...)
	if err != nil {
		return fields, errors.Wrap(err, "inspect")
	}

	return fields, nil
}

func chunks(args []string, stdout, stderr io.Writer) error {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "usage: wavhdr chunks file")
		return errUsage
	}

	f, err := os.Open(args[0])
	if err != nil {
		return errors.Wrap(err, "open")
	}
	defer f.Close()

	list, err := wav.ListChunks(f)
	for _, c := range list {
		fmt.Fprintf(stdout, "%q\t%d bytes at %d\n", c.ID, c.Size, c.Offset)
	}

	return errors.Wrapf(err, "list chunks of %s", args[0])
}

func convert(args []string, stdout, stderr io.Writer, log *logrus.Logger) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)

	rate := fs.Int("rate", header.MinSampleRate, "output sample rate, clamped to 8000-48000 Hz")

	if err := fs.Parse(args); err != nil || fs.NArg() != 2 {
		fmt.Fprintln(stderr, "usage: wavhdr convert [-rate R] input output.wav")
		return errUsage
	}

	inPath, outPath := fs.Arg(0), fs.Arg(1)

	in, err := os.Open(inPath)
	if err != nil {
		return errors.Wrap(err, "open input")
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return errors.Wrap(err, "create output")
	}

	c := wavhdr.Converter{
		Rate: *rate,
		Log:  log.WithFields(logrus.Fields{"input": inPath, "output": outPath}),
	}

	fields, err := c.Convert(in, out)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = errors.Wrap(cerr, "close output")
	}

	if err != nil {
		_ = os.Remove(outPath)
		return errors.Wrapf(err, "convert %s", inPath)
	}

	fmt.Fprintf(stdout, "wrote %s: %v (%v)\n", outPath, fields, fields.Duration())

	return nil
}
