// Command cardocr recognizes the cards in every screenshot of a directory.
//
// Usage:
//
//	cardocr [flags] <dir>
//
// One line "<file> - <cards>" is printed per image, followed by a timing
// summary. Defaults for the flags come from CARDOCR_* environment variables.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/wbrown/cardocr"
	"github.com/wbrown/cardocr/batch"
	"github.com/wbrown/cardocr/imageutil"
	"github.com/wbrown/cardocr/internal/config"
	"github.com/wbrown/cardocr/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	decoder := flag.String("decoder", cfg.Decoder,
		fmt.Sprintf("Image decoder %v", imageutil.Decoders()))
	workers := flag.Int("workers", cfg.Workers,
		"Number of images recognized in parallel")
	dedupe := flag.Bool("dedupe", cfg.Dedupe,
		"Count screenshots that are identical to an earlier one")
	catalogPath := flag.String("catalog", "",
		"Catalog file to use instead of the embedded reference patterns")
	logLevel := flag.String("loglevel", cfg.LogLevel,
		"Log level (debug, info, warn, error)")
	pretty := flag.Bool("pretty", cfg.LogPretty,
		"Human readable logs")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <dir>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	log, err := logging.New(*logLevel, os.Stderr, *pretty)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if flag.NArg() != 1 || flag.Arg(0) == "" {
		flag.Usage()
		log.Fatal().Msg("expected exactly one directory argument")
	}

	load, err := imageutil.Loader(*decoder)
	if err != nil {
		log.Fatal().Err(err).Msg("select decoder")
	}
	recognizer, err := newRecognizer(*catalogPath)
	if err != nil {
		log.Fatal().Err(err).Msg("create recognizer")
	}

	runner := batch.NewRunner(recognizer,
		batch.WithLoader(load),
		batch.WithWorkers(*workers),
		batch.WithDedupe(*dedupe),
		batch.WithLogger(log),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	summary, err := runner.Run(ctx, flag.Arg(0), os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("run batch")
	}
	if summary.Duplicates > 0 {
		log.Info().Int("duplicates", summary.Duplicates).Msg("identical screenshots in batch")
	}
}

func newRecognizer(catalogPath string) (*cardocr.Recognizer, error) {
	var opts []cardocr.RecognizerOption
	if catalogPath != "" {
		c, err := cardocr.LoadCatalog(catalogPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, cardocr.WithCatalog(c))
	}
	r := cardocr.NewRecognizer(opts...)
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

