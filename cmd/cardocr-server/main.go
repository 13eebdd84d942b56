// Command cardocr-server serves card recognition over HTTP.
//
//	POST /api/v1/recognize   multipart field "file" holding a screenshot
//	GET  /healthz
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/wbrown/cardocr"
	"github.com/wbrown/cardocr/internal/config"
	"github.com/wbrown/cardocr/internal/logging"
	"github.com/wbrown/cardocr/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	addr := flag.String("addr", cfg.Addr, "Listen address")
	catalogPath := flag.String("catalog", "",
		"Catalog file to use instead of the embedded reference patterns")
	logLevel := flag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pretty := flag.Bool("pretty", cfg.LogPretty, "Human readable logs")
	flag.Parse()

	log, err := logging.New(*logLevel, os.Stderr, *pretty)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if log.GetLevel() > zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	var opts []cardocr.RecognizerOption
	if *catalogPath != "" {
		c, err := cardocr.LoadCatalog(*catalogPath)
		if err != nil {
			log.Fatal().Err(err).Msg("load catalog")
		}
		opts = append(opts, cardocr.WithCatalog(c))
	}
	recognizer := cardocr.NewRecognizer(opts...)
	if err := recognizer.Validate(); err != nil {
		log.Fatal().Err(err).Msg("validate catalog")
	}

	e := server.New(recognizer, log)
	log.Info().Str("addr", *addr).Msg("listening")
	if err := e.Run(*addr); err != nil {
		log.Fatal().Err(err).Msg("run server")
	}
}
