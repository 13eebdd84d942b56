// Command compute_catalog writes a reference catalog for the default layout.
//
// The patterns start from the embedded catalog, or from a TrueType font with
// -fromfont. With -image and -cards, the slots of a real screenshot are
// sampled and replace the patterns of the labels they show:
//
//	compute_catalog -image table.png -cards KsQh10d -output reference.txt
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wbrown/cardocr"
	"github.com/wbrown/cardocr/imageutil"
	"github.com/wbrown/cardocr/internal/logging"
)

func main() {
	fromFont := flag.Bool("fromfont", false,
		"Render every label with a TrueType font instead of starting from the embedded catalog")
	fontPath := flag.String("font", "",
		"TrueType font for -fromfont (default: Go Regular)")
	imagePath := flag.String("image", "",
		"Screenshot to capture patterns from")
	cards := flag.String("cards", "",
		"Cards shown in the screenshot, left to right, e.g. KsQh10d")
	decoder := flag.String("decoder", "go",
		fmt.Sprintf("Image decoder %v", imageutil.Decoders()))
	outputFile := flag.String("output", "",
		"Path to save the catalog (required)")
	flag.Parse()

	log, err := logging.New("info", os.Stderr, true)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *outputFile == "" || (*imagePath == "") != (*cards == "") {
		fmt.Println("-output is required; -image and -cards must be given together")
		flag.PrintDefaults()
		os.Exit(1)
	}

	layout := cardocr.DefaultLayout()
	header := "Reference patterns for the default table layout."

	base := cardocr.DefaultCatalog()
	if *fromFont {
		font, err := cardocr.LoadFont(*fontPath)
		if err != nil {
			log.Fatal().Err(err).Msg("load font")
		}
		base, err = cardocr.FontCatalog(font, layout)
		if err != nil {
			log.Fatal().Err(err).Msg("render font catalog")
		}
		name := "Go Regular"
		if *fontPath != "" {
			name = filepath.Base(*fontPath)
		}
		header += "\nRendered from " + name + "."
		log.Info().Str("font", name).Msg("rendered labels")
	}
	entries := base.All()

	if *imagePath != "" {
		load, err := imageutil.Loader(*decoder)
		if err != nil {
			log.Fatal().Err(err).Msg("select decoder")
		}
		img, err := load(*imagePath)
		if err != nil {
			log.Fatal().Err(err).Msg("load screenshot")
		}
		shown, err := cardocr.ParseCards(*cards)
		if err != nil {
			log.Fatal().Err(err).Msg("parse cards")
		}
		captured, err := cardocr.CaptureCatalog(img, layout, shown)
		if err != nil {
			log.Fatal().Err(err).Msg("capture patterns")
		}
		entries = cardocr.MergeEntries(entries, captured)
		header += "\nCaptured " + shown.String() + " from " + filepath.Base(*imagePath) + "."
		log.Info().Int("entries", len(captured)).Str("image", *imagePath).Msg("captured patterns")
	}

	if _, err := cardocr.NewCatalog(entries); err != nil {
		log.Fatal().Err(err).Msg("validate catalog")
	}

	var buf bytes.Buffer
	if err := cardocr.WriteCatalog(&buf, header, entries); err != nil {
		log.Fatal().Err(err).Msg("format catalog")
	}
	if err := os.WriteFile(*outputFile, buf.Bytes(), 0644); err != nil {
		log.Fatal().Err(err).Msg("write catalog")
	}
	log.Info().Str("output", *outputFile).Int("entries", len(entries)).Msg("saved catalog")
}
