// Command render_table draws a synthetic table screenshot holding the given
// cards, for fixtures and demos.
//
//	render_table -cards Ks10dAh -output table.png
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/wbrown/cardocr"
	"github.com/wbrown/cardocr/imageutil"
	"github.com/wbrown/cardocr/internal/logging"
)

func main() {
	cards := flag.String("cards", "",
		"Cards to place left to right, e.g. Ks10dAh (required)")
	outputFile := flag.String("output", "",
		"Path to save the image; format follows the extension (required)")
	catalogPath := flag.String("catalog", "",
		"Catalog file to draw from instead of the embedded reference patterns")
	scale := flag.Int("scale", 1,
		"Integer preview scale factor")
	interpName := flag.String("interp", "nearest",
		"Scaling interpolation: nearest keeps exact colours, linear and area smooth")
	dimmed := flag.Bool("dimmed", false,
		"Draw grey card faces")
	empty := flag.String("empty", "",
		"Comma separated slots to leave as bare felt, e.g. 1,3")
	flag.Parse()

	log, err := logging.New("info", os.Stderr, true)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *cards == "" || *outputFile == "" {
		fmt.Println("Both -cards and -output flags are required")
		flag.PrintDefaults()
		os.Exit(1)
	}

	interp, err := imageutil.ParseInterpolation(*interpName)
	if err != nil {
		log.Fatal().Err(err).Msg("parse interpolation")
	}

	shown, err := cardocr.ParseCards(*cards)
	if err != nil {
		log.Fatal().Err(err).Msg("parse cards")
	}

	catalog := cardocr.DefaultCatalog()
	if *catalogPath != "" {
		if catalog, err = cardocr.LoadCatalog(*catalogPath); err != nil {
			log.Fatal().Err(err).Msg("load catalog")
		}
	}

	style := cardocr.DefaultTableStyle()
	style.Dimmed = *dimmed
	if *empty != "" {
		for _, field := range strings.Split(*empty, ",") {
			slot, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				log.Fatal().Err(err).Str("slot", field).Msg("parse empty slots")
			}
			style.Disabled = append(style.Disabled, slot)
		}
	}

	img, err := cardocr.RenderTable(cardocr.DefaultLayout(), catalog, shown, style)
	if err != nil {
		log.Fatal().Err(err).Msg("render table")
	}
	if *scale > 1 {
		img = imageutil.Scale(img, *scale, interp)
	}
	if err := imageutil.SaveImage(img, *outputFile); err != nil {
		log.Fatal().Err(err).Msg("save image")
	}
	log.Info().Str("output", *outputFile).Str("cards", shown.String()).
		Int("width", img.Width()).Int("height", img.Height()).Msg("rendered table")
}
