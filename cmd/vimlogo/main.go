// Command vimlogo renders the Vim logo to an SVG file.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/ShayHill/vimlogo"
)

func main() {
	var (
		output  = flag.String("output", "output/vim_logo.svg", "output SVG file")
		preview = flag.String("preview", "", "optional PNG preview file")
		scale   = flag.Float64("scale", 2, "preview pixels per user unit")
		verbose = flag.Bool("v", false, "log progress to stderr")
	)
	flag.Parse()

	if *verbose {
		vimlogo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	doc, err := vimlogo.Generate(vimlogo.DefaultParams())
	if err != nil {
		log.Fatalf("Failed to generate logo: %v", err)
	}

	if err := doc.WriteSVGFile(*output); err != nil {
		log.Fatalf("Failed to write SVG: %v", err)
	}
	log.Printf("Logo saved to %s", *output)

	if *preview != "" {
		if err := doc.SavePreviewPNG(*preview, *scale); err != nil {
			log.Fatalf("Failed to write preview: %v", err)
		}
		log.Printf("Preview saved to %s", *preview)
	}
}
