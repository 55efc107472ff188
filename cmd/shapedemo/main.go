// Command shapedemo shapes a line of text with a real TrueType font
// and prints the resulting runs, following the flag-parsing and
// log.Fatalf structure of the gg library's own ggdemo command.
package main

import (
	"flag"
	"log"
	"math"
	"os"

	"github.com/textshape/shaper"
	"github.com/textshape/shaper/fontset"
	"github.com/textshape/shaper/hbengine"
	"github.com/textshape/shaper/runsink"
	"github.com/textshape/shaper/unicodeservice"
)

func main() {
	var (
		fontPath = flag.String("font", "", "path to a TTF/OTF font file")
		text     = flag.String("text", "Hello, world!", "text to shape")
		size     = flag.Float64("size", 16, "font size in pixels")
		width    = flag.Float64("width", 0, "line-wrap width in pixels (0 disables wrapping)")
		rtl      = flag.Bool("rtl", false, "shape as right-to-left base direction")
	)
	flag.Parse()

	if *fontPath == "" {
		log.Fatalf("shapedemo: -font is required")
	}

	data, err := os.ReadFile(*fontPath)
	if err != nil {
		log.Fatalf("shapedemo: reading font: %v", err)
	}

	source, err := fontset.NewSource(data)
	if err != nil {
		log.Fatalf("shapedemo: parsing font: %v", err)
	}
	defer source.Close()

	primary := fontset.NewTypeface(source)
	engine := hbengine.New()
	services := unicodeservice.New()

	s, err := shaper.NewShaper(primary, engine, services, nil)
	if err != nil {
		log.Fatalf("shapedemo: NewShaper: %v", err)
	}
	defer s.Close()

	wrap := float32(*width)
	if wrap <= 0 {
		wrap = float32(math.Inf(1))
	}

	sink := &runsink.TraceSink{}
	pen := s.Shape(sink, float32(*size), *text, !*rtl, shaper.Point{}, wrap)

	if err := sink.Flush(os.Stdout); err != nil {
		log.Fatalf("shapedemo: writing trace: %v", err)
	}
	log.Printf("shaped %q: final pen at (%.2f, %.2f)\n", *text, pen.X, pen.Y)
}
