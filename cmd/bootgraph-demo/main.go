// Command bootgraph-demo exercises the bootgraph core from the command
// line.
//
// Usage:
//
//	bootgraph-demo draw [options] <output.tga>   Render a demo scene
//	bootgraph-demo dump <input.tga> <output.png> Convert a TGA-subset image to PNG
//	bootgraph-demo info <input.tga>              Display TGA-subset header fields
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/pkg/errors"

	"github.com/tinycore/bootgraph"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "draw":
		err = runDraw(os.Args[2:])
	case "dump":
		err = runDump(os.Args[2:])
	case "info":
		err = runInfo(os.Args[2:])
	case "-h", "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "bootgraph-demo: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "bootgraph-demo: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  bootgraph-demo draw [options] <output.tga>   Render a demo scene
  bootgraph-demo dump <input.tga> <output.png> Convert a TGA-subset image to PNG
  bootgraph-demo info <input.tga>              Display TGA-subset header fields
`)
}

func runDraw(args []string) error {
	fs := flag.NewFlagSet("draw", flag.ContinueOnError)
	width := fs.Int("w", 64, "image width in pixels")
	height := fs.Int("h", 64, "image height in pixels")
	bpp := fs.Int("bpp", 8, "bits per pixel (1, 4, 8, 16, 24, 32)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("draw: missing output file\nUsage: bootgraph-demo draw [options] <output.tga>")
	}
	outputPath := fs.Arg(0)

	hdr := bootgraph.Header{
		Width:  uint16(*width),
		Height: uint16(*height),
		BPP:    uint8(*bpp),
	}
	buf, err := bootgraph.AllocPixels(hdr, 0, 1)
	if err != nil {
		return errors.Wrap(err, "draw: allocating image")
	}
	defer buf.Release()

	pit := bootgraph.Bind(buf, 1, true)
	col := &bootgraph.Col{Pit: pit, BG: 0, FG: maxPixelValue(hdr.BPP)}
	col.ClearImage()

	w, h := int(hdr.Width), int(hdr.Height)
	pit.TriFill(
		image.Pt(w/2, 0),
		image.Pt(0, h-1),
		image.Pt(w-1, h-1),
		col.FG,
	)

	out, err := os.Create(outputPath)
	if err != nil {
		return errors.Wrap(err, "draw: creating output file")
	}
	defer out.Close()

	if err := bootgraph.SaveImage(out, buf); err != nil {
		return errors.Wrap(err, "draw: saving image")
	}

	fmt.Fprintf(os.Stderr, "Drew %dx%d @%dbpp → %s\n", hdr.Width, hdr.Height, hdr.BPP, outputPath)
	return nil
}

func maxPixelValue(bpp uint8) uint64 {
	if bpp >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << bpp) - 1
}

func runDump(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("dump: missing arguments\nUsage: bootgraph-demo dump <input.tga> <output.png>")
	}
	inputPath, outputPath := args[0], args[1]

	in, err := os.Open(inputPath)
	if err != nil {
		return errors.Wrap(err, "dump: opening input")
	}
	defer in.Close()

	buf, err := bootgraph.LoadImage(in, 1)
	if err != nil {
		return errors.Wrap(err, "dump: loading TGA-subset image")
	}
	defer buf.Release()

	out, err := os.Create(outputPath)
	if err != nil {
		return errors.Wrap(err, "dump: creating output file")
	}
	defer out.Close()

	if err := png.Encode(out, buf); err != nil {
		return errors.Wrap(err, "dump: encoding PNG")
	}

	fmt.Fprintf(os.Stderr, "Dumped %s → %s\n", inputPath, outputPath)
	return nil
}

func runInfo(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("info: missing input file\nUsage: bootgraph-demo info <input.tga>")
	}
	inputPath := args[0]

	in, err := os.Open(inputPath)
	if err != nil {
		return errors.Wrap(err, "info: opening input")
	}
	defer in.Close()

	hdr, err := bootgraph.ReadHeader(in)
	if err != nil {
		return errors.Wrap(err, "info: reading header")
	}

	fmt.Printf("File:        %s\n", inputPath)
	fmt.Printf("Dimensions:  %d x %d\n", hdr.Width, hdr.Height)
	fmt.Printf("BPP:         %d\n", hdr.BPP)
	fmt.Printf("Orientation: %s\n", hdr.Orientation)
	return nil
}
