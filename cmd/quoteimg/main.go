package main

import (
	"log"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/ElDuderino/QuoteGenerator/imageproc"
)

type CLIOptions struct {
	In    string  `long:"in" required:"true" description:"base image file"`
	Out   string  `long:"out" required:"true" description:"output PNG file"`
	Text  string  `long:"text" required:"true" description:"quote text to overlay"`
	Scale float64 `long:"scale" default:"0.03" description:"font size as a fraction of image width"`
}

func main() {
	var opts CLIOptions
	_, err := flags.Parse(&opts)
	if err != nil {
		os.Exit(1)
	}

	base, err := os.ReadFile(opts.In)
	if err != nil {
		log.Fatalln("failed to read base image:", err)
	}
	out, err := imageproc.Overlay(base, opts.Text, opts.Scale)
	if err != nil {
		log.Fatalln("failed to render overlay:", err)
	}
	if err := os.WriteFile(opts.Out, out, 0o644); err != nil {
		log.Fatalln("failed to write output:", err)
	}
	log.Printf("wrote %v (%v bytes)", opts.Out, len(out))
}
