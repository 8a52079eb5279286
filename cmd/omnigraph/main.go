package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/orkatoons/omnigraph"
	"github.com/orkatoons/omnigraph/codec"
)

// Raster extensions the decode direction accepts; everything else is
// treated as audio and handed to the session's format registry.
var imageExts = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
}

func initLogger() {
	level := zerolog.InfoLevel
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: omnigraph [flags] <input>\n\n")
	fmt.Fprintf(os.Stderr, "Encodes audio (.wav/.mp3/.ogg/.oga/.aiff/.aif) into a PNG raster,\n")
	fmt.Fprintf(os.Stderr, "or decodes a raster (.png/.jpg/.jpeg/.gif) back into a 16-bit WAV.\n\n")
	flag.PrintDefaults()
}

func main() {
	methodFlag := flag.String("method", "A", "codec method: A (multiplex), B (interleave) or C (spectral)")
	outFlag := flag.String("out", "", "output path (default: input with .png or .wav extension)")
	flag.Usage = usage
	flag.Parse()

	initLogger()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	method, err := codec.ParseMethod(*methodFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid method")
	}

	input := flag.Arg(0)
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input), "."))

	sess := omnigraph.NewSession(method)

	if imageExts[ext] {
		decodeToWAV(sess, input, *outFlag)
		return
	}

	encodeToPNG(sess, input, *outFlag)
}

func encodeToPNG(sess *omnigraph.Session, input, out string) {
	if out == "" {
		out = strings.TrimSuffix(input, filepath.Ext(input)) + ".png"
	}

	img, err := sess.EncodeFile(input)
	if err != nil {
		log.Fatal().Err(err).Str("input", input).Msg("Encode failed")
	}

	if err := sess.SaveOutput(out); err != nil {
		log.Fatal().Err(err).Str("output", out).Msg("Save failed")
	}

	log.Info().
		Str("input", input).
		Str("output", out).
		Str("method", sess.Method().String()).
		Int("side", img.Bounds().Dx()).
		Msg("Encoded audio to raster")
}

func decodeToWAV(sess *omnigraph.Session, input, out string) {
	if out == "" {
		out = strings.TrimSuffix(input, filepath.Ext(input)) + ".wav"
	}

	pcm, err := sess.DecodeFile(input)
	if err != nil {
		log.Fatal().Err(err).Str("input", input).Msg("Decode failed")
	}

	if err := sess.SaveOutput(out); err != nil {
		log.Fatal().Err(err).Str("output", out).Msg("Save failed")
	}

	log.Info().
		Str("input", input).
		Str("output", out).
		Str("method", sess.Method().String()).
		Int("samples", len(pcm)).
		Msg("Decoded raster to audio")
}
