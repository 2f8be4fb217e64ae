package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"

	"bufread"

	log "github.com/sirupsen/logrus"
)

const exitFailure = 1

func main() {
	settings := parseArgs()
	run(settings)
}

type bufcatSettings struct {
	File       string
	BufferSize int
	Preview    int
}

func parseArgs() bufcatSettings {
	var file string
	var bufferSize int
	var preview int
	var loggingLevel string
	var json bool
	var configFile string

	flag.StringVar(&file, "f", "-", "Input file path (\"-\" reads from stdin)")
	flag.IntVar(&bufferSize, "b", bufread.DefaultBufferSize, "Internal buffer size in bytes")
	flag.IntVar(&preview, "n", 0, "Number of bytes to preview before streaming")
	flag.StringVar(&loggingLevel, "l", "info", "Logging level (trace, debug, info, etc)")
	flag.BoolVar(&json, "j", false, "JSON logger formatter")
	flag.StringVar(&configFile, "c", "", "Path to a YAML config file (overrides the flags above)")

	flag.Parse()

	config := defaultConfig()
	config.BufferSize = bufferSize
	config.Preview = preview
	config.LogLevel = loggingLevel
	config.JsonLog = json

	if configFile != "" {
		config = loadConfig(configFile)
	}

	if config.JsonLog {
		log.SetFormatter(&log.JSONFormatter{})
	}

	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatal(err)
	}

	log.SetLevel(level)

	return bufcatSettings{
		File:       file,
		BufferSize: config.BufferSize,
		Preview:    config.Preview,
	}
}

func run(settings bufcatSettings) {
	if settings.BufferSize <= 0 {
		fatal("Buffer size must be positive", log.Fields{"bufferSize": settings.BufferSize})
	}

	input := openInput(settings.File)
	defer input.Close()

	reader := bufread.WithCapacity(input, settings.BufferSize)

	if settings.Preview > 0 {
		preview(reader, settings.Preview)
	}

	stream(reader, settings.BufferSize)

	info("Input drained", log.Fields{
		"reads": reader.NumberOfReads(),
		"bytes": reader.BytesIn(),
	})
}

// preview logs the head of the stream and rewinds, so the copy below
// still starts from byte zero. Reading only what the mark already
// buffered keeps the mark alive (a further refill would forfeit it).
func preview(reader *bufread.Reader, length int) {
	if err := reader.Mark(length); err != nil {
		fatalError("Couldn't mark the head of the stream", err)
	}

	buffered := min(length, len(reader.Buffer()))
	head := make([]byte, buffered)
	nread, err := reader.Read(head)
	if err != nil && err != io.EOF {
		fatalError("Couldn't read the head of the stream", err)
	}

	info("Stream head", log.Fields{"bytes": nread, "head": string(head[:nread])})

	_ = reader.Reset()
}

func stream(reader *bufread.Reader, chunkSize int) {
	chunk := make([]byte, chunkSize)
	for {
		nread, err := reader.Read(chunk)
		if err == io.EOF {
			return
		}
		if err != nil {
			fatalError("Error reading input", err)
		}
		if _, err := os.Stdout.Write(chunk[:nread]); err != nil {
			fatalError("Error writing to stdout", err)
		}
	}
}

func openInput(path string) *os.File {
	if path == "-" {
		return os.Stdin
	}

	file, err := os.Open(absPath(path))
	if err != nil {
		fatalError("Couldn't open input file", err)
	}
	return file
}

func absPath(file string) string {
	path, err := filepath.Abs(file)
	if err != nil {
		log.WithFields(log.Fields{
			"error": err,
			"file":  file,
		}).Error("Couldn't get absolute path to input file")
		os.Exit(exitFailure)
	}
	return path
}

func info(message string, fields log.Fields) {
	log.WithFields(fields).Info(message)
}

func fatalError(message string, err error) {
	fatal(message, log.Fields{"error": err})
}

func fatal(message string, fields log.Fields) {
	log.WithFields(fields).Error(message)
	os.Exit(exitFailure)
}
