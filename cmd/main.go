package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dargueta/squish"
	"github.com/dargueta/squish/server"
	"github.com/dargueta/squish/utilities/compression"
	"github.com/dargueta/squish/utilities/compression/huffman"
	"github.com/urfave/cli/v2"
)

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "squish",
		Usage: "Compress and decompress files with RLE or Huffman coding",
		Commands: []*cli.Command{
			{
				Name:      "compress",
				Usage:     "Compress a file",
				Action:    compressFile,
				ArgsUsage: "INPUT_FILE  OUTPUT_FILE",
				Flags:     []cli.Flag{algorithmFlag()},
			},
			{
				Name:      "decompress",
				Usage:     "Decompress a file",
				Action:    decompressFile,
				ArgsUsage: "INPUT_FILE  OUTPUT_FILE",
				Flags:     []cli.Flag{algorithmFlag()},
			},
			{
				Name:      "inspect",
				Usage:     "Print the Huffman frequency and code tables for a file",
				Action:    inspectFile,
				ArgsUsage: "INPUT_FILE",
			},
			{
				Name:      "bench",
				Usage:     "Run every codec over the given files and write a CSV report",
				Action:    benchFiles,
				ArgsUsage: "INPUT_FILE...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "write the report here instead of stdout",
					},
				},
			},
			{
				Name:   "serve",
				Usage:  "Run the HTTP compression service",
				Action: serve,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "addr",
						Value:   ":5000",
						Usage:   "address to listen on",
						EnvVars: []string{"SQUISH_ADDR"},
					},
					&cli.Int64Flag{
						Name:    "max-upload-size",
						Value:   server.DefaultMaxUploadSize,
						Usage:   "largest accepted upload, in bytes",
						EnvVars: []string{"SQUISH_MAX_UPLOAD_SIZE"},
					},
				},
			},
		},
	}
}

func algorithmFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "algorithm",
		Aliases: []string{"a"},
		Value:   squish.AlgorithmHuffman,
		Usage:   "codec to use: " + strings.Join(compression.Algorithms(), ", "),
	}
}

func requireArgs(context *cli.Context, count int) error {
	if context.Args().Len() != count {
		return cli.Exit(
			fmt.Sprintf(
				"expected %d arguments, got %d\nUsage: %s %s %s",
				count,
				context.Args().Len(),
				context.App.Name,
				context.Command.Name,
				context.Command.ArgsUsage,
			),
			1,
		)
	}
	return nil
}

func compressFile(context *cli.Context) error {
	return transformFile(context, compression.CompressWithStats)
}

func decompressFile(context *cli.Context) error {
	return transformFile(context, compression.DecompressWithStats)
}

func transformFile(
	context *cli.Context,
	transform func(squish.Codec, []byte) ([]byte, compression.Stats, error),
) error {
	if err := requireArgs(context, 2); err != nil {
		return err
	}
	sourceFilePath := context.Args().Get(0)
	outputFilePath := context.Args().Get(1)

	codec, err := compression.Lookup(context.String("algorithm"))
	if err != nil {
		return err
	}

	input, err := os.ReadFile(sourceFilePath)
	if err != nil {
		return fmt.Errorf("failed to read `%v`: %w", sourceFilePath, err)
	}

	output, stats, err := transform(codec, input)
	if err != nil {
		return fmt.Errorf("%s failed on `%v`: %w", codec.Name(), sourceFilePath, err)
	}

	err = os.WriteFile(outputFilePath, output, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write `%v`: %w", outputFilePath, err)
	}

	fmt.Fprintf(
		context.App.Writer,
		"%s %s: %d -> %d bytes (%.2f%%) in %.3f ms\n",
		stats.Algorithm,
		stats.Operation,
		stats.OriginalSize,
		stats.OutputSize,
		stats.Ratio,
		stats.ElapsedMs,
	)
	return nil
}

func inspectFile(context *cli.Context) error {
	if err := requireArgs(context, 1); err != nil {
		return err
	}

	input, err := os.ReadFile(context.Args().Get(0))
	if err != nil {
		return err
	}

	frequencies, codes, err := huffman.Analyze(input)
	if err != nil {
		return err
	}

	if _, err := frequencies.Dump(context.App.Writer); err != nil {
		return err
	}
	_, err = codes.Dump(context.App.Writer)
	return err
}

func benchFiles(context *cli.Context) error {
	if context.Args().Len() == 0 {
		return cli.Exit("at least one input file is required", 1)
	}

	codecs := make([]squish.Codec, 0, len(compression.Algorithms()))
	for _, name := range compression.Algorithms() {
		codec, err := compression.Lookup(name)
		if err != nil {
			return err
		}
		codecs = append(codecs, codec)
	}

	var results []compression.BenchResult
	for _, path := range context.Args().Slice() {
		input, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read `%v`: %w", path, err)
		}
		results = append(results, compression.Benchmark(path, input, codecs)...)
	}

	output := context.App.Writer
	if path := context.String("output"); path != "" {
		outFile, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to open `%v` for writing: %w", path, err)
		}
		defer outFile.Close()
		output = outFile
	}
	return compression.WriteBenchReport(output, results)
}

func serve(context *cli.Context) error {
	ctx, cancel := signal.NotifyContext(context.Context, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := server.NewServer(
		listenAddress(context),
		server.Options{MaxUploadSize: context.Int64("max-upload-size")},
	)
	return srv.Start(ctx)
}

// listenAddress falls back to $PORT when --addr and $SQUISH_ADDR aren't set,
// which is what most hosting platforms provide.
func listenAddress(context *cli.Context) string {
	if !context.IsSet("addr") {
		if port := os.Getenv("PORT"); port != "" {
			return ":" + port
		}
	}
	return context.String("addr")
}
