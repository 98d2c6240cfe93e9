package main

import (
	"bufio"
	"flag"
	"fmt"
	"github.com/fukicycle/bitwise-visualizer"
	"log"
	"log/slog"
	"os"
	"strings"
)

func main() {
	format := flag.String("format", "dec", `input format: "dec" or "hex"`)
	width := flag.Int("width", 32, "word width in bits: 16, 32, or 64")
	order := flag.String("order", "little", `byte order: "little" or "big"`)
	showBits := flag.Bool("bits", false, "show the bit decomposition of every byte")
	showWords := flag.Bool("words", false, "show each word's combined value")
	color := flag.Bool("color", false, "colorize bytes by significance")
	jsonOut := flag.Bool("json", false, "emit the view model as JSON instead of text")
	snapshot := flag.String("snapshot", "", "write a binary snapshot of the view to this file")
	load := flag.String("load", "", "rebuild the view from a snapshot file instead of parsing a value")
	interactive := flag.Bool("interactive", false, "read values from stdin and render each one")
	verbose := flag.Bool("v", false, "enable debug logging")

	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	parsedFormat, err := bitwise.ParseFormat(*format)
	if err != nil {
		log.Fatal(err)
	}

	parsedWidth, err := bitwise.ParseWordWidth(*width)
	if err != nil {
		log.Fatal(err)
	}

	parsedOrder, err := bitwise.ParseByteOrder(*order)
	if err != nil {
		log.Fatal(err)
	}

	renderer := &bitwise.Renderer{
		ShowBits:  *showBits,
		ShowWords: *showWords,
		Color:     *color,
	}

	switch {
	case *load != "":
		view, err := loadSnapshot(*load)
		if err != nil {
			log.Fatal(err)
		}

		emit(view, renderer, *jsonOut)
	case *interactive:
		runInteractive(parsedFormat, parsedWidth, parsedOrder, renderer, *jsonOut)
	default:
		if flag.NArg() == 0 {
			flag.Usage()
			os.Exit(2)
		}

		view := bitwise.NewView(bitwise.ParseValue(flag.Arg(0), parsedFormat), parsedWidth, parsedOrder)
		emit(view, renderer, *jsonOut)

		if *snapshot != "" {
			if err := writeSnapshot(view, *snapshot); err != nil {
				log.Fatal(err)
			}

			fmt.Printf("successfully wrote snapshot %s\n", *snapshot)
		}
	}
}

func emit(view *bitwise.View, renderer *bitwise.Renderer, asJSON bool) {
	if asJSON {
		if err := view.WriteJSON(os.Stdout); err != nil {
			log.Fatal(err)
		}

		fmt.Println()

		return
	}

	if _, err := renderer.Render(view, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func loadSnapshot(path string) (*bitwise.View, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	view, err := bitwise.ReadSnapshot(f)
	if err != nil {
		return nil, err
	}

	slog.Debug("loaded snapshot", "path", path, "value", view.ValueText(), "width", view.Width.String(), "order", view.Order.String())

	return view, nil
}

func writeSnapshot(view *bitwise.View, path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	count, err := view.WriteTo(f)
	if err != nil {
		return err
	}

	slog.Debug("wrote snapshot", "path", path, "bytes", count)

	return nil
}

func runInteractive(format bitwise.Format, width bitwise.WordWidth, order bitwise.ByteOrder, renderer *bitwise.Renderer, asJSON bool) {
	slog.Info("reading values from stdin", "format", format.String(), "width", width.String(), "order", order.String())

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		value, err := bitwise.ParseValueStrict(line, format)
		if err != nil {
			slog.Debug("input did not parse, rendering zero", "input", line, "error", err)
		}

		emit(bitwise.NewView(value, width, order), renderer, asJSON)
	}

	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}
