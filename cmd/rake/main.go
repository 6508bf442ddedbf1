// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/rake"
	"github.com/poiesic/rake/corpus"
	corpusbadger "github.com/poiesic/rake/corpus/badger"
	"github.com/poiesic/rake/stoplist"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "rake",
		Usage: "Rapid automatic keyword extraction",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "extract",
				Usage:  "Extract ranked keyword phrases from a text file or stdin",
				Action: extractCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Usage:   "Path to input text file (reads stdin if omitted)",
					},
					&cli.IntFlag{
						Name:    "length",
						Aliases: []string{"n"},
						Usage:   "Maximum number of phrases to return (0 uses the built-in policy)",
					},
					&cli.StringFlag{
						Name:  "stoplist",
						Usage: "Path to a stop word file, one word per line (built-in English list if omitted)",
					},
					&cli.StringFlag{
						Name:  "corpus",
						Usage: "Path to a JSON word-frequency corpus",
					},
					&cli.StringFlag{
						Name:  "corpus-db",
						Usage: "Path to a BadgerDB corpus store directory",
					},
					&cli.IntFlag{
						Name:  "min-word-length",
						Usage: "Minimum characters for a token to count as a word",
						Value: 1,
					},
					&cli.IntFlag{
						Name:  "max-phrase-words",
						Usage: "Maximum tokens per returned phrase (0 = no cap)",
					},
					&cli.BoolFlag{
						Name:  "abbreviations",
						Usage: "Merge abbreviation expansions into the output",
					},
				},
			},
			{
				Name:   "abbrev",
				Usage:  "Print abbreviations detected in a text file or stdin",
				Action: abbrevCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Usage:   "Path to input text file (reads stdin if omitted)",
					},
					&cli.StringFlag{
						Name:  "stoplist",
						Usage: "Path to a stop word file, one word per line (built-in English list if omitted)",
					},
				},
			},
			{
				Name:  "corpus",
				Usage: "Manage persistent word-frequency corpus stores",
				Subcommands: []*cli.Command{
					{
						Name:   "import",
						Usage:  "Seed a BadgerDB corpus store from a corpus file",
						Action: corpusImportCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "db",
								Aliases:  []string{"d"},
								Usage:    "Path to BadgerDB corpus store directory",
								Required: true,
							},
							&cli.StringFlag{
								Name:     "input",
								Aliases:  []string{"i"},
								Usage:    "Path to corpus file",
								Required: true,
							},
							&cli.StringFlag{
								Name:  "format",
								Usage: "Corpus file format (json, csv, tsv)",
								Value: "json",
							},
						},
					},
					{
						Name:   "count",
						Usage:  "Print the number of entries in a corpus store",
						Action: corpusCountCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "db",
								Aliases:  []string{"d"},
								Usage:    "Path to BadgerDB corpus store directory",
								Required: true,
							},
						},
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func extractCommand(c *cli.Context) error {
	text, err := readInput(c.String("input"))
	if err != nil {
		return err
	}

	stops, err := loadStopList(c.String("stoplist"))
	if err != nil {
		return err
	}

	opts := []rake.Option{
		rake.WithMinWordLength(c.Int("min-word-length")),
		rake.WithMaxPhraseWords(c.Int("max-phrase-words")),
	}

	var store *corpusbadger.Store
	switch {
	case c.String("corpus") != "" && c.String("corpus-db") != "":
		return fmt.Errorf("corpus and corpus-db are mutually exclusive")
	case c.String("corpus") != "":
		f, err := os.Open(c.String("corpus"))
		if err != nil {
			return fmt.Errorf("failed to open corpus: %w", err)
		}
		m, err := corpus.LoadJSON(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("failed to load corpus: %w", err)
		}
		opts = append(opts, rake.WithCorpus(m))
	case c.String("corpus-db") != "":
		store, err = corpusbadger.Open(c.String("corpus-db"), false)
		if err != nil {
			return fmt.Errorf("failed to open corpus store: %w", err)
		}
		defer store.Close()
		opts = append(opts, rake.WithCorpus(store))
	}

	extractor, err := rake.New(stops, opts...)
	if err != nil {
		return err
	}

	var phrases []rake.RankedPhrase
	length := c.Int("length")
	switch {
	case c.Bool("abbreviations"):
		if length == 0 {
			return fmt.Errorf("length is required with abbreviations")
		}
		phrases, err = extractor.PhrasesWithAbbreviations(text, length)
	case length > 0:
		phrases, err = extractor.TopPhrases(text, length)
	default:
		phrases, err = extractor.Phrases(text)
	}
	if err != nil {
		return err
	}

	for _, phrase := range phrases {
		fmt.Printf("%.4f\t%s\n", phrase.Score, phrase.Text)
	}
	return nil
}

func abbrevCommand(c *cli.Context) error {
	text, err := readInput(c.String("input"))
	if err != nil {
		return err
	}

	stops, err := loadStopList(c.String("stoplist"))
	if err != nil {
		return err
	}

	extractor, err := rake.New(stops)
	if err != nil {
		return err
	}

	for abbr, expansion := range extractor.Abbreviations(text) {
		fmt.Printf("%s\t%s\n", abbr, expansion)
	}
	return nil
}

func corpusImportCommand(c *cli.Context) error {
	f, err := os.Open(c.String("input"))
	if err != nil {
		return fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer f.Close()

	var m corpus.Map
	switch c.String("format") {
	case "json":
		m, err = corpus.LoadJSON(f)
	case "csv":
		m, err = corpus.LoadDelimited(f, ",")
	case "tsv":
		m, err = corpus.LoadDelimited(f, "\t")
	default:
		return fmt.Errorf("unknown corpus format %q: must be one of json, csv, tsv", c.String("format"))
	}
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}

	store, err := corpusbadger.Open(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open corpus store: %w", err)
	}
	defer store.Close()

	if err := store.Import(m); err != nil {
		return fmt.Errorf("failed to import corpus: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Imported %d entries into %s\n", len(m), c.String("db"))
	return nil
}

func corpusCountCommand(c *cli.Context) error {
	store, err := corpusbadger.Open(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open corpus store: %w", err)
	}
	defer store.Close()

	count, err := store.Count()
	if err != nil {
		return err
	}

	fmt.Println(count)
	return nil
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

func loadStopList(path string) (*stoplist.StopList, error) {
	if path == "" {
		return stoplist.Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stop list: %w", err)
	}
	defer f.Close()

	stops, err := stoplist.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stop list: %w", err)
	}
	return stops, nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
