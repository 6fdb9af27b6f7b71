package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bodgit/grampix"
	"github.com/bodgit/grampix/mapping"
	"github.com/bodgit/grampix/rasterfile"
	"github.com/urfave/cli/v2"
)

const defaultDB = "grampix.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

var (
	mappingFlag = &cli.StringFlag{
		Name:    "mapping",
		Aliases: []string{"m"},
		Value:   grampix.DefaultOptions.Mapping,
		Usage:   "letter mapping, one of " + strings.Join(mapping.Names(), ", "),
	}
	separatorFlag = &cli.StringFlag{
		Name:  "separator",
		Usage: "word separator, defaults to whitespace when encoding and a space when decoding",
	}
)

func codecFlags() []cli.Flag {
	return []cli.Flag{
		mappingFlag,
		separatorFlag,
		&cli.StringFlag{
			Name:    "style",
			Aliases: []string{"s"},
			Value:   grampix.DefaultOptions.Style,
			Usage:   "drawing style, binary or gradient",
		},
		&cli.BoolFlag{
			Name:  "compress",
			Usage: "drop letters from words longer than a cell instead of truncating",
		},
		&cli.IntFlag{
			Name:  "grid",
			Usage: "cells along each edge, 0 picks the smallest square that fits",
		},
		&cli.BoolFlag{
			Name:  "packed",
			Usage: "write 4-bit packed raster files",
		},
		&cli.BoolFlag{
			Name:  "archive",
			Usage: "record encoded text in the database",
		},
	}
}

func options(c *cli.Context) grampix.Options {
	return grampix.Options{
		Mapping:   c.String("mapping"),
		Style:     c.String("style"),
		Compress:  c.Bool("compress"),
		Separator: c.String("separator"),
		Side:      c.Int("grid"),
	}
}

func format(c *cli.Context) rasterfile.Format {
	if c.Bool("packed") {
		return rasterfile.Packed
	}
	return rasterfile.Float
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

// setup returns a Grampix and a function to close the database, if one was
// opened.
func setup(c *cli.Context, archive bool) (*grampix.Grampix, func() error, error) {
	if !archive {
		return grampix.New(nil, newLogger(c)), func() error { return nil }, nil
	}

	db, err := grampix.NewArchiveDB(c.String("db"))
	if err != nil {
		return nil, nil, err
	}
	return grampix.New(db, newLogger(c)), db.Close, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "grampix"
	app.Usage = "Text to grayscale raster utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"GRAMPIX_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "encode",
			Usage:       "Encode text into a raster file",
			Description: "",
			ArgsUsage:   "TEXT...",
			Flags: append(codecFlags(), &cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "out" + grampix.RasterExt,
				Usage:   "raster file to write",
			}),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				g, closer, err := setup(c, c.Bool("archive"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closer()

				text := strings.Join(c.Args().Slice(), " ")
				o := options(c)

				r, err := g.TextToRaster(text, o)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				f, err := os.Create(c.String("output"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer f.Close()

				if err := rasterfile.Encode(f, r, format(c)); err != nil {
					return cli.NewExitError(err, 1)
				}

				if c.Bool("archive") {
					if _, err := g.SaveRaster(text, o, r); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				if err := f.Close(); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "decode",
			Usage:       "Decode a raster file back into text",
			Description: "",
			ArgsUsage:   "FILE",
			Flags:       []cli.Flag{mappingFlag, separatorFlag},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				g, _, err := setup(c, false)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				f, err := os.Open(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer f.Close()

				r, err := rasterfile.Decode(f)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				text, err := g.RasterToText(r, options(c))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				fmt.Println(text)

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Encode every text file in a directory tree",
			Description: "Each FILE" + grampix.TextExt + " is encoded to FILE" + grampix.RasterExt + " alongside it",
			ArgsUsage:   "DIRECTORY",
			Flags:       codecFlags(),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				g, closer, err := setup(c, c.Bool("archive"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closer()

				if err := g.EncodeTree(c.Args().First(), options(c), format(c)); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "show",
			Usage:       "Print an archived text",
			Description: "",
			ArgsUsage:   "ID",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				id, err := strconv.ParseInt(c.Args().First(), 10, 64)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				db, err := grampix.NewArchiveDB(c.String("db"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				e, err := db.Find(id)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				if e == nil {
					return cli.NewExitError(fmt.Sprintf("no entry %d", id), 1)
				}

				fmt.Printf("%s\t%s\tcompress=%t\t%dx%d\n%s\n", e.Options.Mapping, e.Options.Style, e.Options.Compress, e.Raster.Width(), e.Raster.Height(), e.Text)

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
