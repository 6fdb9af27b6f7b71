package grampix

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bodgit/grampix/rasterfile"
)

const (
	// TextExt is the extension of the files EncodeTree picks up
	TextExt   = ".txt"
	// RasterExt is the extension of the raster files EncodeTree writes
	RasterExt = ".gpx"

	numWorkers  = 10
	maxTextSize = 16 << (10 * 2)
)

var errBadFormat = errors.New("unknown raster format")

func (g *Grampix) findTexts(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, but not the base itself
			if file != base && info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a normal text file
			if !info.Mode().IsRegular() || filepath.Ext(file) != TextExt {
				return nil
			}

			// Ignore any file greater than 16 MB
			if info.Size() > maxTextSize {
				g.logger.Printf("Skipping \"%s\", too big\n", file)
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (g *Grampix) encodeFile(file string, o Options, format rasterfile.Format) (_ string, err error) {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return "", err
	}
	text := string(b)

	r, err := g.TextToRaster(text, o)
	if err != nil {
		return "", err
	}

	target := strings.TrimSuffix(file, filepath.Ext(file)) + RasterExt
	f, err := os.Create(target)
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(target)
		}
	}()

	if err := rasterfile.Encode(f, r, format); err != nil {
		return "", err
	}

	if g.db != nil {
		if _, err := g.db.Save(text, o, r); err != nil {
			return "", err
		}
	}

	if err = f.Close(); err != nil {
		return "", err
	}

	return target, nil
}

func (g *Grampix) encodeWorker(ctx context.Context, in <-chan string, o Options, format rasterfile.Format) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			target, err := g.encodeFile(file, o, format)
			if err != nil {
				errc <- err
				return
			}
			g.logger.Printf("Encoded \"%s\" to \"%s\"\n", file, target)
		}
	}()
	return errc, nil
}

func waitForPipeline(cancel context.CancelFunc, errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	var first error
	for err := range errc {
		if err != nil && first == nil {
			first = err
			cancel()
		}
	}
	return first
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// EncodeTree encodes every text file under path into a raster file of the
// given format written alongside it, recording each text in the archive if
// there is one. Hidden files and directories are skipped.
func (g *Grampix) EncodeTree(path string, o Options, format rasterfile.Format) error {
	// Fail early rather than once per file
	if _, err := o.grid(nil); err != nil {
		return err
	}
	if !format.Valid() {
		return fmt.Errorf("%w %q", errBadFormat, byte(format))
	}

	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := g.findTexts(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < numWorkers; i++ {
		errc, err := g.encodeWorker(ctx, files, o, format)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(cancelFunc, errcList...)
}
