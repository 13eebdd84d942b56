// Package batch recognizes every screenshot in a directory and reports one
// result line per file followed by a timing summary.
package batch

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/corona10/goimagehash"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/wbrown/cardocr"
	"github.com/wbrown/cardocr/imageutil"
)

// Runner processes directories of screenshots with one Recognizer.
type Runner struct {
	recognizer *cardocr.Recognizer
	load       imageutil.LoadFunc
	workers    int
	dedupe     bool
	log        zerolog.Logger
}

// Option is a functional option for configuring a Runner.
type Option func(*Runner)

// NewRunner creates a Runner. Defaults: pure Go decoding, one worker,
// duplicate detection on, no logging.
func NewRunner(recognizer *cardocr.Recognizer, opts ...Option) *Runner {
	r := &Runner{
		recognizer: recognizer,
		load:       imageutil.LoadImage,
		workers:    1,
		dedupe:     true,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithLoader sets the function used to decode each file.
func WithLoader(load imageutil.LoadFunc) Option {
	return func(r *Runner) {
		r.load = load
	}
}

// WithWorkers sets how many files are recognized in parallel. Values below 1
// are treated as 1. Output order does not depend on it.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n < 1 {
			n = 1
		}
		r.workers = n
	}
}

// WithDedupe enables or disables duplicate frame counting.
func WithDedupe(enabled bool) Option {
	return func(r *Runner) {
		r.dedupe = enabled
	}
}

// WithLogger sets the logger for per-file diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Runner) {
		r.log = log
	}
}

// fileResult is the outcome for one file, kept at its listing index.
type fileResult struct {
	name   string
	result cardocr.Result
	hash   *goimagehash.ImageHash
	digest [sha256.Size]byte
	err    error
}

// Run recognizes every regular file in dir and writes "<name> - <result>"
// lines to out in listing order, followed by the summary line.
//
// A missing or unreadable dir returns a KindInvocation error before anything
// is written. Files that fail to decode are logged and counted in
// Summary.Failed but produce no line. Cancelling ctx stops scheduling further
// files and returns the context error without output.
func (r *Runner) Run(ctx context.Context, dir string, out io.Writer) (Summary, error) {
	files, err := listFiles(dir)
	if err != nil {
		return Summary{}, err
	}

	start := time.Now()
	results := make([]fileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, name := range files {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.process(dir, name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, fmt.Errorf("batch cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return Summary{}, fmt.Errorf("batch cancelled: %w", err)
	}

	summary := Summary{Files: len(files)}
	if r.dedupe {
		summary.Duplicates = r.markDuplicates(results)
	}
	for _, res := range results {
		if res.err != nil {
			summary.Failed++
			r.log.Error().Err(res.err).Str("file", res.name).Msg("skipping file")
			continue
		}
		summary.Processed++
		if _, err := fmt.Fprintf(out, "%s - %s\n", res.name, res.result); err != nil {
			return summary, fmt.Errorf("failed to write result: %w", err)
		}
	}
	summary.Elapsed = time.Since(start)

	if _, err := fmt.Fprintln(out, summary); err != nil {
		return summary, fmt.Errorf("failed to write summary: %w", err)
	}
	r.log.Debug().
		Int("files", summary.Files).
		Int("processed", summary.Processed).
		Int("failed", summary.Failed).
		Int("duplicates", summary.Duplicates).
		Dur("elapsed", summary.Elapsed).
		Msg("batch finished")
	return summary, nil
}

// listFiles returns the names of the regular files in dir, sorted by name.
// Directories are skipped.
func listFiles(dir string) ([]string, error) {
	if dir == "" {
		return nil, &Error{Kind: KindInvocation, Message: "no directory given"}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, wrap(err, KindInvocation, dir, "cannot list directory")
	}
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, e.Name())
	}
	return files, nil
}

// process decodes and recognizes one file.
func (r *Runner) process(dir, name string) fileResult {
	path := filepath.Join(dir, name)
	res := fileResult{name: name}

	img, err := r.load(path)
	if err != nil {
		res.err = wrap(err, KindDecode, path, "cannot decode image")
		return res
	}
	res.result = r.recognizer.Recognize(img)

	if r.log.GetLevel() <= zerolog.DebugLevel {
		for _, card := range res.result {
			r.log.Debug().Str("file", name).Int("slot", card.Slot).
				Str("rank", card.Rank).Str("suit", card.Suit).Msg("slot recognized")
		}
	}

	if r.dedupe {
		hash, err := goimagehash.PerceptionHash(img)
		if err != nil {
			r.log.Debug().Err(err).Str("file", name).Msg("perceptual hash failed")
		} else {
			res.hash = hash
			res.digest = pixelDigest(img)
		}
	}
	return res
}

// pixelDigest hashes the image size and every pixel row.
func pixelDigest(img *imageutil.RGBAImage) [sha256.Size]byte {
	h := sha256.New()
	b := img.Bounds()
	var size [8]byte
	binary.BigEndian.PutUint32(size[:4], uint32(b.Dx()))
	binary.BigEndian.PutUint32(size[4:], uint32(b.Dy()))
	h.Write(size[:])
	for y := b.Min.Y; y < b.Max.Y; y++ {
		start := img.PixOffset(b.Min.X, y)
		h.Write(img.Pix[start : start+4*b.Dx()])
	}
	var sum [sha256.Size]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// markDuplicates counts processed files that are pixel-identical to an
// earlier processed file. Files are bucketed by perceptual hash; a shared
// hash is only a candidate and the pixel digests must also match.
func (r *Runner) markDuplicates(results []fileResult) int {
	buckets := make(map[uint64][]fileResult)
	duplicates := 0
	for _, res := range results {
		if res.err != nil || res.hash == nil {
			continue
		}
		key := res.hash.GetHash()
		for _, prev := range buckets[key] {
			if prev.digest != res.digest {
				continue
			}
			duplicates++
			r.log.Info().Str("file", res.name).Str("same_as", prev.name).Msg("duplicate frame")
			break
		}
		buckets[key] = append(buckets[key], res)
	}
	return duplicates
}
