// Package fixture writes a random codepoint.Text to disk in every utfenc
// format, plus an optional decimal listing.
package fixture

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"cdr.dev/slog"

	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/utfgen/codepoint"
	"oss.terrastruct.com/utfgen/lib/log"
	"oss.terrastruct.com/utfgen/utfenc"
)

// ListingFilename holds the decimal listing when Options.Listing is set.
const ListingFilename = "unicode.txt"

var ErrInvalidCount = errors.New("codepoint count must be a non-negative integer")

type Options struct {
	// N is the number of codepoints to generate.
	N int
	// Listing adds ListingFilename to the output.
	Listing bool
	// Seed for the generator. 0 seeds from the clock.
	Seed int64
	// Dir receives the files. Empty means the working directory.
	Dir string
}

type Result struct {
	Text codepoint.Text
	// Files are the paths written, in write order.
	Files []string
}

func Generate(ctx context.Context, opts Options) (*Result, error) {
	if opts.N < 0 {
		return nil, ErrInvalidCount
	}

	text := codepoint.NewSeededGenerator(opts.Seed).Text(opts.N)
	log.Debug(ctx, "generated text", slog.F("codepoints", len(text)), slog.F("seed", opts.Seed))

	return Write(ctx, opts.Dir, text, opts.Listing)
}

// Write stops at the first file that fails. Files written before it are
// left in place.
func Write(ctx context.Context, dir string, text codepoint.Text, listing bool) (_ *Result, err error) {
	defer xdefer.Errorf(&err, "failed to write fixtures")

	if dir == "" {
		dir = "."
	}
	err = os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Text: text,
	}

	if listing {
		fp := filepath.Join(dir, ListingFilename)
		err = writeListing(ctx, fp, text)
		if err != nil {
			return res, err
		}
		res.Files = append(res.Files, fp)
	}

	for _, f := range utfenc.Formats {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		fp := filepath.Join(dir, f.Filename)
		err = f.WriteFile(fp, text)
		if err != nil {
			return res, err
		}
		log.Debug(ctx, "wrote fixture", slog.F("format", f.Name), slog.F("path", fp))
		res.Files = append(res.Files, fp)
	}

	return res, nil
}

func writeListing(ctx context.Context, fp string, text codepoint.Text) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := os.WriteFile(fp, text.Listing(), 0644)
	if err != nil {
		return err
	}
	log.Debug(ctx, "wrote listing", slog.F("path", fp))
	return nil
}
