package utfgencli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"oss.terrastruct.com/utfgen/fixture"
	"oss.terrastruct.com/utfgen/lib/log"
	"oss.terrastruct.com/utfgen/lib/version"
	"oss.terrastruct.com/utfgen/lib/xmain"
)

func Run(ctx context.Context, ms *xmain.State) (err error) {
	// These should be kept up-to-date with help.
	listingFlag, err := ms.Opts.Bool("UTFGEN_LISTING", "listing", "l", false, "also write unicode.txt with the decimal value of each codepoint, one per line")
	if err != nil {
		return err
	}
	dirFlag := ms.Opts.String("UTFGEN_DIR", "dir", "o", ".", "directory the fixture files are written to")
	seedFlag, err := ms.Opts.Int64("UTFGEN_SEED", "seed", "", 0, "seed for the codepoint generator. 0 seeds from the current time")
	if err != nil {
		return err
	}
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		return err
	}
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "get the version")
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if !errors.Is(err, pflag.ErrHelp) && err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}

	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}

	args := ms.Opts.Flags.Args()
	if len(args) > 0 && args[0] == "version" {
		if len(args) > 1 {
			return xmain.UsageErrorf("version subcommand accepts no arguments")
		}
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	}
	if *versionFlag {
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	}

	if *debugFlag {
		ms.Env.Setenv("DEBUG", "1")
	}

	if len(args) == 0 {
		return xmain.UsageErrorf("missing codepoint count")
	} else if len(args) > 1 {
		return xmain.UsageErrorf("too many arguments passed")
	}
	n, err := parseCount(args[0])
	if err != nil {
		return err
	}

	dir := ms.AbsPath(*dirFlag)
	ctx = log.Named(log.Writer(ctx, ms.Stderr, *debugFlag), "utfgen")
	res, err := fixture.Generate(ctx, fixture.Options{
		N:       n,
		Listing: *listingFlag,
		Seed:    *seedFlag,
		Dir:     dir,
	})
	if err != nil {
		return err
	}
	ms.Log.Debug.Printf("wrote %d codepoints to %d files in %s", len(res.Text), len(res.Files), dir)
	return nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, xmain.UsageErrorf("%v: got %q", fixture.ErrInvalidCount, s)
	}
	return n, nil
}
