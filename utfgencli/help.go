package utfgencli

import (
	"fmt"
	"path/filepath"

	"oss.terrastruct.com/utfgen/lib/version"
	"oss.terrastruct.com/utfgen/lib/xmain"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `%[1]s %[2]s
Usage:
  %[1]s [--listing] [--dir=.] [--seed=0] n
  %[1]s version

%[1]s generates n random Unicode scalar values, never surrogates, and writes
them to the output directory in five encodings, without byte order marks:

  utf8.txt     UTF-8
  utf16be.txt  UTF-16 big endian
  utf16le.txt  UTF-16 little endian
  utf32be.txt  UTF-32 big endian
  utf32le.txt  UTF-32 little endian

With --listing, unicode.txt additionally holds the decimal value of every
codepoint on its own line. Existing files are overwritten.

Flags:
%[3]s
`, filepath.Base(ms.Name), version.Version, ms.Opts.Help())
}
