// Package diff compares test output against golden files in testdata.
package diff

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"oss.terrastruct.com/diff"
)

// TestdataGeneric compares got against path.exp<ext>. On mismatch got is left
// at path.got<ext> for inspection.
func TestdataGeneric(path, fileExtension string, got []byte) (err error) {
	expPath := fmt.Sprintf("%s.exp%s", path, fileExtension)
	gotPath := fmt.Sprintf("%s.got%s", path, fileExtension)

	err = os.MkdirAll(filepath.Dir(gotPath), 0755)
	if err != nil {
		return err
	}
	err = os.WriteFile(gotPath, got, 0600)
	if err != nil {
		return err
	}

	ds, err := diff.Files(expPath, gotPath)
	if err != nil {
		return err
	}

	if ds != "" {
		if os.Getenv("TESTDATA_ACCEPT") != "" {
			return os.Rename(gotPath, expPath)
		}
		return fmt.Errorf("diff (rerun with $TESTDATA_ACCEPT=1 to accept):\n%s", ds)
	}
	return os.Remove(gotPath)
}

// Testdata is TestdataGeneric rooted at testdata/<test name>.
func Testdata(tb testing.TB, fileExtension string, got []byte) {
	tb.Helper()
	err := TestdataGeneric(filepath.Join("testdata", tb.Name()), fileExtension, got)
	if err != nil {
		tb.Fatal(err)
	}
}
