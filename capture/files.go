package capture

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// File layout errors.
var (
	// ErrTooManyCaptures is returned when every numbered file name under
	// the capture directory is already taken.
	ErrTooManyCaptures = errors.New("capture: too many captures in directory, could not generate filename")

	// ErrMissingDir is returned when stitching is requested against a
	// capture directory that does not exist.
	ErrMissingDir = errors.New("capture: capture directory does not exist, cannot stitch")

	// ErrNoOutputName is returned when no-capture mode is used without an
	// explicit output file name to locate the existing captures by.
	ErrNoOutputName = errors.New("capture: must specify an output file name in no-capture mode")
)

// PaddedIndex formats num with enough leading zeros that every index
// below max sorts lexicographically.
func PaddedIndex(max, num int) string {
	digits := int(math.Ceil(math.Log10(float64(max))))
	if digits < 1 {
		digits = 1
	}
	return fmt.Sprintf("%0*d", digits, num)
}

// FilePath returns the on-disk path of capture number num.
func FilePath(dir, prefix string, max, num int) string {
	return filepath.Join(dir, prefix+PaddedIndex(max, num)+".png")
}

// NextFileName returns the first <base>NN.png under dir that does not
// exist yet, so repeated runs never overwrite earlier output.
func NextFileName(dir, base string, max int) (string, error) {
	for i := 0; i < max; i++ {
		name := filepath.Join(dir, base+PaddedIndex(max, i)+".png")
		if _, err := os.Stat(name); errors.Is(err, fs.ErrNotExist) {
			return name, nil
		}
	}
	return "", ErrTooManyCaptures
}

// NumCaptures counts the sequentially numbered captures with the given
// prefix already present under dir: the index of the first free file name.
func NumCaptures(dir, prefix string, max int) (int, error) {
	next, err := NextFileName(dir, prefix, max)
	if err != nil {
		return 0, err
	}
	base := strings.TrimSuffix(filepath.Base(next), filepath.Ext(next))
	idx := base[strings.LastIndex(base, "_")+1:]
	n, err := strconv.Atoi(idx)
	if err != nil {
		return 0, fmt.Errorf("capture: malformed capture index in %q: %w", next, err)
	}
	return n, nil
}

// Layout describes where a run reads and writes its files.
type Layout struct {
	// OutFile is the path of the final stitched image.
	OutFile string
	// Dir is the directory holding the numbered captures.
	Dir string
	// Prefix is the capture file prefix, derived from the output name.
	Prefix string
	// NumFiles is the number of captures to take, or in no-capture mode
	// the number of existing captures found on disk.
	NumFiles int
}

// SetupFiles resolves the output file and the capture naming scheme for a
// run. With capturing enabled the output directory is created on demand
// and an unused indexed output name is picked from prefix unless name is
// given explicitly; with capturing disabled both the directory and the
// name must already exist, and the existing captures are counted.
func SetupFiles(outDir, prefix, name string, capturing bool, maxCaptures int) (*Layout, error) {
	if _, err := os.Stat(outDir); errors.Is(err, fs.ErrNotExist) {
		if !capturing {
			return nil, ErrMissingDir
		}
		if err := os.Mkdir(outDir, 0o755); err != nil {
			return nil, fmt.Errorf("capture: create output directory: %w", err)
		}
	}

	var outFile string
	switch {
	case name != "":
		outFile = filepath.Join(outDir, name)
	case capturing:
		var err error
		outFile, err = NextFileName(outDir, prefix, 1000)
		if err != nil {
			return nil, err
		}
	default:
		return nil, ErrNoOutputName
	}

	base := strings.TrimSuffix(outFile, filepath.Ext(outFile))
	if base == "" || filepath.Base(base) == "" || filepath.Base(base) == "." {
		return nil, fmt.Errorf("capture: invalid path, prefix, or file: %q, %q, %q", outDir, prefix, name)
	}

	l := &Layout{
		OutFile: outFile,
		Dir:     filepath.Dir(base),
		Prefix:  filepath.Base(base) + "_",
	}
	if capturing {
		l.NumFiles = maxCaptures
	} else {
		n, err := NumCaptures(l.Dir, l.Prefix, maxCaptures)
		if err != nil {
			return nil, err
		}
		l.NumFiles = n
	}
	return l, nil
}

// RemoveCaptures deletes every numbered capture with the given prefix.
func RemoveCaptures(dir, prefix string) error {
	matches, err := filepath.Glob(filepath.Join(dir, prefix+"*.png"))
	if err != nil {
		return fmt.Errorf("capture: glob captures: %w", err)
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			return fmt.Errorf("capture: remove capture: %w", err)
		}
	}
	return nil
}
