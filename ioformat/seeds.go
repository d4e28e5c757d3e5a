package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/c2boost/core"
)

// ReadSeedSet parses the seed-file format: "Na" then Na indices
// (across any number of lines, whitespace-separated), then "Nr" then
// Nr indices. n is the graph's node count, passed through to
// core.NewSeedSet for range/overlap validation.
func ReadSeedSet(r io.Reader, n int) (core.SeedSet, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	readInt := func(what string) (int, error) {
		if !sc.Scan() {
			return 0, fmt.Errorf("%w: expected %s", ErrTruncated, what)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q", ErrMalformedLine, what, sc.Text())
		}
		return v, nil
	}

	na, err := readInt("Na count")
	if err != nil {
		return core.SeedSet{}, err
	}
	sa := make([]int, na)
	for i := range sa {
		sa[i], err = readInt(fmt.Sprintf("Sa[%d]", i))
		if err != nil {
			return core.SeedSet{}, err
		}
	}

	nr, err := readInt("Nr count")
	if err != nil {
		return core.SeedSet{}, err
	}
	sr := make([]int, nr)
	for i := range sr {
		sr[i], err = readInt(fmt.Sprintf("Sr[%d]", i))
		if err != nil {
			return core.SeedSet{}, err
		}
	}

	if err := sc.Err(); err != nil {
		return core.SeedSet{}, fmt.Errorf("ioformat: reading seed file: %w", err)
	}

	seeds, err := core.NewSeedSet(n, sa, sr)
	if err != nil {
		return core.SeedSet{}, fmt.Errorf("ioformat: %w", err)
	}
	return seeds, nil
}
