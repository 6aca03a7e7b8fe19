package version

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

type semver [3]int

// parse accepts "v1.2.3", "1.2" or "1.2.3-rc.1". Missing parts are zero
// and anything after "-" or "+" is ignored.
func parse(s string) (semver, error) {
	var v semver

	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	if i := strings.IndexAny(s, "-+"); i >= 0 {
		s = s[:i]
	}

	parts := strings.Split(s, ".")
	if s == "" || len(parts) > len(v) {
		return v, fmt.Errorf("invalid version %q", s)
	}

	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return v, fmt.Errorf("invalid version %q", s)
		}
		v[i] = n
	}

	return v, nil
}

// Compare returns 1 if a is newer than b, -1 if older and 0 if equal.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	diff, found := lo.Find(lo.Zip2(av[:], bv[:]), func(t lo.Tuple2[int, int]) bool {
		return t.A != t.B
	})
	if !found {
		return 0, nil
	}
	return cmp.Compare(diff.A, diff.B), nil
}
