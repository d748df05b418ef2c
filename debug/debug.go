package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Classify bool
	Visited  bool
	Encode   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Classify = boolEnv("INSPECT_DEBUG_CLASSIFY")
	d.Visited = boolEnv("INSPECT_DEBUG_VISITED")
	d.Encode = boolEnv("INSPECT_DEBUG_ENCODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Classify() bool {
	return d.Classify
}
func Visited() bool {
	return d.Visited
}
func Encode() bool {
	return d.Encode
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
