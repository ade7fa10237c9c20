// Command encival evaluates validated interval arithmetic expressions
// from the command line. Intervals are written in the bracketed textual
// form understood by interval.Parse, e.g. "[1, 2]", "[0.5]" or "[-inf, 3]".
package main

import "os"

func main() {
	os.Exit(run())
}
