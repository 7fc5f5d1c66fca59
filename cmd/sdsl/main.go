// Command sdsl builds, inspects and queries sdsl structure files.
//
// Usage:
//
//	sdsl build --kind enc --coder delta --density 64 --in offsets.txt --out offsets.sdsl
//	sdsl info offsets.sdsl
//	sdsl get offsets.sdsl 0 10 100
//	sdsl dump offsets.sdsl
//
// Input files hold unsigned decimal integers separated by white space.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
