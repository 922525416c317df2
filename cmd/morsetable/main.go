// Command morsetable prints a Morse decoding table for embedding in decoder
// sources.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
