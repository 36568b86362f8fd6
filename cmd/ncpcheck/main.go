// Command ncpcheck validates the property catalogue and inspects the
// dispatch tables it produces for a feature profile.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
