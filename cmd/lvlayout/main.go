// SPDX-License-Identifier: MIT

// Command lvlayout inspects the partition tree and the memory layout
// described by a YAML rule set.
//
//	lvlayout --config lattice.yaml levels
//	lvlayout --config lattice.yaml locate --coords 24,36,11,11,0,0
//	lvlayout --config lattice.yaml offsets --limit 10
package main

import (
	"flag"

	"github.com/golang/glog"
)

func main() {
	defer glog.Flush()
	// cobra parses the glog flags; mark the Go flag set as parsed.
	if err := flag.CommandLine.Parse(nil); err != nil {
		glog.Exitf("lvlayout: flags: %v", err)
	}

	if err := newRootCmd().Execute(); err != nil {
		glog.Exitf("lvlayout: %v", err)
	}
}
