// Package main is the clusterinfo command-line tool.
//
// clusterinfo connects to a Nutanix cluster through the Prism API and writes
// an informal as-built report of the cluster and its storage containers.
package main

import (
	"os"

	"github.com/Orkogithub/nutanix-cluster-info/cmd/clusterinfo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		cmd.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
