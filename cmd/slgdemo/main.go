// Package main is slgdemo, a small CLI driving pkg/forest end to end
// over the toy Horn-clause program pkg/logictest defines: the tabling
// core's analogue of cmd/example's primitive-goal walkthrough.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "slgdemo",
		Short: "Drive the SLG tabling core over a toy Horn-clause program",
	}
	root.AddCommand(newRunCmd())
	return root
}
