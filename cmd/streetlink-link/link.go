package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trailmesh/streetlink/linker"
)

var linkFixturePath string

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Load a fixture graph and link every station to it",
	Args:  cobra.NoArgs,
	RunE:  runLink,
}

func init() {
	linkCmd.Flags().StringVar(&linkFixturePath, "fixture", "", "path to a JSON graph fixture (required)")
	_ = linkCmd.MarkFlagRequired("fixture")
	rootCmd.AddCommand(linkCmd)
}

func runLink(cmd *cobra.Command, args []string) error {
	g, edgeIndex, stopIndex, err := loadFixture(linkFixturePath)
	if err != nil {
		return err
	}

	l := linker.NewLinker(g, edgeIndex, stopIndex, linker.ZapAnnotationSink{S: logger}, linker.ZapLogger{S: logger})

	report := l.LinkAllStationsToGraph()

	fmt.Fprintf(os.Stdout, "linked %d station(s), %d unlinked\n", report.Linked, report.Unlinked)
	fmt.Fprintf(os.Stdout, "graph now has %d vertices and %d edges\n", len(g.Vertices()), len(g.Edges()))

	if report.Unlinked > 0 {
		return fmt.Errorf("streetlink-link: %d station(s) could not be linked", report.Unlinked)
	}

	return nil
}
