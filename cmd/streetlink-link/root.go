package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger *zap.SugaredLogger

var rootCmd = &cobra.Command{
	Use:   "streetlink-link",
	Short: "Link point entities into a street-network graph",
	Long: `streetlink-link loads a street graph from a JSON fixture and runs
the street-network linker over it, attaching every transit stop, bike
rental station, and bike park to its nearest walkable edge.`,
}

func init() {
	cobra.OnInitialize(func() {
		z, err := zap.NewProduction()
		if err != nil {
			panic(err)
		}
		logger = z.Sugar()
	})
}
