package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mgnsk/conveniences/assets"
	"github.com/spf13/cobra"
)

var (
	collectRoot      = "."
	collectFilter    string
	collectRecursive bool
	collectSort      bool
	collectWatch     bool
)

func init() {
	collectCmd.Flags().StringVar(&collectRoot, "root", collectRoot, "Root directory the folder is relative to")
	collectCmd.Flags().StringVarP(&collectFilter, "filter", "f", collectFilter, `Asset types, separated by "|". Example: --filter="Texture2D|AudioClip"`)
	collectCmd.Flags().BoolVarP(&collectRecursive, "recursive", "r", collectRecursive, "Include subfolders")
	collectCmd.Flags().BoolVar(&collectSort, "sort", collectSort, "Sort assets by name")
	collectCmd.Flags().BoolVarP(&collectWatch, "watch", "w", collectWatch, "Refresh the list whenever the folder changes")
}

var collectCmd = &cobra.Command{
	Use:   "collect <folder>",
	Short: "Lists the assets of a folder matching a type filter.",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		log := newLogger(logLevel, logFormat, os.Stderr)

		filter, err := assets.ParseFilter(collectFilter)
		if err != nil {
			return err
		}

		col := &assets.Collector{
			FS:                os.DirFS(collectRoot),
			Folder:            args[0],
			IncludeSubfolders: collectRecursive,
			Filter:            filter,
			SortByName:        collectSort,
			AutoRefresh:       collectWatch,
		}

		if err := col.Refresh(); err != nil {
			return err
		}
		printAssets(c.OutOrStdout(), col.Assets())

		if !collectWatch {
			return nil
		}

		dir := filepath.Join(collectRoot, args[0])
		log.Info("watching", "dir", dir, "filter", filter.String())

		err = col.Watch(c.Context(), dir, log, func(list []assets.Asset) {
			printAssets(c.OutOrStdout(), list)
		})
		if c.Context().Err() != nil {
			return nil
		}
		return err
	},
}

func printAssets(w io.Writer, list []assets.Asset) {
	for _, a := range list {
		fmt.Fprintf(w, "%s\t%s\n", a.Path, a.Type)
	}
	fmt.Fprintf(w, "%d assets\n", len(list))
}
