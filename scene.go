package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mgnsk/conveniences/scene"
	"github.com/spf13/cobra"
)

var (
	sceneBuild    = "build.yaml"
	sceneAssets   = "."
	sceneGUID     string
	scenePath     string
	sceneLoad     bool
	sceneAsync    bool
	sceneAdditive bool
)

func init() {
	sceneCmd.Flags().StringVarP(&sceneBuild, "build", "b", sceneBuild, "Build settings YAML file")
	sceneCmd.Flags().StringVar(&sceneAssets, "assets", sceneAssets, "Directory scanned for scene meta files")
	sceneCmd.Flags().StringVar(&sceneGUID, "guid", sceneGUID, "Scene GUID")
	sceneCmd.Flags().StringVar(&scenePath, "path", scenePath, "Scene path, used when no GUID is given")
	sceneCmd.Flags().BoolVar(&sceneLoad, "load", sceneLoad, "Load the scene")
	sceneCmd.Flags().BoolVar(&sceneAsync, "async", sceneAsync, "Load the scene asynchronously")
	sceneCmd.Flags().BoolVar(&sceneAdditive, "additive", sceneAdditive, "Load the scene additively")
}

var sceneCmd = &cobra.Command{
	Use:   "scene",
	Short: "Resolves a scene reference to its build index and optionally loads it.",
	RunE: func(c *cobra.Command, args []string) error {
		log := newLogger(logLevel, logFormat, os.Stderr)

		f, err := os.Open(sceneBuild)
		if err != nil {
			return err
		}
		defer f.Close()

		build, err := scene.ReadBuildSettings(f)
		if err != nil {
			return err
		}

		db, err := scene.LoadDatabase(os.DirFS(sceneAssets))
		if err != nil {
			return err
		}

		ref := &scene.Reference{GUID: sceneGUID, Path: scenePath}
		if sceneGUID != "" {
			ref.AfterDeserialize(db)
		} else {
			ref.Asset = db.Load(scenePath)
			if ref.Asset != nil {
				ref.BeforeSerialize(db)
			}
		}

		index, ok := ref.TryIndex(build)
		fmt.Fprintf(c.OutOrStdout(), "path=%s guid=%s index=%d\n", ref.Path, ref.GUID, index)

		if !sceneLoad {
			return nil
		}
		if !ok {
			return fmt.Errorf("load %q: %w", ref.Path, scene.ErrNotInBuild)
		}

		mode := scene.Single
		if sceneAdditive {
			mode = scene.Additive
		}

		dir := scene.NewDirector(build, log)
		if !sceneAsync {
			return ref.Load(dir, build, mode)
		}

		op := ref.LoadAsync(dir, build, mode, true)
		if op == nil {
			return errors.New("async load was not started")
		}
		for !op.IsDone() {
			dir.Update()
			log.Debug("loading", "path", op.Path(), "progress", op.Progress())
		}

		return nil
	},
}
