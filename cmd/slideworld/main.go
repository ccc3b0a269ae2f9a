package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/mkoreman/slideworld/core/game"
	game_log "github.com/mkoreman/slideworld/internal/log"
	"github.com/mkoreman/slideworld/internal/ui"
)

//go:embed world.yaml
var defaultWorld []byte

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		layoutPath string
		logLevel   string
	)
	cmd := &cobra.Command{
		Use:          "slideworld",
		Short:        "Carousel puzzle world",
		Long:         "Slideworld runs a puzzle game of interlocking infinite carousels.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := game_log.New(os.Stderr, game_log.LevelFromString(logLevel))
			doc, err := loadDocument(layoutPath)
			if err != nil {
				return err
			}
			session := game.NewSession(doc, nil, logger)
			g := ui.New(session, logger)
			ebiten.SetWindowSize(960, 640)
			ebiten.SetWindowTitle("Slideworld")
			return ebiten.RunGame(g)
		},
	}
	cmd.Flags().StringVar(&layoutPath, "layout", "", "path to a YAML game document (default: built-in world)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, error, none")
	return cmd
}

func loadDocument(path string) (*game.Document, error) {
	if path == "" {
		return game.Load(bytes.NewReader(defaultWorld))
	}
	return game.LoadFile(path)
}
