package main

import (
	"errors"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/shatter-grid/internal/config"
	"github.com/iburimskiy/shatter-grid/internal/game"
	"github.com/iburimskiy/shatter-grid/internal/sfx"
)

const windowTitle = "Shatter Grid - Space: bump, Enter: charge, S: shatter, M: palette mode, Esc: quit"

type options struct {
	font     string
	fontSize float64
	pickFont bool
	mute     bool
	volume   float64
	debug    bool
	seed     uint64
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "shatter-grid",
		Short:         "Interactive grid of colored cells with lens, palette and shatter effects",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.font, "font", config.DefaultFont, "TrueType font used for cell labels")
	f.Float64Var(&opts.fontSize, "font-size", config.DefaultFontSize, "label font size")
	f.BoolVar(&opts.pickFont, "pick-font", false, "choose the label font with a file dialog")
	f.BoolVar(&opts.mute, "mute", false, "disable sound cues")
	f.Float64Var(&opts.volume, "volume", -1, "cue volume in halvings of full scale (0 = full)")
	f.BoolVar(&opts.debug, "debug", false, "show the debug overlay")
	f.Uint64Var(&opts.seed, "seed", 0, "random seed for jitter and particles (0 = random)")
	return cmd
}

func run(opts *options) error {
	fontPath := opts.font
	if opts.pickFont {
		p, err := game.PickFontFile(fontPath)
		if err != nil {
			return err
		}
		fontPath = p
	}
	face, err := game.LoadFace(fontPath, opts.fontSize)
	if err != nil {
		return err
	}

	var sceneOpts []game.Option
	if opts.seed != 0 {
		sceneOpts = append(sceneOpts, game.WithSeed(opts.seed))
	}
	if !opts.mute {
		player, err := sfx.New(opts.volume)
		if err != nil {
			log.Printf("[Sfx] speaker unavailable, cues disabled: %v", err)
		} else {
			sceneOpts = append(sceneOpts, game.WithCues(player))
		}
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(windowTitle)

	g := game.NewGame(game.NewScene(sceneOpts...), face, opts.debug)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Printf("shatter-grid: %v", err)
		_ = zenity.Error(err.Error(), zenity.Title("Shatter Grid"), zenity.ErrorIcon)
		os.Exit(1)
	}
}
