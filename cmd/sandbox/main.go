//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/JSKitty/rusty-sandbox/internal/app"
	"github.com/JSKitty/rusty-sandbox/internal/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	wc := sand.FromString(cfg.Params)
	wc.Width = cfg.Width
	wc.Height = cfg.Height
	wc.Seed = cfg.Seed
	world := sand.NewWithConfig(wc)

	game := app.New(world, cfg.Scale)

	ebiten.SetWindowTitle("rusty-sandbox")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
