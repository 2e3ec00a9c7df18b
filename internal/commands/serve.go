package commands

import (
	"flag"

	"github.com/rangekit/rangefetch/internal/api"
	"github.com/rangekit/rangefetch/internal/config"
)

func CreateServeCommand() *ServeCommand {
	gc := &ServeCommand{
		fs: flag.NewFlagSet("serve", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.ListenAddr, "listen", "", "Override the API listen address from the config file")

	return gc
}

type ServeCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	ListenAddr string
}

func (g *ServeCommand) Name() string {
	return g.fs.Name()
}

func (g *ServeCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	if g.ListenAddr != "" {
		g.cfg.API.ListenAddr = g.ListenAddr
	}

	return nil
}

func (g *ServeCommand) Run() error {
	return api.NewServer(g.cfg).Start()
}
