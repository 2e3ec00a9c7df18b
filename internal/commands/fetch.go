package commands

import (
	"flag"
	"fmt"

	"github.com/rangekit/rangefetch/internal/config"
	"github.com/rangekit/rangefetch/internal/lists"
	"github.com/rangekit/rangefetch/internal/log"
	"github.com/rangekit/rangefetch/internal/providers"
)

func CreateFetchCommand() *FetchCommand {
	gc := &FetchCommand{
		fs: flag.NewFlagSet("fetch", flag.ExitOnError),
	}

	gc.fs.BoolVar(&gc.DryRun, "dry-run", false, "Run the full pipeline without writing any files")
	gc.fs.BoolVar(&gc.NoChunk, "no-chunk", false, "Skip writing chunk files")
	gc.fs.BoolVar(&gc.List, "list", false, "List available providers and exit")

	return gc
}

type FetchCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	DryRun  bool
	NoChunk bool
	List    bool

	providerNames []string
}

func (g *FetchCommand) Name() string {
	return g.fs.Name()
}

func (g *FetchCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if g.List {
		return nil
	}

	if cfg, err := loadConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	g.providerNames = resolveProviderNames(g.fs.Args())

	return nil
}

func (g *FetchCommand) Run() error {
	if g.List {
		printProviders()
		return nil
	}

	manager := lists.NewManager(g.cfg)
	summary, _ := manager.FetchProviders(g.providerNames, lists.FetchOptions{
		DryRun:     g.DryRun,
		SkipChunks: g.NoChunk,
	})

	log.Infof("Fetched %d/%d providers", summary.Succeeded, summary.Attempted)
	log.Infof("Total CIDRs: %d", summary.TotalCIDRs)
	if g.DryRun {
		log.Infof("(Dry run - no files were modified)")
	}

	if !summary.AllSucceeded() {
		return fmt.Errorf("%d of %d providers failed", summary.Attempted-summary.Succeeded, summary.Attempted)
	}

	return nil
}

// resolveProviderNames maps the positional arguments to provider names.
// No arguments or the token "all" selects every automated provider. Unknown
// names are kept as-is: the pipeline reports them as per-provider failures.
func resolveProviderNames(args []string) []string {
	if len(args) == 0 {
		return providers.Names()
	}
	for _, arg := range args {
		if arg == "all" {
			return providers.Names()
		}
	}
	return args
}

func printProviders() {
	fmt.Println("Available providers (automated):")
	for _, name := range providers.Names() {
		p, _ := providers.Get(name)
		fmt.Printf("  %s: %s\n", name, p.URL)
	}

	fmt.Println()
	fmt.Println("Manual providers (no public API):")
	for _, name := range providers.ManualNames() {
		if url := providers.Manual[name]; url != "" {
			fmt.Printf("  %s: %s\n", name, url)
		} else {
			fmt.Printf("  %s: (manual extraction required)\n", name)
		}
	}
}
