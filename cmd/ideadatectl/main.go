// Command ideadatectl is a thin CLI front end over the idea-date journey
// engine: it loads a plan from a YAML file, runs one of the engine's
// operations, and prints the JSON result.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	gojson "github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/ideadate/journey-engine/internal/version"
	"github.com/ideadate/journey-engine/internal/xlog"
	"github.com/ideadate/journey-engine/pkg/ideadate/compute"
	"github.com/ideadate/journey-engine/pkg/ideadate/model"
	"github.com/ideadate/journey-engine/pkg/ideadate/patch"
	"github.com/ideadate/journey-engine/pkg/ideadate/resolver"
	"github.com/ideadate/journey-engine/pkg/ideadate/suggestpack"
	"github.com/ideadate/journey-engine/pkg/ideadate/travel"
	"github.com/ideadate/journey-engine/pkg/ideadateconfig"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "--help", "-h", "help":
		printUsage()
		return
	case "--version", "version":
		fmt.Printf("ideadatectl %s\n", version.Version)
		return
	}

	cfg, cfgErr := ideadateconfig.Load()
	if cfgErr != nil {
		cfg = ideadateconfig.DefaultConfig()
	}
	if cfg.Debug {
		xlog.SetEnabled(true)
	}

	var err error
	switch os.Args[1] {
	case "recompute-live":
		err = cmdRecomputeLive(os.Args[2:], cfg)
	case "suggestion-pack":
		err = cmdSuggestionPack(os.Args[2:], cfg)
	case "apply-patch-ops":
		err = cmdApplyPatchOps(os.Args[2:])
	case "warm-cache":
		err = cmdWarmCache(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "ideadatectl: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Usage: ideadatectl <command> [flags]

Commands:
  recompute-live   --plan <file>             Recompute scoring, arc model, and constraints for a plan
  suggestion-pack  --plan <file>              Recompute and produce ranked, narrated suggestions
  apply-patch-ops  --plan <file> --ops <file> Apply a list of patch ops to a plan
  warm-cache       --plans <dir>              Prime the travel cache for every plan file in a directory
  version                                     Print the version
  help                                        Show this help`)
}

func newFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ContinueOnError)
}

func loadPlan(path string) (model.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Plan{}, fmt.Errorf("reading plan file: %w", err)
	}
	var plan model.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return model.Plan{}, fmt.Errorf("parsing plan file: %w", err)
	}
	return plan, nil
}

func loadPatchOps(path string) ([]model.PatchOp, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading patch ops file: %w", err)
	}
	var ops []model.PatchOp
	if err := yaml.Unmarshal(data, &ops); err != nil {
		return nil, fmt.Errorf("parsing patch ops file: %w", err)
	}
	return ops, nil
}

func printJSON(v any) error {
	data, err := gojson.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func newEngine(cfg ideadateconfig.Config) *compute.Engine {
	engine := compute.NewEngine()
	if cfg.Engine.MaxTravelEdgeMinutes > 0 {
		engine.ConstraintConfig.MaxTravelEdgeMinutes = cfg.Engine.MaxTravelEdgeMinutes
	}
	if cfg.Engine.TravelCacheTTLMinutes > 0 {
		engine.TravelCache = travel.NewCache(time.Duration(cfg.Engine.TravelCacheTTLMinutes) * time.Minute)
	}
	return engine
}

func resolverFromConfig(cfg ideadateconfig.Config) resolver.CandidateResolver {
	if cfg.Resolver.Kind == "empty" {
		return resolver.EmptyResolver{}
	}
	return resolver.LocalMockResolver{}
}

func cmdRecomputeLive(args []string, cfg ideadateconfig.Config) error {
	fs := newFlagSet("recompute-live")
	planPath := fs.String("plan", "", "path to plan YAML file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *planPath == "" {
		return fmt.Errorf("--plan is required")
	}

	plan, err := loadPlan(*planPath)
	if err != nil {
		return err
	}

	engine := newEngine(cfg)
	live, err := engine.RecomputeLive(plan, time.Now())
	if err != nil {
		return fmt.Errorf("recompute_live: %w", err)
	}
	return printJSON(live)
}

func cmdSuggestionPack(args []string, cfg ideadateconfig.Config) error {
	fs := newFlagSet("suggestion-pack")
	planPath := fs.String("plan", "", "path to plan YAML file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *planPath == "" {
		return fmt.Errorf("--plan is required")
	}

	plan, err := loadPlan(*planPath)
	if err != nil {
		return err
	}

	engine := newEngine(cfg)
	pack, err := suggestpack.Build(engine, plan, resolverFromConfig(cfg), time.Now())
	if err != nil {
		return fmt.Errorf("suggestion_pack: %w", err)
	}
	return printJSON(pack)
}

func cmdApplyPatchOps(args []string) error {
	fs := newFlagSet("apply-patch-ops")
	planPath := fs.String("plan", "", "path to plan YAML file")
	opsPath := fs.String("ops", "", "path to patch ops YAML file")
	strict := fs.Bool("strict", true, "enforce invariant checks (P1-P4)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *planPath == "" || *opsPath == "" {
		return fmt.Errorf("--plan and --ops are required")
	}

	plan, err := loadPlan(*planPath)
	if err != nil {
		return err
	}
	ops, err := loadPatchOps(*opsPath)
	if err != nil {
		return err
	}

	patched, err := patch.Apply(plan, ops, *strict)
	if err != nil {
		return fmt.Errorf("apply_patch_ops: %w", err)
	}
	return printJSON(patched)
}

// cmdWarmCache recomputes every plan file under --plans concurrently,
// priming the shared engine's travel cache so a subsequent interactive
// session starts warm. Concurrency is capped to avoid saturating the
// process on large directories.
func cmdWarmCache(args []string) error {
	fs := newFlagSet("warm-cache")
	plansDir := fs.String("plans", "", "directory of plan YAML files to warm")
	concurrency := fs.Int("concurrency", 4, "max concurrent recomputations")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *plansDir == "" {
		return fmt.Errorf("--plans is required")
	}

	matches, err := filepath.Glob(filepath.Join(*plansDir, "*.yaml"))
	if err != nil {
		return fmt.Errorf("globbing plans: %w", err)
	}

	engine := compute.NewEngine()
	group, _ := errgroup.WithContext(context.Background())
	group.SetLimit(*concurrency)

	for _, path := range matches {
		path := path
		group.Go(func() error {
			plan, err := loadPlan(path)
			if err != nil {
				xlog.Log("warm-cache: skipping %s: %v", path, err)
				return nil
			}
			if _, err := engine.RecomputeLive(plan, time.Now()); err != nil {
				xlog.Log("warm-cache: %s failed: %v", path, err)
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}
	fmt.Printf("warmed %d plan(s), %d travel edge(s) cached\n", len(matches), engine.TravelCache.Len())
	return nil
}
