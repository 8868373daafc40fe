// Package build implements the build subcommand, the scan to style sheet
// pipeline.
package build

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"ucss/cache"
	"ucss/config"
	"ucss/rules"
	"ucss/scan"
	"ucss/state"
)

//go:embed preflight.css
var preflightStylesheet []byte

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("build")

	dst := env.Cfg.Output.Destination
	if arg := cmd.Args().Get(0); len(arg) != 0 {
		dst = arg
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	env.NoCache, env.Stdout = cmd.Bool("no-cache"), cmd.Bool("stdout")

	log.Info("Build starting",
		zap.Strings("roots", env.Cfg.Content.Roots),
		zap.String("destination", dst),
		zap.Stringer("id", env.BuildID))
	defer func(start time.Time) {
		log.Info("Build completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	var store *cache.Cache
	if !env.NoCache && len(env.Cfg.Cache.Path) != 0 {
		if c, cerr := cache.Open(env.Cfg.Cache.Path, log); cerr == nil {
			store = c
		} else {
			log.Warn("Unable to open extraction cache, continuing without it", zap.Error(cerr))
		}
	}
	defer func() {
		err = multierr.Append(err, store.Close())
	}()

	scanner := scan.NewScanner(env.Cfg.Content.Extensions, log)

	files, err := scanner.Files(env.Cfg.Content.Roots)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		log.Warn("No content files found", zap.Strings("roots", env.Cfg.Content.Roots), zap.Strings("extensions", env.Cfg.Content.Extensions))
	}

	current := make(map[string]struct{}, len(files))
	for _, f := range files {
		current[f.Path] = struct{}{}
	}
	store.Prune(current)

	candidates, err := scanner.Collect(ctx, files, func(f scan.File) ([]string, error) {
		if classes, ok := store.Lookup(f.Path, f.Size, f.ModTime); ok {
			return classes, nil
		}
		classes, err := scanner.ExtractFile(f)
		if err != nil {
			return nil, err
		}
		store.Store(f.Path, f.Size, f.ModTime, classes)
		return classes, nil
	})
	if err != nil {
		return err
	}

	env.Rpt.StoreData("classes.txt", []byte(strings.Join(candidates, "\n")))

	opts := rules.Options{DarkSelector: env.Cfg.DarkMode.Selector}
	if env.Cfg.DarkMode.Strategy == config.DarkModeStrategyClass {
		opts.Dark = rules.DarkStrategyClass
	}

	css, stats := NewGenerator(opts, log).Generate(candidates)

	out, err := assemble(env.Cfg.Output, css, log)
	if err != nil {
		return err
	}

	if env.Stdout {
		if _, err := os.Stdout.WriteString(out); err != nil {
			return err
		}
	} else {
		if dir := filepath.Dir(dst); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("unable to create output directory: %w", err)
			}
		}
		if err := os.WriteFile(dst, []byte(out), 0644); err != nil {
			return fmt.Errorf("unable to write style sheet: %w", err)
		}
		env.Rpt.Store("output.css", dst)
	}

	log.Info("Style sheet generated",
		zap.Int("files", len(files)),
		zap.Int("candidates", stats.Candidates),
		zap.Int("rules", stats.Rules),
		zap.Int("bytes", len(out)))
	return nil
}

// assemble stitches base reset, injected sheets and generated utilities into
// the final document, in that order. Injected sheets are not modified in any
// way, only checked so the user learns early when one is not CSS.
func assemble(out config.OutputConfig, css string, log *zap.Logger) (string, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var blocks []string

	if out.Preflight {
		blocks = append(blocks, strings.TrimRight(string(preflightStylesheet), "\n"))
	}

	for _, inj := range out.Inject {
		data, err := os.ReadFile(inj)
		if err != nil {
			return "", fmt.Errorf("unable to read injected style sheet %s: %w", inj, err)
		}
		if info := inspectSheet(data); info.Broken {
			log.Warn("Injected style sheet does not parse as CSS, passing it through anyway", zap.String("file", inj))
		} else {
			log.Debug("Injecting style sheet", zap.String("file", inj), zap.Int("rulesets", info.Rulesets), zap.Int("declarations", info.Declarations))
		}
		blocks = append(blocks, strings.TrimRight(string(data), "\n"))
	}

	if len(css) != 0 {
		blocks = append(blocks, css)
	}
	if len(blocks) == 0 {
		return "", nil
	}
	return strings.Join(blocks, "\n\n") + "\n", nil
}
