package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/scenegraph/internal/config"
	"github.com/zeusync/scenegraph/internal/core/observability/log"
	"github.com/zeusync/scenegraph/internal/core/scene"
	"github.com/zeusync/scenegraph/internal/injector"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	format := flag.String("format", "", "output format: json or yaml (default from config)")
	resources := flag.Bool("resources", false, "print the resources each scene depends on instead of the scene")
	fingerprint := flag.Bool("fingerprint", false, "print a hash of each re-serialized scene instead of the scene")
	flag.Parse()

	mode := modeScene
	switch {
	case *resources:
		mode = modeResources
	case *fingerprint:
		mode = modeFingerprint
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: scenetool [-config file] [-format json|yaml] [-resources|-fingerprint] scene...")
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, *configPath, *format, mode, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "scenetool:", err)
		os.Exit(1)
	}
}

// outputMode selects what process renders for a scene.
type outputMode int

const (
	modeScene outputMode = iota
	modeResources
	modeFingerprint
)

func run(ctx context.Context, configPath, format string, mode outputMode, paths []string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	if format != "" {
		cfg.Scene.OutputFormat = format
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	rt, err := injector.InitializeRuntime(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = rt.Logger.Sync() }()

	outputs := make([][]byte, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := process(rt, path, mode)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			outputs[i] = out
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}

	for _, out := range outputs {
		if _, err = os.Stdout.Write(out); err != nil {
			return err
		}
	}
	return nil
}

// process loads one scene file into its own node and renders the result.
func process(rt *injector.Runtime, path string, mode outputMode) ([]byte, error) {
	info, err := scene.LoadFile(path)
	if err != nil {
		return nil, err
	}

	node := rt.NewNode(info.Name)
	if err = node.Configure(info, rt.Registry); err != nil {
		if rt.Config.Scene.StrictComponents {
			return nil, err
		}
		rt.Logger.Warn("scene loaded with skipped components",
			log.String("path", path),
			log.Error(err))
	}
	rt.Logger.Debug("scene loaded",
		log.String("path", path),
		log.String("node", node.UID()),
		log.Int("components", node.ComponentCount()))

	var buf bytes.Buffer
	switch mode {
	case modeFingerprint:
		sum, err := scene.Fingerprint(node.Serialize())
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "%016x  %s\n", sum, path)
		return buf.Bytes(), nil
	case modeResources:
		names := make([]string, 0)
		for name := range node.CollectResources(nil) {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintf(&buf, "%s:\n", path)
		for _, name := range names {
			fmt.Fprintf(&buf, "  %s\n", name)
		}
		return buf.Bytes(), nil
	}

	if err = scene.Encode(&buf, node.Serialize(), scene.Format(rt.Config.Scene.OutputFormat)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
