// Command novel plays a scene file in a window or a terminal, or serves a
// scripted continuation for one.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/phanxgames/novel"
	"github.com/phanxgames/novel/remote"
	"github.com/phanxgames/novel/tui"
)

type options struct {
	Config       string
	Debug        bool
	TUI          bool
	Continuation string
	Labels       string
	TestScript   string
	Screenshots  string
	Addr         string
}

func main() {
	// NOVEL_* variables may live in a .env next to the scene.
	_ = godotenv.Load()

	var o options
	root := &cobra.Command{
		Use:   "novel [flags] scene.toml",
		Short: "Play a visual-novel scene",
		Example: `  # Play in a window
  novel scenes/intro.toml

  # Play in the terminal against a continuation server
  novel --tui --continuation ws://localhost:8080/ws scenes/intro.toml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(o.Debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return play(cmd.Context(), o, args[0])
		},
	}
	root.PersistentFlags().StringVarP(&o.Config, "config", "c", envOr("NOVEL_CONFIG", ""), "TOML config file")
	root.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", os.Getenv("NOVEL_DEBUG") != "", "Enable debug logging")
	root.Flags().BoolVar(&o.TUI, "tui", false, "Play in the terminal")
	root.Flags().StringVar(&o.Continuation, "continuation", envOr("NOVEL_CONTINUATION", ""), "Continuation server URL (ws:// or http://)")
	root.Flags().StringVar(&o.Labels, "labels", "", "PO file translating UI labels")
	root.Flags().StringVar(&o.TestScript, "test-script", "", "JSON test script to drive the window")
	root.Flags().StringVar(&o.Screenshots, "screenshots", "screenshots", "Screenshot output directory")

	serve := &cobra.Command{
		Use:   "serve [flags] scene.toml",
		Short: "Serve the scene's replies as a continuation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveScene(cmd.Context(), o, args[0])
		},
	}
	serve.Flags().StringVar(&o.Addr, "addr", envOr("NOVEL_ADDR", ":8080"), "Listen address")
	root.AddCommand(serve)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := root.ExecuteContext(ctx); err != nil {
		slog.Error("novel", "err", err)
		os.Exit(1)
	}
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	l := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(l)
	novel.SetLogger(l)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func loadConfig(path string) (novel.Config, error) {
	if path == "" {
		return novel.DefaultConfig(), nil
	}
	return novel.LoadConfig(path)
}

func play(ctx context.Context, o options, scenePath string) error {
	cfg, err := loadConfig(o.Config)
	if err != nil {
		return err
	}
	sf, err := novel.LoadScene(scenePath)
	if err != nil {
		return err
	}
	if o.Labels != "" {
		po, err := os.ReadFile(o.Labels)
		if err != nil {
			return fmt.Errorf("read labels: %w", err)
		}
		novel.LoadLabels(po)
	}

	actors := sf.ActorMap()
	opts := novel.Options{
		Actors:        actors,
		PresentActors: novel.PresentSpeakers(actors, cfg.PlayerID),
		ActorImageURL: func(a *novel.Actor, _ novel.Script, _ int) string {
			return sf.Resolve(a.DefaultImageURL)
		},
		BackgroundURL: func(_ novel.Script, i int) string { return sf.BackgroundAt(i) },
		Context:       ctx,
		Config:        cfg,
		HoverInfo: func(a *novel.Actor) string {
			if a == nil {
				return ""
			}
			return "**" + a.Name + "**"
		},
	}
	if !o.TUI {
		opts.AudioFactory = novel.NewEbitenAudio(novel.ReadAsset).Open
	}
	switch u := o.Continuation; {
	case strings.HasPrefix(u, "ws://"), strings.HasPrefix(u, "wss://"):
		opts.Continuation = remote.NewClient(u).Continue
	case strings.HasPrefix(u, "http://"), strings.HasPrefix(u, "https://"):
		opts.Continuation = remote.HTTPContinuation(strings.TrimSuffix(u, "/"), nil)
	case u != "":
		return fmt.Errorf("unsupported continuation URL %q", u)
	}

	var quit func()
	opts.OnClose = func() {
		if quit != nil {
			quit()
		}
	}
	ctrl, err := novel.NewController(sf.PlayableScript(), opts)
	if err != nil {
		return err
	}
	defer ctrl.Close()

	if o.TUI {
		p := tui.NewPlayer(ctrl)
		quit = p.Quit
		err := p.Run(ctx)
		if err == context.Canceled {
			return nil
		}
		return err
	}

	assets := novel.NewAssetCache(novel.ReadAsset, 0)
	var urls []string
	for _, a := range sf.Actors {
		if a.DefaultImageURL != "" {
			urls = append(urls, sf.Resolve(a.DefaultImageURL))
		}
	}
	for i := range sf.Entries {
		if u := sf.BackgroundAt(i); u != "" {
			urls = append(urls, u)
		}
	}
	if err := assets.Preload(ctx, urls); err != nil {
		slog.Warn("novel: preload", "err", err)
	}

	st, err := novel.NewStage(ctrl, assets)
	if err != nil {
		return err
	}
	quit = st.Quit
	st.Debug = o.Debug
	st.ScreenshotDir = o.Screenshots
	if o.TestScript != "" {
		data, err := os.ReadFile(o.TestScript)
		if err != nil {
			return fmt.Errorf("read test script: %w", err)
		}
		runner, err := novel.LoadTestScript(data)
		if err != nil {
			return err
		}
		st.SetTestRunner(runner)
	}
	return novel.Run(st, novel.RunConfigFrom(cfg))
}

func serveScene(ctx context.Context, o options, scenePath string) error {
	sf, err := novel.LoadScene(scenePath)
	if err != nil {
		return err
	}
	if len(sf.Replies) == 0 {
		return fmt.Errorf("%s has no replies to serve", scenePath)
	}
	gen := &remote.Scripted{Lines: sf.Replies, Closing: sf.Closing}
	srv := remote.NewServer(gen.Generate, remote.WithLogger(slog.Default()), remote.WithTimeout(30*time.Second))
	err = srv.ListenAndServe(ctx, o.Addr)
	if err == context.Canceled {
		return nil
	}
	return err
}
