// Command pathviz runs one animated path-finding search on a terminal grid.
//
// Usage:
//
//	pathviz [-config pathviz.yaml] [-algorithm astar] [-speed medium]
//	        [-maze division -seed 7] [-start 0,0] [-end 19,39]
//	        [-animate] [-watch] [-metrics-addr :9090]
//
// With -speed manual every line read from stdin advances one frame.
// With -watch the config file is watched and the search re-runs after
// every change until interrupted.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/raj457036/Path-Finding-Visualizer/config"
	"github.com/raj457036/Path-Finding-Visualizer/gridgraph"
	"github.com/raj457036/Path-Finding-Visualizer/maze"
	"github.com/raj457036/Path-Finding-Visualizer/render"
	"github.com/raj457036/Path-Finding-Visualizer/scheduler"
	"github.com/raj457036/Path-Finding-Visualizer/session"
)

const clearScreen = "\033[H\033[2J"

type flags struct {
	configPath  string
	algorithm   string
	heuristic   string
	speed       string
	rows, cols  int
	start, end  string
	mazeKind    string
	seed        int64
	plain       bool
	animate     bool
	watch       bool
	metricsAddr string
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("pathviz", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.configPath, "config", "", "YAML config file")
	fs.StringVar(&f.algorithm, "algorithm", "", "dfs|bfs|bidirectional-bfs|bidirectional-dfs|dijkstra|astar")
	fs.StringVar(&f.heuristic, "heuristic", "", "manhattan|euclidean|diagonal")
	fs.StringVar(&f.speed, "speed", "", "fast|medium|slow|manual")
	fs.IntVar(&f.rows, "rows", 0, "grid rows (overrides config)")
	fs.IntVar(&f.cols, "cols", 0, "grid columns (overrides config)")
	fs.StringVar(&f.start, "start", "", "start cell as row,col (default top-left)")
	fs.StringVar(&f.end, "end", "", "end cell as row,col (default bottom-right)")
	fs.StringVar(&f.mazeKind, "maze", "none", "none|random|division")
	fs.Int64Var(&f.seed, "seed", 1, "maze random seed")
	fs.BoolVar(&f.plain, "plain", false, "disable colours")
	fs.BoolVar(&f.animate, "animate", false, "redraw the grid on every frame")
	fs.BoolVar(&f.watch, "watch", false, "re-run whenever the config file changes")
	fs.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	if err := fs.Parse(args); err != nil {
		return f, err
	}
	if f.watch && f.configPath == "" {
		return f, errors.New("-watch needs -config")
	}
	return f, nil
}

// overlay applies non-empty flags on top of cfg and re-validates.
func (f flags) overlay(cfg *config.Config) error {
	if f.algorithm != "" {
		cfg.Algorithm.Name = f.algorithm
	}
	if f.heuristic != "" {
		cfg.Algorithm.Heuristic = f.heuristic
	}
	if f.speed != "" {
		cfg.Scheduler.Speed = f.speed
	}
	if f.rows > 0 {
		cfg.Grid.Rows = f.rows
	}
	if f.cols > 0 {
		cfg.Grid.Cols = f.cols
	}
	return cfg.Validate()
}

func parseCell(s string, defR, defC int) (int, int, error) {
	if s == "" {
		return defR, defC, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("cell %q: want row,col", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("cell %q: %w", s, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("cell %q: %w", s, err)
	}
	return r, c, nil
}

func generator(kind string, seed int64) (maze.Generator, error) {
	rng := rand.New(rand.NewSource(seed))
	switch kind {
	case "", "none":
		return nil, nil
	case "random":
		return maze.Random(rng, 0), nil
	case "division":
		return maze.RecursiveDivision(rng), nil
	}
	return nil, fmt.Errorf("unknown maze %q", kind)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "pathviz:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if err := f.overlay(cfg); err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	var metrics *scheduler.Metrics
	if f.metricsAddr != "" {
		reg := prometheus.NewRegistry()
		if metrics, err = scheduler.NewMetrics("pathviz", reg); err != nil {
			return err
		}
		srv := metricsServer(f.metricsAddr, reg)
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", zap.Error(err))
			}
		}()
		defer srv.Close()
		logger.Info("serving metrics", zap.String("addr", f.metricsAddr))
	}

	var rnd *render.Renderer
	if f.plain {
		rnd = render.New(render.WithPlain())
	} else {
		rnd = render.New()
	}

	sessOpts, err := cfg.SessionOptions(logger, metrics)
	if err != nil {
		return err
	}
	var sess *session.Session
	if f.animate {
		sessOpts = append(sessOpts, session.WithSchedulerOptions(
			scheduler.WithOnFrame(func(scheduler.Phase) {
				fmt.Fprint(stdout, clearScreen+draw(sess, rnd)+"\n")
			}),
		))
	}
	sess, err = session.New(cfg.Grid.Rows, cfg.Grid.Cols, sessOpts...)
	if err != nil {
		return err
	}

	if err := placeEndpoints(sess, f, cfg); err != nil {
		return err
	}
	gen, err := generator(f.mazeKind, f.seed)
	if err != nil {
		return err
	}
	if gen != nil {
		if err := sess.Generate(gen); err != nil {
			return err
		}
	}

	// Reloaded configs are applied between runs only, never mid-run.
	var changed chan *config.Config
	if f.watch {
		w, err := config.NewWatcher(f.configPath, cfg, 0, logger)
		if err != nil {
			return err
		}
		defer w.Close()
		changed = make(chan *config.Config, 1)
		w.OnChange(func(next *config.Config) {
			select {
			case <-changed:
			default:
			}
			select {
			case changed <- next:
			default:
			}
		})
	}

	lines := bufio.NewScanner(stdin)
	for {
		sched, err := sess.Prepare()
		if err != nil {
			return err
		}
		if err := drive(ctx, sched, lines); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		fmt.Fprintln(stdout, draw(sess, rnd))
		fmt.Fprintln(stdout, rnd.Legend())
		fmt.Fprintln(stdout, render.Summary(sched))

		if changed == nil {
			return nil
		}
		if err := waitForChange(ctx, changed, f, sess, logger); err != nil {
			return nil
		}
	}
}

// waitForChange blocks until a reloaded config is applied to sess with the
// command-line overrides kept. Configs that fail to apply are logged and
// skipped. It returns ctx.Err() once ctx is done.
func waitForChange(ctx context.Context, changed <-chan *config.Config, f flags, sess *session.Session, logger *zap.Logger) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case next := <-changed:
			if err := f.reapply(next, sess); err != nil {
				logger.Error("config not applied", zap.Error(err))
				continue
			}
			logger.Info("config applied, re-running",
				zap.String("algorithm", string(sess.Algorithm())),
				zap.Stringer("speed", sess.Speed()),
			)
			return nil
		}
	}
}

// reapply overlays the flags on a copy of next and pushes it into sess.
func (f flags) reapply(next *config.Config, sess *session.Session) error {
	c := *next
	if err := f.overlay(&c); err != nil {
		return err
	}
	return c.ApplyTo(sess)
}

// draw renders the grid under the session lock.
func draw(sess *session.Session, rnd *render.Renderer) string {
	var out string
	sess.View(func(gg *gridgraph.GridGraph) { out = rnd.Render(gg) })
	return out
}

// drive runs sched to completion: Run for timed speeds, one Next per input
// line for manual speed. Running out of input stops the run.
func drive(ctx context.Context, sched *scheduler.Scheduler, lines *bufio.Scanner) error {
	if sched.Speed() != scheduler.Manual {
		return sched.Run(ctx)
	}
	for !sched.Phase().Terminal() {
		if ctx.Err() != nil {
			sched.Stop()
			return ctx.Err()
		}
		if !lines.Scan() {
			sched.Stop()
			return lines.Err()
		}
		if _, err := sched.Next(); err != nil {
			return err
		}
	}
	return nil
}

func placeEndpoints(sess *session.Session, f flags, cfg *config.Config) error {
	sr, sc, err := parseCell(f.start, 0, 0)
	if err != nil {
		return err
	}
	er, ec, err := parseCell(f.end, cfg.Grid.Rows-1, cfg.Grid.Cols-1)
	if err != nil {
		return err
	}
	sess.SetTool(session.ToolStart)
	if err := sess.Apply(sr, sc); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	sess.SetTool(session.ToolTarget)
	if err := sess.Apply(er, ec); err != nil {
		return fmt.Errorf("end: %w", err)
	}
	sess.SetTool(session.ToolWall)
	return nil
}

func metricsServer(addr string, reg *prometheus.Registry) *http.Server {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
