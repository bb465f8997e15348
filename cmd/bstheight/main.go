package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/vancomm/bst/internal/bst"
	"github.com/vancomm/bst/internal/config"
	"github.com/vancomm/bst/internal/heightstat"
)

var (
	log = logrus.New()

	configPath string
	cfg        = config.Default()
)

func parseFlags(args []string) error {
	const usage = "config file path"
	fs := flag.NewFlagSet("bstheight", flag.ContinueOnError)
	fs.StringVar(&configPath, "config", "", usage)
	fs.StringVar(&configPath, "c", "", usage+" (shorthand)")
	var (
		from    = fs.Int("from", 0, "smallest tree size")
		to      = fs.Int("to", 0, "largest tree size")
		step    = fs.Int("step", 0, "tree size increment")
		ops     = fs.Int("ops", -1, "inserts and deletes applied to every tree, each")
		workers = fs.Int("workers", -1, "tree sizes measured concurrently")
		seed    = fs.Uint64("seed", 0, "random seed")
		format  = fs.String("format", "", "report format: text or json")
		verify  = fs.Bool("verify", false, "check tree invariants after every trial")
		trace   = fs.Bool("trace", false, "log every tree operation at debug level")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if configPath != "" {
		if err := config.Read(configPath, &cfg); err != nil {
			return fmt.Errorf("unable to read config %s: %w", configPath, err)
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "from":
			cfg.From = *from
		case "to":
			cfg.To = *to
		case "step":
			cfg.Step = *step
		case "ops":
			cfg.Ops = *ops
		case "workers":
			cfg.Workers = *workers
		case "seed":
			cfg.Seed = *seed
		case "format":
			cfg.Format = *format
		case "verify":
			cfg.Verify = *verify
		case "trace":
			cfg.Trace = *trace
		}
	})

	return cfg.Validate()
}

func setupLogging() error {
	logLevel := logrus.InfoLevel
	if config.Development() {
		logLevel = logrus.DebugLevel
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	log.SetLevel(logLevel)

	// per-operation tree logging is opt-in even in development
	treeLevel := logrus.InfoLevel
	if cfg.Trace {
		treeLevel = logrus.DebugLevel
	}

	if cfg.LogFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   cfg.LogFile,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Level:      max(logLevel, treeLevel),
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return fmt.Errorf("unable to open log file %s: %w", cfg.LogFile, err)
		}
		log.AddHook(hook)
	}

	for _, l := range []*logrus.Logger{bst.Log, heightstat.Log} {
		l.SetFormatter(log.Formatter)
		l.ReplaceHooks(log.Hooks)
	}
	bst.Log.SetLevel(treeLevel)
	heightstat.Log.SetLevel(logLevel)

	return nil
}

func report(w io.Writer, format string, measures []heightstat.Measure) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(measures)
	}

	if _, err := fmt.Fprintln(w, "N\tAverage\tMax\tN^1/2\tlgN"); err != nil {
		return err
	}
	for _, m := range measures {
		_, err := fmt.Fprintf(w, "%d\t%.4f\t%.4f\t%.4f\t%.4f\n",
			m.N, m.Average, m.Max, m.Sqrt, m.Lg,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if err := parseFlags(os.Args[1:]); err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	if err := setupLogging(); err != nil {
		log.Fatal(err)
	}

	log.WithFields(cfg.Fields()).Debug("config")

	ctx := mainCtx
	if cfg.Timeout.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(mainCtx, cfg.Timeout.Duration)
		defer cancel()
	}

	measures, err := heightstat.Run(ctx, heightstat.Sweep{
		From:    cfg.From,
		To:      cfg.To,
		Step:    cfg.Step,
		Ops:     cfg.Ops,
		Workers: cfg.Workers,
		Seed:    cfg.Seed,
		Verify:  cfg.Verify,
	})
	if err != nil {
		log.Fatal("sweep failed: ", err)
	}

	log.WithFields(logrus.Fields{
		"sizes": len(measures),
	}).Info("sweep done")

	if err := report(os.Stdout, cfg.Format, measures); err != nil {
		log.Fatal("unable to write report: ", err)
	}
}
