// Command colorspector names the color under the mouse pointer.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"github.com/BeatGlow/colorspector"
	"github.com/BeatGlow/colorspector/button"
	"github.com/BeatGlow/colorspector/framebuffer"
	"github.com/BeatGlow/colorspector/panel"
	"github.com/BeatGlow/colorspector/picker"
	"github.com/BeatGlow/colorspector/tui"
)

// debug enables debug logging.
var debug = os.Getenv("COLORSPECTOR_DEBUG") != ""

// logger is flushed by fatal.
var logger = zap.NewNop()

// exit is replaced in tests.
var exit = os.Exit

// errPollPortal is returned when the portal is used for continuous picking.
var errPollPortal = errors.New("the portal source opens a dialog per sample, use it with pick")

const usage = `Usage: %s [flags] <command> [arguments]

Commands:
  name <r> <g> <b>   name an RGB color
  hex <code>         name a HEX color, such as #7D56F4
  pick               name the color at a position or under the pointer
  watch              follow the pointer in the terminal
  panel              render the picker panel to a PNG file or framebuffer
  palette            list all color names

Flags:
`

func main() {
	metricFlag := flag.String("metric", colorspector.MetricRGB.String(), "Distance metric (rgb or lab)")
	logFlag := flag.String("log", "", "Log file (default: stderr, ColorSpector.log for watch)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	metric, err := colorspector.ParseMetric(*metricFlag)
	if err != nil {
		fatal(err)
	}
	namer, err := colorspector.NewNamer(colorspector.CSS, colorspector.WithMetric(metric))
	if err != nil {
		fatal(err)
	}

	command, args := flag.Arg(0), flag.Args()[1:]
	logPath := *logFlag
	if logPath == "" && command == "watch" {
		// The terminal belongs to the UI.
		logPath = "ColorSpector.log"
	}
	log, err := newLogger(logPath)
	if err != nil {
		fatal(err)
	}
	logger = log
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch command {
	case "name":
		err = runName(os.Stdout, namer, args)
	case "hex":
		err = runHex(os.Stdout, namer, args)
	case "pick":
		err = runPick(ctx, os.Stdout, log, namer, args)
	case "watch":
		err = runWatch(ctx, log, namer, args)
	case "panel":
		err = runPanel(ctx, log, namer, args)
	case "palette":
		err = runPalette(os.Stdout, namer)
	default:
		err = fmt.Errorf("unknown command %q", command)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("command failed", zap.String("command", command), zap.Error(err))
		fatal(err)
	}
}

func newLogger(path string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	if path != "" {
		config.OutputPaths = []string{path}
		config.ErrorOutputPaths = []string{path}
	}
	return config.Build()
}

func printResult(w io.Writer, r colorspector.Result) {
	fmt.Fprintf(w, "%s\t%s\t%s\n", r.Title(), r.Hex, r.RGB())
}

func runName(w io.Writer, namer *colorspector.Namer, args []string) error {
	if len(args) != 3 {
		return errors.New("usage: name <r> <g> <b>")
	}
	var rgb [3]int
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("%w: %q is not a number", colorspector.ErrInvalidInput, arg)
		}
		rgb[i] = v
	}
	r, err := namer.NearestName(rgb[0], rgb[1], rgb[2])
	if err != nil {
		return err
	}
	printResult(w, r)
	return nil
}

func runHex(w io.Writer, namer *colorspector.Namer, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: hex <code>")
	}
	s, err := colorspector.ParseHex(args[0])
	if err != nil {
		return err
	}
	printResult(w, namer.Nearest(s))
	return nil
}

func runPalette(w io.Writer, namer *colorspector.Namer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, c := range namer.Palette() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Name, c.Sample.Hex(), c.Sample.RGB())
	}
	return tw.Flush()
}

func runPick(ctx context.Context, w io.Writer, log *zap.Logger, namer *colorspector.Namer, args []string) error {
	var (
		fs  = flag.NewFlagSet("pick", flag.ExitOnError)
		src source
	)
	src.flags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	o, err := src.open(log)
	if err != nil {
		return err
	}
	defer func() { _ = o.Close() }()

	pos, err := o.pointer.Position(ctx)
	if err != nil {
		return err
	}
	s, err := o.sampler.Sample(ctx, pos)
	if err != nil {
		return err
	}
	printResult(w, namer.Nearest(s))
	return nil
}

// pickerFlags configure a continuously polling picker.
type pickerFlags struct {
	source   source
	interval time.Duration
	history  int
}

func (f *pickerFlags) flags(fs *flag.FlagSet) {
	f.source.flags(fs)
	fs.DurationVar(&f.interval, "interval", picker.DefaultInterval, "Polling interval")
	fs.IntVar(&f.history, "history", picker.DefaultHistorySize, "Number of history entries")
}

func (f *pickerFlags) open(log *zap.Logger, namer *colorspector.Namer) (*picker.Picker, *opened, error) {
	if f.source.kind == sourcePortal {
		return nil, nil, errPollPortal
	}
	if f.history < 1 {
		return nil, nil, fmt.Errorf("invalid history size %d", f.history)
	}

	o, err := f.source.open(log)
	if err != nil {
		return nil, nil, err
	}
	p := picker.New(o.sampler, o.pointer, namer,
		picker.WithInterval(f.interval),
		picker.WithHistorySize(f.history),
		picker.WithLogger(log))
	return p, o, nil
}

// watchButton toggles the picker on presses of the button on the named pin.
func watchButton(ctx context.Context, log *zap.Logger, p *picker.Picker, pin string) error {
	b, err := button.New(pin)
	if err != nil {
		return err
	}
	log.Info("watching freeze button", zap.Stringer("button", b))
	go func() {
		if err := b.Watch(ctx, func() { p.ToggleFreeze() }); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("freeze button failed", zap.Error(err))
		}
	}()
	return nil
}

func runWatch(ctx context.Context, log *zap.Logger, namer *colorspector.Namer, args []string) error {
	var (
		fs       = flag.NewFlagSet("watch", flag.ExitOnError)
		config   pickerFlags
		beepFlag = fs.Bool("beep", false, "Beep when a color is frozen")
		pinFlag  = fs.String("freeze-pin", "", "GPIO pin of a push button that toggles freeze, such as GPIO17")
	)
	config.flags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	p, o, err := config.open(log, namer)
	if err != nil {
		return err
	}
	defer func() { _ = o.Close() }()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if *pinFlag != "" {
		if err = watchButton(ctx, log, p, *pinFlag); err != nil {
			return err
		}
	}
	go func() { _ = p.Run(ctx) }()

	opts := []tui.Option{
		tui.WithLogger(log),
		tui.WithHistorySize(config.history),
	}
	if *beepFlag {
		opts = append(opts, tui.WithBeep())
	}
	return tui.Run(ctx, p, opts...)
}

func runPanel(ctx context.Context, log *zap.Logger, namer *colorspector.Namer, args []string) error {
	var (
		fs         = flag.NewFlagSet("panel", flag.ExitOnError)
		config     pickerFlags
		outFlag    = fs.String("o", "", "Write a single PNG to this file")
		targetFlag = fs.String("target", "", "Draw continuously to this framebuffer device, such as /dev/fb1")
		pinFlag    = fs.String("freeze-pin", "", "GPIO pin of a push button that toggles freeze, such as GPIO17")
	)
	config.flags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	p, o, err := config.open(log, namer)
	if err != nil {
		return err
	}
	defer func() { _ = o.Close() }()

	r, err := panel.New(panel.WithHistorySize(config.history))
	if err != nil {
		return err
	}

	switch {
	case *outFlag != "":
		if _, err = p.Tick(ctx); err != nil {
			return err
		}
		return writePNG(*outFlag, r, p.Snapshot())

	case *targetFlag != "":
		fb, err := framebuffer.Open(*targetFlag)
		if err != nil {
			return err
		}
		defer func() { _ = fb.Close() }()
		log.Info("drawing panel", zap.Stringer("framebuffer", fb))

		if *pinFlag != "" {
			if err = watchButton(ctx, log, p, *pinFlag); err != nil {
				return err
			}
		}
		go func() { _ = p.Run(ctx) }()

		snapshots, cancel := p.Subscribe()
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case s := <-snapshots:
				start := time.Now()
				if err = r.Render(fb, s); err != nil {
					return err
				}
				log.Debug("panel drawn", zap.Duration("took", time.Since(start)))
			}
		}

	default:
		return errors.New("panel needs -o or -target")
	}
}

func writePNG(name string, r *panel.Renderer, s picker.Snapshot) error {
	im, err := r.Image(s)
	if err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = png.Encode(f, im); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func fatal(err error) {
	// Deferred calls do not run on exit.
	_ = logger.Sync()
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	exit(1)
}
