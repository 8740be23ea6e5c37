// nameencoder prints the phonetic code of each name given on the command line.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/jusunglee/nameencoder/internal/config"
	"github.com/jusunglee/nameencoder/internal/encoder"
	"github.com/jusunglee/nameencoder/internal/logger"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

const usage = "A list of given names is encoded to their codes."

var (
	wordStyle = lipgloss.NewStyle().Bold(true)

	layerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(4).
			Align(lipgloss.Right)

	changedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	unchangedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("nameencoder")
	encFlags := config.AddFlags(fs)
	var (
		showPath    = fs.BoolLong("path", "print the code path of each name")
		interactive = fs.BoolLong("interactive", "encode names as they are typed")
		workers     = fs.IntLong("workers", 0, "parallel encoders, 0 uses GOMAXPROCS")
	)

	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("NAMEENCODER")); err != nil {
		fmt.Fprintf(stderr, "%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	log := logger.New(stderr)
	slog.SetDefault(log)

	words := fs.GetArgs()
	if len(words) == 0 && !*interactive {
		fmt.Fprintln(stdout, usage)
		return nil
	}

	table, p, err := encFlags.Encoding().Pipeline(log)
	if err != nil {
		return err
	}
	log.DebugContext(ctx, "rule set loaded", "ruleset", table.Name, "layers", p.Layers())

	if *interactive {
		return explore(ctx, table.Name, p, os.Stdin, stdout)
	}

	results, err := encoder.EncodeAll(ctx, p, words, *workers)
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	for _, r := range results {
		fmt.Fprintf(stdout, "Encoding of %s: %s\n", r.Word(), r.Code())
		if *showPath {
			fmt.Fprint(stdout, renderPath(r))
		}
	}
	return nil
}

// renderPath shows the code after every layer, highlighting layers that
// changed it.
func renderPath(r encoder.Result) string {
	path := r.Path()

	var b strings.Builder
	b.WriteString(layerStyle.Render("0"))
	b.WriteString(" ")
	b.WriteString(wordStyle.Render(path[0]))
	b.WriteString("\n")

	for i := 1; i < len(path); i++ {
		style := unchangedStyle
		if path[i] != path[i-1] {
			style = changedStyle
		}
		b.WriteString(layerStyle.Render(fmt.Sprint(i)))
		b.WriteString(" ")
		b.WriteString(style.Render(path[i]))
		b.WriteString("\n")
	}
	return b.String()
}
