package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sevigo/review-desk/internal/app"
	"github.com/sevigo/review-desk/internal/core"
	"github.com/sevigo/review-desk/internal/export"
	"github.com/sevigo/review-desk/internal/render"
	"github.com/sevigo/review-desk/internal/session"
	"github.com/sevigo/review-desk/internal/watch"
	"github.com/sevigo/review-desk/internal/wire"
)

type reviewOptions struct {
	language  string
	filename  string
	includeAI bool
	format    string
	exportDir string
	watch     bool
}

var reviewOpts reviewOptions

var reviewCmd = &cobra.Command{
	Use:   "review [file|-]",
	Short: "Submit a source file to the reviewer service",
	Long: `Submit a source file to the reviewer service and print the issue report.

Without a file argument, or with "-", the code is read from stdin.

Examples:
  review-cli review main.go
  review-cli review --language python --ai app.py
  cat Foo.java | review-cli review -f Foo.java --format json
  review-cli review --watch --export ./reports app.py`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReview,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	f := reviewCmd.Flags()
	f.StringVarP(&reviewOpts.language, "language", "l", "", "Language of the code (default: from extension or .review-desk.yml)")
	f.StringVarP(&reviewOpts.filename, "filename", "f", "", "Filename sent with the code (default: the file's base name)")
	f.BoolVar(&reviewOpts.includeAI, "ai", false, "Ask the reviewer for an AI summary")
	f.StringVar(&reviewOpts.format, "format", "text", "Output format: text, json, html, markdown")
	f.StringVar(&reviewOpts.exportDir, "export", "", "Write <filename>.review.json into this directory after a successful review")
	f.BoolVar(&reviewOpts.watch, "watch", false, "Review again whenever the file changes")
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	if reviewOpts.watch && path == "-" {
		return errors.New("--watch needs a file argument")
	}

	var writer render.Writer
	if reviewOpts.format != "json" {
		w, err := render.GetWriter(reviewOpts.format)
		if err != nil {
			return err
		}
		writer = w
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appInstance, cleanup, err := wire.InitializeApp()
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w\n\nTip: check RD_REVIEWER_URL and .review-desk.yml", err)
	}
	defer cleanup()

	language, err := resolveLanguage(reviewOpts.language, path, appInstance.Profile)
	if err != nil {
		return err
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	surface := newConsoleSurface(out, errOut, writer)
	controller, err := appInstance.NewController(surface)
	if err != nil {
		return fmt.Errorf("failed to create controller: %w", err)
	}

	r := &reviewRun{
		controller: controller,
		path:       path,
		stdin:      cmd.InOrStdin(),
		out:        out,
		errOut:     errOut,
		language:   language,
		filename:   resolveFilename(reviewOpts.filename, path, appInstance.Profile),
		includeAI:  resolveIncludeAI(cmd, appInstance),
	}

	if !reviewOpts.watch {
		return r.once(ctx)
	}
	return r.watch(ctx)
}

type reviewRun struct {
	controller *session.Controller
	path       string
	stdin      io.Reader
	out        io.Writer
	errOut     io.Writer
	language   string
	filename   string
	includeAI  *bool
}

func (r *reviewRun) once(ctx context.Context) error {
	code, err := r.read()
	if err != nil {
		return err
	}

	printHeader(r.errOut, r.filename)
	report, err := r.controller.SubmitRaw(ctx, code, r.language, r.filename, r.includeAI)
	if err != nil {
		return err
	}

	if reviewOpts.format == "json" {
		data, err := export.Marshal(report)
		if err != nil {
			return err
		}
		if _, err := r.out.Write(data); err != nil {
			return err
		}
	}

	if reviewOpts.exportDir != "" {
		dst := export.DirDestination{Dir: reviewOpts.exportDir}
		name, ok, err := r.controller.Export(dst)
		if err != nil {
			return fmt.Errorf("failed to export report: %w", err)
		}
		if ok {
			successColor.Fprintf(r.errOut, "Exported %s\n", dst.Path(name))
		}
	}
	return nil
}

// watch reviews the file once and again after every change until ctx ends.
// Failed reviews are reported and do not stop the loop.
func (r *reviewRun) watch(ctx context.Context) error {
	changed := make(chan struct{}, 1)
	watcher, err := watch.NewFileWatcher(r.path, 0, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := watcher.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		for {
			if err := r.once(gctx); err != nil && !isReviewOutcome(err) {
				return err
			}
			dimColor.Fprintf(r.errOut, "\nWatching %s for changes (ctrl+c to stop)\n", r.path)

			select {
			case <-gctx.Done():
				return nil
			case <-changed:
			}
		}
	})
	return g.Wait()
}

func (r *reviewRun) read() (string, error) {
	var data []byte
	var err error
	if r.path == "-" {
		data, err = io.ReadAll(r.stdin)
	} else {
		data, err = os.ReadFile(r.path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read code: %w", err)
	}
	return string(data), nil
}

// isReviewOutcome reports whether err was already shown to the user by the
// surface.
func isReviewOutcome(err error) bool {
	var se *core.SubmissionError
	var ve *core.ValidationError
	return errors.As(err, &se) || errors.As(err, &ve) || errors.Is(err, session.ErrBusy) || errors.Is(err, session.ErrDiscarded)
}

var extLanguages = map[string]string{
	".java": "java",
	".js":   "javascript",
	".mjs":  "javascript",
	".jsx":  "javascript",
	".py":   "python",
	".go":   "go",
	".ts":   "typescript",
	".tsx":  "typescript",
}

func resolveLanguage(flag, path string, profile *core.Profile) (string, error) {
	if flag != "" {
		lang := strings.ToLower(flag)
		if !core.IsSupportedLanguage(lang) {
			return "", fmt.Errorf("unsupported language %q, run 'review-cli languages' for the list", flag)
		}
		return lang, nil
	}
	if lang, ok := extLanguages[strings.ToLower(filepath.Ext(path))]; ok {
		return lang, nil
	}
	return profile.Language, nil
}

func resolveFilename(flag, path string, profile *core.Profile) string {
	if flag != "" {
		return flag
	}
	if path != "-" {
		return filepath.Base(path)
	}
	return profile.Filename
}

// resolveIncludeAI returns nil when the AI toggle is disabled in config; the
// request builder then sends false.
func resolveIncludeAI(cmd *cobra.Command, a *app.App) *bool {
	def := a.IncludeAIDefault()
	if def == nil {
		return nil
	}
	if cmd.Flags().Changed("ai") {
		return core.Ptr(reviewOpts.includeAI)
	}
	return def
}
