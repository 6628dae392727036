package app

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/rehearse/internal/catalog"
	"github.com/ayoisaiah/rehearse/internal/config"
	"github.com/ayoisaiah/rehearse/internal/cue"
	"github.com/ayoisaiah/rehearse/internal/hook"
	"github.com/ayoisaiah/rehearse/internal/logging"
	"github.com/ayoisaiah/rehearse/internal/media"
	"github.com/ayoisaiah/rehearse/internal/osutil"
	"github.com/ayoisaiah/rehearse/internal/pathutil"
	"github.com/ayoisaiah/rehearse/internal/processing"
	"github.com/ayoisaiah/rehearse/internal/review"
	"github.com/ayoisaiah/rehearse/internal/room"
	"github.com/ayoisaiah/rehearse/internal/session"
	"github.com/ayoisaiah/rehearse/internal/status"
	"github.com/ayoisaiah/rehearse/internal/timeutil"
	"github.com/ayoisaiah/rehearse/internal/ui"
)

const (
	envNoColor         = "NO_COLOR"
	envRehearseNoColor = "REHEARSE_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// setupLogging points the default logger at the log file. The returned
// function closes it.
func setupLogging(debug bool) (func(), error) {
	if err := pathutil.Initialize(); err != nil {
		return nil, err
	}

	_, closer := logging.Setup(logging.Options{
		Path:  pathutil.LogFilePath(),
		Debug: debug,
	})

	return func() { _ = closer.Close() }, nil
}

// loadConfig reads the config file, prompting for the basics on first run,
// and applies the command-line flags on top.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	if err := pathutil.Initialize(); err != nil {
		return nil, err
	}

	path := pathutil.ConfigFilePath()

	return config.New(
		config.WithPromptConfig(path),
		config.WithViperConfig(path),
		config.WithCLIConfig(ctx),
	)
}

// defaultAction runs an interview: the room, then processing, then the
// summary and the session command.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg.Settings.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	slog.Info("starting interview", slog.String("config", cfg.String()))

	cat := catalog.Default()

	tmpl, err := cat.Template(cfg.Interview.Template)
	if err != nil {
		return err
	}

	mode, err := media.ParseMode(cfg.Media.Mode)
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	questions := tmpl.SessionQuestions()
	consent := &media.Consent{}
	video, audio := mode.Devices()

	ctrl, err := session.NewController(
		questions,
		consent,
		session.NewTicker(time.Second),
		session.WithMedia(video, audio),
		session.WithLogger(slog.Default()),
	)
	if err != nil {
		return err
	}

	cues := &cue.Player{Disabled: !cfg.Sound.Cues}
	defer cues.Close()

	title := firstNonEmptyString(cfg.Interview.Title, tmpl.Name)
	styles := ui.NewStyles(cfg.Display.Accent, cfg.Display.DarkTheme)

	r := room.New(ctx.Context, ctrl, consent, room.Options{
		Cues:       cues,
		Title:      title,
		Role:       cfg.Interview.Role,
		Company:    firstNonEmptyString(tmpl.Company, cfg.Interview.Company),
		Mode:       mode,
		StatusPath: pathutil.StatusFilePath(),
		TimeFormat: cfg.TimeFormat(),
		Script:     cat.Utterances,
		Styles:     styles,
		Duration:   cfg.Interview.Duration,
		Interval:   cfg.Transcript.Interval,
		AutoGrant:  cfg.Media.AutoGrant,
		Simulate:   cfg.Transcript.Simulate,
		Debug:      cfg.Settings.Debug,
	})

	h, err := runRoom(r, ctrl, pathutil.StatusFilePath(), tea.WithAltScreen())
	if err != nil {
		return err
	}

	if h == nil {
		pterm.Info.Println("Interview left without saving. Nothing was recorded.")
		return nil
	}

	var notify processing.Notifier
	if cfg.Notifications.Enabled {
		notify = processing.DesktopNotifier
	}

	p := processing.New(*h, processing.Options{
		Notify: notify,
		Title:  title,
		Styles: styles,
	})

	if _, err = tea.NewProgram(p).Run(); err != nil {
		return errRunProcessing.Wrap(err)
	}

	review.RenderHandoff(ctx.App.Writer, *h, questions, cfg.TimeFormat())

	if err := hook.Run(ctx.Context, cfg.Settings.Cmd, *h); err != nil {
		pterm.Warning.Printfln("session command failed: %s", err)
		slog.Error("session command failed", slog.Any("error", err))
	}

	return nil
}

// listAction prints the interviews that match the filter flags.
func listAction(ctx *cli.Context) error {
	f, err := config.Filter(ctx)
	if err != nil {
		return err
	}

	cat := catalog.Default()
	found := cat.Find(f)

	if ctx.Bool("json") {
		if found == nil {
			found = []catalog.Interview{}
		}

		return printJSON(ctx.App.Writer, found)
	}

	return listInterviews(ctx.App.Writer, cat, found, timeutil.Now())
}

// showAction prints a single past interview.
func showAction(ctx *cli.Context) error {
	id := ctx.Args().First()
	if id == "" {
		return errMissingID
	}

	cat := catalog.Default()

	iv, err := cat.Interview(id)
	if err != nil {
		ui.PrintProblem(ctx.App.Writer, ui.ProblemNotFound)
		return err
	}

	if ctx.Bool("json") {
		return printJSON(ctx.App.Writer, iv)
	}

	review.RenderInterview(ctx.App.Writer, cat, iv)

	return nil
}

// compareAction lines up two past interviews side by side.
func compareAction(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return errCompareArgs.Fmt(ctx.NArg())
	}

	cat := catalog.Default()

	a, err := cat.Interview(ctx.Args().Get(0))
	if err != nil {
		return err
	}

	b, err := cat.Interview(ctx.Args().Get(1))
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.App.Writer, "%s\n%s\n\n", a, b)

	return ui.Table{
		Rows:       review.CompareRows(a, b),
		RightAlign: true,
	}.Render(ctx.App.Writer)
}

// templatesAction prints the bundled interview templates.
func templatesAction(ctx *cli.Context) error {
	cat := catalog.Default()

	if ctx.Bool("json") {
		return printJSON(ctx.App.Writer, cat.Templates)
	}

	return ui.PrintTable(ctx.App.Writer, review.TemplateRows(cat))
}

// serveAction serves the review API until interrupted.
func serveAction(ctx *cli.Context) error {
	closeLog, err := setupLogging(ctx.Bool("debug"))
	if err != nil {
		return err
	}
	defer closeLog()

	sigCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf(":%d", ctx.Uint("port"))

	return review.Serve(sigCtx, addr, catalog.Default(), func(a net.Addr) {
		pterm.Info.Printfln("Review server listening on %s", a)
	})
}

// statusAction prints the status of the interview in progress.
func statusAction(ctx *cli.Context) error {
	if err := pathutil.Initialize(); err != nil {
		return err
	}

	s, err := status.Read(pathutil.StatusFilePath())
	if err != nil {
		return err
	}

	printStatus(ctx.App.Writer, s, time.Now())

	return nil
}

// editConfigAction opens the config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	if err := pathutil.Initialize(); err != nil {
		return err
	}

	path := pathutil.ConfigFilePath()

	// writes the defaults if the file does not exist yet
	if _, err := config.New(config.WithViperConfig(path)); err != nil {
		return err
	}

	editor := osutil.Editor()

	cmd := exec.CommandContext(ctx.Context, editor, path)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	if err := cmd.Run(); err != nil {
		return errEditConfig.Fmt(path, editor).Wrap(err)
	}

	return nil
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if REHEARSE_NO_COLOR is set
	if _, exists := os.LookupEnv(envRehearseNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.DebugContext(ctx.Context, "exiting rehearse")

	return nil
}
