package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/idilsaglam/todos/internal/api"
	"github.com/idilsaglam/todos/internal/app"
	"github.com/idilsaglam/todos/internal/auth"
	"github.com/idilsaglam/todos/internal/config"
	"github.com/idilsaglam/todos/internal/logger"
	"github.com/idilsaglam/todos/internal/tui"
	"github.com/idilsaglam/todos/internal/ui"
	"github.com/idilsaglam/todos/internal/view"
)

// Options tune output behavior from root flags.
type Options struct {
	Group  bool // print grouped by pending/done
	Config *config.Config
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ls":
		return doList(ctx, opt)

	case "print":
		return doPrint(ctx, opt)

	case "users":
		return doUsers(ctx, opt)

	case "add":
		return doAdd(ctx, opt, a)

	case "done", "undone":
		if len(a) != 1 {
			ui.Fail("usage: todos " + cmd + " <id>")
			return 2
		}
		id, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail(cmd + ": not a number: " + a[0])
			return 2
		}
		return doSetCompleted(ctx, opt, id, cmd == "done")

	case "rm":
		if len(a) != 1 {
			ui.Fail("usage: todos rm <id>")
			return 2
		}
		id, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("rm: not a number: " + a[0])
			return 2
		}
		return doRemove(ctx, opt, id)

	case "auth":
		if len(a) == 0 {
			ui.Fail("usage: todos auth <login|logout|status>")
			return 2
		}
		switch a[0] {
		case "login":
			return doAuthLogin(os.Stdin)
		case "logout":
			return doAuthLogout(opt)
		case "status":
			return doAuthStatus(opt)
		}
		ui.Fail("usage: todos auth <login|logout|status>")
		return 2
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(ui.Err)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Fprintf(ui.Out, `todos - a terminal client for a remote to-do service

Usage:
  todos [-group] <subcommand> [args]

Subcommands:
  ls                        Browse todos (interactive TUI)
  print                     Print todos (use -group to split pending/done)
  users                     List users
  add -user <id> <title...> Add a todo for a user
  done <id>                 Mark a todo as completed
  undone <id>               Mark a todo as not completed
  rm <id>                   Delete a todo
  auth <login|logout|status>  Bearer token for the service

Environment:
  TODOS_BASE_URL, TODOS_LIMIT, TODOS_TIMEOUT, TODOS_TOKEN, TODOS_THEME,
  TODOS_LOG_LEVEL, TODOS_LOG_FILE, TODOS_ROLLBACK_TOGGLE (also read from .env)

Examples:
  todos ls
  todos add -user 2 "Buy milk"
  todos done 5
  todos rm 3
`)
}

// setup points the logger at the configured file, or at fallback, and builds
// the API client.
func setup(opt Options, fallback io.Writer) (api.Service, func(), error) {
	cfg := opt.Config
	w, closeLog, err := logger.Open(cfg.LogFile, fallback)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger.Init(w, cfg.LogLevel)

	token, err := auth.Token(cfg.Token)
	if err != nil {
		_ = closeLog()
		return nil, nil, fmt.Errorf("token: %w", err)
	}
	svc := api.New(cfg.BaseURL,
		api.WithTimeout(cfg.Timeout),
		api.WithLimit(cfg.Limit),
		api.WithToken(token),
		api.WithLogger(log.Logger),
	)
	return svc, func() { _ = closeLog() }, nil
}

// failures is a Notifier for one-shot commands: it prints every error and
// remembers that one happened.
type failures struct{ n int }

func (f *failures) Notify(err error) {
	f.n++
	ui.Fail(err.Error())
}

func newController(ctx context.Context, opt Options, svc api.Service, n app.Notifier) *app.Controller {
	return app.New(svc, view.New(ctx), n, log.Logger, app.Options{RollbackToggle: opt.Config.RollbackToggle})
}

// ---------------------------------------------------
// Subcommands
// ---------------------------------------------------

func doList(ctx context.Context, opt Options) int {
	svc, done, err := setup(opt, io.Discard)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	defer done()

	alerts := tui.NewAlerts()
	ctrl := newController(ctx, opt, svc, alerts)
	if err := tui.Run(ctx, ctrl, alerts); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func doPrint(ctx context.Context, opt Options) int {
	svc, done, err := setup(opt, ui.Err)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	defer done()

	f := &failures{}
	ctrl := newController(ctx, opt, svc, f)
	ctrl.Do(ctrl.Load(ctx))
	if f.n > 0 {
		return 1
	}

	v := ctrl.View()
	dn, pn := v.Stats()
	lines := []string{
		ui.Current().Title.Render("Todos") + "   " + ui.Counts(dn, pn),
		ui.ProgressBar(dn, dn+pn, 28),
		"",
	}
	if v.Len() == 0 {
		lines = append(lines, ui.Current().Muted.Render("nothing to do"))
	} else {
		lines = append(lines, v.Lines(opt.Group)...)
	}
	ui.Panel(lines)
	return 0
}

func doUsers(ctx context.Context, opt Options) int {
	svc, done, err := setup(opt, ui.Err)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	defer done()

	f := &failures{}
	ctrl := newController(ctx, opt, svc, f)
	ctrl.Do(ctrl.Load(ctx))
	if len(ctrl.Users()) == 0 && f.n > 0 {
		return 1
	}
	for _, o := range ctrl.View().Options() {
		fmt.Fprintf(ui.Out, "%4d  %s\n", o.Value, o.Label)
	}
	return 0
}

func doAdd(ctx context.Context, opt Options, args []string) int {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(ui.Err)
	user := fs.String("user", "", "id of the user the todo belongs to")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	title := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if *user == "" || title == "" {
		ui.Fail("usage: todos add -user <id> <title...>")
		return 2
	}

	svc, done, err := setup(opt, ui.Err)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	defer done()

	f := &failures{}
	ctrl := newController(ctx, opt, svc, f)
	// users are needed to label the created todo
	ctrl.Do(ctrl.Load(ctx))
	before := f.n

	ctrl.Do(ctrl.Submit(ctx, *user, title))
	if f.n > before {
		return 1
	}
	ui.OK("added: " + ctrl.View().Handles()[0].Label())
	return 0
}

func doSetCompleted(ctx context.Context, opt Options, id int, completed bool) int {
	svc, done, err := setup(opt, ui.Err)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	defer done()

	if err := svc.SetCompleted(ctx, id, completed); err != nil {
		ui.Fail(err.Error())
		return 1
	}
	if completed {
		ui.OK(fmt.Sprintf("todo %d done", id))
	} else {
		ui.OK(fmt.Sprintf("todo %d reopened", id))
	}
	return 0
}

func doRemove(ctx context.Context, opt Options, id int) int {
	svc, done, err := setup(opt, ui.Err)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	defer done()

	if err := svc.DeleteTodo(ctx, id); err != nil {
		ui.Fail(err.Error())
		return 1
	}
	ui.OK(fmt.Sprintf("todo %d removed", id))
	return 0
}

// ---------------------------------------------------
// Auth subcommands
// ---------------------------------------------------

func doAuthLogin(in io.Reader) int {
	fmt.Fprint(ui.Out, "Paste your token: ")
	var token string
	if _, err := fmt.Fscanln(in, &token); err != nil {
		ui.Fail("read token: " + err.Error())
		return 1
	}
	if err := auth.SetToken(token); err != nil {
		ui.Fail("save token: " + err.Error())
		return 1
	}
	ui.OK("logged in")
	return 0
}

func doAuthLogout(opt Options) int {
	ti, _ := auth.GetToken(opt.Config.Token)
	if ti != nil && ti.Source == auth.SourceEnv {
		ui.OK("token is provided by TODOS_TOKEN (nothing to delete)")
		return 0
	}
	if err := auth.DeleteToken(); err != nil {
		ui.Fail("logout: " + err.Error())
		return 1
	}
	ui.OK("logged out")
	return 0
}

func doAuthStatus(opt Options) int {
	ti, err := auth.GetToken(opt.Config.Token)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	if ti == nil {
		fmt.Fprintln(ui.Out, ui.Current().Muted.Render("not logged in"))
		fmt.Fprintln(ui.Out, "Run: todos auth login")
		return 0
	}
	fmt.Fprintf(ui.Out, "source: %s\n", ti.Source)
	if !ti.CreatedAt.IsZero() {
		fmt.Fprintf(ui.Out, "saved: %s\n", ti.CreatedAt.UTC().Format(time.RFC3339))
	}
	fmt.Fprintln(ui.Out, "env override: TODOS_TOKEN")
	return 0
}
