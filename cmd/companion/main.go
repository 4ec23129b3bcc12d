// Command companion is a terminal front end for the companion client core: it restores the
// persisted session, runs one command against the backend, and prints the result.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/tijaniyah/companion/internal/bootstrap"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	App    *bootstrap.App
	Out    io.Writer
}

func main() {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}
	logger := bootstrap.InitLogger(cfg.Log)

	if len(os.Args) < 2 {
		if err := printUsage(os.Stdout); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(os.Stderr); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	app, err := bootstrap.NewApp(ctx, bootstrap.AppOptions{Config: cfg, Logger: logger})
	if err != nil {
		stop()
		logger.ErrorContext(ctx, "start", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal startup failure to shell scripts
	}

	cmdCtx := &commandContext{Ctx: ctx, Logger: logger, App: app, Out: os.Stdout}
	runErr := cmd.run(cmdCtx, os.Args[2:])
	if closeErr := app.Close(); closeErr != nil {
		logger.WarnContext(ctx, "close storage", "error", closeErr)
	}
	stop()
	if runErr != nil {
		if err := writef(os.Stderr, "%s: %s\n", cmdName, displayError(runErr)); err != nil {
			logger.Error("print command error failed", "error", err)
		}
		logger.DebugContext(ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func commands() map[string]command {
	list := []command{
		{"login", "Sign in with email and password (falls back to offline accounts)", runLogin},
		{"register", "Create an account and sign in", runRegister},
		{"logout", "Sign out and forget the stored token", runLogout},
		{"guest", "Continue without an account", runGuest},
		{"whoami", "Show the current session", runWhoami},
		{"reset-password", "Request a password reset email", runResetPassword},
		{"update-profile", "Change profile fields of the signed-in user", runUpdateProfile},
		{"feed", "List community posts", runFeed},
		{"post", "Publish a community post", runPost},
		{"comment", "Comment on a post", runComment},
		{"like", "Like a post", runLike},
		{"unlike", "Remove a like from a post", runUnlike},
		{"journal", "List journal entries", runJournal},
		{"journal-add", "Write a journal entry", runJournalAdd},
		{"journal-edit", "Edit a journal entry", runJournalEdit},
		{"journal-delete", "Delete a journal entry", runJournalDelete},
		{"chats", "List conversations", runChats},
		{"chat-new", "Start a conversation", runChatNew},
		{"messages", "List messages in a conversation", runMessages},
		{"send", "Send a message", runSend},
		{"overview", "Show the home screen summary", runOverview},
	}
	out := make(map[string]command, len(list))
	for _, c := range list {
		out[c.name] = c
	}
	return out
}

func printUsage(w io.Writer) error {
	if err := writef(w, "Usage: companion <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(w, "Available commands:\n"); err != nil {
		return err
	}
	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := writef(w, "  %-16s %s\n", name, cmds[name].description); err != nil {
			return err
		}
	}
	return nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}
