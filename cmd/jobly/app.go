package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/RachaudKeyes/jobly-frontend/internal/api"
	"github.com/RachaudKeyes/jobly-frontend/internal/config"
	"github.com/RachaudKeyes/jobly-frontend/internal/routes"
	"github.com/RachaudKeyes/jobly-frontend/internal/session"
)

// app wires the client, session, and route guard from the resolved
// configuration. Every command builds one at the start of its RunE.
type app struct {
	cfg     config.Config
	client  *api.Client
	session *session.Session
	guard   *routes.Guard
	trace   io.Writer
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return nil, err
	}

	trace := io.Discard
	if verbose || cfg.Verbose {
		trace = os.Stderr
	}

	store, err := session.NewFileStore(cfg.TokenDir)
	if err != nil {
		return nil, err
	}

	// The session is the client's token source and the client is the
	// session's backend, so wiring happens in two steps.
	sess := session.New(store)
	client := api.NewClient(cfg.BaseURL, sess, api.WithTrace(trace))
	sess.SetBackend(client)

	if err := sess.Restore(ctx); err != nil {
		// A stale or unreadable persisted token degrades to logged out.
		fmt.Fprintf(trace, "session restore: %v\n", err)
	}

	return &app{
		cfg:     cfg,
		client:  client,
		session: sess,
		guard:   routes.NewGuard(sess),
		trace:   trace,
	}, nil
}

// resolveRoute consults the guard for a protected view. A redirect to the
// login entry point becomes an error telling the user to log in; the
// protected operation never runs.
func (a *app) resolveRoute(path string) error {
	res := a.guard.Resolve(path)
	if res.Redirected && res.Route == routes.Login {
		return fmt.Errorf("you must be logged in; run 'jobly login' first")
	}
	return nil
}
