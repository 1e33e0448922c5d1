// Package cli is the interactive front end of the Lockbox client. It wires
// the session and vault stores, the HTTP gateways, and the router guard
// into a small REPL.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/lockboxapp/lockbox/internal/client/config"
	"github.com/lockboxapp/lockbox/internal/client/gateway"
	"github.com/lockboxapp/lockbox/internal/client/guard"
	"github.com/lockboxapp/lockbox/internal/client/session"
	"github.com/lockboxapp/lockbox/internal/client/vault"
)

type App struct {
	config   *config.Config
	api      *gateway.Client
	session  *session.Store
	vault    *vault.Store
	nav      *guard.Navigator
	unlocker Unlocker
	reader   *bufio.Reader
}

// NewApp builds the client application: one gateway client shared by both
// stores, a navigator bound to the session store, and stdin as the input
// source.
func NewApp(c *config.Config) (*App, error) {
	api := gateway.New(c.ServerBaseURL, c.RequestTimeout)

	sessionStore := session.New(api)
	vaultStore := vault.New(api)

	routes := []guard.Route{
		{Name: guard.LoginRoute, Access: guard.Public},
		{Name: guard.LandingRoute, Access: guard.Protected},
		{Name: "/vault", Access: guard.Protected},
	}
	nav := guard.NewNavigator(routes, guard.Route{Name: guard.LoginRoute, Access: guard.Public}, func(from, to string) {
		fmt.Printf("-> %s\n", to)
	})
	nav.Bind(sessionStore)

	return &App{
		config:   c,
		api:      api,
		session:  sessionStore,
		vault:    vaultStore,
		nav:      nav,
		unlocker: AlwaysUnlock{},
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().Authenticated()
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) status() string {
	snap := a.session.Snapshot()
	if snap.User == nil {
		return "anonymous"
	}
	return snap.User.Email
}
