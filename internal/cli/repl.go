package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/quadgate/tollpass/internal/session"
)

const (
	guestHelp = "Commands: login, admin-login, register, help, exit"
	userHelp  = "Commands: dashboard, topup, logout, help, exit"
	adminHelp = "Commands: zones, add, edit <id>, delete <id>, whoami, logout, help, exit"
)

func (a *App) help(ctx context.Context) string {
	sess, ok := a.sessions.Current(ctx)
	switch {
	case !ok:
		return guestHelp
	case sess.Role == session.RoleAdmin:
		return adminHelp
	default:
		return userHelp
	}
}

// repl reads commands until exit or EOF. Command handlers print their own
// failures; only input errors (closed stdin) stop the loop.
func (a *App) repl(ctx context.Context) {
	fmt.Fprintln(a.out, "tollpass - geofence toll billing client")
	fmt.Fprintln(a.out, a.help(ctx))

	for {
		fmt.Fprintf(a.out, "tollpass (%s)> ", a.status(ctx))
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		sess, loggedIn := a.sessions.Current(ctx)
		isAdmin := loggedIn && sess.Role == session.RoleAdmin
		isUser := loggedIn && !isAdmin

		var cmdErr error
		switch {
		case cmd == "exit" || cmd == "quit":
			return
		case cmd == "help":
			fmt.Fprintln(a.out, a.help(ctx))
		case cmd == "login" && !loggedIn:
			cmdErr = a.loginUser(ctx)
		case cmd == "admin-login" && !loggedIn:
			cmdErr = a.loginAdmin(ctx)
		case cmd == "register" && !loggedIn:
			cmdErr = a.register(ctx)
		case cmd == "logout" && loggedIn:
			cmdErr = a.logout(ctx)
		case cmd == "dashboard" && isUser:
			cmdErr = a.showDashboard(ctx)
		case cmd == "topup" && isUser:
			cmdErr = a.addFunds(ctx)
		case cmd == "zones" && isAdmin:
			cmdErr = a.listZones(ctx)
		case cmd == "add" && isAdmin:
			cmdErr = a.addZone(ctx)
		case cmd == "edit" && isAdmin:
			cmdErr = a.editZone(ctx, arg)
		case cmd == "delete" && isAdmin:
			cmdErr = a.deleteZone(ctx, arg)
		case cmd == "whoami" && isAdmin:
			cmdErr = a.whoami(ctx)
		default:
			fmt.Fprintf(a.out, "Unknown command %q. %s\n", cmd, a.help(ctx))
		}
		if cmdErr != nil {
			return
		}
	}
}
