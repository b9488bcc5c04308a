// Package cli provides the interactive IPT demo command-line client.
//
// It wires configuration, the selected storage backend, the store, the
// application services and the router into an interactive REPL. Screens
// ("pages") are routes: typing a route name, or "go <route>", asks the
// router to show it, and the gate may redirect to login or home instead.
//
// Commands:
//   - help, go <route>, <route>  navigation
//   - register, verify           create an account and confirm its email
//   - login, logout              session
//   - delete <email>             remove an account (admin)
//   - request                    file a request for yourself
//   - reset                      reseed the demo data (admin)
//   - exit | quit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or input ends.
package cli
