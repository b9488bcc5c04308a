package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/iptdemo/internal/client/router"
	"github.com/dmitrijs2005/iptdemo/internal/common"
	"github.com/gosuri/uitable"
)

func (a *App) registerPages() {
	a.router.Handle(router.RouteHome, a.renderHome)
	a.router.Handle(router.RouteLogin, a.renderLogin)
	a.router.Handle(router.RouteRegister, a.renderRegister)
	a.router.Handle(router.RouteVerifyEmail, a.renderVerifyEmail)
	a.router.Handle(router.RouteProfile, a.renderProfile)
	a.router.Handle(router.RouteAccounts, a.renderAccounts)
	a.router.Handle(router.RouteDepartments, a.renderDepartments)
	a.router.Handle(router.RouteEmployees, a.renderEmployees)
	a.router.Handle(router.RouteRequests, a.renderRequests)
}

func (a *App) heading(title string) {
	fmt.Fprintf(a.out, "\n== %s ==\n", title)
}

func (a *App) renderHome(_ context.Context, v router.View) error {
	a.heading("Home")
	fmt.Fprintln(a.out, "Welcome to the IPT demo.")
	if v.Session == nil {
		fmt.Fprintln(a.out, "Type 'login' to sign in or 'register' to create an account.")
	}
	return nil
}

func (a *App) renderLogin(_ context.Context, _ router.View) error {
	a.heading("Login")
	fmt.Fprintln(a.out, "Type 'login' to sign in.")
	return nil
}

func (a *App) renderRegister(_ context.Context, _ router.View) error {
	a.heading("Register")
	fmt.Fprintln(a.out, "Type 'register' to create an account.")
	return nil
}

func (a *App) renderVerifyEmail(ctx context.Context, _ router.View) error {
	a.heading("Verify Email")
	email, ok, err := a.store.Recall(ctx, common.UnverifiedEmailKey)
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintf(a.out, "A verification link was sent to %s.\n", email)
	}
	fmt.Fprintln(a.out, "Type 'verify' to simulate clicking the link.")
	return nil
}

func (a *App) renderProfile(_ context.Context, v router.View) error {
	if v.Session == nil {
		return nil
	}
	acc, ok := v.Store.FindAccountByEmail(v.Session.Email)
	if !ok {
		return nil
	}

	a.heading("Profile")
	table := uitable.New()
	table.AddRow("Name:", acc.FullName())
	table.AddRow("Email:", acc.Email)
	table.AddRow("Role:", string(acc.Role))
	fmt.Fprintln(a.out, table)
	return nil
}

func (a *App) renderAccounts(_ context.Context, v router.View) error {
	a.heading("Accounts")
	table := uitable.New()
	table.MaxColWidth = 50
	table.AddRow("Name", "Email", "Role", "Verified")
	for _, acc := range v.Store.Accounts() {
		verified := "—"
		if acc.Verified {
			verified = "✔"
		}
		table.AddRow(acc.FullName(), acc.Email, string(acc.Role), verified)
	}
	fmt.Fprintln(a.out, table)
	fmt.Fprintln(a.out, "Type 'delete <email>' to remove an account.")
	return nil
}

func (a *App) renderDepartments(_ context.Context, v router.View) error {
	a.heading("Departments")
	for _, d := range v.Store.Departments() {
		fmt.Fprintf(a.out, "  * %s - %s\n", d.Name, d.Description)
	}
	return nil
}

func (a *App) renderEmployees(_ context.Context, v router.View) error {
	a.heading("Employees")
	employees := v.Store.Employees()
	if len(employees) == 0 {
		fmt.Fprintln(a.out, "No employees yet.")
		return nil
	}
	for _, e := range employees {
		fmt.Fprintf(a.out, "  %s\n", strings.TrimSpace(string(e)))
	}
	return nil
}

func (a *App) renderRequests(_ context.Context, v router.View) error {
	if v.Session == nil {
		return nil
	}

	a.heading("My Requests")
	table := uitable.New()
	table.MaxColWidth = 50
	table.AddRow("Type", "Status", "Date")
	for _, r := range v.Store.RequestsFor(v.Session.Email) {
		table.AddRow(r.Type, r.Status, r.Date)
	}
	fmt.Fprintln(a.out, table)
	fmt.Fprintln(a.out, "Type 'request' to file a new request.")
	return nil
}
