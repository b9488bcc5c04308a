package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/iptdemo/internal/client/router"
	"github.com/dmitrijs2005/iptdemo/internal/client/services"
	"github.com/dmitrijs2005/iptdemo/internal/common"
)

// Messages shown to the user.
const (
	msgPasswordTooShort = "Password must be at least 6 characters."
	msgEmailExists      = "Email already exists."
	msgEmailRequired    = "Email is required."
	msgRegistered       = "Registered! Please verify email."
	msgVerified         = "Email Verified! You can now login."
	msgInvalidLogin     = "Invalid credentials or email not verified."
	msgLoggedIn         = "Login successful!"
	msgSelfDelete       = "You cannot delete yourself."
	msgAdminOnly        = "Only administrators can do that."
	msgRequestPrompt    = "Enter Request Type (Equipment/Leave/Resources)"
	msgReset            = "Demo data reset."
)

// notifyRejection tells the user why a service refused. It reports whether
// err was such a refusal; other errors are logged and left to the caller.
func (a *App) notifyRejection(ctx context.Context, op string, err error) bool {
	if !services.IsPolicyRejection(err) {
		a.log.Error(ctx, op+" failed", "error", err)
		return false
	}

	switch {
	case errors.Is(err, common.ErrPasswordTooShort):
		a.ui.Notify(msgPasswordTooShort)
	case errors.Is(err, common.ErrEmailExists):
		a.ui.Notify(msgEmailExists)
	case errors.Is(err, common.ErrEmailRequired):
		a.ui.Notify(msgEmailRequired)
	case errors.Is(err, common.ErrInvalidCredentials):
		a.ui.Notify(msgInvalidLogin)
	case errors.Is(err, common.ErrSelfDeletion):
		a.ui.Notify(msgSelfDelete)
	case errors.Is(err, common.ErrForbidden), errors.Is(err, common.ErrNotAuthenticated):
		a.ui.Notify(msgAdminOnly)
	}
	return true
}

func (a *App) navigate(ctx context.Context, r router.Route) error {
	_, err := a.router.Navigate(ctx, r)
	if err != nil {
		a.log.Error(ctx, "render failed", "route", r.String(), "error", err)
	}
	return err
}

// Help lists the commands and the pages the current session may open.
func (a *App) Help(_ context.Context) error {
	sess := a.auth.Current()

	cmds := []string{"help", "go <route>"}
	if sess == nil {
		cmds = append(cmds, "register", "verify", "login")
	} else {
		cmds = append(cmds, "request", "logout")
		if sess.IsAdmin() {
			cmds = append(cmds, "delete <email>", "reset")
		}
	}
	cmds = append(cmds, "exit")

	var pages []string
	for _, r := range router.Available(sess) {
		pages = append(pages, r.String())
	}

	fmt.Fprintln(a.out, "Available commands:", strings.Join(cmds, ", "))
	fmt.Fprintln(a.out, "Pages:", strings.Join(pages, ", "))
	return nil
}

// Go shows the named page, or wherever the gate sends the user instead.
func (a *App) Go(ctx context.Context, route string) error {
	return a.navigate(ctx, router.ParseRoute(route))
}

// Register asks for the registration fields. On success the account waits
// for verification and the verify-email page is shown.
func (a *App) Register(ctx context.Context) error {
	first, ok := a.ui.PromptInput("First name")
	if !ok {
		return nil
	}
	last, ok := a.ui.PromptInput("Last name")
	if !ok {
		return nil
	}
	email, ok := a.ui.PromptInput("Email")
	if !ok {
		return nil
	}
	password, ok := a.ui.PromptSecret("Password")
	if !ok {
		return nil
	}

	_, err := a.auth.Register(ctx, services.RegisterInput{
		FirstName: first,
		LastName:  last,
		Email:     email,
		Password:  password,
	})
	if err != nil {
		if a.notifyRejection(ctx, "register", err) {
			return nil
		}
		return err
	}

	a.ui.Notify(msgRegistered)
	return a.navigate(ctx, router.RouteVerifyEmail)
}

// Verify simulates following the emailed link and always ends on the
// login page, whether or not anything was pending.
func (a *App) Verify(ctx context.Context) error {
	_, ok, err := a.auth.VerifyPending(ctx)
	if err != nil {
		a.log.Error(ctx, "verify failed", "error", err)
		return err
	}
	if ok {
		a.ui.Notify(msgVerified)
	}
	return a.navigate(ctx, router.RouteLogin)
}

// Login asks for credentials; on success the profile page is shown, on
// rejection the user stays where they are.
func (a *App) Login(ctx context.Context) error {
	email, ok := a.ui.PromptInput("Email")
	if !ok {
		return nil
	}
	password, ok := a.ui.PromptSecret("Password")
	if !ok {
		return nil
	}

	if _, err := a.auth.Login(ctx, email, password); err != nil {
		if a.notifyRejection(ctx, "login", err) {
			return nil
		}
		return err
	}

	a.ui.Notify(msgLoggedIn)
	return a.navigate(ctx, router.RouteProfile)
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	return a.navigate(ctx, router.RouteHome)
}

// Delete removes an account and redraws the accounts page.
func (a *App) Delete(ctx context.Context, email string) error {
	if err := a.accounts.Delete(ctx, email); err != nil {
		if a.notifyRejection(ctx, "delete", err) {
			return nil
		}
		return err
	}
	return a.navigate(ctx, router.RouteAccounts)
}

// Request prompts for a request type and files it. Without a session the
// gate sends the user to login instead of prompting.
func (a *App) Request(ctx context.Context) error {
	if a.auth.Current() == nil {
		return a.navigate(ctx, router.RouteRequests)
	}

	typ, ok := a.ui.PromptInput(msgRequestPrompt)
	if !ok || strings.TrimSpace(typ) == "" {
		return nil
	}

	if _, err := a.requests.Add(ctx, typ); err != nil {
		if a.notifyRejection(ctx, "request", err) {
			return nil
		}
		return err
	}
	return a.navigate(ctx, router.RouteRequests)
}

// Reset reseeds the demo data. Admin only.
func (a *App) Reset(ctx context.Context) error {
	if !a.auth.Current().IsAdmin() {
		a.ui.Notify(msgAdminOnly)
		return nil
	}

	if err := a.store.Reset(ctx); err != nil {
		a.log.Error(ctx, "reset failed", "error", err)
		return err
	}
	if err := a.auth.RememberCurrent(ctx); err != nil {
		a.log.Error(ctx, "could not remember session after reset", "error", err)
		return err
	}

	a.ui.Notify(msgReset)
	return a.navigate(ctx, router.RouteHome)
}
