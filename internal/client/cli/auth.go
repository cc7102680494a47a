package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/nbutton23/zxcvbn-go"
)

// getSimpleText and getPassword are swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// minStrengthScore is the zxcvbn score (0..4) below which register warns.
const minStrengthScore = 3

var (
	errPasswordMismatch = errors.New("passwords do not match")
	errNoSession        = errors.New("not logged in")
)

func (a *App) askEmail(ctx context.Context) (string, error) {
	prompt := "Enter email"
	last := ""
	if a.emails != nil {
		last = a.emails.LastEmail(ctx)
	}
	if last != "" {
		prompt = fmt.Sprintf("Enter email [%s]", last)
	}

	email, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if email == "" {
		email = last
	}
	return email, nil
}

// Register asks for an email and a master password (twice) and creates the
// account. Guessable passwords are accepted with a warning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter master password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Repeat master password", a.out)
	if err != nil {
		return err
	}
	if password != confirm {
		return errPasswordMismatch
	}

	if s := zxcvbn.PasswordStrength(password, []string{email}); s.Score < minStrengthScore {
		fmt.Fprintf(a.out, "Warning: this password is easy to guess (strength %d/4)\n", s.Score)
	}

	if _, err := a.authService.Register(ctx, email, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}

// Login unlocks the vault. A session that is already open is locked first
// and, once the new login succeeds, revoked.
func (a *App) Login(ctx context.Context) error {
	email, err := a.askEmail(ctx)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter master password", a.out)
	if err != nil {
		return err
	}

	old := a.currentSession()
	if old != nil {
		a.authService.Lock(old)
	}

	sess, err := a.authService.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrStoreUnavailable) {
			a.setMode(ModeOffline)
		}
		return err
	}
	a.setSession(sess)

	if old != nil {
		if err := a.authService.Logout(ctx, old); err != nil {
			a.logger.Warn(ctx, "previous session not revoked", "error", err)
		}
	}

	if a.emails != nil {
		if err := a.emails.RememberEmail(ctx, sess.Email()); err != nil {
			a.logger.Warn(ctx, "could not remember email", "error", err)
		}
	}

	fmt.Fprintln(a.out, "Vault unlocked")
	return nil
}

// Lock discards the key; the next command needs the master password again.
// The locked session is kept so that logout can still revoke it.
func (a *App) Lock(ctx context.Context) error {
	if sess := a.currentSession(); sess != nil {
		a.authService.Lock(sess)
	}
	fmt.Fprintln(a.out, "Vault locked")
	return nil
}

// Logout ends the session on the backend, locked or not, and forgets the
// remembered email.
func (a *App) Logout(ctx context.Context) error {
	sess := a.currentSession()
	if sess == nil {
		return errNoSession
	}
	a.setSession(nil)

	err := a.authService.Logout(ctx, sess)
	if a.emails != nil {
		if ferr := a.emails.ForgetEmail(ctx); ferr != nil {
			a.logger.Warn(ctx, "could not forget email", "error", ferr)
		}
	}
	if err != nil {
		return fmt.Errorf("logged out locally, server session not revoked: %w", err)
	}

	fmt.Fprintln(a.out, "Logged out")
	return nil
}
