package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/filex"
	"github.com/dmitrijs2005/gophvault/internal/vault"
)

// afterCall drops the session when the backend rejected it.
func (a *App) afterCall(err error) error {
	if sess := a.currentSession(); sess != nil && sess.Closed() {
		a.setSession(nil)
		if err != nil && !errors.Is(err, common.ErrSessionClosed) {
			return fmt.Errorf("session expired, login again: %w", err)
		}
	}
	if errors.Is(err, common.ErrStoreUnavailable) {
		a.setMode(ModeOffline)
	}
	return err
}

func (a *App) readCredential(defaults vault.Credential) (vault.Credential, error) {
	ask := func(prompt, def string) (string, error) {
		if def != "" {
			prompt = fmt.Sprintf("%s [%s]", prompt, def)
		}
		v, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return "", err
		}
		if v == "" {
			return def, nil
		}
		return v, nil
	}

	var (
		c   vault.Credential
		err error
	)
	if c.Website, err = ask("Website", defaults.Website); err != nil {
		return c, err
	}
	if _, err := vault.Origin(c.Website); err != nil {
		return c, fmt.Errorf("website %q: %w", c.Website, err)
	}
	if c.Username, err = ask("Username", defaults.Username); err != nil {
		return c, err
	}
	pwPrompt := "Password"
	if defaults.Password != "" {
		pwPrompt = "Password (empty keeps current)"
	}
	if c.Password, err = getPassword(pwPrompt, a.out); err != nil {
		return c, err
	}
	if c.Password == "" {
		c.Password = defaults.Password
	}
	return c, nil
}

func (a *App) Add(ctx context.Context) error {
	c, err := a.readCredential(vault.Credential{})
	if err != nil {
		return err
	}

	e, err := a.vaultService.Add(ctx, a.currentSession(), c)
	if err != nil {
		return a.afterCall(err)
	}
	fmt.Fprintf(a.out, "Added %s\n", e.ID)
	return nil
}

func printResults(w io.Writer, results []vault.Result, showPasswords bool) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if showPasswords {
		fmt.Fprintln(tw, "ID\tWEBSITE\tUSERNAME\tPASSWORD")
	} else {
		fmt.Fprintln(tw, "ID\tWEBSITE\tUSERNAME")
	}
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(tw, "%s\t<unreadable: %v>\t\n", r.Entry.ID, r.Err)
			continue
		}
		if showPasswords {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Entry.ID, r.Credential.Website, r.Credential.Username, r.Credential.Password)
		} else {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Entry.ID, r.Credential.Website, r.Credential.Username)
		}
	}
	_ = tw.Flush()
}

func (a *App) List(ctx context.Context) error {
	results, err := a.vaultService.List(ctx, a.currentSession())
	if err != nil {
		return a.afterCall(err)
	}
	if len(results) == 0 {
		fmt.Fprintln(a.out, "Vault is empty")
		return nil
	}
	printResults(a.out, results, false)
	return nil
}

func (a *App) entryID(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}

// Update re-enters the credential of one entry; empty answers keep the
// current values.
func (a *App) Update(ctx context.Context, args []string) error {
	id, err := a.entryID(args, "Enter entry id to update")
	if err != nil {
		return err
	}

	results, err := a.vaultService.List(ctx, a.currentSession())
	if err != nil {
		return a.afterCall(err)
	}

	var current vault.Credential
	found := false
	for _, r := range results {
		if r.Entry.ID == id && r.Err == nil {
			current, found = r.Credential, true
			break
		}
	}
	if !found {
		return fmt.Errorf("entry %s: %w", id, common.ErrorNotFound)
	}

	c, err := a.readCredential(current)
	if err != nil {
		return err
	}

	if _, err := a.vaultService.Update(ctx, a.currentSession(), id, c); err != nil {
		return a.afterCall(err)
	}
	fmt.Fprintf(a.out, "Updated %s\n", id)
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.entryID(args, "Enter entry id to delete")
	if err != nil {
		return err
	}

	if err := a.vaultService.Delete(ctx, a.currentSession(), id); err != nil {
		return a.afterCall(err)
	}
	fmt.Fprintf(a.out, "Deleted %s\n", id)
	return nil
}

// Match prints the credentials, passwords included, stored for the origin
// of args[0].
func (a *App) Match(ctx context.Context, args []string) error {
	results, err := a.vaultService.Match(ctx, a.currentSession(), args[0])
	if err != nil {
		return a.afterCall(err)
	}
	if len(results) == 0 {
		fmt.Fprintln(a.out, "No matching entries")
		return nil
	}
	printResults(a.out, results, true)
	return nil
}

// Export writes the snapshot to args[0], or to the output when no file is
// given.
func (a *App) Export(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.afterCall(a.vaultService.Export(ctx, a.currentSession(), a.out))
	}

	f, err := filex.CreatePrivate(args[0])
	if err != nil {
		return err
	}
	if err := a.vaultService.Export(ctx, a.currentSession(), f); err != nil {
		_ = f.Close()
		return a.afterCall(err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Exported to %s\n", args[0])
	return nil
}
