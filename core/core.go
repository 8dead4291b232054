// Package core has core logic for the session-resilient contact operations.
package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hellperdev/contactbook/internal/contract"
	"github.com/hellperdev/contactbook/internal/outwriter"
	"github.com/hellperdev/contactbook/internal/parquet"
	"github.com/hellperdev/contactbook/schema"
)

// App bundles the wired components behind the CLI commands. One App serves
// one process; the cache and coordinator state live for its lifetime.
type App struct {
	cfg      *contract.Config
	store    contract.CredentialStore
	gateway  contract.Gateway
	prompter contract.PasswordPrompter
	cache    *ContactCache
	reauth   *ReauthCoordinator
	orch     *Orchestrator
}

// NewApp wires the cache, coordinator, and orchestrator around the given
// gateway and store.
func NewApp(cfg *contract.Config, store contract.CredentialStore, gateway contract.Gateway, prompter contract.PasswordPrompter) *App {
	cache := NewContactCache()
	reauth := NewReauthCoordinator(gateway, store)
	orch := NewOrchestrator(gateway, cache, reauth)
	return &App{
		cfg:      cfg,
		store:    store,
		gateway:  gateway,
		prompter: prompter,
		cache:    cache,
		reauth:   reauth,
		orch:     orch,
	}
}

// Orchestrator exposes the wired orchestrator for embedding surfaces like
// the MCP server.
func (a *App) Orchestrator() *Orchestrator {
	return a.orch
}

// Reauth exposes the re-auth coordinator for surfaces that cannot prompt
// and must dismiss an open challenge themselves.
func (a *App) Reauth() *ReauthCoordinator {
	return a.reauth
}

// ExecuteList fetches the contact list and renders it in the configured
// output format. It serves as the entry point for the 'list' and 'export'
// commands.
func ExecuteList(ctx context.Context, app *App) error {
	result, err := RunWithRecovery(ctx, app.reauth, app.prompter, app.orch.ListAll)
	if err != nil {
		return err
	}
	if !result.OK() {
		return errors.New(result.Message)
	}

	contacts := app.cache.Filter(app.cfg.Filter)
	if app.cfg.Output == schema.ParquetOut {
		if err := parquet.WriteContactsParquet(parquet.ToContactRecords(contacts), app.cfg.OutputFile); err != nil {
			return err
		}
		contract.PrintSuccess("Wrote %d contacts to %s", len(contacts), app.cfg.OutputFile)
		return nil
	}
	return outwriter.WriteContacts(contacts, app.cfg)
}

// ExecuteAdd creates a contact and prints the server-confirmed entry.
func ExecuteAdd(ctx context.Context, app *App, name, phoneNumber string) error {
	result, err := RunWithRecovery(ctx, app.reauth, app.prompter, func(ctx context.Context) Result {
		return app.orch.Add(ctx, name, phoneNumber)
	})
	if err != nil {
		return err
	}
	if !result.OK() {
		return errors.New(result.Message)
	}

	if result.Contact != nil {
		contract.PrintSuccess("Added %s (%s) with ID %s", result.Contact.Name, result.Contact.PhoneNumber, result.Contact.ID)
	}
	return nil
}

// ExecuteDelete removes a contact by ID. Confirmation happens at the
// command layer before this is called.
func ExecuteDelete(ctx context.Context, app *App, id string) error {
	result, err := RunWithRecovery(ctx, app.reauth, app.prompter, func(ctx context.Context) Result {
		return app.orch.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	if !result.OK() {
		return errors.New(result.Message)
	}

	contract.PrintSuccess("Deleted contact %s", id)
	return nil
}

// ExecuteLogin prompts for the account password and stores the exchanged
// credential.
func ExecuteLogin(ctx context.Context, app *App, login string) error {
	password, abort, err := app.prompter.ReadPassword(fmt.Sprintf("Password for %s: ", login))
	if err != nil {
		return err
	}
	if abort {
		return errors.New("login aborted")
	}
	if password == "" {
		return errors.New(PasswordRequiredMessage)
	}

	cred, out := app.gateway.ExchangeCredentials(ctx, login, password)
	if !out.IsSuccess() {
		if out.Message != "" {
			return errors.New(out.Message)
		}
		return errors.New(BadPasswordMessage)
	}

	if err := app.store.Set(cred); err != nil {
		return err
	}
	app.reauth.Reset()
	contract.PrintSuccess("Logged in as %s", cred.Login)
	return nil
}

// ExecuteRegister creates a new account. The password is prompted twice and
// must match; a successful registration logs the account straight in.
func ExecuteRegister(ctx context.Context, app *App, login string) error {
	password, abort, err := app.prompter.ReadPassword(fmt.Sprintf("Password for %s: ", login))
	if err != nil {
		return err
	}
	if abort {
		return errors.New("registration aborted")
	}
	if password == "" {
		return errors.New(PasswordRequiredMessage)
	}

	confirm, abort, err := app.prompter.ReadPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if abort {
		return errors.New("registration aborted")
	}
	if confirm != password {
		return errors.New("passwords do not match")
	}

	cred, out := app.gateway.RegisterAccount(ctx, login, password)
	if !out.IsSuccess() {
		if out.Message != "" {
			return errors.New(out.Message)
		}
		return errors.New("registration failed")
	}

	if err := app.store.Set(cred); err != nil {
		return err
	}
	contract.PrintSuccess("Registered and logged in as %s", cred.Login)
	return nil
}

// ExecuteLogout clears the stored credential.
func ExecuteLogout(_ context.Context, app *App) error {
	if err := app.store.Clear(); err != nil {
		return err
	}
	app.reauth.Reset()
	contract.PrintSuccess("Logged out")
	return nil
}

// ExecuteWhoami prints the login identity of the stored credential.
func ExecuteWhoami(_ context.Context, app *App) error {
	cred, ok, err := app.store.Get()
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("not logged in")
	}

	login := cred.Login
	if login == "" {
		login = "(unknown login)"
	}
	fmt.Println(login)
	return nil
}

// ValidateLogin rejects obviously malformed login identities before any
// network traffic.
func ValidateLogin(login string) error {
	if strings.TrimSpace(login) == "" {
		return errors.New("login must not be empty")
	}
	return nil
}
