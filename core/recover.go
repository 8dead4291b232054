package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/hellperdev/contactbook/internal/contract"
	"github.com/hellperdev/contactbook/schema"
)

// Recovery loop errors surfaced to the command layer.
var (
	// ErrSessionAbandoned means the user declined to re-authenticate. The
	// stored credential is already cleared when this is returned.
	ErrSessionAbandoned = errors.New("session abandoned")

	// ErrLoginRequired means recovery is impossible because no account
	// identity is on record for the expired session.
	ErrLoginRequired = errors.New("no stored login, run 'contactbook login' first")
)

// RunWithRecovery executes one operation and, when the session has expired,
// drives the interactive password loop until the operation settles or the
// user abandons it. A replay that expires again simply re-enters the loop,
// so the caller always receives a settled result.
func RunWithRecovery(ctx context.Context, reauth *ReauthCoordinator, prompter contract.PasswordPrompter, run func(ctx context.Context) Result) (Result, error) {
	result := run(ctx)
	for result.Status == schema.StatusPendingReauth {
		recovered, err := recoverSession(ctx, reauth, prompter)
		if err != nil {
			return Result{}, err
		}
		result = recovered
	}
	return result, nil
}

// recoverSession prompts for the password of the known login until the
// exchange succeeds or the user aborts. There is no attempt limit: the loop
// is bounded only by user action.
func recoverSession(ctx context.Context, reauth *ReauthCoordinator, prompter contract.PasswordPrompter) (Result, error) {
	if reauth.Login() == "" {
		if err := reauth.Abandon(); err != nil {
			return Result{}, err
		}
		return Result{}, ErrLoginRequired
	}

	contract.PrintWarn("Session expired.")

	for {
		prompt := fmt.Sprintf("Password for %s: ", reauth.Login())
		password, abort, err := prompter.ReadPassword(prompt)
		if err != nil {
			return Result{}, err
		}
		if abort {
			if err := reauth.Abandon(); err != nil {
				return Result{}, err
			}
			return Result{}, ErrSessionAbandoned
		}

		result, err := reauth.Submit(ctx, password)
		if err != nil {
			return Result{}, err
		}
		if reauth.State() == schema.ChallengeOpen {
			// Bad password, empty input, or a replay that expired again.
			if msg := reauth.LastMessage(); msg != "" {
				contract.PrintWarn("%s", msg)
			}
			continue
		}
		return result, nil
	}
}
