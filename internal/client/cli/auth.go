package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/picdiary/internal/client/client"
	"github.com/dmitrijs2005/picdiary/internal/common"
)

// getSimpleText, getMultiline and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getMultiline = GetMultiline
var getPassword = GetPassword

// Register prompts the user for a username and password and attempts to
// create a new account via the AuthService.
//
// On success it prints "Success!" and returns nil. The password byte slice
// is wiped before returning. Any I/O or service error is returned
// unchanged.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	if err := a.authService.Register(ctx, userName, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Success! You can login now.")
	return nil
}

// Login prompts the user for credentials and authenticates. An unreachable
// server switches the prompt to offline mode.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	reqCtx, cancel := a.requestContext(ctx)
	defer cancel()

	if err := a.authService.Login(reqCtx, userName, password); err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			a.setMode(ctx, ModeOffline)
		}
		return err
	}

	a.userName = userName
	a.setMode(ctx, ModeOnline)
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Logout forgets the session tokens and the user name.
func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout()
	a.userName = ""
	return nil
}
