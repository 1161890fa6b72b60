package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/lostlink/internal/client/models"
	"github.com/dmitrijs2005/lostlink/internal/common"
)

// Login prompts for credentials and authenticates. A disabled account gets
// its own message; other failures go through the common error printer.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	me, err := a.auth.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, common.ErrAccountDisabled) {
			printlnFn("This account has been disabled")
		} else {
			a.printError(err)
		}
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s %s!", me.Name, me.Surname))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.printError(err)
		return err
	}
	printlnFn("Logged out")
	return nil
}

// WhoAmI prints the cached profile, refreshing it from the backend.
func (a *App) WhoAmI(ctx context.Context) error {
	me, err := a.auth.Revalidate(ctx)
	if err != nil {
		a.printError(err)
		return err
	}
	printlnFn(fmt.Sprintf("%s %s (%s), status %s", me.Name, me.Surname, me.Username, me.Status))
	return nil
}

// Profile updates the caller's own name, surname, or photo. Empty input
// keeps the current value.
func (a *App) Profile(ctx context.Context) error {
	name, err := a.promptOptional("New name")
	if err != nil {
		return err
	}
	surname, err := a.promptOptional("New surname")
	if err != nil {
		return err
	}
	photo, err := a.promptOptional("New profile photo URL")
	if err != nil {
		return err
	}

	if name == nil && surname == nil && photo == nil {
		printlnFn("Nothing to change")
		return nil
	}

	me, err := a.auth.UpdateProfile(ctx, models.UpdateProfileRequest{
		Name: name, Surname: surname, ProfilePhoto: photo,
	})
	if err != nil {
		a.printError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Profile updated: %s %s", me.Name, me.Surname))
	return nil
}

// ChangePassword reads the current password and the new one twice. The
// confirmation mismatch is caught locally, before any request.
func (a *App) ChangePassword(ctx context.Context) error {
	current, err := getPassword("Current password", os.Stdout)
	if err != nil {
		return err
	}
	newPassword, err := getPassword("New password", os.Stdout)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Repeat new password", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.ResetPassword(ctx, current, newPassword, confirm); err != nil {
		if errors.Is(err, common.ErrPasswordMismatch) {
			printlnFn("Passwords do not match")
		} else {
			a.printError(err)
		}
		return err
	}
	printlnFn("Password changed")
	return nil
}
