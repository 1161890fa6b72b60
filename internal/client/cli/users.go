package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/lostlink/internal/client/models"
)

func (a *App) Users(ctx context.Context) error {
	users, err := a.users.List(ctx)
	if err != nil {
		a.printError(err)
		return err
	}
	if len(users) == 0 {
		printlnFn("No users")
		return nil
	}
	for _, u := range users {
		printlnFn(fmt.Sprintf("%6d  %-20s  %-25s  %s", u.ID, u.Username, u.Name+" "+u.Surname, u.Status))
	}
	return nil
}

func (a *App) AddUser(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Name", os.Stdout)
	if err != nil {
		return err
	}
	surname, err := getSimpleText(a.reader, "Surname", os.Stdout)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Password", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.users.Create(ctx, models.CreateUserRequest{
		Name: name, Surname: surname, Username: username, Password: password,
	})
	if err != nil {
		a.printError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Created user #%d (%s)", user.ID, user.Username))
	return nil
}

func (a *App) EditUser(ctx context.Context, args []string) error {
	id, err := a.argOrPromptID(args, "Enter user id")
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	name, err := getSimpleText(a.reader, "Name", os.Stdout)
	if err != nil {
		return err
	}
	surname, err := getSimpleText(a.reader, "Surname", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.users.Update(ctx, id, models.UpdateUserRequest{Name: name, Surname: surname})
	if err != nil {
		a.printError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Updated user #%d", user.ID))
	return nil
}

// DisableUser deactivates an account. There is no way to re-enable it.
func (a *App) DisableUser(ctx context.Context, args []string) error {
	id, err := a.argOrPromptID(args, "Enter user id")
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	confirm, err := getSimpleText(a.reader, "Disabling is permanent. Continue? (y/N)", os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "y" && confirm != "Y" {
		printlnFn("Cancelled")
		return nil
	}

	if err := a.users.Disable(ctx, id); err != nil {
		a.printError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Disabled user #%d", id))
	return nil
}
