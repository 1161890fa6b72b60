package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/lostlink/internal/client/models"
)

func (a *App) Offices(ctx context.Context) error {
	offices, err := a.offices.List(ctx)
	if err != nil {
		a.printError(err)
		return err
	}
	if len(offices) == 0 {
		printlnFn("No offices")
		return nil
	}
	for _, o := range offices {
		printlnFn(fmt.Sprintf("%6d  %-25s  %-30s  %s", o.ID, o.Name, o.Location, o.WorkHours))
	}
	return nil
}

func (a *App) AddOffice(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Office name", os.Stdout)
	if err != nil {
		return err
	}
	location, err := getSimpleText(a.reader, "Address", os.Stdout)
	if err != nil {
		return err
	}
	workHours, err := getSimpleText(a.reader, "Work hours", os.Stdout)
	if err != nil {
		return err
	}
	contact, err := getSimpleText(a.reader, "Contact", os.Stdout)
	if err != nil {
		return err
	}

	office, err := a.offices.Create(ctx, models.CreateOfficeRequest{
		Name: name, Location: location, WorkHours: workHours, Contact: contact,
	})
	if err != nil {
		a.printError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Created office #%d (%s)", office.ID, office.Name))
	return nil
}

func (a *App) EditOffice(ctx context.Context, args []string) error {
	id, err := a.argOrPromptID(args, "Enter office id")
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	name, err := a.promptOptional("New name")
	if err != nil {
		return err
	}
	location, err := a.promptOptional("New address")
	if err != nil {
		return err
	}
	workHours, err := a.promptOptional("New work hours")
	if err != nil {
		return err
	}
	contact, err := a.promptOptional("New contact")
	if err != nil {
		return err
	}

	office, err := a.offices.Update(ctx, id, models.UpdateOfficeRequest{
		Name: name, Location: location, WorkHours: workHours, Contact: contact,
	})
	if err != nil {
		a.printError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Updated office #%d", office.ID))
	return nil
}

func (a *App) DeleteOffice(ctx context.Context, args []string) error {
	id, err := a.argOrPromptID(args, "Enter office id")
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if err := a.offices.Delete(ctx, id); err != nil {
		a.printError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Deleted office #%d", id))
	return nil
}
