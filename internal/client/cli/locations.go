package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/lostlink/internal/client/models"
)

func (a *App) Locations(ctx context.Context) error {
	locations, err := a.locations.List(ctx)
	if err != nil {
		a.printError(err)
		return err
	}
	if len(locations) == 0 {
		printlnFn("No locations")
		return nil
	}
	for _, l := range locations {
		hours := l.Hours()
		line := fmt.Sprintf("%6d  %-20s  %-25s  %s", l.ID, l.Slug, l.Name, hours.Details)
		if hours.Start != "" || hours.End != "" {
			line += fmt.Sprintf(" [%s - %s]", hours.Start, hours.End)
		}
		printlnFn(line)
	}
	return nil
}

// promptWorkHours collects the structured details/start/end triple.
func (a *App) promptWorkHours() (models.WorkHours, error) {
	details, err := getSimpleText(a.reader, "Details", os.Stdout)
	if err != nil {
		return models.WorkHours{}, err
	}
	start, err := getSimpleText(a.reader, "Opens at (e.g. 08:00, empty for none)", os.Stdout)
	if err != nil {
		return models.WorkHours{}, err
	}
	end, err := getSimpleText(a.reader, "Closes at (e.g. 17:00, empty for none)", os.Stdout)
	if err != nil {
		return models.WorkHours{}, err
	}
	return models.WorkHours{Details: details, Start: start, End: end}, nil
}

func (a *App) AddLocation(ctx context.Context) error {
	slug, err := getSimpleText(a.reader, "Slug (used in the QR link)", os.Stdout)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Location name", os.Stdout)
	if err != nil {
		return err
	}
	hours, err := a.promptWorkHours()
	if err != nil {
		return err
	}

	location, err := a.locations.Create(ctx, slug, name, hours)
	if err != nil {
		a.printError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Created location #%d (%s)", location.ID, location.Slug))
	printlnFn("Submission link: " + a.config.PublicFormLink(location.Slug))
	return nil
}

func (a *App) EditLocation(ctx context.Context, args []string) error {
	id, err := a.argOrPromptID(args, "Enter location id")
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	slug, err := a.promptOptional("New slug")
	if err != nil {
		return err
	}
	name, err := a.promptOptional("New name")
	if err != nil {
		return err
	}

	change, err := getSimpleText(a.reader, "Change work hours? (y/N)", os.Stdout)
	if err != nil {
		return err
	}
	var hours *models.WorkHours
	if change == "y" || change == "Y" {
		h, err := a.promptWorkHours()
		if err != nil {
			return err
		}
		hours = &h
	}

	location, err := a.locations.Update(ctx, id, slug, name, hours)
	if err != nil {
		a.printError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Updated location #%d", location.ID))
	return nil
}

func (a *App) DeleteLocation(ctx context.Context, args []string) error {
	id, err := a.argOrPromptID(args, "Enter location id")
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if err := a.locations.Delete(ctx, id); err != nil {
		a.printError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Deleted location #%d", id))
	return nil
}

// FormLink prints the public submission link for a location slug, selecting
// the public site by the configured backend host.
func (a *App) FormLink(ctx context.Context, args []string) error {
	slug := ""
	if len(args) > 0 {
		slug = args[0]
	} else {
		var err error
		slug, err = getSimpleText(a.reader, "Enter location slug", os.Stdout)
		if err != nil {
			return err
		}
	}
	printlnFn(a.config.PublicFormLink(slug))
	return nil
}
