package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) Categories(ctx context.Context) error {
	categories, err := a.categories.List(ctx)
	if err != nil {
		a.printError(err)
		return err
	}
	if len(categories) == 0 {
		printlnFn("No categories")
		return nil
	}
	for _, c := range categories {
		printlnFn(fmt.Sprintf("%6d  %s", c.ID, c.Name))
	}
	return nil
}

func (a *App) AddCategory(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Category name", os.Stdout)
	if err != nil {
		return err
	}
	category, err := a.categories.Create(ctx, name)
	if err != nil {
		a.printError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Created category #%d (%s)", category.ID, category.Name))
	return nil
}

func (a *App) EditCategory(ctx context.Context, args []string) error {
	id, err := a.argOrPromptID(args, "Enter category id")
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	name, err := getSimpleText(a.reader, "New name", os.Stdout)
	if err != nil {
		return err
	}
	category, err := a.categories.Update(ctx, id, name)
	if err != nil {
		a.printError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Renamed category #%d to %s", category.ID, category.Name))
	return nil
}

func (a *App) DeleteCategory(ctx context.Context, args []string) error {
	id, err := a.argOrPromptID(args, "Enter category id")
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if err := a.categories.Delete(ctx, id); err != nil {
		a.printError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Deleted category #%d", id))
	return nil
}
