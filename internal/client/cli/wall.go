package cli

import (
	"context"
	"fmt"
)

func (a *App) Wall(ctx context.Context, username string) error {

	posts, err := a.api.GetWall(ctx, username)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	if len(posts) == 0 {
		fmt.Printf("%s's wall is empty\n", username)
		return nil
	}

	for _, p := range posts {
		fmt.Printf("[%s] %s: %s\n", p.CreatedAt.Format("2006-01-02 15:04"), p.Author, p.Content)
	}
	return nil
}

func (a *App) Users(ctx context.Context) error {

	users, err := a.api.ListUsers(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	for _, u := range users {
		fmt.Println(u.Username)
	}
	return nil
}
