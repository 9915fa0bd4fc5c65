package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) Post(ctx context.Context) error {

	if !a.isLoggedIn() {
		fmt.Println("Log in first")
		return nil
	}

	wallOwner, err := GetSimpleText(a.reader, "Whose wall?", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	content, err := GetMultiline(a.reader, "Post content", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	post, err := a.api.CreatePost(ctx, wallOwner, content)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Posted to %s's wall at %s\n", post.WallOwner, post.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}
