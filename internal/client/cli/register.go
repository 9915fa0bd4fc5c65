package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) Register(ctx context.Context) error {

	userName, err := GetSimpleText(a.reader, "Enter user name", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	resp, err := a.api.Register(ctx, userName, string(password))
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	a.userName = resp.User.Username
	fmt.Println("Registered as", a.userName)
	return nil
}
