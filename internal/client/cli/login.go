package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) Login(ctx context.Context) error {

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

	resp, err := a.api.Login(ctx, userName, string(password))
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	a.userName = resp.User.Username
	fmt.Println("Logged in as", a.userName)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.api.SetToken("")
	a.userName = ""
	fmt.Println("Logged out")
	return nil
}
