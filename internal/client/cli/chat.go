package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) Chat(ctx context.Context) error {

	message, err := GetSimpleText(a.reader, "Your message", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	resp, err := a.api.Chat(ctx, message, "")
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	if !resp.Success {
		fmt.Println("Agent error:", resp.Error)
		return nil
	}

	fmt.Println(resp.Response)
	return nil
}
