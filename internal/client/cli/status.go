package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) Status(ctx context.Context) error {

	clientName, err := GetSimpleText(a.reader, "Client name", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	check, err := a.api.CreateStatus(ctx, clientName)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Status recorded for %s at %s\n", check.ClientName, check.Timestamp.Format("2006-01-02 15:04:05"))
	return nil
}
