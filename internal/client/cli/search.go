package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) Search(ctx context.Context) error {

	query, err := GetSimpleText(a.reader, "Search query", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	resp, err := a.api.Search(ctx, query)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	if !resp.Success {
		fmt.Println("Search failed:", resp.Error)
		return nil
	}

	fmt.Println(resp.Summary)
	if resp.SourcesCount > 0 {
		fmt.Printf("(%d sources)\n", resp.SourcesCount)
	}
	return nil
}
