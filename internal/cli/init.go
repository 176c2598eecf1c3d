package cli

import "fmt"

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Storage.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized soluna storage at: %s\n", ctx.StoragePath)
	return nil
}
