package cli

import (
	"errors"
	"fmt"
)

type SignoutCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *SignoutCmd) Run(ctx *Context) error {
	if err := ctx.loadStore(); err != nil {
		return err
	}

	if !c.Yes {
		ok, err := confirm("Sign out and erase all local data? This cannot be undone.")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Sign out cancelled.")
			return nil
		}
	}

	if !ctx.Store.SignOut() {
		if msg := ctx.Store.Err(); msg != "" {
			return errors.New(msg)
		}
		return errors.New("sign out failed")
	}

	fmt.Println("Signed out. All local data erased.")
	return nil
}

// ResetCmd wipes habit and profile data without the sign-out framing.
type ResetCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	if err := ctx.loadStore(); err != nil {
		return err
	}

	if !c.Yes {
		ok, err := confirm("Erase all habits, history, and profile data?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	if !ctx.Store.ResetUserData() {
		if msg := ctx.Store.Err(); msg != "" {
			return errors.New(msg)
		}
		return errors.New("reset failed")
	}

	fmt.Println("All data reset to defaults.")
	return nil
}
