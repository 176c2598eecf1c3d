package cli

import (
	"errors"
	"fmt"
	"strings"
)

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	if err := ctx.loadStore(); err != nil {
		return err
	}

	user := ctx.Store.User()
	tier := "Free"
	if user.IsPremium {
		tier = "Premium"
	}
	fmt.Printf("Name: %s\n", user.Name)
	fmt.Printf("Email: %s\n", user.Email)
	fmt.Printf("Tier: %s\n", tier)
	fmt.Printf("Joined: %s\n", user.JoinedAt)
	if user.Avatar != "" {
		fmt.Printf("Avatar: %s\n", user.Avatar)
	}
	fmt.Printf("AI boosts today: %d\n", ctx.Store.DailyAIBoosts())
	return nil
}

type ProfileNameCmd struct {
	Name string `arg:"" help:"New display name."`
}

func (c *ProfileNameCmd) Run(ctx *Context) error {
	if err := ctx.loadStore(); err != nil {
		return err
	}

	if strings.TrimSpace(c.Name) == "" {
		return errors.New("name cannot be empty")
	}

	ctx.Store.UpdateUserName(c.Name)
	if msg := ctx.Store.Err(); msg != "" {
		return errors.New(msg)
	}
	fmt.Printf("Name updated to: %s\n", ctx.Store.User().Name)
	return nil
}

type ProfileAvatarCmd struct {
	URI string `arg:"" help:"Avatar image URI."`
}

func (c *ProfileAvatarCmd) Run(ctx *Context) error {
	if err := ctx.loadStore(); err != nil {
		return err
	}

	ctx.Store.UpdateUserAvatar(c.URI)
	if msg := ctx.Store.Err(); msg != "" {
		return errors.New(msg)
	}
	fmt.Println("Avatar updated.")
	return nil
}
