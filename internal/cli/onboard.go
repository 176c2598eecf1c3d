package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/solunahq/soluna/internal/models"
)

type OnboardCmd struct{}

func (c *OnboardCmd) Run(ctx *Context) error {
	if err := ctx.loadStore(); err != nil {
		return err
	}

	if ctx.Store.User().HasCompletedOnboarding {
		fmt.Println("Onboarding already completed.")
		return nil
	}

	var (
		ageStr      string
		goals       []string
		motivations []string
		lifestyle   string
		income      string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("How old are you?").
				Value(&ageStr).
				Validate(func(s string) error {
					age, err := strconv.Atoi(s)
					if err != nil || age < 13 || age > 120 {
						return errors.New("enter an age between 13 and 120")
					}
					return nil
				}),
			huh.NewMultiSelect[string]().
				Title("What are your goals?").
				Options(
					huh.NewOption("Build better health", "health"),
					huh.NewOption("Boost productivity", "productivity"),
					huh.NewOption("Improve mindfulness", "mindfulness"),
					huh.NewOption("Learn new skills", "learning"),
					huh.NewOption("Strengthen relationships", "relationships"),
					huh.NewOption("Grow financially", "finance"),
				).
				Value(&goals),
			huh.NewMultiSelect[string]().
				Title("What motivates you?").
				Options(
					huh.NewOption("Seeing progress", "progress"),
					huh.NewOption("Building streaks", "streaks"),
					huh.NewOption("Achieving milestones", "milestones"),
					huh.NewOption("Feeling better", "wellbeing"),
				).
				Value(&motivations),
			huh.NewSelect[string]().
				Title("Which best describes you?").
				Options(
					huh.NewOption("Student", string(models.LifestyleStudent)),
					huh.NewOption("Professional", string(models.LifestyleProfessional)),
					huh.NewOption("Entrepreneur", string(models.LifestyleEntrepreneur)),
					huh.NewOption("Parent", string(models.LifestyleParent)),
					huh.NewOption("Retiree", string(models.LifestyleRetiree)),
				).
				Value(&lifestyle),
			huh.NewSelect[string]().
				Title("Household income (helps tailor suggestions)").
				Options(
					huh.NewOption("Under $50k", string(models.IncomeUnder50k)),
					huh.NewOption("$50k - $100k", string(models.Income50kTo100k)),
					huh.NewOption("$100k - $200k", string(models.Income100kTo200k)),
					huh.NewOption("Over $200k", string(models.IncomeOver200k)),
				).
				Value(&income),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	age, err := strconv.Atoi(ageStr)
	if err != nil {
		return fmt.Errorf("invalid age: %w", err)
	}

	ctx.Store.CompleteOnboarding(age, goals, motivations, models.Lifestyle(lifestyle), models.IncomeBand(income))
	if msg := ctx.Store.Err(); msg != "" {
		return errors.New(msg)
	}

	fmt.Println("You're all set! Add your first habit with 'soluna habit add'.")
	return nil
}
