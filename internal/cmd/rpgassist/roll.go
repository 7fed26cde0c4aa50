package rpgassist

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/louisbranch/rpgassist/internal/domain/animal"
	"github.com/louisbranch/rpgassist/internal/domain/body"
	"github.com/louisbranch/rpgassist/internal/domain/color"
	"github.com/louisbranch/rpgassist/internal/domain/direction"
	"github.com/louisbranch/rpgassist/internal/domain/gender"
	"github.com/louisbranch/rpgassist/internal/domain/shape"
	"github.com/louisbranch/rpgassist/internal/platform/dice"
)

// rollers maps table names to single-draw renderers.
var rollers = map[string]func(dice.Roller) string{
	"birthmark": func(r dice.Roller) string { return body.RandomBirthmark(r).String() },
	"color":     func(r dice.Roller) string { return color.Random(r).String() },
	"facing":    func(r dice.Roller) string { return direction.RandomFB(r).String() },
	"gender":    func(r dice.Roller) string { return gender.Random(r).String() },
	"location":  func(r dice.Roller) string { return body.RandomLocation(r).String() },
	"pet":       func(r dice.Roller) string { return animal.Random(r).String() },
	"shape":     func(r dice.Roller) string { return shape.Random(r).String() },
	"side":      func(r dice.Roller) string { return direction.RandomLR(r).String() },
}

func tableNames() []string {
	names := make([]string, 0, len(rollers))
	for name := range rollers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (a *app) rollCommand() *cobra.Command {
	var (
		times int
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "roll <table|dice>",
		Short: "Roll on a table (" + strings.Join(tableNames(), ", ") + ") or a dice expression like 2d6+1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if times <= 0 {
				return fmt.Errorf("times must be greater than zero")
			}
			if !cmd.Flags().Changed("seed") {
				seed = a.cfg.Seed
			}

			name := strings.ToLower(strings.TrimSpace(args[0]))
			roll, ok := rollers[name]
			if !ok {
				spec, err := dice.ParseSpec(name)
				if err != nil {
					return fmt.Errorf("unknown table %q (tables: %s; or a dice expression): %w",
						args[0], strings.Join(tableNames(), ", "), err)
				}
				roll = diceRoller(spec)
			}

			r, err := a.roller(seed)
			if err != nil {
				return err
			}
			for i := 0; i < times; i++ {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				if _, err := fmt.Fprintln(a.out, roll(r)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&times, "times", "t", 1, "number of rolls")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducibility (0 = random, default $RPGASSIST_SEED)")
	return cmd
}

// diceRoller renders "3d6+1: 4 2 5 = 12".
func diceRoller(spec dice.Spec) func(dice.Roller) string {
	return func(r dice.Roller) string {
		result, err := dice.RollDice(r, spec)
		if err != nil {
			return err.Error()
		}
		faces := make([]string, 0, spec.Count)
		for _, v := range result.Rolls[0].Results {
			faces = append(faces, fmt.Sprint(v))
		}
		return fmt.Sprintf("%s: %s = %d", spec, strings.Join(faces, " "), result.Total)
	}
}
