package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/nutrition"
	"github.com/templui/fittrack/internal/validation"
	"github.com/templui/fittrack/internal/workout"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// previewProfile is the TOML form of a fitness profile:
//
//	skill_level = "intermediate"
//	goal = "gain_muscle"
//	workout_duration = 60
//	target_muscle_groups = ["chest", "back"]
//	workouts_per_week = 3
//
//	[[split]]
//	muscle_groups = ["chest", "arms"]
type previewProfile struct {
	SkillLevel         model.SkillLevel    `toml:"skill_level"`
	Goal               model.Goal          `toml:"goal"`
	WorkoutDuration    int                 `toml:"workout_duration"`
	TargetMuscleGroups []model.MuscleGroup `toml:"target_muscle_groups"`
	HeightCM           *float64            `toml:"height_cm"`
	WeightKG           *float64            `toml:"weight_kg"`
	Age                *int                `toml:"age"`
	Gender             *model.Gender       `toml:"gender"`
	WorkoutsPerWeek    *int                `toml:"workouts_per_week"`
	Split              []struct {
		MuscleGroups []model.MuscleGroup `toml:"muscle_groups"`
	} `toml:"split"`
}

func (p previewProfile) toModel() *model.FitnessProfile {
	profile := &model.FitnessProfile{
		UserID:              "preview",
		SkillLevel:          p.SkillLevel,
		Goal:                p.Goal,
		WorkoutDuration:     p.WorkoutDuration,
		TargetMuscleGroups:  validation.NormalizeMuscleGroups(p.TargetMuscleGroups),
		HeightCM:            p.HeightCM,
		WeightKG:            p.WeightKG,
		Age:                 p.Age,
		Gender:              p.Gender,
		DietaryRestrictions: model.DietaryRestrictions{model.DietNone},
		WorkoutsPerWeek:     p.WorkoutsPerWeek,
	}
	for i, s := range p.Split {
		profile.SplitDetails = append(profile.SplitDetails, model.SplitDay{
			Day:          i + 1,
			MuscleGroups: validation.NormalizeMuscleGroups(s.MuscleGroups),
		})
	}
	if n := len(profile.SplitDetails); n > 0 {
		profile.SplitCount = &n
	}
	return profile
}

func PreviewCmd() *cobra.Command {
	var profilePath string
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the workout plan and nutrition targets for a profile file",
		Long:  "Builds the plans a profile would get without touching the database. Meals are not generated.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var p previewProfile
			_, err := toml.DecodeFile(profilePath, &p)
			if err != nil {
				return fmt.Errorf("read profile: %w", err)
			}
			profile := p.toModel()

			err = validation.ValidateProfile(profile)
			if err != nil {
				return err
			}

			c, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}

			plan, err := workout.NewBuilder(c).Build(profile)
			if err != nil {
				return err
			}

			var targets *nutrition.Targets
			if bio, ok := profile.Biometrics(); ok {
				t, err := nutrition.Calculate(bio, profile.Goal)
				if err != nil {
					return err
				}
				targets = &t
			}

			printPreview(cmd.OutOrStdout(), plan, targets)
			return nil
		},
	}

	cmd.Flags().StringVar(&profilePath, "profile", "", "profile TOML file")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "catalog TOML file (default: embedded catalog)")
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}

var titleCase = cases.Title(language.English)

func displayGroup(g model.MuscleGroup) string {
	return titleCase.String(string(g))
}

func printPreview(w io.Writer, plan *model.WorkoutPlan, targets *nutrition.Targets) {
	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	magenta := color.New(color.FgMagenta).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintf(w, "%s %s\n", boldGreen(plan.Name), "("+plan.Description+")")
	for _, day := range plan.Days {
		groups := lo.Map(day.TargetMuscleGroups, func(g model.MuscleGroup, _ int) string {
			return displayGroup(g)
		})
		fmt.Fprintf(w, "\n%s  %s  %s\n",
			boldCyan(day.Name),
			yellow(time.Weekday(day.DayOfWeek).String()),
			magenta(strings.Join(groups, ", ")))
		for _, ex := range day.Exercises {
			fmt.Fprintf(w, "  • %s: %d × %s, rest %ds\n", ex.Name, ex.Sets, ex.RepsPerSet, ex.RestSeconds)
		}
	}

	fmt.Fprintln(w)
	if targets == nil {
		fmt.Fprintln(w, magenta("No nutrition targets: height, weight, age and gender are required."))
		return
	}
	fmt.Fprintln(w, boldGreen("Daily targets"))
	fmt.Fprintf(w, "  %s: %d kcal (BMR %d, TDEE %d)\n", boldCyan("Calories"), targets.Calories, targets.BMR, targets.TDEE)
	fmt.Fprintf(w, "  %s: %dg  %s: %dg  %s: %dg\n",
		boldCyan("Protein"), targets.ProteinG,
		boldCyan("Carbs"), targets.CarbsG,
		boldCyan("Fat"), targets.FatG)
}
