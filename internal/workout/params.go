package workout

import (
	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/validation"
)

// Params are the prescribed training parameters for every exercise of a plan.
type Params struct {
	Sets        int
	Reps        string
	RestSeconds int
}

// BeginnerParams returns full-body parameters for the goal.
func BeginnerParams(goal model.Goal) (Params, error) {
	switch goal {
	case model.GoalGainStrength:
		return Params{Sets: 4, Reps: "6-8", RestSeconds: 90}, nil
	case model.GoalGainMuscle:
		return Params{Sets: 3, Reps: "8-12", RestSeconds: 60}, nil
	case model.GoalLoseWeight:
		return Params{Sets: 3, Reps: "12-15", RestSeconds: 45}, nil
	default:
		return Params{}, validation.Newf("goal", "invalid fitness goal %q", goal)
	}
}

// SplitParams returns split-routine parameters; advanced lifters get heavier prescriptions.
func SplitParams(goal model.Goal, skill model.SkillLevel) (Params, error) {
	var advanced bool
	switch skill {
	case model.SkillAdvanced:
		advanced = true
	case model.SkillIntermediate:
	case model.SkillBeginner:
		return Params{}, validation.New("skill_level", "beginners follow the full-body plan")
	default:
		return Params{}, validation.Newf("skill_level", "invalid skill level %q", skill)
	}

	switch goal {
	case model.GoalGainStrength:
		if advanced {
			return Params{Sets: 5, Reps: "3-5", RestSeconds: 180}, nil
		}
		return Params{Sets: 4, Reps: "5-8", RestSeconds: 120}, nil
	case model.GoalGainMuscle:
		if advanced {
			return Params{Sets: 4, Reps: "8-10", RestSeconds: 90}, nil
		}
		return Params{Sets: 3, Reps: "8-12", RestSeconds: 60}, nil
	case model.GoalLoseWeight:
		if advanced {
			return Params{Sets: 4, Reps: "12-15", RestSeconds: 45}, nil
		}
		return Params{Sets: 3, Reps: "12-15", RestSeconds: 45}, nil
	default:
		return Params{}, validation.Newf("goal", "invalid fitness goal %q", goal)
	}
}
