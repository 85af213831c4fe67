package recruit

import "fmt"

// Stage is one of the three interview phases.
type Stage string

const (
	StageFirst  Stage = "first"
	StageSecond Stage = "second"
	StageFinal  Stage = "final"
)

// IsValid reports whether the value is one of the known stages.
func (s Stage) IsValid() bool {
	switch s {
	case StageFirst, StageSecond, StageFinal:
		return true
	default:
		return false
	}
}

func (s Stage) String() string {
	return string(s)
}

// Label returns the Japanese display name of the stage.
func (s Stage) Label() string {
	switch s {
	case StageFirst:
		return "1次面接"
	case StageSecond:
		return "2次面接"
	case StageFinal:
		return "最終面接"
	default:
		return string(s)
	}
}

// ParseStage converts a user-supplied stage name into a Stage. The short
// forms 1st and 2nd are accepted for convenience.
func ParseStage(s string) (Stage, error) {
	switch s {
	case "first", "1st":
		return StageFirst, nil
	case "second", "2nd":
		return StageSecond, nil
	case "final":
		return StageFinal, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStage, s)
	}
}
