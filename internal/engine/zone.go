package engine

import (
	"fmt"

	"traincoach/internal/model"
)

// Zone breakpoints on the recovery score, inclusive integer bounds:
// Red 0-33, Yellow 34-66, Green 67-100.
const (
	yellowFloor = 34
	greenFloor  = 67
)

// Classify maps a recovery score to a readiness zone.
func Classify(recoveryScore int) (model.Zone, error) {
	if recoveryScore < 0 || recoveryScore > 100 {
		return "", &model.InvalidInputError{
			Field:  "recovery_score",
			Reason: fmt.Sprintf("%d outside [0,100]", recoveryScore),
		}
	}

	switch {
	case recoveryScore >= greenFloor:
		return model.ZoneGreen, nil
	case recoveryScore >= yellowFloor:
		return model.ZoneYellow, nil
	default:
		return model.ZoneRed, nil
	}
}
