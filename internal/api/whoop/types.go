package whoop

import "time"

// ScoreState tells whether the provider has finished scoring a record.
type ScoreState string

const (
	ScoreStateScored     ScoreState = "SCORED"
	ScoreStatePending    ScoreState = "PENDING_SCORE"
	ScoreStateUnscorable ScoreState = "UNSCORABLE"
)

// UserProfile is the basic user profile record.
type UserProfile struct {
	UserID    int64  `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// BodyMeasurement holds height, weight and max heart rate.
type BodyMeasurement struct {
	HeightMeter    float64 `json:"height_meter"`
	WeightKilogram float64 `json:"weight_kilogram"`
	MaxHeartRate   int     `json:"max_heart_rate"`
}

// Cycle is one physiological day, carrying the daily strain score.
type Cycle struct {
	ID         int64       `json:"id"`
	Start      time.Time   `json:"start"`
	End        *time.Time  `json:"end"`
	ScoreState ScoreState  `json:"score_state"`
	Score      *CycleScore `json:"score"`
}

type CycleScore struct {
	Strain           float64 `json:"strain"`
	Kilojoule        float64 `json:"kilojoule"`
	AverageHeartRate int     `json:"average_heart_rate"`
	MaxHeartRate     int     `json:"max_heart_rate"`
}

// Recovery is one day's recovery record.
type Recovery struct {
	CycleID    int64          `json:"cycle_id"`
	SleepID    string         `json:"sleep_id"`
	CreatedAt  time.Time      `json:"created_at"`
	ScoreState ScoreState     `json:"score_state"`
	Score      *RecoveryScore `json:"score"`
}

type RecoveryScore struct {
	UserCalibrating  bool    `json:"user_calibrating"`
	RecoveryScore    float64 `json:"recovery_score"`
	RestingHeartRate float64 `json:"resting_heart_rate"`
	HRVRmssdMilli    float64 `json:"hrv_rmssd_milli"`
}

// Sleep is one sleep activity record.
type Sleep struct {
	ID         string      `json:"id"`
	CycleID    int64       `json:"cycle_id"`
	Start      time.Time   `json:"start"`
	End        time.Time   `json:"end"`
	Nap        bool        `json:"nap"`
	ScoreState ScoreState  `json:"score_state"`
	Score      *SleepScore `json:"score"`
}

type SleepScore struct {
	SleepNeeded                SleepNeeded `json:"sleep_needed"`
	SleepPerformancePercentage float64     `json:"sleep_performance_percentage"`
	SleepEfficiencyPercentage  float64     `json:"sleep_efficiency_percentage"`
}

type SleepNeeded struct {
	BaselineMilli          int `json:"baseline_milli"`
	NeedFromSleepDebtMilli int `json:"need_from_sleep_debt_milli"`
}

// Workout is one workout activity record.
type Workout struct {
	ID         string        `json:"id"`
	Start      time.Time     `json:"start"`
	End        time.Time     `json:"end"`
	SportName  string        `json:"sport_name"`
	ScoreState ScoreState    `json:"score_state"`
	Score      *WorkoutScore `json:"score"`
}

type WorkoutScore struct {
	Strain           float64 `json:"strain"`
	AverageHeartRate int     `json:"average_heart_rate"`
	MaxHeartRate     int     `json:"max_heart_rate"`
	Kilojoule        float64 `json:"kilojoule"`
}

// pagedResponse is the provider's envelope for collection endpoints.
type pagedResponse[T any] struct {
	Records   []T    `json:"records"`
	NextToken string `json:"next_token"`
}
