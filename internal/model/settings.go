package model

// CountMode selects how the imposter count is derived from the player count
type CountMode string

const (
	// CountModeFixed uses Settings.ImposterCount directly
	CountModeFixed CountMode = "fixed"
	// CountModePercent derives the count from MaxPercent of the player count
	CountModePercent CountMode = "percent"
)

// ImposterSettings are the host-configurable knobs for an imposter round.
// Settings are replaced wholesale on every edit; there is no partial merge.
type ImposterSettings struct {
	CountMode           CountMode `json:"countMode"`
	ImposterCount       int       `json:"imposterCount"`
	MaxPercent          int       `json:"maxPercent,omitempty"`
	TimerSeconds        int       `json:"timer"`
	UseSameImposterWord bool      `json:"useSameImposterWord"`
	// Categories filters the word bank; empty means all categories.
	Categories []string `json:"categories,omitempty"`
}

// DefaultImposterSettings returns the settings a fresh imposter lobby starts with
func DefaultImposterSettings() ImposterSettings {
	return ImposterSettings{
		CountMode:           CountModeFixed,
		ImposterCount:       1,
		TimerSeconds:        60,
		UseSameImposterWord: true,
	}
}
