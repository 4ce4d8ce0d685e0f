package domain

import "time"

// UnknownWorkplaceName is shown for shifts whose workplace was deleted.
const UnknownWorkplaceName = "Unknown workplace"

type Workplace struct {
	ID         string
	Name       string
	Color      Color
	HourlyRate float64
	Notes      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UnknownWorkplace is the placeholder for a dangling Shift.WorkplaceID.
var UnknownWorkplace = Workplace{
	Name:       UnknownWorkplaceName,
	Color:      ColorGray,
	HourlyRate: 0,
}

// IsUnknown reports whether w is the placeholder returned for a missing workplace.
func (w Workplace) IsUnknown() bool {
	return w.ID == "" && w.Name == UnknownWorkplaceName
}

// ResolveWorkplace returns the workplace with the given id, or
// UnknownWorkplace when it no longer exists. Deleting a workplace does not
// cascade to shifts, so every consumer resolves through here.
func ResolveWorkplace(workplaces []Workplace, id string) Workplace {
	for _, w := range workplaces {
		if w.ID == id {
			return w
		}
	}
	return UnknownWorkplace
}

// DefaultWorkplaces are seeded on first run.
func DefaultWorkplaces() []Workplace {
	return []Workplace{
		{Name: "アルバイト", Color: ColorBlue, HourlyRate: 1000},
		{Name: "パート", Color: ColorGreen, HourlyRate: 1200},
	}
}

func (w *Workplace) Validate() error {
	v := &ValidationError{}
	if w.Name == "" {
		v.Add("name", "name is required")
	}
	if w.HourlyRate < 0 {
		v.Add("rate", "hourly rate must be zero or more")
	}
	if !ValidColors[string(w.Color)] {
		v.Add("color", "unknown color "+string(w.Color))
	}
	return v.OrNil()
}
