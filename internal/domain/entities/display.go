package entities

type washTypeInfo struct {
	name        string
	description string
}

var washTypeDisplay = map[WashType]washTypeInfo{
	WashTypeBasic: {
		name:        "Basic",
		description: "Washing, vacuuming and waxing",
	},
	WashTypePremium: {
		name:        "Premium",
		description: "Washing, vacuuming, waxing and deep cleaning of seats",
	},
	WashTypeDeluxe: {
		name:        "Deluxe",
		description: "Washing, vacuuming, and waxing, deep seat cleaning, and paint correction. Optional nanoceramic-treated car wash products.",
	},
	WashTypeLaJoya: {
		name:        "La Joya",
		description: "Includes all the details to be agreed upon, polishing, hydrophobic treatments, among others.",
	},
}

var washStatusDisplay = map[WashStatus]string{
	WashStatusInProgress: "In Process",
	WashStatusBilled:     "Billed",
	WashStatusScheduled:  "Scheduled",
}

// DisplayName returns the label shown to users, e.g. "La Joya".
func (t WashType) DisplayName() string {
	if info, ok := washTypeDisplay[t]; ok {
		return info.name
	}
	return string(t)
}

// Description returns what the service includes.
func (t WashType) Description() string {
	if info, ok := washTypeDisplay[t]; ok {
		return info.description
	}
	return "Description not available"
}

func (s WashStatus) DisplayName() string {
	if name, ok := washStatusDisplay[s]; ok {
		return name
	}
	return string(s)
}
