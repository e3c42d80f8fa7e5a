package entities

// WashType is the service category that determines a wash base price.
type WashType string

const (
	WashTypeBasic   WashType = "Basic"
	WashTypePremium WashType = "Premium"
	WashTypeDeluxe  WashType = "Deluxe"
	WashTypeLaJoya  WashType = "LaJoya"
)

// WashTypes lists wash types in declaration order. Favorite wash type ties
// resolve in this order.
var WashTypes = []WashType{WashTypeBasic, WashTypePremium, WashTypeDeluxe, WashTypeLaJoya}

func (t WashType) IsValid() bool {
	switch t {
	case WashTypeBasic, WashTypePremium, WashTypeDeluxe, WashTypeLaJoya:
		return true
	}
	return false
}

// WashStatus is the lifecycle label of a wash. Transitions are not enforced.
type WashStatus string

const (
	WashStatusInProgress WashStatus = "InProgress"
	WashStatusBilled     WashStatus = "Billed"
	WashStatusScheduled  WashStatus = "Scheduled"
)

var WashStatuses = []WashStatus{WashStatusInProgress, WashStatusBilled, WashStatusScheduled}

func (s WashStatus) IsValid() bool {
	switch s {
	case WashStatusInProgress, WashStatusBilled, WashStatusScheduled:
		return true
	}
	return false
}

// WashPreference is how often a customer wants their vehicles washed.
type WashPreference string

const (
	WashPreferenceWeekly   WashPreference = "Weekly"
	WashPreferenceBiweekly WashPreference = "Biweekly"
	WashPreferenceMonthly  WashPreference = "Monthly"
	WashPreferenceOther    WashPreference = "Other"
)

func (p WashPreference) IsValid() bool {
	switch p {
	case WashPreferenceWeekly, WashPreferenceBiweekly, WashPreferenceMonthly, WashPreferenceOther:
		return true
	}
	return false
}
