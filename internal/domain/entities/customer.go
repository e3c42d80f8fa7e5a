package entities

// Customer is identified by the national ID number.
type Customer struct {
	IDNumber       string         `json:"id_number"`
	FullName       string         `json:"full_name"`
	Province       string         `json:"province"`
	Canton         string         `json:"canton"`
	District       string         `json:"district"`
	ExactAddress   string         `json:"exact_address"`
	Phone          string         `json:"phone"`
	WashPreference WashPreference `json:"wash_preference"`
}
