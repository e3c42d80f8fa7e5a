package request

import "carwash/internal/domain/entities"

type CustomerRequest struct {
	IDNumber       string `json:"id_number"`
	FullName       string `json:"full_name"`
	Province       string `json:"province"`
	Canton         string `json:"canton"`
	District       string `json:"district"`
	ExactAddress   string `json:"exact_address"`
	Phone          string `json:"phone"`
	WashPreference string `json:"wash_preference"`
}

func (r CustomerRequest) ToEntity() entities.Customer {
	return entities.Customer{
		IDNumber:       r.IDNumber,
		FullName:       r.FullName,
		Province:       r.Province,
		Canton:         r.Canton,
		District:       r.District,
		ExactAddress:   r.ExactAddress,
		Phone:          r.Phone,
		WashPreference: entities.WashPreference(r.WashPreference),
	}
}
