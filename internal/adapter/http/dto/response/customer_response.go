package response

import "carwash/internal/domain/entities"

type CustomerResponse struct {
	IDNumber       string `json:"id_number"`
	FullName       string `json:"full_name"`
	Province       string `json:"province"`
	Canton         string `json:"canton"`
	District       string `json:"district"`
	ExactAddress   string `json:"exact_address"`
	Phone          string `json:"phone"`
	WashPreference string `json:"wash_preference"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		IDNumber:       c.IDNumber,
		FullName:       c.FullName,
		Province:       c.Province,
		Canton:         c.Canton,
		District:       c.District,
		ExactAddress:   c.ExactAddress,
		Phone:          c.Phone,
		WashPreference: string(c.WashPreference),
	}
}

func FromCustomers(cs []entities.Customer) []CustomerResponse {
	return mapAll(cs, FromCustomer)
}
