package handlers

//go:generate mockgen -source=../../../usecase/car_wash_usecase.go -destination=mocks/car_wash_usecase_mock.go -package=mocks
//go:generate mockgen -source=../../../usecase/contact_reminder_usecase.go -destination=mocks/contact_reminder_usecase_mock.go -package=mocks
//go:generate mockgen -source=../../../usecase/customer_usecase.go -destination=mocks/customer_usecase_mock.go -package=mocks
//go:generate mockgen -source=../../../usecase/employee_usecase.go -destination=mocks/employee_usecase_mock.go -package=mocks
//go:generate mockgen -source=../../../usecase/report_usecase.go -destination=mocks/report_usecase_mock.go -package=mocks
//go:generate mockgen -source=../../../usecase/vehicle_usecase.go -destination=mocks/vehicle_usecase_mock.go -package=mocks
