package interfaces

//go:generate mockgen -source=car_wash_repository_interface.go -destination=mocks/car_wash_repository_interface_mock.go -package=mock_interfaces
//go:generate mockgen -source=customer_repository_interface.go -destination=mocks/customer_repository_interface_mock.go -package=mock_interfaces
//go:generate mockgen -source=employee_repository_interface.go -destination=mocks/employee_repository_interface_mock.go -package=mock_interfaces
//go:generate mockgen -source=notifier_interface.go -destination=mocks/notifier_interface_mock.go -package=mock_interfaces
//go:generate mockgen -source=vehicle_repository_interface.go -destination=mocks/vehicle_repository_interface_mock.go -package=mock_interfaces
