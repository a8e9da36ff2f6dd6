package salary

import "context"

type Service interface {
	// SetConfiguration supersedes the employee's current configuration:
	// the open window is closed at the new effective date and a fresh
	// configuration is inserted, preserving the full history.
	SetConfiguration(ctx context.Context, req SetConfigurationRequest) (ConfigurationResponse, error)
	GetCurrent(ctx context.Context, employeeID string) (ConfigurationResponse, error)
	History(ctx context.Context, employeeID string) ([]ConfigurationResponse, error)
	Deactivate(ctx context.Context, id string) error
}
