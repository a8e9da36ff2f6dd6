package advance

import "context"

type Service interface {
	Request(ctx context.Context, req RequestAdvanceRequest) (AdvanceResponse, error)
	Get(ctx context.Context, id string) (AdvanceResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]AdvanceResponse, error)
	ListPending(ctx context.Context) ([]AdvanceResponse, error)
	Approve(ctx context.Context, id, approverID string, req ApproveAdvanceRequest) (AdvanceResponse, error)
	Reject(ctx context.Context, id, approverID string, req RejectAdvanceRequest) (AdvanceResponse, error)
	// TotalForPeriod totals approved and deducted advances earmarked for the
	// period; a deducted advance never counts toward a later period.
	TotalForPeriod(ctx context.Context, employeeID, periodKey string) (PeriodTotalResponse, error)
}
