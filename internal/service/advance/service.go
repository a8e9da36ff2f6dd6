package advance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tokosakti/backoffice-go/internal/domain/advance"
	"github.com/tokosakti/backoffice-go/internal/domain/employee"
	"github.com/tokosakti/backoffice-go/internal/pkg/database"
)

type AdvanceServiceImpl struct {
	db           *database.DB
	advanceRepo  advance.Repository
	employeeRepo employee.Repository
}

func NewAdvanceService(
	db *database.DB,
	advanceRepo advance.Repository,
	employeeRepo employee.Repository,
) advance.Service {
	return &AdvanceServiceImpl{
		db:           db,
		advanceRepo:  advanceRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *AdvanceServiceImpl) Request(ctx context.Context, req advance.RequestAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return advance.AdvanceResponse{}, err
	}

	adv := advance.AdvancePayment{
		ID:               uuid.NewString(),
		EmployeeID:       req.EmployeeID,
		Amount:           req.Amount,
		Reason:           req.Reason,
		DeductFromSalary: req.DeductFromSalary,
		Status:           advance.StatusPending,
		RequestedAt:      time.Now(),
	}

	created, err := s.advanceRepo.Create(ctx, adv)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *AdvanceServiceImpl) Get(ctx context.Context, id string) (advance.AdvanceResponse, error) {
	adv, err := s.advanceRepo.GetByID(ctx, id)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	return mapToResponse(adv), nil
}

func (s *AdvanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]advance.AdvanceResponse, error) {
	advances, err := s.advanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToResponses(advances), nil
}

func (s *AdvanceServiceImpl) ListPending(ctx context.Context) ([]advance.AdvanceResponse, error) {
	advances, err := s.advanceRepo.ListByStatus(ctx, advance.StatusPending)
	if err != nil {
		return nil, err
	}
	return mapToResponses(advances), nil
}

func (s *AdvanceServiceImpl) Approve(ctx context.Context, id, approverID string, req advance.ApproveAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	adv, err := s.advanceRepo.Approve(ctx, id, approverID, req.DeductionPeriod, time.Now())
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	return mapToResponse(adv), nil
}

func (s *AdvanceServiceImpl) Reject(ctx context.Context, id, approverID string, req advance.RejectAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	adv, err := s.advanceRepo.Reject(ctx, id, approverID, req.Reason, time.Now())
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	return mapToResponse(adv), nil
}

func (s *AdvanceServiceImpl) TotalForPeriod(ctx context.Context, employeeID, periodKey string) (advance.PeriodTotalResponse, error) {
	total, err := s.advanceRepo.SumForPeriod(ctx, employeeID, periodKey)
	if err != nil {
		return advance.PeriodTotalResponse{}, err
	}

	return advance.PeriodTotalResponse{
		EmployeeID: employeeID,
		Period:     periodKey,
		Total:      total,
	}, nil
}

func mapToResponse(adv advance.AdvancePayment) advance.AdvanceResponse {
	return advance.AdvanceResponse{
		ID:               adv.ID,
		EmployeeID:       adv.EmployeeID,
		Amount:           adv.Amount,
		Reason:           adv.Reason,
		DeductFromSalary: adv.DeductFromSalary,
		DeductionPeriod:  adv.DeductionPeriod,
		Status:           string(adv.Status),
		RequestedAt:      adv.RequestedAt.Format(time.RFC3339),
		ApprovedBy:       adv.ApprovedBy,
		RejectionReason:  adv.RejectionReason,
		PayrollRecordID:  adv.PayrollRecordID,
	}
}

func mapToResponses(advances []advance.AdvancePayment) []advance.AdvanceResponse {
	responses := make([]advance.AdvanceResponse, 0, len(advances))
	for _, adv := range advances {
		responses = append(responses, mapToResponse(adv))
	}
	return responses
}
