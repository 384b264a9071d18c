package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"quote_service/internal/domain/entities"
	"quote_service/internal/domain/quoteform"
	"quote_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrQuoteRequestNotFound    = errors.New("quote request not found")
	ErrInvalidQuoteRequestID   = errors.New("invalid quote request id")
	ErrInvalidQuoteForm        = errors.New("invalid quote request form")
	ErrInvalidStatusTransition = errors.New("invalid quote request status transition")
	ErrMissingSession          = errors.New("missing session")
	ErrForbidden               = errors.New("forbidden")
)

// StepValidationError lists the hard validation errors of every failing form
// step. It unwraps to ErrInvalidQuoteForm.
type StepValidationError struct {
	Steps map[quoteform.Step]map[string]string
}

func (e *StepValidationError) Error() string {
	steps := make([]quoteform.Step, 0, len(e.Steps))
	for s := range e.Steps {
		steps = append(steps, s)
	}
	sort.Slice(steps, func(i, j int) bool { return steps[i] < steps[j] })

	parts := make([]string, 0, len(steps))
	for _, s := range steps {
		fields := make([]string, 0, len(e.Steps[s]))
		for f := range e.Steps[s] {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		parts = append(parts, fmt.Sprintf("step %d (%s): %s", int(s), s, strings.Join(fields, ", ")))
	}
	return fmt.Sprintf("%v: %s", ErrInvalidQuoteForm, strings.Join(parts, "; "))
}

func (e *StepValidationError) Unwrap() error {
	return ErrInvalidQuoteForm
}

// IQuoteRequestUseCase covers the lifecycle of a submitted quote request.
//
//   - Submit validates all six steps, gathers advisory warnings and stores the
//     finalised payload as a pending request.
//   - Accept and Decline close a pending request on behalf of its requester.
//   - Cancel withdraws a pending request; only the requester may do it.
type IQuoteRequestUseCase interface {
	Submit(ctx context.Context, sess entities.Session, form entities.QuoteRequestForm) (entities.QuoteRequest, error)
	GetByID(ctx context.Context, sess entities.Session, id string) (entities.QuoteRequest, error)
	ListMine(ctx context.Context, sess entities.Session) ([]entities.QuoteRequest, error)
	Accept(ctx context.Context, sess entities.Session, id string) (entities.QuoteRequest, error)
	Decline(ctx context.Context, sess entities.Session, id string) (entities.QuoteRequest, error)
	Cancel(ctx context.Context, sess entities.Session, id string) (entities.QuoteRequest, error)
}

type QuoteRequestUseCase struct {
	repo  interfaces.IQuoteRequestRepository
	leads interfaces.ILeadPaymentRepository
	log   *zap.Logger
	now   func() time.Time
}

var _ IQuoteRequestUseCase = (*QuoteRequestUseCase)(nil)

// NewQuoteRequestUseCase builds the lifecycle use case. leads decides which
// vendors may see a request's contact details; without it vendors always get
// the redacted view.
func NewQuoteRequestUseCase(repo interfaces.IQuoteRequestRepository, leads interfaces.ILeadPaymentRepository, log *zap.Logger) *QuoteRequestUseCase {
	return &QuoteRequestUseCase{repo: repo, leads: leads, log: log.Named("quote.usecase"), now: time.Now}
}

func (u *QuoteRequestUseCase) Submit(ctx context.Context, sess entities.Session, form entities.QuoteRequestForm) (entities.QuoteRequest, error) {
	if !sess.Authenticated() {
		return entities.QuoteRequest{}, ErrMissingSession
	}
	if sess.Role == entities.RoleVendor {
		return entities.QuoteRequest{}, ErrForbidden
	}

	failing := map[quoteform.Step]map[string]string{}
	for step, res := range quoteform.ValidateAllSteps(form) {
		if !res.IsValid {
			failing[step] = res.Errors
		}
	}
	if len(failing) > 0 {
		u.log.Info("quote request rejected", zap.String("requester_id", sess.UserID), zap.Int("failing_steps", len(failing)))
		return entities.QuoteRequest{}, &StepValidationError{Steps: failing}
	}

	now := u.now().UTC()
	payload := quoteform.FormatForSubmissionAt(form, now)

	q := entities.QuoteRequest{
		ID:          uuid.NewString(),
		RequesterID: sess.UserID,
		Status:      entities.QuoteRequestStatusPending,
		Submission:  payload,
		Warnings:    collectWarnings(payload.QuoteRequestForm),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		u.log.Error("quote request create failed", zap.String("quote_request_id", q.ID), zap.Error(err))
		return entities.QuoteRequest{}, err
	}
	u.log.Info("quote request submitted",
		zap.String("quote_request_id", created.ID),
		zap.String("requester_id", created.RequesterID),
		zap.String("volume_range", payload.MonthlyVolume.VolumeRange),
		zap.Int("warnings", len(created.Warnings)),
	)
	return created, nil
}

// collectWarnings merges every advisory check over a finalised form, keeping the
// first occurrence of each message.
func collectWarnings(form entities.QuoteRequestForm) []string {
	actualSpeed := 0
	if form.Requirements.MinSpeed != nil {
		actualSpeed = *form.Requirements.MinSpeed
	}
	monthly := quoteform.CalculateTotalMonthlyCost(form.MonthlyVolume, form.CurrentSetup.CurrentCosts)

	groups := [][]string{
		quoteform.ValidateBusinessLogic(form).Warnings,
		quoteform.GetWarningsForCombination(form),
		quoteform.ValidateVolumeAlignment(form.MonthlyVolume.Total, form.Requirements.SuggestedSpeed, actualSpeed),
		quoteform.ValidateBudget(form.Budget.MaxLeasePrice, monthly),
	}

	seen := map[string]struct{}{}
	out := []string{}
	for _, g := range groups {
		for _, w := range g {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	return out
}

func (u *QuoteRequestUseCase) GetByID(ctx context.Context, sess entities.Session, id string) (entities.QuoteRequest, error) {
	if !sess.Authenticated() {
		return entities.QuoteRequest{}, ErrMissingSession
	}
	q, err := u.load(ctx, id)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	switch sess.Role {
	case entities.RoleAdmin:
		return q, nil
	case entities.RoleBuyer:
		if q.RequesterID != sess.UserID {
			return entities.QuoteRequest{}, ErrForbidden
		}
		return q, nil
	case entities.RoleVendor:
		bought, err := u.leadBought(ctx, q.ID, sess.UserID)
		if err != nil {
			return entities.QuoteRequest{}, err
		}
		if !bought {
			return q.WithoutContact(), nil
		}
		return q, nil
	default:
		return entities.QuoteRequest{}, ErrForbidden
	}
}

// leadBought reports whether vendorID holds an approved lead payment for the
// request.
func (u *QuoteRequestUseCase) leadBought(ctx context.Context, quoteRequestID, vendorID string) (bool, error) {
	if u.leads == nil {
		return false, nil
	}
	payments, err := u.leads.ListByQuoteRequestID(ctx, quoteRequestID)
	if err != nil {
		u.log.Error("list lead payments failed", zap.String("quote_request_id", quoteRequestID), zap.Error(err))
		return false, err
	}
	for _, p := range payments {
		if p.VendorID == vendorID && p.Status == entities.LeadPaymentStatusApproved {
			return true, nil
		}
	}
	return false, nil
}

func (u *QuoteRequestUseCase) ListMine(ctx context.Context, sess entities.Session) ([]entities.QuoteRequest, error) {
	if !sess.Authenticated() {
		return nil, ErrMissingSession
	}
	return u.repo.ListByRequesterID(ctx, sess.UserID)
}

func (u *QuoteRequestUseCase) Accept(ctx context.Context, sess entities.Session, id string) (entities.QuoteRequest, error) {
	return u.transition(ctx, sess, id, entities.QuoteRequestStatusAccepted)
}

func (u *QuoteRequestUseCase) Decline(ctx context.Context, sess entities.Session, id string) (entities.QuoteRequest, error) {
	return u.transition(ctx, sess, id, entities.QuoteRequestStatusDeclined)
}

func (u *QuoteRequestUseCase) Cancel(ctx context.Context, sess entities.Session, id string) (entities.QuoteRequest, error) {
	return u.transition(ctx, sess, id, entities.QuoteRequestStatusCancelled)
}

func (u *QuoteRequestUseCase) transition(ctx context.Context, sess entities.Session, id string, to entities.QuoteRequestStatus) (entities.QuoteRequest, error) {
	if !sess.Authenticated() {
		return entities.QuoteRequest{}, ErrMissingSession
	}
	q, err := u.load(ctx, id)
	if err != nil {
		return entities.QuoteRequest{}, err
	}

	owner := q.RequesterID == sess.UserID
	if to == entities.QuoteRequestStatusCancelled && !owner {
		return entities.QuoteRequest{}, ErrForbidden
	}
	if !owner && sess.Role != entities.RoleAdmin {
		return entities.QuoteRequest{}, ErrForbidden
	}
	if q.Status != entities.QuoteRequestStatusPending {
		return entities.QuoteRequest{}, ErrInvalidStatusTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, q.ID, entities.QuoteRequestStatusPending, to, u.now().UTC())
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if updated.ID == "" {
		// Someone else moved it out of pending first.
		return entities.QuoteRequest{}, ErrInvalidStatusTransition
	}
	u.log.Info("quote request status changed",
		zap.String("quote_request_id", updated.ID),
		zap.String("status", string(updated.Status)),
		zap.String("by", sess.UserID),
	)
	return updated, nil
}

func (u *QuoteRequestUseCase) load(ctx context.Context, id string) (entities.QuoteRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteRequest{}, ErrInvalidQuoteRequestID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if q.ID == "" {
		return entities.QuoteRequest{}, ErrQuoteRequestNotFound
	}
	return q, nil
}
