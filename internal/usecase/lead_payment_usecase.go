package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"quote_service/internal/domain/entities"
	"quote_service/internal/domain/quoteform"
	"quote_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrLeadPaymentNotFound            = errors.New("lead payment not found")
	ErrInvalidLeadPaymentID           = errors.New("invalid lead payment id")
	ErrInvalidProviderPayload         = errors.New("invalid payment provider payload")
	ErrLeadNotAvailable               = errors.New("quote request is not open for leads")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrQuoteRepositoryNotConfigured   = errors.New("quote request repository not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// ILeadPaymentUseCase lets a vendor buy access to a pending quote request.
//
// The fee is taken from the request's volume bucket, never from the caller's
// payload.
type ILeadPaymentUseCase interface {
	Purchase(ctx context.Context, sess entities.Session, quoteRequestID string, providerPayload json.RawMessage) (entities.LeadPayment, error)
	GetByID(ctx context.Context, sess entities.Session, id string) (entities.LeadPayment, error)
	LatestForQuoteRequest(ctx context.Context, sess entities.Session, quoteRequestID string) (entities.LeadPayment, error)
}

type LeadPaymentUseCase struct {
	repo      interfaces.ILeadPaymentRepository
	quoteRepo interfaces.IQuoteRequestRepository
	gateway   interfaces.IPaymentGateway
	mockMode  bool
	log       *zap.Logger
	now       func() time.Time
}

var _ ILeadPaymentUseCase = (*LeadPaymentUseCase)(nil)

func NewLeadPaymentUseCase(repo interfaces.ILeadPaymentRepository, quoteRepo interfaces.IQuoteRequestRepository, gateway interfaces.IPaymentGateway, mockMode bool, log *zap.Logger) *LeadPaymentUseCase {
	return &LeadPaymentUseCase{
		repo:      repo,
		quoteRepo: quoteRepo,
		gateway:   gateway,
		mockMode:  mockMode,
		log:       log.Named("lead.usecase"),
		now:       time.Now,
	}
}

func (u *LeadPaymentUseCase) Purchase(ctx context.Context, sess entities.Session, quoteRequestID string, providerPayload json.RawMessage) (entities.LeadPayment, error) {
	if !sess.Authenticated() {
		return entities.LeadPayment{}, ErrMissingSession
	}
	if sess.Role != entities.RoleVendor && sess.Role != entities.RoleAdmin {
		return entities.LeadPayment{}, ErrForbidden
	}
	quoteRequestID = strings.TrimSpace(quoteRequestID)
	if quoteRequestID == "" {
		return entities.LeadPayment{}, ErrInvalidQuoteRequestID
	}
	log := u.log.With(zap.String("quote_request_id", quoteRequestID), zap.String("vendor_id", sess.UserID))

	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		if !u.mockMode {
			log.Info("invalid provider payload", zap.Int("payload_len", len(providerPayload)))
			return entities.LeadPayment{}, ErrInvalidProviderPayload
		}
		providerPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.LeadPayment{}, ErrPaymentGatewayNotConfigured
	}
	if u.quoteRepo == nil {
		return entities.LeadPayment{}, ErrQuoteRepositoryNotConfigured
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteRequestID)
	if err != nil {
		log.Error("load quote request failed", zap.Error(err))
		return entities.LeadPayment{}, err
	}
	if q.ID == "" {
		return entities.LeadPayment{}, ErrQuoteRequestNotFound
	}
	if q.Status != entities.QuoteRequestStatusPending {
		log.Info("lead not available", zap.String("status", string(q.Status)))
		return entities.LeadPayment{}, ErrLeadNotAvailable
	}
	if q.RequesterID == sess.UserID {
		return entities.LeadPayment{}, ErrForbidden
	}

	fee := quoteform.LeadFee(q.Submission.MonthlyVolume.VolumeRange)

	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err != nil || reqMap == nil {
		if !u.mockMode {
			return entities.LeadPayment{}, ErrInvalidProviderPayload
		}
		reqMap = map[string]any{}
	}
	if !u.mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Info("missing payment_method_id")
			return entities.LeadPayment{}, ErrInvalidProviderPayload
		}
		ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Info("missing or invalid payer")
			return entities.LeadPayment{}, ErrInvalidProviderPayload
		}
	}

	// external_reference lets provider events be reconciled with the request.
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = quoteRequestID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Quote request lead %s", quoteRequestID)
	}
	reqMap["transaction_amount"] = fee
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.LeadPayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Warn("payment gateway failed", zap.Error(err))
		return entities.LeadPayment{}, mapGatewayError(err)
	}

	var parsed map[string]any
	if len(providerResp) > 0 {
		if err := json.Unmarshal(providerResp, &parsed); err != nil {
			log.Warn("provider response unmarshal failed", zap.Error(err))
		}
	}

	id := providerPaymentID
	if id == "" {
		id = uuid.NewString()
	}
	p := entities.LeadPayment{
		ID:                 id,
		QuoteRequestID:     quoteRequestID,
		VendorID:           sess.UserID,
		Amount:             fee,
		Date:               u.now().UTC(),
		Status:             leadPaymentStatus(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("lead payment create failed", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.LeadPayment{}, err
	}
	log.Info("lead purchased",
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)),
		zap.Float64("amount", created.Amount),
	)
	return created, nil
}

// GetByID returns a payment to the vendor who made it or to an admin.
func (u *LeadPaymentUseCase) GetByID(ctx context.Context, sess entities.Session, id string) (entities.LeadPayment, error) {
	if !sess.Authenticated() {
		return entities.LeadPayment{}, ErrMissingSession
	}
	if sess.Role != entities.RoleVendor && sess.Role != entities.RoleAdmin {
		return entities.LeadPayment{}, ErrForbidden
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LeadPayment{}, ErrInvalidLeadPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.LeadPayment{}, err
	}
	if p.ID == "" {
		return entities.LeadPayment{}, ErrLeadPaymentNotFound
	}
	if sess.Role == entities.RoleVendor && p.VendorID != sess.UserID {
		return entities.LeadPayment{}, ErrForbidden
	}
	return p, nil
}

// LatestForQuoteRequest returns the most recent payment for a request. Vendors
// only see their own payments; buyers see none.
func (u *LeadPaymentUseCase) LatestForQuoteRequest(ctx context.Context, sess entities.Session, quoteRequestID string) (entities.LeadPayment, error) {
	if !sess.Authenticated() {
		return entities.LeadPayment{}, ErrMissingSession
	}
	if sess.Role != entities.RoleVendor && sess.Role != entities.RoleAdmin {
		return entities.LeadPayment{}, ErrForbidden
	}
	quoteRequestID = strings.TrimSpace(quoteRequestID)
	if quoteRequestID == "" {
		return entities.LeadPayment{}, ErrInvalidQuoteRequestID
	}

	items, err := u.repo.ListByQuoteRequestID(ctx, quoteRequestID)
	if err != nil {
		return entities.LeadPayment{}, err
	}

	var latest entities.LeadPayment
	for _, p := range items {
		if sess.Role == entities.RoleVendor && p.VendorID != sess.UserID {
			continue
		}
		if latest.ID == "" || p.Date.After(latest.Date) {
			latest = p
		}
	}
	if latest.ID == "" {
		return entities.LeadPayment{}, ErrLeadPaymentNotFound
	}
	return latest, nil
}

func leadPaymentStatus(providerStatus string) entities.LeadPaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "authorized":
		return entities.LeadPaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.LeadPaymentStatusDenied
	}
	return entities.LeadPaymentStatusPending
}

func mapGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
