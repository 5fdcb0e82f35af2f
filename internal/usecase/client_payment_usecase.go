package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"rab_service/internal/domain/entities"
	"rab_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrClientPaymentNotFound          = errors.New("client payment not found")
	ErrInvalidPaymentAmount           = errors.New("invalid payment amount")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentOptions tunes payload handling for the payment gateway.
//
// In mock mode missing or malformed payloads are replaced by an empty object and
// the payer checks are skipped. The sandbox fields only apply to TEST- tokens.
type PaymentOptions struct {
	MockMode        bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

// IClientPaymentUseCase charges project clients and books approved payments.
//
//   - An approved payment is recorded as a cash_in transaction whose reference is
//     the provider payment id.
//   - A pending or rejected payment is stored for traceability and books nothing.
type IClientPaymentUseCase interface {
	CollectPayment(ctx context.Context, projectID string, amount entities.Money, mpPayload json.RawMessage) (entities.ClientPayment, error)
	GetByID(ctx context.Context, id string) (entities.ClientPayment, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.ClientPayment, error)
}

type ClientPaymentUseCase struct {
	repo        interfaces.IClientPaymentRepository
	projectRepo interfaces.IProjectRepository
	txRepo      interfaces.ITransactionRepository
	gateway     interfaces.IPaymentGateway
	opts        PaymentOptions
	now         func() time.Time
	newID       func() string
	log         *zap.Logger
}

var _ IClientPaymentUseCase = (*ClientPaymentUseCase)(nil)

func NewClientPaymentUseCase(
	repo interfaces.IClientPaymentRepository,
	projectRepo interfaces.IProjectRepository,
	txRepo interfaces.ITransactionRepository,
	gateway interfaces.IPaymentGateway,
	opts PaymentOptions,
) *ClientPaymentUseCase {
	return &ClientPaymentUseCase{
		repo:        repo,
		projectRepo: projectRepo,
		txRepo:      txRepo,
		gateway:     gateway,
		opts:        opts,
		now:         func() time.Time { return time.Now().UTC() },
		newID:       uuid.NewString,
		log:         zap.L().Named("payment.usecase"),
	}
}

func (u *ClientPaymentUseCase) CollectPayment(ctx context.Context, projectID string, amount entities.Money, mpPayload json.RawMessage) (entities.ClientPayment, error) {
	log := u.log.With(zap.String("project_id", strings.TrimSpace(projectID)))
	log.Info("[payment][usecase] collect start", zap.Int64("amount", int64(amount)), zap.Int("payload_len", len(mpPayload)))

	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.ClientPayment{}, ErrInvalidProjectID
	}
	if amount <= 0 {
		return entities.ClientPayment{}, ErrInvalidPaymentAmount
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.opts.MockMode {
			log.Warn("[payment][usecase] invalid payload")
			return entities.ClientPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		log.Error("[payment][usecase] gateway not configured")
		return entities.ClientPayment{}, errors.New("payment gateway not configured")
	}
	if u.projectRepo == nil || u.txRepo == nil || u.repo == nil {
		return entities.ClientPayment{}, errors.New("payment repositories not configured")
	}

	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return entities.ClientPayment{}, persistenceError(err)
	}
	if project.ID == "" {
		return entities.ClientPayment{}, ErrProjectNotFound
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		log.Warn("[payment][usecase] payload is not an object", zap.Error(err))
		if !u.opts.MockMode {
			return entities.ClientPayment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !u.opts.MockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Warn("[payment][usecase] missing payment_method_id")
			return entities.ClientPayment{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Warn("[payment][usecase] missing/invalid payer")
			return entities.ClientPayment{}, ErrInvalidMPPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = project.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Project %s", project.Name)
	}
	// The amount charged is always the one requested for the project.
	reqMap["transaction_amount"] = amount.Decimal().InexactFloat64()
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.ClientPayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Error("[payment][usecase] payment gateway failed", zap.Error(err))
		return entities.ClientPayment{}, classifyGatewayError(err)
	}
	log.Info("[payment][usecase] payment gateway answered",
		zap.String("provider_payment_id", providerPaymentID),
		zap.String("provider_status", providerStatus),
	)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn("[payment][usecase] provider response unmarshal failed", zap.Error(err))
	}

	now := u.now()
	p := entities.ClientPayment{
		ID:                 providerPaymentID,
		ProjectID:          project.ID,
		Amount:             amount,
		Date:               now,
		Status:             entities.PaymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	if p.ID == "" {
		p.ID = u.newID()
	}

	if p.Status == entities.PaymentStatusApproved {
		tx := entities.Transaction{
			ID:          u.newID(),
			ProjectID:   project.ID,
			Category:    entities.TransactionCategoryCashIn,
			Amount:      amount,
			Date:        now,
			Description: fmt.Sprintf("Client payment %s", p.ID),
			Reference:   p.ID,
			CreatedAt:   now,
		}
		booked, err := u.txRepo.Create(ctx, tx)
		if err != nil {
			log.Error("[payment][usecase] cash_in booking failed", zap.String("payment_id", p.ID), zap.Error(err))
			return entities.ClientPayment{}, persistenceError(err)
		}
		p.TransactionID = booked.ID
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("[payment][usecase] payment repository create failed", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.ClientPayment{}, persistenceError(err)
	}
	log.Info("[payment][usecase] collect success",
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)),
		zap.String("transaction_id", created.TransactionID),
	)
	return created, nil
}

func (u *ClientPaymentUseCase) GetByID(ctx context.Context, id string) (entities.ClientPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ClientPayment{}, ErrClientPaymentNotFound
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ClientPayment{}, persistenceError(err)
	}
	if p.ID == "" {
		return entities.ClientPayment{}, ErrClientPaymentNotFound
	}
	return p, nil
}

func (u *ClientPaymentUseCase) ListByProjectID(ctx context.Context, projectID string) ([]entities.ClientPayment, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	items, err := u.repo.ListByProjectID(ctx, projectID)
	if err != nil {
		return nil, persistenceError(err)
	}
	return items, nil
}

func (u *ClientPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox either payer.id or payer.email may be used; fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(u.opts.TestPayerEmail); email != "" {
			payer["email"] = email
		} else if u.isSandbox() {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

// normalizeSandboxPayer swaps the configured sandbox payer user id for its email,
// which is what the sandbox accepts.
func (u *ClientPaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !u.isSandbox() {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	userID := strings.TrimSpace(u.opts.TestPayerUserID)
	email := strings.TrimSpace(u.opts.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	u.log.Debug("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func (u *ClientPaymentUseCase) isSandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(u.opts.AccessToken), "TEST-")
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

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found"), strings.Contains(msg, `"code":2002`):
		return fmt.Errorf("%w: %w", ErrPaymentGatewayCustomerNotFound, err)
	case strings.Contains(msg, "invalid users involved"), strings.Contains(msg, `"code":2034`):
		return fmt.Errorf("%w: %w", ErrPaymentGatewayInvalidUsers, err)
	case strings.Contains(msg, `"error":"unauthorized"`), strings.Contains(msg, `"status":401`):
		return fmt.Errorf("%w: %w", ErrPaymentGatewayUnauthorized, err)
	case strings.Contains(msg, `"error":"bad_request"`), strings.Contains(msg, `"status":400`):
		return fmt.Errorf("%w: %w", ErrPaymentGatewayBadRequest, err)
	}
	return err
}
