package payment

//go:generate go run go.uber.org/mock/mockgen -source=./payment.go -destination=./mocks/payment_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"scoop/config"
	"scoop/shared/timezone"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidConfirmation = errors.New("invalid payment confirmation")
	ErrExpiredConfirmation = errors.New("payment confirmation has expired")
	ErrMismatch            = errors.New("payment confirmation does not match booking")
)

const defaultExpireMin = 30

// Confirmation is issued by the payment collaborator once a charge settles.
type Confirmation struct {
	CustomerID  string `json:"customer_id"`
	SlotID      string `json:"slot_id"`
	AmountCents int64  `json:"amount_cents"`
	jwt.RegisteredClaims
}

type Verifier interface {
	// Verify checks the token signature and that it was issued for this customer and slot.
	Verify(token, customerID, slotID string) (*Confirmation, error)
}

type verifierImpl struct {
	config *config.Config
}

func New(cfg *config.Config) Verifier {
	return &verifierImpl{
		config: cfg,
	}
}

func (v *verifierImpl) Verify(token, customerID, slotID string) (*Confirmation, error) {
	if token == "" {
		return nil, ErrInvalidConfirmation
	}

	options := []jwt.ParserOption{jwt.WithTimeFunc(timezone.Now), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if v.config.External.Payment.Issuer != "" {
		options = append(options, jwt.WithIssuer(v.config.External.Payment.Issuer))
	}

	parsed, err := jwt.ParseWithClaims(token, &Confirmation{}, func(_ *jwt.Token) (interface{}, error) {
		return []byte(v.config.External.Payment.Secret), nil
	}, options...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredConfirmation
		}

		return nil, fmt.Errorf("%w: %w", ErrInvalidConfirmation, err)
	}

	confirmation, ok := parsed.Claims.(*Confirmation)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidConfirmation
	}

	if confirmation.CustomerID != customerID || confirmation.SlotID != slotID || confirmation.AmountCents <= 0 {
		return nil, ErrMismatch
	}

	return confirmation, nil
}

// Issue signs a confirmation the way the payment collaborator does. Used by
// operators to replay a settled charge and by tests.
func Issue(cfg *config.Config, customerID, slotID string, amountCents int64) (string, error) {
	issuedAt := timezone.Now()

	expireMin := cfg.External.Payment.ExpireMin
	if expireMin <= 0 {
		expireMin = defaultExpireMin
	}

	claims := Confirmation{
		CustomerID:  customerID,
		SlotID:      slotID,
		AmountCents: amountCents,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Duration(expireMin) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			Issuer:    cfg.External.Payment.Issuer,
			Subject:   customerID,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.External.Payment.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign confirmation: %w", err)
	}

	return signed, nil
}
