package impl

import (
	"context"
	"time"

	"clinica/internal/domain/entity"
	domainerrors "clinica/internal/domain/errors"
	"clinica/internal/domain/service"
	"clinica/internal/errors"
	"clinica/internal/util"
)

// codeIssuer centralizes the lifecycle of one-time codes: issue (overwriting
// any outstanding code for the same subject and purpose) and consume
// (single use, expiry enforced).
type codeIssuer struct {
	store         service.CodeStore
	activationTTL time.Duration
	loginTTL      time.Duration
}

func (ci *codeIssuer) ttl(purpose entity.CodePurpose) time.Duration {
	if purpose == entity.PurposeLogin2FA {
		return ci.loginTTL
	}

	return ci.activationTTL
}

// issue generates a fresh code and stores it, superseding any previous code
// for the same subject and purpose.
func (ci *codeIssuer) issue(ctx context.Context, subject string, purpose entity.CodePurpose) (*entity.VerificationCode, error) {
	raw, err := util.GenerateNumericCode()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate verification code")
	}

	now := time.Now().UTC()
	code := &entity.VerificationCode{
		Subject:   normalizeEmail(subject),
		Code:      raw,
		Purpose:   purpose,
		IssuedAt:  now,
		ExpiresAt: now.Add(ci.ttl(purpose)),
	}

	if err := ci.store.Put(ctx, code); err != nil {
		return nil, errors.Wrap(err, "failed to store verification code")
	}

	return code, nil
}

// consume validates a presented code and removes it on success. Expired codes
// are removed as well, so a retry with the same code cannot succeed.
func (ci *codeIssuer) consume(ctx context.Context, subject string, purpose entity.CodePurpose, presented string) error {
	subject = normalizeEmail(subject)

	stored, err := ci.store.Get(ctx, subject, purpose)
	if errors.Is(err, service.ErrCodeNotFound) {
		return domainerrors.ErrCodeInvalid
	}
	if err != nil {
		return errors.Wrap(err, "failed to load verification code")
	}

	if stored.Expired(time.Now().UTC()) {
		if err := ci.store.Delete(ctx, subject, purpose); err != nil {
			return errors.Wrap(err, "failed to discard expired code")
		}

		return domainerrors.ErrCodeExpired
	}

	if !stored.Matches(presented) {
		return domainerrors.ErrCodeInvalid
	}

	if err := ci.store.Delete(ctx, subject, purpose); err != nil {
		return errors.Wrap(err, "failed to consume verification code")
	}

	return nil
}
