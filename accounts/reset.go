package accounts

import (
	"context"

	"renthub/apperr"
	"renthub/logger"
	"renthub/models"
	"renthub/store"
	"renthub/tools"
)

// IssueResetCode generates a numeric code for the account behind email and
// hands it to the notifier. Earlier codes of the user are discarded in the
// same transaction. Unknown, malformed or throttled emails return nil
// without doing anything so callers cannot tell them apart.
func (s *Service) IssueResetCode(ctx context.Context, email string) error {
	email = models.NormalizeEmail(email)
	if !models.ValidEmail(email) {
		return nil
	}
	if !s.limiter.Allow(ctx, "reset:"+email) {
		logger.Warn("password reset throttled", "email", email)
		return nil
	}

	user, err := s.db.Users().FindByEmail(email)
	if apperr.IsNotFound(err) {
		return nil
	} else if err != nil {
		return err
	}

	code, err := tools.RandomNumbers(s.settings.CodeLength)
	if err != nil {
		return err
	}
	err = s.db.Transaction(ctx, func(tx store.Store) error {
		if err := tx.ResetCodes().DeleteByUser(user.ID); err != nil {
			return err
		}
		return tx.ResetCodes().Create(&models.ResetCode{
			UserID:    user.ID,
			CodeHash:  tools.EncryptTextSHA512(code),
			ExpiresAt: s.now().Add(s.settings.CodeTTL),
		})
	})
	if err != nil {
		return err
	}

	if err := s.notifier.SendResetCode(ctx, user, code); err != nil {
		logger.Error("reset code delivery failed", "user_id", user.ID, "err", err.Error())
	}
	return nil
}

// RedeemResetCode sets a new password when code matches the latest unexpired
// code of the account. The password update and the code removal commit
// together. Every mismatch returns apperr.ErrInvalidOrExpired.
func (s *Service) RedeemResetCode(ctx context.Context, email, code, newPassword string) error {
	if msg := tools.CheckPassword(newPassword); msg != "" {
		return apperr.Invalid("new_password", msg)
	}
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	return s.db.Transaction(ctx, func(tx store.Store) error {
		user, err := tx.Users().FindByEmail(models.NormalizeEmail(email))
		if apperr.IsNotFound(err) {
			return apperr.ErrInvalidOrExpired
		} else if err != nil {
			return err
		}

		latest, err := tx.ResetCodes().Latest(user.ID)
		if apperr.IsNotFound(err) {
			return apperr.ErrInvalidOrExpired
		} else if err != nil {
			return err
		}
		if !tools.EqualHash(latest.CodeHash, tools.EncryptTextSHA512(code)) || latest.IsExpired(s.now()) {
			return apperr.ErrInvalidOrExpired
		}

		if err := tx.Users().UpdatePassword(user.ID, hash); err != nil {
			return err
		}
		return tx.ResetCodes().DeleteByUser(user.ID)
	})
}
