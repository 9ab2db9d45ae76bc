package db

import (
	"context"
	"database/sql"

	"renthub/apperr"
	"renthub/store"

	"github.com/jinzhu/gorm"
)

// Store implements store.Database on top of gorm.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for health checks and ad hoc queries.
func (s *Store) DB() *gorm.DB { return s.db }

func (s *Store) Users() store.Users                     { return userRepo{s.db} }
func (s *Store) Properties() store.Properties           { return propertyRepo{s.db} }
func (s *Store) PropertyImages() store.PropertyImages   { return imageRepo{s.db} }
func (s *Store) Rentals() store.Rentals                 { return rentalRepo{s.db} }
func (s *Store) Favorites() store.Favorites             { return favoriteRepo{s.db} }
func (s *Store) ContactRequests() store.ContactRequests { return contactRepo{s.db} }
func (s *Store) Messages() store.Messages               { return messageRepo{s.db} }
func (s *Store) ResetCodes() store.ResetCodes           { return resetCodeRepo{s.db} }

// Transaction runs fn inside BEGIN/COMMIT. Any error (or panic) from fn
// rolls the transaction back and is returned unchanged.
func (s *Store) Transaction(ctx context.Context, fn func(tx store.Store) error) error {
	tx := s.db.BeginTx(ctx, &sql.TxOptions{})
	if tx.Error != nil {
		return apperr.Storage("begin transaction", tx.Error)
	}

	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	if err := fn(&Store{db: tx}); err != nil {
		return err
	}
	if err := tx.Commit().Error; err != nil {
		return apperr.Storage("commit transaction", err)
	}
	committed = true
	return nil
}
