package database

import "gorm.io/gorm"

// txConn is the narrow transaction surface the commit/rollback lifecycle
// needs, so the state machine can be exercised with an in-memory fake.
type txConn interface {
	Commit() error
	Rollback() error
}

type gormTx struct {
	tx *gorm.DB
}

func (t gormTx) Commit() error {
	return t.tx.Commit().Error
}

func (t gormTx) Rollback() error {
	return t.tx.Rollback().Error
}

// withTx drives the transaction lifecycle around fn. Exactly one of Commit
// or Rollback runs on every exit path: Commit when fn succeeds, Rollback
// when fn returns an error or panics. A failed Commit is not followed by a
// Rollback; the commit attempt already ended the transaction.
func withTx(tx txConn, fn func() error) error {
	done := false
	defer func() {
		if !done {
			tx.Rollback()
		}
	}()

	if err := fn(); err != nil {
		return err
	}

	done = true
	return tx.Commit()
}
