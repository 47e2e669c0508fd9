package service

import "gorm.io/gorm"

// runTx executes fn inside a database transaction. A nil db runs fn with a
// nil tx, which lets unit tests exercise transactional paths against
// in-memory repository fakes.
func runTx(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.Transaction(fn)
}
