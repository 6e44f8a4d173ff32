package models

import "time"

// Worker represents a row in the workers table.
type Worker struct {
	WorkerID string  `db:"worker_id"`
	Name     string  `db:"name"`
	Contact  string  `db:"contact"`
	Email    *string `db:"email"`
	Address  string  `db:"address"`
	Status   string  `db:"status"`
	HireDate time.Time `db:"hire_date"`
	AuditFields
}
