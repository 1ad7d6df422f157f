package specification

import "gorm.io/gorm"

// RegistrationStatusIs filters registrations by lifecycle status.
type RegistrationStatusIs struct {
	Status string
}

func (s RegistrationStatusIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type PaymentStatusIs struct {
	Status string
}

func (s PaymentStatusIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("payment_status = ?", s.Status)
}
