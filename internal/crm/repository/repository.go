package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound returned when a record does not exist
var ErrNotFound = errors.New("record not found")

// Repositories CRM repository collection
type Repositories struct {
	User         *UserRepository
	Showroom     *ShowroomRepository
	Customer     *CustomerRepository
	Transaction  *TransactionRepository
	Appointment  *AppointmentRepository
	Task         *TaskRepository
	Announcement *AnnouncementRepository
	Media        *MediaRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Showroom:     NewShowroomRepository(db),
		Customer:     NewCustomerRepository(db),
		Transaction:  NewTransactionRepository(db),
		Appointment:  NewAppointmentRepository(db),
		Task:         NewTaskRepository(db),
		Announcement: NewAnnouncementRepository(db),
		Media:        NewMediaRepository(db),
	}
}
