package service

import (
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/config"
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/repository"
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
)

// Services CRM service collection
type Services struct {
	Auth         *AuthService
	User         *UserService
	Showroom     *ShowroomService
	Customer     *CustomerService
	Appointment  *AppointmentService
	Task         *TaskService
	Announcement *AnnouncementService
	Dashboard    *DashboardService
	Report       *ReportService
	Media        *MediaService
}

func NewServices(repos *repository.Repositories, rdb *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	return &Services{
		Auth:         NewAuthService(repos.User, rdb, cfg),
		User:         NewUserService(repos.User),
		Showroom:     NewShowroomService(repos.Showroom),
		Customer:     NewCustomerService(repos.Customer, repos.Transaction, repos.User),
		Appointment:  NewAppointmentService(repos.Appointment, repos.Customer),
		Task:         NewTaskService(repos.Task),
		Announcement: NewAnnouncementService(repos.Announcement),
		Dashboard:    NewDashboardService(repos.Customer, repos.Transaction, repos.Showroom, repos.User, rdb),
		Report:       NewReportService(repos.Customer),
		Media:        NewMediaService(repos.Media, repos.Customer, minioClient, cfg.MinIO.Bucket),
	}
}
