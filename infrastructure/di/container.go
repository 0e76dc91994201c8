package di

import (
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"hai-backend/application/ports"
	"hai-backend/infrastructure/config"
)

// Container holds all application dependencies
type Container struct {
	Config          *config.Config
	Logger          *zap.Logger
	S3Client        *s3.Client
	Store           ports.Store
	PropertyRepo    ports.PropertyRepository
	GuestRepo       ports.GuestRepository
	ReservationRepo ports.ReservationRepository
	MessageRepo     ports.MessageRepository
	StaffRepo       ports.StaffRepository
	TaskRepo        ports.TaskRepository
	EmailPublisher  ports.EmailPublisher
}
