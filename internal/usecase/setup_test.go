package usecase

import (
	"fmt"
	"io"
	"testing"
	"time"

	"go-hospital-booking/config"
	"go-hospital-booking/internal/domain/entity"
	"go-hospital-booking/internal/repository"
	"go-hospital-booking/internal/service"
	"go-hospital-booking/pkg/jwt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.DoctorProfile{},
		&entity.AvailableTimeSlot{},
		&entity.Appointment{},
		&entity.AuditLog{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testAuditService(db *gorm.DB) service.AuditService {
	return service.NewAuditService(db, testLogger(), repository.NewAuditLogRepository())
}

func newTestAvailabilityUsecase(db *gorm.DB) AvailabilityUsecase {
	return NewAvailabilityUsecase(db, testLogger(),
		repository.NewTimeSlotRepository(), repository.NewAppointmentRepository(), testAuditService(db))
}

func newTestBookingUsecase(db *gorm.DB) BookingUsecase {
	return NewBookingUsecase(db, testLogger(),
		repository.NewAppointmentRepository(), repository.NewTimeSlotRepository(), testAuditService(db))
}

func newTestDoctorProfileUsecase(db *gorm.DB) DoctorProfileUsecase {
	return NewDoctorProfileUsecase(db, testLogger(),
		repository.NewDoctorProfileRepository(), testAuditService(db))
}

func newTestUserUsecase(db *gorm.DB) UserUsecase {
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
	return NewUserUsecase(db, testLogger(),
		repository.NewUserRepository(), jwtService, nil, testAuditService(db))
}

func seedUser(t *testing.T, db *gorm.DB, email, name string, role entity.Role) *entity.User {
	t.Helper()
	user := &entity.User{Email: email, FullName: name, Password: "hash", Role: role}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedSlot(t *testing.T, db *gorm.DB, doctor *entity.User, start, end time.Time) *entity.AvailableTimeSlot {
	t.Helper()
	slot := &entity.AvailableTimeSlot{DoctorID: doctor.ID, StartTime: start, EndTime: end}
	if err := db.Create(slot).Error; err != nil {
		t.Fatalf("seed slot: %v", err)
	}
	return slot
}
