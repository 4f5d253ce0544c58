package routes

import (
	"schichtplan-backend/config"
	"schichtplan-backend/internal/notify"
	"schichtplan-backend/internal/repository"
	"schichtplan-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps carries what every route group needs to build its handlers.
type Deps struct {
	DB     *gorm.DB
	Config config.Config
	Log    *zap.Logger
	Mailer notify.Mailer
}

func newScheduleUsecase(d Deps) *usecase.ScheduleUsecase {
	return usecase.NewScheduleUsecase(
		repository.NewCycleRepository(d.DB),
		repository.NewAssignmentRepository(d.DB),
		repository.NewExceptionRepository(d.DB),
		repository.NewEmployeeRepository(d.DB),
		d.Config.MaxRangeDays,
		d.Log,
	)
}

func newStaffingUsecase(d Deps) *usecase.StaffingUsecase {
	return usecase.NewStaffingUsecase(
		newScheduleUsecase(d),
		repository.NewRequirementRepository(d.DB),
		repository.NewGroupRepository(d.DB),
		repository.NewEmployeeRepository(d.DB),
		d.Config.RangeWorkers,
		d.Log,
	)
}

// Setup registers every route group.
func Setup(app *fiber.App, d Deps) {
	SetupAuthRoutes(app, d)
	SetupShiftRoutes(app, d)
	SetupCycleRoutes(app, d)
	SetupScheduleRoutes(app, d)
	SetupRequirementRoutes(app, d)
	SetupStaffingRoutes(app, d)
	SetupEmployeeRoutes(app, d)
	SetupAbsenceRoutes(app, d)
	SetupAnalyticsRoutes(app, d)
}
