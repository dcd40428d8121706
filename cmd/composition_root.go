package cmd

import (
	"log/slog"
	"os"
	"time"

	"gorm.io/gorm"

	"deliverysys/internal/adapters/out/osrm"
	"deliverysys/internal/adapters/out/postgres"
	"deliverysys/internal/adapters/out/postgres/attendancerepo"
	"deliverysys/internal/core/application/usecases/commands"
	"deliverysys/internal/core/application/usecases/queries"
	"deliverysys/internal/jobs"
)

// CompositionRoot wires adapters to use case handlers.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph for the given configuration.
func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCheckInCommandHandler() commands.CheckInCommandHandler {
	var f commands.AttendanceUoWFactory = FuncAttendanceUoWFactory(func() commands.AttendanceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckInCommandHandler(f)
}

func (c *CompositionRoot) CreateCheckOutCommandHandler() commands.CheckOutCommandHandler {
	var f commands.AttendanceUoWFactory = FuncAttendanceUoWFactory(func() commands.AttendanceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckOutCommandHandler(f)
}

func (c *CompositionRoot) CreateCloseStaleShiftsCommandHandler() commands.CloseStaleShiftsCommandHandler {
	var f commands.AttendanceUoWFactory = FuncAttendanceUoWFactory(func() commands.AttendanceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCloseStaleShiftsCommandHandler(f)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListShiftsQueryHandler() queries.ListShiftsQueryHandler {
	return queries.NewListShiftsQueryHandler(attendancerepo.NewGormAttendanceRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetOrderRouteQueryHandler() queries.GetOrderRouteQueryHandler {
	return queries.NewGetOrderRouteQueryHandler(c.gormDB, osrm.NewClient(c.config.RouterBaseURL, c.logger))
}

func (c *CompositionRoot) CreatePerformanceStatsQueryHandler() queries.PerformanceStatsQueryHandler {
	return queries.NewPerformanceStatsQueryHandler(c.gormDB)
}

// CreateJobManager builds the background job manager. With auto-close
// disabled it manages nothing.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	maxOpen := time.Duration(c.config.ShiftAutoCloseHours) * time.Hour
	return jobs.NewJobManager(c.CreateCloseStaleShiftsCommandHandler(), maxOpen, c.logger)
}

// FuncOrderUoWFactory adapts a closure to the order unit-of-work factory
// interface expected by the command handlers.
type FuncOrderUoWFactory func() commands.OrderUoW

// Create builds a fresh unit of work.
func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// FuncAttendanceUoWFactory adapts a closure to the attendance unit-of-work
// factory interface expected by the command handlers.
type FuncAttendanceUoWFactory func() commands.AttendanceUoW

// Create builds a fresh unit of work.
func (f FuncAttendanceUoWFactory) Create() commands.AttendanceUoW {
	return f()
}
