package database

import (
	"github.com/concierge-pm/api/internal/config"
	"github.com/concierge-pm/api/internal/funder"
	"github.com/concierge-pm/api/internal/lease"
	"github.com/concierge-pm/api/internal/leasefunder"
	"github.com/concierge-pm/api/internal/resident"
	"github.com/concierge-pm/api/internal/revenueevent"
	"github.com/concierge-pm/api/internal/serviceorder"
	"github.com/concierge-pm/api/internal/servicerequest"
	"github.com/concierge-pm/api/internal/site"
	"github.com/concierge-pm/api/internal/space"
	"github.com/concierge-pm/api/internal/spacetype"
	"github.com/concierge-pm/api/internal/user"
	"github.com/concierge-pm/api/internal/workorder"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the Postgres database described by cfg.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&site.Site{},
		&spacetype.SpaceType{},
		&space.Space{},
		&resident.Resident{},
		&lease.Lease{},
		&funder.Funder{},
		&leasefunder.LeaseFunder{},
		&revenueevent.RevenueEvent{},
		&servicerequest.ServiceRequest{},
		&servicerequest.ServiceRequestServiceOrder{},
		&servicerequest.ServiceRequestWorkOrder{},
		&serviceorder.ServiceOrder{},
		&workorder.WorkOrder{},
	)
}
