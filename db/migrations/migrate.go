package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/orbitln/orbithub/db"
)

// Migrate brings the schema up to date. Only the liquidity catalog cache
// lives in the database; ledger entries are kept in memory only.
func Migrate(gormDB *gorm.DB) error {
	m := gormigrate.New(gormDB, gormigrate.DefaultOptions, []*gormigrate.Migration{
		initialMigration,
	})

	return m.Migrate()
}

var initialMigration = &gormigrate.Migration{
	ID: "202608251000_initial",
	Migrate: func(tx *gorm.DB) error {
		return tx.AutoMigrate(&db.LiquidityOption{})
	},
	Rollback: func(tx *gorm.DB) error {
		return tx.Migrator().DropTable(&db.LiquidityOption{})
	},
}
