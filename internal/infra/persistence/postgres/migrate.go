package postgres

import (
	"context"

	"pixorva/internal/domain/lifecycle"
	"pixorva/internal/errors"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// RegisterMigrations creates or updates the profiles and products tables on startup.
func RegisterMigrations(lc fx.Lifecycle, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := db.WithContext(ctx).AutoMigrate(&ProfileModel{}, &ProductModel{}); err != nil {
				return errors.Wrap(err, "failed to migrate PostgreSQL schema")
			}

			return nil
		},
	})
}
