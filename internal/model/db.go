package model

import "gorm.io/gorm"

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Content{}); err != nil {
		return err
	}

	if err := db.AutoMigrate(&Meta{}); err != nil {
		return err
	}

	if err := db.AutoMigrate(&Relationship{}); err != nil {
		return err
	}

	return nil
}
