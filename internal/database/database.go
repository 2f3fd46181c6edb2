package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sync"

	"contactcrm/internal/database/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var (
	instance *gorm.DB
	once     sync.Once
)

func GetConnect() *gorm.DB {
	once.Do(func() {
		if instance != nil {
			return
		}

		fmt.Println("Connecting to database ...")

		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			os.Getenv("DB_USERNAME"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_HOST"),
			os.Getenv("DB_PORT"),
			os.Getenv("DB_DATABASE"),
		)

		var err error
		instance, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatal("Database connection error: ", err)
		}

		sqlDB, err := instance.DB()
		if err != nil {
			log.Fatal("Database connection error: ", err)
		}

		err = sqlDB.Ping()
		if err != nil {
			log.Fatal("Database ping error: ", err)
		}

		fmt.Println("Connected to database")
	})

	return instance
}

// SetConnect replaces the shared connection. Tests use it to point the
// package at an in-memory sqlite database instead of MySQL.
func SetConnect(db *gorm.DB) {
	instance = db
}

func AutoMigrate() error {
	db := GetConnect()

	err := db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Contact{},
		&models.Group{},
		&models.ContactGroup{},
		&models.Note{},
		&models.Activity{},
	)

	if err != nil {
		return err
	}

	log.Println("GORM migrations completed successfully")
	return nil
}

func GetUserByEmail(email string) (*models.User, error) {
	db := GetConnect()

	var user models.User
	result := db.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}

	return &user, nil
}

func GetUserByID(id uint) (*models.User, error) {
	db := GetConnect()

	var user models.User
	result := db.First(&user, id)
	if result.Error != nil {
		return nil, result.Error
	}

	return &user, nil
}

func CreateUser(user *models.User) error {
	db := GetConnect()
	return db.Create(user).Error
}

func UserExistsByEmail(email string) (bool, error) {
	db := GetConnect()

	var count int64
	result := db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// IsNotFound reports whether err is the record-not-found error from the
// underlying ORM.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
