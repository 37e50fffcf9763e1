package database

import (
	"fmt"
	"log"
	"sync"

	"coachally/configs"
	"coachally/internal/enums"
	"coachally/internal/models"
	"coachally/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	db   *gorm.DB
	once sync.Once
)

func GetDB(config *configs.Config) *gorm.DB {
	once.Do(func() {
		initialize(config)
	})
	return db
}

func initialize(config *configs.Config) {
	psql := getPSQL(config)
	dsn := fmt.Sprintf(
		"host=%v user=%v password=%v dbname=%v port=%v sslmode=%v TimeZone=%v",
		psql.Host, psql.User, psql.Password, psql.Name, psql.Port, psql.SSL, psql.Timezone,
	)
	var err error
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	migrate()
	seedCoachUser()
}

func getPSQL(config *configs.Config) *models.PSQL {
	return &models.PSQL{
		Host:     config.Viper.GetString("database.host"),
		Port:     config.Viper.GetInt("database.port"),
		User:     config.Viper.GetString("database.user"),
		Password: config.Viper.GetString("database.password"),
		Name:     config.Viper.GetString("database.name"),
		SSL:      config.Viper.GetString("database.ssl"),
		Timezone: config.Viper.GetString("database.timezone"),
	}
}

func migrate() {
	err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Conversation{},
		&models.UserConversation{},
		&models.Message{},
		&models.Task{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migrated successfully")
}

// seedCoachUser makes sure the AI coach row exists. Its password is random
// and never shared, the coach only speaks through the completion API.
func seedCoachUser() {
	var coach models.User
	result := db.Where("email = ?", enums.COACH_EMAIL).First(&coach)
	if result.Error == nil {
		return
	}

	passwordHash, err := utils.HashPassword(utils.GenerateSecretKey())
	if err != nil {
		log.Fatalf("Failed to hash coach password: %v", err)
	}
	coach = models.User{
		FirstName:    enums.COACH_FIRST_NAME,
		LastName:     enums.COACH_LAST_NAME,
		Email:        enums.COACH_EMAIL,
		PasswordHash: passwordHash,
		IsCoach:      true,
		IsOnline:     true,
	}
	if err := db.Create(&coach).Error; err != nil {
		log.Fatalf("Failed to seed coach user: %v", err)
	}
	log.Printf("Seeded coach user with id %v", coach.ID)
}

// GetCoachUserID returns the seeded coach's id, 0 when missing.
func GetCoachUserID() uint {
	var coach models.User
	if err := db.Where("email = ?", enums.COACH_EMAIL).First(&coach).Error; err != nil {
		return 0
	}
	return coach.ID
}
