package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"foodhub/internal/config"
	"foodhub/internal/db"
	"foodhub/internal/model"
	"foodhub/internal/repository"
)

// SeedUser represents one record of the seed fixture file.
type SeedUser struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	State    string `json:"state"`
}

func main() {
	fixturePath := flag.String("fixture", "testdata/users.json", "path to a JSON file of seed users")
	flag.Parse()

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.User{}, &model.FoodList{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	raw, err := os.ReadFile(*fixturePath)
	if err != nil {
		log.Fatalf("read fixture: %v", err)
	}

	var seedUsers []SeedUser
	if err := json.Unmarshal(raw, &seedUsers); err != nil {
		log.Fatalf("parse fixture: %v", err)
	}

	userRepo := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	created, skipped := 0, 0
	for _, su := range seedUsers {
		if su.Email == "" || su.Password == "" {
			log.Printf("skipping seed user without email or password: %q", su.FullName)
			skipped++
			continue
		}

		// Seeding is idempotent: existing emails are left untouched.
		if _, err := userRepo.FindByEmail(ctx, su.Email); err == nil {
			skipped++
			continue
		} else if err != gorm.ErrRecordNotFound {
			log.Fatalf("lookup %s: %v", su.Email, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("hash password for %s: %v", su.Email, err)
		}

		user := &model.User{
			FullName:     su.FullName,
			Email:        su.Email,
			PasswordHash: string(hash),
			Phone:        su.Phone,
			City:         su.City,
			State:        su.State,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("create %s: %v", su.Email, err)
		}
		created++
	}

	log.Printf("seed complete: %d created, %d skipped", created, skipped)
}
