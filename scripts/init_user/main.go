package main

import (
	"fmt"
	"log"

	"github.com/pagecms/internal/config"
	"github.com/pagecms/internal/db"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("failed to initialize database:", err)
	}

	var count int64
	db.DB.Model(&db.User{}).Count(&count)
	if count > 0 {
		fmt.Println("a user already exists, nothing to do")
		return
	}

	username := cfg.SuperRootUserName
	if username == "" {
		username = "admin"
	}
	password := cfg.SuperRootPassword
	if password == "" {
		password = "admin123"
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash password:", err)
	}

	user := db.User{
		Username: username,
		Password: string(hashedPassword),
	}
	if err := db.DB.Create(&user).Error; err != nil {
		log.Fatal("failed to create user:", err)
	}

	fmt.Println("administrator account created")
	fmt.Println("username:", username)
}
