package main

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"salescrm/internal/database"
	"salescrm/internal/domain/account"
	"salescrm/internal/domain/auth"
	"salescrm/internal/domain/contact"
	"salescrm/internal/domain/lead"
	"salescrm/internal/domain/pipeline"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "crm.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM visit_reports")
	db.Exec("DELETE FROM deals")
	db.Exec("DELETE FROM leads")
	db.Exec("DELETE FROM contacts")
	db.Exec("DELETE FROM accounts")
	db.Exec("DELETE FROM pipeline_stages")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	users := []struct {
		email    string
		name     string
		role     auth.Role
		password string
	}{
		{"admin@crm.local", "Admin", auth.RoleAdmin, "admin123"},
		{"manager@crm.local", "Sari Wulandari", auth.RoleManager, "manager123"},
		{"sales@crm.local", "Budi Santoso", auth.RoleSales, "sales123"},
	}
	for _, u := range users {
		hash, _ := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		db.Create(&auth.User{
			Email:        u.email,
			Name:         u.name,
			Role:         u.role,
			PasswordHash: string(hash),
		})
		log.Printf("User created: %s / %s", u.email, u.password)
	}

	log.Println("Creating pipeline stages...")
	stages := []pipeline.Stage{
		{Name: "Qualification", SortOrder: 1, Color: "#3b82f6", IsActive: true},
		{Name: "Needs Analysis", SortOrder: 2, Color: "#8b5cf6", IsActive: true},
		{Name: "Proposal", SortOrder: 3, Color: "#f59e0b", IsActive: true},
		{Name: "Negotiation", SortOrder: 4, Color: "#f97316", IsActive: true},
		{Name: "Closed Won", SortOrder: 5, Color: "#22c55e", IsActive: true, IsWon: true},
		{Name: "Closed Lost", SortOrder: 6, Color: "#ef4444", IsActive: true, IsLost: true},
	}
	for i := range stages {
		db.Create(&stages[i])
	}

	log.Println("Creating accounts and contacts...")
	acme := account.Account{Name: "Acme Manufacturing", Category: "manufacturing", Status: account.StatusActive}
	db.Create(&acme)
	nusantara := account.Account{Name: "Nusantara Logistics", Category: "logistics", Status: account.StatusActive}
	db.Create(&nusantara)

	db.Create(&contact.Contact{
		AccountID: acme.ID,
		FirstName: "Rina",
		LastName:  "Hartono",
		Role:      "procurement",
		Email:     "rina@acme.example",
	})

	log.Println("Creating leads...")
	leads := []lead.Lead{
		{FirstName: "Andi", LastName: "Prasetyo", Email: "andi@warung.example", CompanyName: "Warung Digital", Status: lead.StatusNew, Score: 35, Source: "web"},
		{FirstName: "Maya", LastName: "Putri", Email: "maya@kopi.example", CompanyName: "Kopi Nusantara", Status: lead.StatusContacted, Score: 55, Source: "referral"},
		{FirstName: "Dewi", LastName: "Lestari", Email: "dewi@tirta.example", CompanyName: "Tirta Abadi", Status: lead.StatusQualified, Score: 80, Source: "event"},
	}
	for i := range leads {
		db.Create(&leads[i])
	}

	log.Println("Seed complete")
}
