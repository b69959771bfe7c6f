package seed

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"luxrealty_backend/internal/model"
	"luxrealty_backend/pkg/fixtures"
)

// SeedProjects inserts the demo developments when the projects table is
// empty, so a fresh database serves the same catalogue as the fixture
// fallback.
func SeedProjects(db *gorm.DB) {
	var count int64
	db.Model(&model.Project{}).Count(&count)
	if count > 0 {
		return
	}

	for _, p := range fixtures.Projects() {
		project := model.Project{
			Name:             p.Name,
			City:             p.City,
			Slug:             p.Slug,
			ShortDescription: p.ShortDescription,
			LongDescription:  p.LongDescription,
			Images:           p.Images,
			MapEmbedURL:      p.MapEmbedURL,
			BrochureURL:      p.BrochureURL,
		}
		if err := db.Create(&project).Error; err != nil {
			log.Printf("Error seeding project %s: %v", p.Name, err)
		}
	}

	log.Println("Demo projects seeded successfully!")
}

// SeedAdminUser creates the initial CRM operator when no users exist.
// Credentials come from ADMIN_EMAIL / ADMIN_PASSWORD, with dev defaults.
func SeedAdminUser(db *gorm.DB) {
	var count int64
	db.Model(&model.User{}).Count(&count)
	if count > 0 {
		return
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@luxrealty.co.il"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing admin password: %v", err)
		return
	}

	user := model.User{
		Email:    email,
		Password: string(hashed),
		FullName: "Agency Admin",
		Role:     model.RoleAdmin,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("Error seeding admin user: %v", err)
		return
	}

	log.Printf("Admin user %s seeded successfully!", email)
}
