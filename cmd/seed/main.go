package main

import (
	"log"
	"os"
	"time"

	"freshsprout-be/internal/entity"
	"freshsprout-be/internal/model"
	"freshsprout-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("🌱 Seeding FreshSprout catalog\n")

	products := []model.Product{
		{Slug: "sunflower-shoots", Name: "Sunflower Shoots", Type: string(entity.ProductTypeMicrogreen), Description: "Nutty, crunchy shoots harvested at ten days.", Price: 6.50, IsActive: true, InStock: true, SubscriptionEligible: true},
		{Slug: "pea-tendrils", Name: "Pea Tendrils", Type: string(entity.ProductTypeMicrogreen), Description: "Sweet tendrils with a fresh snap-pea finish.", Price: 6.00, IsActive: true, InStock: true, SubscriptionEligible: true},
		{Slug: "radish-mix", Name: "Spicy Radish Mix", Type: string(entity.ProductTypeMicrogreen), Description: "A peppery blend of daikon and rambo radish.", Price: 5.50, IsActive: true, InStock: true, SubscriptionEligible: true},
		{Slug: "broccoli-greens", Name: "Broccoli Greens", Type: string(entity.ProductTypeMicrogreen), Description: "Mild brassica greens, dense with sulforaphane.", Price: 7.00, IsActive: true, InStock: true, SubscriptionEligible: true},
		{Slug: "micro-basil", Name: "Micro Basil", Type: string(entity.ProductTypeMicrogreen), Description: "Concentrated Genovese basil flavor in miniature.", Price: 8.00, IsActive: true, InStock: true, SubscriptionEligible: false},
		{Slug: "rose-hydrosol", Name: "Rose Hydrosol", Type: string(entity.ProductTypeHydrosol), Description: "Steam-distilled rose water for skin and kitchen.", Price: 14.00, IsActive: true, InStock: true, SubscriptionEligible: false},
		{Slug: "lavender-hydrosol", Name: "Lavender Hydrosol", Type: string(entity.ProductTypeHydrosol), Description: "Calming lavender distillate, small-batch.", Price: 13.00, IsActive: true, InStock: true, SubscriptionEligible: false},
		{Slug: "mint-hydrosol", Name: "Mint Hydrosol", Type: string(entity.ProductTypeHydrosol), Description: "Bright peppermint water, cooling and crisp.", Price: 12.00, IsActive: true, InStock: true, SubscriptionEligible: false},
	}

	for _, p := range products {
		var existing model.Product
		if err := db.Where("slug = ?", p.Slug).First(&existing).Error; err == nil {
			color.Yellow("Product '%s' already exists, skipping...", p.Slug)
			continue
		}

		p.Id = uuid.New()
		p.CreatedAt = time.Now()
		p.UpdatedAt = time.Now()
		if err := db.Create(&p).Error; err != nil {
			color.Red("Error creating product '%s': %v", p.Slug, err)
		} else {
			color.Green("Created product: %s", p.Name)
		}
	}

	color.Cyan("\n🏠 Seeding senior centers")

	centers := []model.SeniorCenter{
		{Name: "Riverside Senior Center", Address: "402 River Rd", Region: "metro", IsActive: true},
		{Name: "Oakview Community Elders", Address: "88 Oakview Ave", Region: "metro", IsActive: true},
	}

	for _, c := range centers {
		var existing model.SeniorCenter
		if err := db.Where("name = ?", c.Name).First(&existing).Error; err == nil {
			color.Yellow("Center '%s' already exists, skipping...", c.Name)
			continue
		}

		c.Id = uuid.New()
		c.CreatedAt = time.Now()
		c.UpdatedAt = time.Now()
		if err := db.Create(&c).Error; err != nil {
			color.Red("Error creating center '%s': %v", c.Name, err)
		} else {
			color.Green("Created center: %s", c.Name)
		}
	}

	color.Cyan("\nSeeding completed!")
}
