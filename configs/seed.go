package configs

import (
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/rupeshthakur8550/FoodSpace/entity"
)

// SeedDemo fills an empty database with a seller, a buyer, a small catalog
// and one pending order so the seller dashboard has something to show.
func SeedDemo() error {
	db := DB()

	var count int64
	db.Model(&entity.User{}).Count(&count)
	if count > 0 {
		log.Println("seed: users already present, skipping")
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(getEnv("SEED_PASSWORD", "changeme")), bcrypt.DefaultCost)

	seller := entity.User{
		Name:     "Asha Kitchen",
		Email:    "asha@foodspace.local",
		Password: string(hash),
		Location: "Pune",
		IsSeller: true,
	}
	buyer := entity.User{
		Name:     "Ravi",
		Email:    "ravi@foodspace.local",
		Password: string(hash),
		Location: "Pune",
	}
	if err := db.Create(&seller).Error; err != nil {
		return err
	}
	if err := db.Create(&buyer).Error; err != nil {
		return err
	}

	items := []entity.Item{
		{Name: "Paneer Tikka", Description: "Char-grilled cottage cheese", Category: "Starters", Image: "paneer_tikka.jpg", Price: decimal.NewFromInt(180), Location: "Pune", SellerID: seller.ID},
		{Name: "Masala Dosa", Description: "Crisp dosa with potato filling", Category: "South Indian", Image: "masala_dosa.jpg", Price: decimal.NewFromInt(120), Location: "Pune", SellerID: seller.ID},
		{Name: "Gulab Jamun", Description: "Two pieces, warm", Category: "Desserts", Image: "gulab_jamun.jpg", Price: decimal.NewFromInt(60), Location: "Pune", SellerID: seller.ID},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	delivery := entity.Delivery{
		Ref:     uuid.NewString(),
		Name:    buyer.Name,
		Phone:   "9800000000",
		Street:  "14 MG Road",
		City:    "Pune",
		State:   "Maharashtra",
		Pincode: "411001",
	}
	if err := db.Create(&delivery).Error; err != nil {
		return err
	}

	order := entity.Order{
		Name:        items[1].Name,
		Image:       items[1].Image,
		Price:       items[1].Price,
		Quantity:    3,
		Status:      entity.StatusPending,
		ItemID:      items[1].ID,
		UserID:      buyer.ID,
		SellerID:    seller.ID,
		DeliveryRef: delivery.Ref,
	}
	return db.Create(&order).Error
}
