package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rupeshthakur8550/FoodSpace/entity"
	"github.com/rupeshthakur8550/FoodSpace/repository"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidStatus     = errors.New("unknown order status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrItemNotFound      = errors.New("item not found")
)

type OrderService struct {
	DB           *gorm.DB
	Repo         *repository.OrderRepository
	ItemRepo     *repository.ItemRepository
	DeliveryRepo *repository.DeliveryRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	itemRepo *repository.ItemRepository,
	deliveryRepo *repository.DeliveryRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, ItemRepo: itemRepo, DeliveryRepo: deliveryRepo}
}

// ----- List -----

func (s *OrderService) ListForSeller(sellerID uint) ([]repository.SellerOrder, error) {
	return s.Repo.ListForSeller(sellerID)
}

// ----- Place order (checkout, no online payment) -----

type OrderLineIn struct {
	ItemID   uint `json:"itemId" binding:"required"`
	Quantity int  `json:"quantity" binding:"min=1"`
}

type PlaceOrderReq struct {
	Address entity.Delivery `json:"address"`
	Items   []OrderLineIn   `json:"items" binding:"required"`
}

type PlaceOrderRes struct {
	OrderIDs    []uint `json:"orderIds"`
	DeliveryRef string `json:"delivery"`
}

// PlaceOrder snapshots the catalog rows into one order line per item and
// binds them all to a freshly minted delivery reference.
func (s *OrderService) PlaceOrder(userID uint, req *PlaceOrderReq) (*PlaceOrderRes, error) {
	if len(req.Items) == 0 {
		return nil, errors.New("items is required")
	}

	// resolve the catalog snapshot before opening the transaction
	lines := make([]entity.Order, 0, len(req.Items))
	for _, line := range req.Items {
		it, err := s.ItemRepo.GetItem(line.ItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrItemNotFound
			}
			return nil, err
		}
		qty := line.Quantity
		if qty <= 0 {
			qty = 1
		}
		lines = append(lines, entity.Order{
			Name:     it.Name,
			Image:    it.Image,
			Price:    it.Price,
			Quantity: qty,
			Status:   entity.StatusPending,
			ItemID:   it.ID,
			UserID:   userID,
			SellerID: it.SellerID,
		})
	}

	var out PlaceOrderRes
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		delivery := req.Address
		delivery.Ref = uuid.NewString()
		if err := s.DeliveryRepo.Create(tx, &delivery); err != nil {
			return err
		}

		for i := range lines {
			lines[i].DeliveryRef = delivery.Ref
			if err := s.Repo.CreateOrder(tx, &lines[i]); err != nil {
				return err
			}
			out.OrderIDs = append(out.OrderIDs, lines[i].ID)
		}

		out.DeliveryRef = delivery.Ref
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
