package repository

import (
	"context"

	"github.com/Silvia-kc/Project-Germany/entity"

	"gorm.io/gorm"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db}
}

// Create appends one message row.
func (r *ChatRepository) Create(ctx context.Context, msg *entity.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// ListForCar returns one listing's thread, oldest first. Ties on
// created_at break by ascending id so the order is a stable total order.
func (r *ChatRepository) ListForCar(ctx context.Context, carID uint) ([]entity.Message, error) {
	msgs := []entity.Message{}
	err := r.db.WithContext(ctx).
		Where("car_id = ?", carID).
		Order("created_at ASC, id ASC").
		Find(&msgs).Error
	return msgs, err
}

// ListAllWithCar returns every message joined with its listing's model
// and brand name, oldest first. Backs the seller inbox.
func (r *ChatRepository) ListAllWithCar(ctx context.Context) ([]entity.InboxMessage, error) {
	rows := []entity.InboxMessage{}
	err := r.db.WithContext(ctx).
		Table("messages").
		Select("messages.id, messages.car_id, messages.sender, messages.text, messages.created_at, cars.model, brands.name AS brand").
		Joins("JOIN cars ON cars.id = messages.car_id").
		Joins("JOIN brands ON brands.id = cars.brand_id").
		Where("messages.deleted_at IS NULL").
		Order("messages.created_at ASC, messages.id ASC").
		Scan(&rows).Error
	return rows, err
}
