package services

import (
	"context"
	"strings"
	"time"

	"github.com/Silvia-kc/Project-Germany/entity"
	"github.com/Silvia-kc/Project-Germany/pkg/apperr"
	"github.com/Silvia-kc/Project-Germany/repository"
)

// ChatEvent is the payload fanned out to live subscribers. It carries
// no server id: delivery is best-effort and clients reload history from
// the store, not from the stream.
type ChatEvent struct {
	CarID  uint   `json:"carId"`
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// Broadcaster delivers an event to every currently subscribed client.
type Broadcaster interface {
	Publish(ev ChatEvent)
}

type ChatService struct {
	repo        *repository.ChatRepository
	cars        *repository.CarRepository
	broadcaster Broadcaster
	dbTimeout   time.Duration
}

func NewChatService(repo *repository.ChatRepository, cars *repository.CarRepository, b Broadcaster, dbTimeout time.Duration) *ChatService {
	return &ChatService{repo: repo, cars: cars, broadcaster: b, dbTimeout: dbTimeout}
}

// Send is the single authoritative send path: validate, persist, then
// publish exactly once from the stored row. Clients never publish a
// message themselves; both the HTTP endpoint and the WS frame handler
// funnel through here, so a message is broadcast iff its row was
// written.
func (s *ChatService) Send(ctx context.Context, carID uint, sender, text string) (*entity.Message, error) {
	sender = strings.TrimSpace(sender)
	text = strings.TrimSpace(text)
	if carID == 0 || sender == "" || text == "" {
		return nil, apperr.New(apperr.Validation, "carId, sender and text are required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	exists, err := s.cars.Exists(ctx, carID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "lookup car", err)
	}
	if !exists {
		return nil, apperr.New(apperr.NotFound, "car not found")
	}

	msg := &entity.Message{
		CarID:  carID,
		Sender: sender,
		Text:   text,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, apperr.Wrap(apperr.Storage, "store message", err)
	}

	s.broadcaster.Publish(ChatEvent{CarID: msg.CarID, Sender: msg.Sender, Text: msg.Text})
	return msg, nil
}

// Messages returns one listing's thread, oldest first.
func (s *ChatService) Messages(ctx context.Context, carID uint) ([]entity.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	msgs, err := s.repo.ListForCar(ctx, carID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list messages", err)
	}
	return msgs, nil
}

// Inbox returns every message joined with its listing's brand and
// model, oldest first.
func (s *ChatService) Inbox(ctx context.Context) ([]entity.InboxMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	rows, err := s.repo.ListAllWithCar(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list inbox", err)
	}
	return rows, nil
}
