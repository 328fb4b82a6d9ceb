package repo

import (
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/food-donation-service/internal/cart"
	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
)

type ByteCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Update(key string, fn func(old []byte, ok bool) ([]byte, bool, error)) error
	Delete(key string)
}

// cartStore корзины NGO. Изменение корзины происходит под блокировкой кэша,
// поэтому конкурентный читатель видит либо старый, либо новый снимок целиком.
type cartStore struct {
	cache ByteCache
	now   func() time.Time
}

func NewCartStore(cache ByteCache) *cartStore {
	return &cartStore{cache: cache, now: time.Now}
}

func (s *cartStore) Load(ngoID string) (cart.Cart, error) {
	data, ok := s.cache.Get(cartKey(ngoID))
	if !ok {
		return cart.New(), nil
	}
	var snap entities.CartSnapshot
	if err := snap.Unmarshal(data); err != nil {
		return cart.Cart{}, fmt.Errorf("failed to decode cart: %w", err)
	}
	return cart.FromLines(snap.Lines), nil
}

func (s *cartStore) Update(ngoID string, fn func(cart.Cart) (cart.Cart, error)) (cart.Cart, error) {
	var result cart.Cart
	err := s.cache.Update(cartKey(ngoID), func(old []byte, ok bool) ([]byte, bool, error) {
		current := cart.New()
		if ok {
			var snap entities.CartSnapshot
			if err := snap.Unmarshal(old); err != nil {
				return nil, false, fmt.Errorf("failed to decode cart: %w", err)
			}
			current = cart.FromLines(snap.Lines)
		}

		next, err := fn(current)
		if err != nil {
			return nil, false, err
		}
		result = next

		if next.IsEmpty() {
			return nil, false, nil
		}
		snap := entities.CartSnapshot{NGOID: ngoID, Lines: next.Lines(), UpdatedAt: s.now()}
		data, err := snap.Marshal()
		if err != nil {
			return nil, false, fmt.Errorf("failed to encode cart: %w", err)
		}
		return data, true, nil
	})
	if err != nil {
		return cart.Cart{}, err
	}
	return result, nil
}

func (s *cartStore) Clear(ngoID string) {
	s.cache.Delete(cartKey(ngoID))
}

func cartKey(ngoID string) string {
	return "cart:" + ngoID
}

type sessionStore struct {
	cache ByteCache
}

func NewSessionStore(cache ByteCache) *sessionStore {
	return &sessionStore{cache: cache}
}

func (s *sessionStore) Save(session entities.Session) error {
	data, err := session.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	s.cache.Set(sessionKey(session.ID), data)
	return nil
}

func (s *sessionStore) Get(id string) (entities.Session, error) {
	data, ok := s.cache.Get(sessionKey(id))
	if !ok {
		return entities.Session{}, entities.ErrUnauthorized
	}
	var session entities.Session
	if err := session.Unmarshal(data); err != nil {
		return entities.Session{}, fmt.Errorf("failed to decode session: %w", err)
	}
	return session, nil
}

func (s *sessionStore) Delete(id string) {
	s.cache.Delete(sessionKey(id))
}

func sessionKey(id string) string {
	return "session:" + id
}

// assignmentStore локальная доска задач доставки. Платформа не хранит
// принятие и завершение доставки волонтером, поэтому состояние живет
// только в памяти процесса и истекает по TTL.
type assignmentStore struct {
	cache ByteCache
}

func NewAssignmentStore(cache ByteCache) *assignmentStore {
	return &assignmentStore{cache: cache}
}

func (s *assignmentStore) Get(id string) (entities.DeliveryAssignment, bool, error) {
	data, ok := s.cache.Get(assignmentKey(id))
	if !ok {
		return entities.DeliveryAssignment{}, false, nil
	}
	var a entities.DeliveryAssignment
	if err := a.Unmarshal(data); err != nil {
		return entities.DeliveryAssignment{}, false, fmt.Errorf("failed to decode assignment: %w", err)
	}
	return a, true, nil
}

// Update fn получает текущее состояние (или base, если записи нет) и возвращает новое.
func (s *assignmentStore) Update(base entities.DeliveryAssignment, fn func(entities.DeliveryAssignment) (entities.DeliveryAssignment, error)) (entities.DeliveryAssignment, error) {
	var result entities.DeliveryAssignment
	err := s.cache.Update(assignmentKey(base.ID), func(old []byte, ok bool) ([]byte, bool, error) {
		current := base
		if ok {
			var stored entities.DeliveryAssignment
			if err := stored.Unmarshal(old); err != nil {
				return nil, false, fmt.Errorf("failed to decode assignment: %w", err)
			}
			current = stored
		}

		next, err := fn(current)
		if err != nil {
			return nil, false, err
		}
		result = next

		data, err := next.Marshal()
		if err != nil {
			return nil, false, fmt.Errorf("failed to encode assignment: %w", err)
		}
		return data, true, nil
	})
	if err != nil {
		return entities.DeliveryAssignment{}, err
	}
	return result, nil
}

func assignmentKey(id string) string {
	return "assignment:" + id
}
