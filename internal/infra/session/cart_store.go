package session

import (
	"sync"
	"time"

	"github.com/anuragpande549/AI-Commerce/internal/domain/model"
	repo "github.com/anuragpande549/AI-Commerce/internal/repository"
)

type cartEntry struct {
	cart    *model.Cart
	touched time.Time
}

// プロセス内メモリだけのカート置き場。再起動で消える。
// 1つのmutexで全セッションの操作を直列化する。
type CartStore struct {
	mu    sync.Mutex
	carts map[string]*cartEntry
	ttl   time.Duration
	now   func() time.Time
}

var _ repo.CartStore = (*CartStore)(nil)

// ttl <= 0 なら期限切れにしない
func NewCartStore(ttl time.Duration) *CartStore {
	return &CartStore{
		carts: map[string]*cartEntry{},
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *CartStore) Snapshot(sessionID string) model.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictExpired(now)

	e, ok := s.carts[sessionID]
	if !ok {
		return model.NewCart().Snapshot()
	}
	e.touched = now
	return e.cart.Snapshot()
}

func (s *CartStore) Update(sessionID string, fn func(c *model.Cart) error) (model.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictExpired(now)

	e, ok := s.carts[sessionID]
	if !ok {
		e = &cartEntry{cart: model.NewCart()}
	}

	// コピーに適用して、成功したときだけ差し替える
	next := e.cart.Clone()
	if err := fn(next); err != nil {
		return e.cart.Snapshot(), err
	}

	e.cart = next
	e.touched = now
	s.carts[sessionID] = e
	return next.Snapshot(), nil
}

// 保持しているセッション数
func (s *CartStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts)
}

// mu を持った状態で呼ぶ
func (s *CartStore) evictExpired(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for id, e := range s.carts {
		if now.Sub(e.touched) > s.ttl {
			delete(s.carts, id)
		}
	}
}
