package repository

import "github.com/anuragpande549/AI-Commerce/internal/domain/model"

// セッションIDごとのカート置き場。
// 同じセッションへの操作は直列に実行される。
type CartStore interface {
	// 無ければ空のスナップショット
	Snapshot(sessionID string) model.CartSnapshot
	// fnはロックを持ったまま呼ばれる。エラーならカートは元のまま。
	Update(sessionID string, fn func(c *model.Cart) error) (model.CartSnapshot, error)
}
