package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

// 1行あたりの数量の上限
const MaxQuantity int64 = 9999

var (
	ErrInvalidQuantity  = errors.New("quantity must be >= 1")
	ErrQuantityTooLarge = errors.New("quantity too large")
)

// セッションごとのカート。メモリ上だけで持つ（永続化しない）。
// 同じセッションからの操作は CartStore 側で直列化する。
type Cart struct {
	items []CartItem
	open  bool
}

func NewCart() *Cart {
	return &Cart{items: []CartItem{}}
}

// 同じ商品なら数量を加算、なければ商品のコピーを末尾に追加。
// 追加すると表示状態(open)になる。
func (c *Cart) AddItem(p Product, qty int64) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	if qty > MaxQuantity {
		return ErrQuantityTooLarge
	}

	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			// 合算で上限を超えるなら何も変えない
			if qty > MaxQuantity-c.items[i].Quantity {
				return ErrQuantityTooLarge
			}
			c.items[i].Quantity += qty
			c.open = true
			return nil
		}
	}

	c.items = append(c.items, CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  qty,
	})
	c.open = true
	return nil
}

// 行ごと削除（数量を減らすのではない）。無ければ何もしない。
func (c *Cart) RemoveItem(productID int64) {
	kept := c.items[:0]
	for _, it := range c.items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	c.items = kept
}

func (c *Cart) Clear() {
	c.items = []CartItem{}
}

// 毎回計算する（キャッシュしない）
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsOpen() bool {
	return c.open
}

func (c *Cart) SetOpen(open bool) {
	c.open = open
}

func (c *Cart) Clone() *Cart {
	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return &Cart{items: items, open: c.open}
}

// 呼び出し側が触っても元のカートに影響しないコピーを返す
func (c *Cart) Snapshot() CartSnapshot {
	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return CartSnapshot{Items: items, Open: c.open}
}

// ある時点のカートの中身
type CartSnapshot struct {
	Items []CartItem
	Open  bool
}

func (s CartSnapshot) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

func (s CartSnapshot) IsEmpty() bool {
	return len(s.Items) == 0
}
