package model

// 商品一覧から毎回組み立てる（保存しない）
type Category struct {
	Name  string `json:"name"`
	Image string `json:"image"`
	Count int    `json:"count"`
}
