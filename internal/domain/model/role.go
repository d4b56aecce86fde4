package model

// 呼び出し元のロール。認証そのものは外側で済んでいる前提。
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleUser      Role = "user"
	RoleAnonymous Role = "anonymous"
)
