package usecase

// FieldError はユーザーが修正可能な入力エラーを表します。
// 対象フィールド名と人間が読めるメッセージを常に持ち、
// Goのerrorとしてではなく型付きデータとして返されます。
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
