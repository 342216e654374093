package request

// SetUserQuestionDismissedRequest はユーザー質問の非表示設定リクエストです
type SetUserQuestionDismissedRequest struct {
	Dismissed bool `json:"dismissed"`
}
