package requests

import "github.com/freight-parser/app/models"

// ParseMessageRequest request parse tin nhắn đơn lẻ
type ParseMessageRequest struct {
	Message string       `json:"message" binding:"required"` // Tin nhắn cần parse
	Options ParseOptions `json:"options,omitempty"`          // Tùy chọn parse
}

// ParseOptions tùy chọn parse
type ParseOptions struct {
	NoCache       bool    `json:"no_cache,omitempty"`       // Bỏ qua cache, luôn parse lại
	MinConfidence float64 `json:"min_confidence,omitempty"` // Ngưỡng đưa vào review queue (override config)
}

// BatchParseRequest request parse hàng loạt tin nhắn
type BatchParseRequest struct {
	Messages []string     `json:"messages" binding:"required,min=1,max=10000"` // Danh sách tin nhắn (tối đa 10k)
	Options  ParseOptions `json:"options,omitempty"`                           // Tùy chọn parse
}

// AliasRequest request thêm alias tỉnh mới
type AliasRequest struct {
	Alias        string `json:"alias" binding:"required"`         // Tên gọi khác
	ProvinceCode int    `json:"province_code" binding:"required"` // Mã tỉnh đích
}

// ReviewApproveRequest request phê duyệt review
type ReviewApproveRequest struct {
	ReviewerID   string                `json:"reviewer_id" binding:"required"` // ID người review
	ManualResult *models.ParsedMessage `json:"manual_result,omitempty"`        // Kết quả chỉnh sửa (nếu có)
	LearnAlias   bool                  `json:"learn_alias,omitempty"`          // Có học alias từ kết quả sửa không
}

// ReviewRejectRequest request từ chối review
type ReviewRejectRequest struct {
	ReviewerID string `json:"reviewer_id" binding:"required"` // ID người review
	Reason     string `json:"reason,omitempty"`               // Lý do từ chối
}
