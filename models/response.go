package models

// 分区类型
const (
	SectionSummary      = "summary"
	SectionPersonal     = "personal"
	SectionProfessional = "professional"
	SectionEducation    = "education"
	SectionOther        = "other"
)

// 响应消息
const (
	MessageNoResults    = "No search results found."
	MessageServerError  = "Something went wrong. Please try again later."
	MessageNameRequired = "Name is required."
)

// ResponseEnvelope 统一响应结构，sections 为 nil 时不输出，空列表输出 []
type ResponseEnvelope struct {
	Success  bool      `json:"success" example:"true"`
	Sections []Section `json:"sections,omitzero"`
	Metadata *Metadata `json:"metadata,omitempty"`
	Message  string    `json:"message,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// NewSuccessResponse 创建成功响应
func NewSuccessResponse(sections []Section, metadata *Metadata) ResponseEnvelope {
	if sections == nil {
		sections = []Section{}
	}
	return ResponseEnvelope{
		Success:  true,
		Sections: sections,
		Metadata: metadata,
	}
}

// NewNoResultsResponse 没有搜索结果时的响应
func NewNoResultsResponse() ResponseEnvelope {
	resp := NewErrorResponse(MessageNoResults, "")
	resp.Sections = []Section{}
	return resp
}

// NewErrorResponse 创建失败响应，不包含 sections；detail 为空时不输出 error 字段
func NewErrorResponse(message, detail string) ResponseEnvelope {
	return ResponseEnvelope{
		Success: false,
		Message: message,
		Error:   detail,
	}
}
