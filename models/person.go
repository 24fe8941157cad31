package models

// SearchPersonRequest 人物搜索请求体
type SearchPersonRequest struct {
	Name         string `json:"name" example:"Jane Doe"`
	ExtraDetails string `json:"extraDetails,omitempty" example:"teacher"`
}

// SearchResult 搜索引擎返回的单条自然结果
type SearchResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// Source 分区内容的来源
type Source struct {
	Title string `json:"title" example:"Jane Doe - University X"`
	Link  string `json:"link" example:"http://x"`
}

// Section 展示分区，summary 分区没有 sources
type Section struct {
	Type    string   `json:"type" example:"education"`
	Title   string   `json:"title" example:"Education"`
	Content string   `json:"content" example:"Jane attended University X"`
	Sources []Source `json:"sources,omitempty"`
}

// Metadata 搜索元数据
type Metadata struct {
	SearchQuery  string `json:"searchQuery" example:"Jane Doe teacher"`
	TotalSources int    `json:"totalSources" example:"1"`
	Timestamp    string `json:"timestamp" example:"2024-01-01T00:00:00.000Z"`
}
