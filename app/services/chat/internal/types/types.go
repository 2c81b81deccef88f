// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

type StartConversationResponse struct {
	ConversationId string   `json:"conversationId"`
	Messages       []string `json:"messages"`
}

type SendMessageRequest struct {
	ConversationId string `path:"conversationId"`
	Content        string `json:"content"`
}

type SendMessageResponse struct {
	Messages []string `json:"messages"`
}

type GetCartRequest struct {
	ConversationId string `path:"conversationId"`
}

type GetCartResponse struct {
	Items []CartItem `json:"items"`
	Total int64      `json:"total"`
	View  string     `json:"view"`
}

type CartItem struct {
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	FabricClass string `json:"fabricClass,omitempty"`
	Size        string `json:"size,omitempty"`
	Quantity    int64  `json:"quantity"`
	Unit        string `json:"unit"`
	UnitPrice   int64  `json:"unitPrice"`
	Subtotal    int64  `json:"subtotal"`
}
