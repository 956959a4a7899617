package internal

// Wire shapes owned by the backend. The client passes them through without
// validation; timestamps are RFC3339 strings as emitted by the server.

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the register request body.
type Registration struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	TenantName string `json:"tenant_name,omitempty"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

// UserProfile describes the authenticated user.
type UserProfile struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	TenantID string `json:"tenant_id"`
}

// Product is a catalog item.
type Product struct {
	ID           string  `json:"id,omitempty"`
	SKU          string  `json:"sku"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Category     string  `json:"category,omitempty"`
	Barcode      string  `json:"barcode,omitempty"`
	Price        float64 `json:"price"`
	Cost         float64 `json:"cost,omitempty"`
	Quantity     int     `json:"quantity"`
	ReorderPoint int     `json:"reorder_point,omitempty"`
	ImageURL     string  `json:"image_url,omitempty"`
	CreatedAt    string  `json:"created_at,omitempty"`
	UpdatedAt    string  `json:"updated_at,omitempty"`
}

// ImportResult summarizes a CSV product import.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// StockAdjustment records a manual quantity change.
type StockAdjustment struct {
	ID        string `json:"id,omitempty"`
	ProductID string `json:"product_id"`
	Delta     int    `json:"delta"`
	Reason    string `json:"reason,omitempty"`
	CreatedBy string `json:"created_by,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ReplenishmentSuggestion is a backend-computed reorder hint.
type ReplenishmentSuggestion struct {
	ProductID       string `json:"product_id"`
	ProductName     string `json:"product_name"`
	CurrentQuantity int    `json:"current_quantity"`
	SuggestedOrder  int    `json:"suggested_order"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Order is a sale.
type Order struct {
	ID         string      `json:"id,omitempty"`
	CustomerID string      `json:"customer_id,omitempty"`
	Status     string      `json:"status,omitempty"`
	Total      float64     `json:"total,omitempty"`
	Items      []OrderItem `json:"items"`
	CreatedAt  string      `json:"created_at,omitempty"`
}

// Customer is a CRM record.
type Customer struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	LoyaltyPoints int    `json:"loyalty_points,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
}

// Supplier is a vendor record.
type Supplier struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	LeadTimeDays int    `json:"lead_time_days,omitempty"`
}

// StaffMember is an employee account with permissions.
type StaffMember struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        string   `json:"role,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	Active      bool     `json:"active"`
}

// AccountingSummary aggregates a reporting period.
type AccountingSummary struct {
	Revenue     float64 `json:"revenue"`
	Expenses    float64 `json:"expenses"`
	Profit      float64 `json:"profit"`
	PeriodStart string  `json:"period_start,omitempty"`
	PeriodEnd   string  `json:"period_end,omitempty"`
}

// LedgerEntry is a single accounting entry.
type LedgerEntry struct {
	ID        string  `json:"id,omitempty"`
	Account   string  `json:"account"`
	Amount    float64 `json:"amount"`
	Memo      string  `json:"memo,omitempty"`
	CreatedAt string  `json:"created_at,omitempty"`
}

// Alert is a backend-generated notification (low stock, anomaly, billing).
type Alert struct {
	ID        string `json:"id"`
	Type      string `json:"type,omitempty"`
	Severity  string `json:"severity,omitempty"`
	Message   string `json:"message"`
	Resolved  bool   `json:"resolved"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Tenant is a store account, visible to platform admins.
type Tenant struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Plan      string `json:"plan,omitempty"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at,omitempty"`
}

// PlatformStats aggregates platform-wide usage, visible to admins.
type PlatformStats struct {
	Tenants int     `json:"tenants"`
	Users   int     `json:"users"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// Conversation is a two-party chat thread.
type Conversation struct {
	ID              string `json:"id"`
	ParticipantAID  string `json:"participant_a_id"`
	ParticipantA    string `json:"participant_a_name,omitempty"`
	ParticipantBID  string `json:"participant_b_id"`
	ParticipantB    string `json:"participant_b_name,omitempty"`
	LastMessage     string `json:"last_message,omitempty"`
	LastMessageAt   string `json:"last_message_at,omitempty"`
	UnreadA         int    `json:"unread_a"`
	UnreadB         int    `json:"unread_b"`
}

// ChatMessage is one message in a conversation.
type ChatMessage struct {
	ID             string `json:"id,omitempty"`
	ConversationID string `json:"conversation_id"`
	SenderID       string `json:"sender_id,omitempty"`
	SenderName     string `json:"sender_name,omitempty"`
	Content        string `json:"content"`
	Timestamp      string `json:"timestamp,omitempty"`
	Read           bool   `json:"read"`
}

// UnreadCount is the unread-message counter payload.
type UnreadCount struct {
	Count int `json:"count"`
}

// SubscriptionStatus describes the tenant's billing state.
type SubscriptionStatus struct {
	Plan     string `json:"plan"`
	Status   string `json:"status"`
	Seats    int    `json:"seats,omitempty"`
	RenewsAt string `json:"renews_at,omitempty"`
}

// Plan is a purchasable subscription tier.
type Plan struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	PricePerMonth float64  `json:"price_per_month"`
	Features      []string `json:"features,omitempty"`
}

// Listing is a marketplace offer shared between tenants.
type Listing struct {
	ID             string  `json:"id,omitempty"`
	Title          string  `json:"title"`
	Price          float64 `json:"price"`
	SellerTenantID string  `json:"seller_tenant_id,omitempty"`
	Status         string  `json:"status,omitempty"`
	CreatedAt      string  `json:"created_at,omitempty"`
}
