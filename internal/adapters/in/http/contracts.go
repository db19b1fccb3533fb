package http

import "time"

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderItem describes one line item in an order creation request.
type NewOrderItem struct {
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	FabricType string  `json:"fabricType"`
}

// NewOrderTask describes one production task assignment in an order creation request.
type NewOrderTask struct {
	WorkerID string `json:"workerId"`
	TaskType string `json:"taskType"`
}

// NewOrder is the request body for creating an order.
type NewOrder struct {
	CustomerID     string         `json:"customerId"`
	ShopID         string         `json:"shopId"`
	Deadline       time.Time      `json:"deadline"`
	TotalPrice     float64        `json:"totalPrice"`
	AdvancePayment float64        `json:"advancePayment"`
	Notes          string         `json:"notes"`
	Items          []NewOrderItem `json:"items"`
	Tasks          []NewOrderTask `json:"tasks"`
}

// OrderCreated is the response body for a successful order creation.
type OrderCreated struct {
	ID string `json:"id"`
}

// NewPayment is the request body for recording a payment.
// A missing date means the payment is dated at recording time.
type NewPayment struct {
	Amount float64    `json:"amount"`
	Method string     `json:"method"`
	Note   string     `json:"note"`
	Date   *time.Time `json:"date,omitempty"`
}

// CancelOrder is the request body for cancelling an order.
type CancelOrder struct {
	Reason string `json:"reason"`
}

// OrderItem describes one line item in an order view.
type OrderItem struct {
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	FabricType string  `json:"fabricType"`
}

// OrderTask describes one production task in an order view.
type OrderTask struct {
	ID          string     `json:"id"`
	WorkerID    string     `json:"workerId"`
	TaskType    string     `json:"taskType"`
	Status      string     `json:"status"`
	AssignedAt  time.Time  `json:"assignedAt"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// OrderActivity describes one activity log entry in an order view.
type OrderActivity struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	OldStatus   *string   `json:"oldStatus,omitempty"`
	NewStatus   *string   `json:"newStatus,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Order is the response body for the order detail endpoint.
type Order struct {
	ID            string          `json:"id"`
	Number        int64           `json:"number"`
	CustomerID    string          `json:"customerId"`
	ShopID        string          `json:"shopId"`
	Deadline      time.Time       `json:"deadline"`
	TotalPrice    float64         `json:"totalPrice"`
	PaidAmount    float64         `json:"paidAmount"`
	PaymentStatus string          `json:"paymentStatus"`
	Status        string          `json:"status"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
	Items         []OrderItem     `json:"items"`
	Tasks         []OrderTask     `json:"tasks"`
	Activities    []OrderActivity `json:"activities"`
}

// PaymentEntry describes one recorded payment in the payment info response.
type PaymentEntry struct {
	ID         string    `json:"id"`
	Amount     float64   `json:"amount"`
	Method     string    `json:"method"`
	Date       time.Time `json:"date"`
	Note       string    `json:"note"`
	RecordedBy string    `json:"recordedBy"`
}

// PaymentInfo is the response body for the payment info endpoint.
type PaymentInfo struct {
	OrderID       string         `json:"orderId"`
	TotalPrice    float64        `json:"totalPrice"`
	PaidAmount    float64        `json:"paidAmount"`
	Balance       float64        `json:"balance"`
	PaymentStatus string         `json:"paymentStatus"`
	Payments      []PaymentEntry `json:"payments"`
}

// BillItem describes one billed line item.
type BillItem struct {
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	LineTotal  float64 `json:"lineTotal"`
	FabricType string  `json:"fabricType"`
}

// Bill is the response body for the bill endpoint.
type Bill struct {
	BillNumber    string         `json:"billNumber"`
	OrderID       string         `json:"orderId"`
	OrderNumber   int64          `json:"orderNumber"`
	CustomerID    string         `json:"customerId"`
	ShopID        string         `json:"shopId"`
	OrderDate     time.Time      `json:"orderDate"`
	Deadline      time.Time      `json:"deadline"`
	Items         []BillItem     `json:"items"`
	Subtotal      float64        `json:"subtotal"`
	Discount      float64        `json:"discount"`
	Tax           float64        `json:"tax"`
	Total         float64        `json:"total"`
	PaidAmount    float64        `json:"paidAmount"`
	Balance       float64        `json:"balance"`
	PaymentStatus string         `json:"paymentStatus"`
	Payments      []PaymentEntry `json:"payments"`
	GeneratedAt   time.Time      `json:"generatedAt"`
}
