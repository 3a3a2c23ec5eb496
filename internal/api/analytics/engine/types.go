// Package engine tính toán thống kê bán hàng thuần túy (không I/O).
// Input là các record đơn hàng / khách hàng, output là các summary;
// kết quả không phụ thuộc thứ tự input và cộng được theo từng phần dữ liệu.
package engine

// CartLine là một dòng hàng trong giỏ của đơn hàng.
type CartLine struct {
	ProductName  string  `json:"productName"`
	ProductPrice float64 `json:"productPrice"`
	Quantity     int     `json:"quantity"`
}

// OrderRecord là một đơn hàng đưa vào thống kê.
// OrderDate là chuỗi ISO-8601; engine parse theo danh sách layout cấu hình được.
type OrderRecord struct {
	OrderID     string     `json:"orderId"`
	OrderDate   string     `json:"orderDate"`
	OrderStatus string     `json:"orderStatus"`
	CartItems   []CartLine `json:"cartItems"`
}

// OrderRef tham chiếu tới một đơn hàng của khách.
type OrderRef struct {
	OrderID string `json:"orderId"`
}

// CustomerRecord là một khách hàng đưa vào thống kê.
type CustomerRecord struct {
	FullName  string     `json:"fullName"`
	OrderRefs []OrderRef `json:"orderRefs"`
}

// ProductStats là số liệu bán của một sản phẩm.
type ProductStats struct {
	QuantitySold int     `json:"quantitySold"`
	Revenue      float64 `json:"revenue"`
}

// ProductSalesSummary là thống kê bán theo sản phẩm.
// Một sản phẩm chỉ xuất hiện khi có ít nhất một dòng hàng, không có entry khởi tạo sẵn bằng 0.
type ProductSalesSummary map[string]ProductStats

// StatusCounts đếm đơn theo các trạng thái đã biết.
// Trạng thái ngoài tập này được đưa vào UnknownStatuses của OrderSalesSummary,
// không bao giờ bị gộp lặng lẽ vào một bucket đã biết.
type StatusCounts struct {
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Canceled  int `json:"canceled"`
}

// OrderSalesSummary là thống kê theo đơn hàng.
// Key của SalesPerDay là ngày UTC dạng YYYY-MM-DD.
// Skipped là số record bị bỏ qua khi bật WithSkipMalformed.
type OrderSalesSummary struct {
	TotalSales      float64            `json:"totalSales"`
	StatusCounts    StatusCounts       `json:"orderStatusCount"`
	SalesPerDay     map[string]float64 `json:"salesPerDay"`
	UnknownStatuses map[string]int     `json:"unknownStatuses"`
	Skipped         int                `json:"skipped,omitempty"`
}

// CustomerSalesSummary là thống kê theo khách hàng.
// Khách không có đơn nào không được tính; key của CustomerOrdersCount là fullName,
// trùng tên thì record sau ghi đè record trước (giới hạn đã biết của dữ liệu nguồn).
type CustomerSalesSummary struct {
	NewCustomers        int            `json:"newCustomers"`
	RepeatCustomers     int            `json:"repeatCustomers"`
	CustomerOrdersCount map[string]int `json:"customerOrdersCount"`
}

// Subtotal tính tổng tiền của đơn: Σ (giá × số lượng) trên các dòng hàng.
func (o *OrderRecord) Subtotal() float64 {
	var sum float64
	for _, line := range o.CartItems {
		sum += line.ProductPrice * float64(line.Quantity)
	}
	return sum
}
