package engine

import (
	"fmt"
	"time"

	"shop_admin/internal/common"
)

// ===========================================
// THỐNG KÊ SẢN PHẨM
// ===========================================

// AggregateProductSales gộp số lượng bán và doanh thu theo tên sản phẩm.
// Đơn không có dòng hàng không tạo ra entry nào.
func AggregateProductSales(orders []OrderRecord, opts ...Option) (ProductSalesSummary, error) {
	_ = applyOptions(opts)

	summary := make(ProductSalesSummary)
	for _, order := range orders {
		for _, line := range order.CartItems {
			stats := summary[line.ProductName]
			stats.QuantitySold += line.Quantity
			stats.Revenue += line.ProductPrice * float64(line.Quantity)
			summary[line.ProductName] = stats
		}
	}
	return summary, nil
}

// ===========================================
// THỐNG KÊ ĐƠN HÀNG
// ===========================================

// AggregateOrderSales tính tổng doanh thu, đếm đơn theo trạng thái và doanh thu
// theo ngày (UTC, key YYYY-MM-DD). Đơn không có dòng hàng vẫn được đếm trạng
// thái và vẫn chạm vào ngày của nó với doanh thu 0.
//
// OrderDate không parse được làm cả fold thất bại, trừ khi bật WithSkipMalformed.
func AggregateOrderSales(orders []OrderRecord, opts ...Option) (OrderSalesSummary, error) {
	cfg := applyOptions(opts)

	summary := OrderSalesSummary{
		SalesPerDay:     make(map[string]float64),
		UnknownStatuses: make(map[string]int),
	}

	for _, order := range orders {
		day, err := parseDay(order.OrderDate, cfg.dateFormats)
		if err != nil {
			if cfg.skipMalformed {
				summary.Skipped++
				continue
			}
			return OrderSalesSummary{}, common.NewError(
				common.ErrCodeAnalyticsRecord,
				fmt.Sprintf("Đơn hàng %s có orderDate không hợp lệ: %q", order.OrderID, order.OrderDate),
				common.StatusUnprocessable,
				nil,
			)
		}

		switch order.OrderStatus {
		case "completed":
			summary.StatusCounts.Completed++
		case "pending":
			summary.StatusCounts.Pending++
		case "canceled":
			summary.StatusCounts.Canceled++
		default:
			summary.UnknownStatuses[order.OrderStatus]++
		}

		subtotal := order.Subtotal()
		summary.TotalSales += subtotal
		summary.SalesPerDay[day] += subtotal
	}

	return summary, nil
}

// parseDay thử lần lượt các layout và cắt về ngày UTC dạng YYYY-MM-DD.
func parseDay(value string, layouts []string) (string, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC().Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("không parse được ngày %q", value)
}

// ===========================================
// THỐNG KÊ KHÁCH HÀNG
// ===========================================

// AggregateCustomerSales phân loại khách mới (đúng 1 đơn) và khách quay lại
// (từ 2 đơn trở lên). Khách chưa có đơn nào bị loại khỏi mọi số liệu.
func AggregateCustomerSales(customers []CustomerRecord) CustomerSalesSummary {
	summary := CustomerSalesSummary{
		CustomerOrdersCount: make(map[string]int),
	}

	for _, customer := range customers {
		totalOrders := len(customer.OrderRefs)
		if totalOrders == 0 {
			continue
		}
		summary.CustomerOrdersCount[customer.FullName] = totalOrders
		if totalOrders == 1 {
			summary.NewCustomers++
		} else {
			summary.RepeatCustomers++
		}
	}

	return summary
}
