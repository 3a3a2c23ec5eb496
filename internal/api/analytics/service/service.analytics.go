// Package analyticssvc nạp dữ liệu đơn hàng / khách hàng từ MongoDB,
// chuyển về record thuần và giao cho engine tính toán.
package analyticssvc

import (
	"context"
	"fmt"

	"shop_admin/internal/api/analytics/engine"
	customermodels "shop_admin/internal/api/customer/models"
	customersvc "shop_admin/internal/api/customer/service"
	ordermodels "shop_admin/internal/api/order/models"
	ordersvc "shop_admin/internal/api/order/service"
	"shop_admin/internal/utility"
)

// DashboardSummary gom cả ba thống kê cho trang tổng quan.
type DashboardSummary struct {
	Products  engine.ProductSalesSummary  `json:"products"`
	Orders    engine.OrderSalesSummary    `json:"orders"`
	Customers engine.CustomerSalesSummary `json:"customers"`
}

// AnalyticsService đọc dữ liệu qua service của từng domain rồi fold bằng engine.
// Dữ liệu nhập tay có thể chứa orderDate hỏng nên mặc định bật skip-malformed,
// số record bị bỏ được trả trong Skipped để client hiển thị cảnh báo.
type AnalyticsService struct {
	orderService    *ordersvc.OrderService
	customerService *customersvc.CustomerService
}

// NewAnalyticsService tạo mới AnalyticsService
func NewAnalyticsService() (*AnalyticsService, error) {
	orderService, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to init order service: %v", err)
	}
	customerService, err := customersvc.NewCustomerService()
	if err != nil {
		return nil, fmt.Errorf("failed to init customer service: %v", err)
	}

	return &AnalyticsService{
		orderService:    orderService,
		customerService: customerService,
	}, nil
}

// loadOrderRecords nạp toàn bộ đơn hàng và chuyển về engine.OrderRecord.
func (s *AnalyticsService) loadOrderRecords(ctx context.Context) ([]engine.OrderRecord, error) {
	orders, err := s.orderService.Find(ctx, map[string]interface{}{}, nil)
	if err != nil {
		return nil, err
	}
	records := make([]engine.OrderRecord, 0, len(orders))
	for _, order := range orders {
		records = append(records, toOrderRecord(order))
	}
	return records, nil
}

// loadCustomerRecords nạp toàn bộ khách hàng và chuyển về engine.CustomerRecord.
func (s *AnalyticsService) loadCustomerRecords(ctx context.Context) ([]engine.CustomerRecord, error) {
	customers, err := s.customerService.Find(ctx, map[string]interface{}{}, nil)
	if err != nil {
		return nil, err
	}
	records := make([]engine.CustomerRecord, 0, len(customers))
	for _, customer := range customers {
		records = append(records, toCustomerRecord(customer))
	}
	return records, nil
}

func toOrderRecord(order ordermodels.Order) engine.OrderRecord {
	items := make([]engine.CartLine, 0, len(order.CartItems))
	for _, item := range order.CartItems {
		items = append(items, engine.CartLine{
			ProductName:  item.ProductName,
			ProductPrice: item.ProductPrice,
			Quantity:     item.Quantity,
		})
	}
	return engine.OrderRecord{
		OrderID:     order.OrderID,
		OrderDate:   order.OrderDate,
		OrderStatus: order.OrderStatus,
		CartItems:   items,
	}
}

func toCustomerRecord(customer customermodels.Customer) engine.CustomerRecord {
	refs := make([]engine.OrderRef, 0, len(customer.OrderReference))
	for _, id := range customer.OrderReference {
		refs = append(refs, engine.OrderRef{OrderID: utility.ObjectID2String(id)})
	}
	return engine.CustomerRecord{
		FullName:  customer.FullName,
		OrderRefs: refs,
	}
}

// ProductSales trả thống kê bán theo sản phẩm.
func (s *AnalyticsService) ProductSales(ctx context.Context) (engine.ProductSalesSummary, error) {
	records, err := s.loadOrderRecords(ctx)
	if err != nil {
		return nil, err
	}
	return engine.AggregateProductSales(records)
}

// OrderSales trả thống kê theo đơn hàng.
func (s *AnalyticsService) OrderSales(ctx context.Context) (engine.OrderSalesSummary, error) {
	records, err := s.loadOrderRecords(ctx)
	if err != nil {
		return engine.OrderSalesSummary{}, err
	}
	return engine.AggregateOrderSales(records, engine.WithSkipMalformed())
}

// CustomerSales trả thống kê theo khách hàng.
func (s *AnalyticsService) CustomerSales(ctx context.Context) (engine.CustomerSalesSummary, error) {
	records, err := s.loadCustomerRecords(ctx)
	if err != nil {
		return engine.CustomerSalesSummary{}, err
	}
	return engine.AggregateCustomerSales(records), nil
}

// Dashboard gom cả ba thống kê trong một lần gọi, chỉ nạp đơn hàng một lần.
func (s *AnalyticsService) Dashboard(ctx context.Context) (*DashboardSummary, error) {
	orderRecords, err := s.loadOrderRecords(ctx)
	if err != nil {
		return nil, err
	}
	customerRecords, err := s.loadCustomerRecords(ctx)
	if err != nil {
		return nil, err
	}

	products, err := engine.AggregateProductSales(orderRecords)
	if err != nil {
		return nil, err
	}
	orders, err := engine.AggregateOrderSales(orderRecords, engine.WithSkipMalformed())
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		Products:  products,
		Orders:    orders,
		Customers: engine.AggregateCustomerSales(customerRecords),
	}, nil
}
