// Package engine - Test các bất biến của engine thống kê:
// không phụ thuộc thứ tự input, cộng được theo phần dữ liệu, input rỗng vẫn trả map khác nil.
package engine

import (
	"math"
	"strings"
	"testing"
)

func sampleOrders() []OrderRecord {
	return []OrderRecord{
		{
			OrderID:     "ORD-001",
			OrderDate:   "2025-03-01T10:00:00Z",
			OrderStatus: "completed",
			CartItems: []CartLine{
				{ProductName: "Chair", ProductPrice: 50, Quantity: 2},
				{ProductName: "Desk", ProductPrice: 200, Quantity: 1},
			},
		},
		{
			OrderID:     "ORD-002",
			OrderDate:   "2025-03-01T18:30:00Z",
			OrderStatus: "pending",
			CartItems: []CartLine{
				{ProductName: "Chair", ProductPrice: 50, Quantity: 1},
			},
		},
		{
			OrderID:     "ORD-003",
			OrderDate:   "2025-03-02T08:00:00Z",
			OrderStatus: "canceled",
			CartItems:   nil,
		},
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// ===========================================
// SẢN PHẨM
// ===========================================

func TestAggregateProductSales_GopSoLuongVaDoanhThu(t *testing.T) {
	summary, err := AggregateProductSales(sampleOrders())
	if err != nil {
		t.Fatalf("AggregateProductSales lỗi: %v", err)
	}
	chair, ok := summary["Chair"]
	if !ok {
		t.Fatal("thiếu entry cho Chair")
	}
	if chair.QuantitySold != 3 {
		t.Errorf("Chair quantitySold = %d, muốn 3", chair.QuantitySold)
	}
	if !almostEqual(chair.Revenue, 150) {
		t.Errorf("Chair revenue = %v, muốn 150", chair.Revenue)
	}
	if len(summary) != 2 {
		t.Errorf("summary có %d sản phẩm, muốn 2 (đơn không có dòng hàng không tạo entry)", len(summary))
	}
}

func TestAggregateProductSales_InputRongTraMapKhacNil(t *testing.T) {
	summary, err := AggregateProductSales(nil)
	if err != nil {
		t.Fatalf("AggregateProductSales lỗi: %v", err)
	}
	if summary == nil {
		t.Fatal("summary phải là map rỗng khác nil")
	}
	if len(summary) != 0 {
		t.Errorf("summary phải rỗng, có %d entry", len(summary))
	}
}

func TestAggregateProductSales_KhongPhuThuocThuTu(t *testing.T) {
	orders := sampleOrders()
	reversed := []OrderRecord{orders[2], orders[1], orders[0]}

	a, _ := AggregateProductSales(orders)
	b, _ := AggregateProductSales(reversed)

	if len(a) != len(b) {
		t.Fatalf("đảo thứ tự làm đổi số sản phẩm: %d vs %d", len(a), len(b))
	}
	for name, stats := range a {
		other := b[name]
		if stats.QuantitySold != other.QuantitySold || !almostEqual(stats.Revenue, other.Revenue) {
			t.Errorf("sản phẩm %s khác nhau khi đảo thứ tự: %+v vs %+v", name, stats, other)
		}
	}
}

// ===========================================
// ĐƠN HÀNG
// ===========================================

func TestAggregateOrderSales_TongVaTrangThaiVaNgay(t *testing.T) {
	summary, err := AggregateOrderSales(sampleOrders())
	if err != nil {
		t.Fatalf("AggregateOrderSales lỗi: %v", err)
	}
	if !almostEqual(summary.TotalSales, 350) {
		t.Errorf("totalSales = %v, muốn 350", summary.TotalSales)
	}
	if summary.StatusCounts.Completed != 1 || summary.StatusCounts.Pending != 1 || summary.StatusCounts.Canceled != 1 {
		t.Errorf("statusCounts = %+v, muốn mỗi trạng thái 1 đơn", summary.StatusCounts)
	}
	if !almostEqual(summary.SalesPerDay["2025-03-01"], 350) {
		t.Errorf("salesPerDay[2025-03-01] = %v, muốn 350", summary.SalesPerDay["2025-03-01"])
	}
	// Đơn không có dòng hàng vẫn phải chạm vào ngày của nó với doanh thu 0
	if v, ok := summary.SalesPerDay["2025-03-02"]; !ok || !almostEqual(v, 0) {
		t.Errorf("salesPerDay[2025-03-02] = %v (ok=%v), muốn 0 và có mặt", v, ok)
	}
}

func TestAggregateOrderSales_NgayTheoUTC(t *testing.T) {
	// 23:00 ngày 01/03 theo UTC+7 là 16:00 ngày 01/03 UTC
	orders := []OrderRecord{
		{OrderID: "ORD-TZ", OrderDate: "2025-03-01T23:00:00+07:00", OrderStatus: "completed"},
	}
	summary, err := AggregateOrderSales(orders)
	if err != nil {
		t.Fatalf("AggregateOrderSales lỗi: %v", err)
	}
	if _, ok := summary.SalesPerDay["2025-03-01"]; !ok {
		t.Errorf("key ngày phải theo UTC, có: %v", summary.SalesPerDay)
	}
}

func TestAggregateOrderSales_TrangThaiLa(t *testing.T) {
	orders := []OrderRecord{
		{OrderID: "ORD-X", OrderDate: "2025-03-01", OrderStatus: "refunded"},
	}
	summary, err := AggregateOrderSales(orders)
	if err != nil {
		t.Fatalf("AggregateOrderSales lỗi: %v", err)
	}
	if summary.StatusCounts.Completed+summary.StatusCounts.Pending+summary.StatusCounts.Canceled != 0 {
		t.Errorf("trạng thái lạ không được gộp vào bucket đã biết: %+v", summary.StatusCounts)
	}
	if summary.UnknownStatuses["refunded"] != 1 {
		t.Errorf("unknownStatuses[refunded] = %d, muốn 1", summary.UnknownStatuses["refunded"])
	}
}

func TestAggregateOrderSales_NgayHongLamFoldThatBai(t *testing.T) {
	orders := []OrderRecord{
		{OrderID: "ORD-BAD", OrderDate: "hôm qua", OrderStatus: "pending"},
	}
	_, err := AggregateOrderSales(orders)
	if err == nil {
		t.Fatal("muốn lỗi khi orderDate không parse được")
	}
	if !strings.Contains(err.Error(), "ORD-BAD") {
		t.Errorf("lỗi phải nêu mã đơn hàng, có: %v", err)
	}
}

func TestAggregateOrderSales_SkipMalformed(t *testing.T) {
	orders := []OrderRecord{
		{OrderID: "ORD-BAD", OrderDate: "hôm qua", OrderStatus: "pending"},
		{OrderID: "ORD-OK", OrderDate: "2025-03-01", OrderStatus: "completed",
			CartItems: []CartLine{{ProductName: "Lamp", ProductPrice: 30, Quantity: 1}}},
	}
	summary, err := AggregateOrderSales(orders, WithSkipMalformed())
	if err != nil {
		t.Fatalf("WithSkipMalformed vẫn trả lỗi: %v", err)
	}
	if summary.Skipped != 1 {
		t.Errorf("skipped = %d, muốn 1", summary.Skipped)
	}
	if summary.StatusCounts.Completed != 1 || summary.StatusCounts.Pending != 0 {
		t.Errorf("record hỏng không được đóng góp số liệu: %+v", summary.StatusCounts)
	}
	if !almostEqual(summary.TotalSales, 30) {
		t.Errorf("totalSales = %v, muốn 30", summary.TotalSales)
	}
}

func TestAggregateOrderSales_WithDateFormats(t *testing.T) {
	orders := []OrderRecord{
		{OrderID: "ORD-VN", OrderDate: "01/03/2025", OrderStatus: "completed"},
	}
	if _, err := AggregateOrderSales(orders); err == nil {
		t.Fatal("layout mặc định không được parse dd/mm/yyyy")
	}
	summary, err := AggregateOrderSales(orders, WithDateFormats("02/01/2006"))
	if err != nil {
		t.Fatalf("WithDateFormats lỗi: %v", err)
	}
	if _, ok := summary.SalesPerDay["2025-03-01"]; !ok {
		t.Errorf("salesPerDay thiếu 2025-03-01, có: %v", summary.SalesPerDay)
	}
}

func TestAggregateOrderSales_CongDuocTheoPhan(t *testing.T) {
	orders := sampleOrders()
	whole, _ := AggregateOrderSales(orders)
	left, _ := AggregateOrderSales(orders[:1])
	right, _ := AggregateOrderSales(orders[1:])

	if !almostEqual(whole.TotalSales, left.TotalSales+right.TotalSales) {
		t.Errorf("totalSales không cộng được: %v vs %v + %v", whole.TotalSales, left.TotalSales, right.TotalSales)
	}
	for day, v := range whole.SalesPerDay {
		if !almostEqual(v, left.SalesPerDay[day]+right.SalesPerDay[day]) {
			t.Errorf("salesPerDay[%s] không cộng được", day)
		}
	}
	if whole.StatusCounts.Completed != left.StatusCounts.Completed+right.StatusCounts.Completed {
		t.Error("statusCounts.completed không cộng được")
	}
}

func TestAggregateOrderSales_InputRong(t *testing.T) {
	summary, err := AggregateOrderSales(nil)
	if err != nil {
		t.Fatalf("AggregateOrderSales lỗi: %v", err)
	}
	if summary.SalesPerDay == nil || summary.UnknownStatuses == nil {
		t.Fatal("input rỗng vẫn phải trả map khác nil")
	}
	if summary.TotalSales != 0 {
		t.Errorf("totalSales = %v, muốn 0", summary.TotalSales)
	}
}

// ===========================================
// KHÁCH HÀNG
// ===========================================

func TestAggregateCustomerSales_PhanLoaiKhach(t *testing.T) {
	customers := []CustomerRecord{
		{FullName: "Nguyễn Văn A", OrderRefs: []OrderRef{{OrderID: "ORD-001"}}},
		{FullName: "Trần Thị B", OrderRefs: []OrderRef{{OrderID: "ORD-002"}, {OrderID: "ORD-003"}}},
		{FullName: "Lê Văn C"}, // chưa có đơn, phải bị loại
	}
	summary := AggregateCustomerSales(customers)
	if summary.NewCustomers != 1 {
		t.Errorf("newCustomers = %d, muốn 1", summary.NewCustomers)
	}
	if summary.RepeatCustomers != 1 {
		t.Errorf("repeatCustomers = %d, muốn 1", summary.RepeatCustomers)
	}
	if len(summary.CustomerOrdersCount) != 2 {
		t.Errorf("customerOrdersCount có %d entry, muốn 2 (khách không đơn bị loại)", len(summary.CustomerOrdersCount))
	}
	if summary.CustomerOrdersCount["Trần Thị B"] != 2 {
		t.Errorf("customerOrdersCount[Trần Thị B] = %d, muốn 2", summary.CustomerOrdersCount["Trần Thị B"])
	}
	if _, ok := summary.CustomerOrdersCount["Lê Văn C"]; ok {
		t.Error("khách chưa có đơn không được xuất hiện trong customerOrdersCount")
	}
}

func TestAggregateCustomerSales_TrungTenGhiDe(t *testing.T) {
	customers := []CustomerRecord{
		{FullName: "Nguyễn Văn A", OrderRefs: []OrderRef{{OrderID: "ORD-001"}}},
		{FullName: "Nguyễn Văn A", OrderRefs: []OrderRef{{OrderID: "ORD-002"}, {OrderID: "ORD-003"}}},
	}
	summary := AggregateCustomerSales(customers)
	// Trùng fullName: record sau ghi đè record trước trong map đếm
	if summary.CustomerOrdersCount["Nguyễn Văn A"] != 2 {
		t.Errorf("customerOrdersCount = %d, muốn 2 (record sau ghi đè)", summary.CustomerOrdersCount["Nguyễn Văn A"])
	}
	// Nhưng cả hai record vẫn được phân loại
	if summary.NewCustomers != 1 || summary.RepeatCustomers != 1 {
		t.Errorf("phân loại = new %d / repeat %d, muốn 1/1", summary.NewCustomers, summary.RepeatCustomers)
	}
}

func TestAggregateCustomerSales_InputRong(t *testing.T) {
	summary := AggregateCustomerSales(nil)
	if summary.CustomerOrdersCount == nil {
		t.Fatal("input rỗng vẫn phải trả map khác nil")
	}
	if summary.NewCustomers != 0 || summary.RepeatCustomers != 0 {
		t.Errorf("input rỗng phải ra 0/0, có %d/%d", summary.NewCustomers, summary.RepeatCustomers)
	}
}
