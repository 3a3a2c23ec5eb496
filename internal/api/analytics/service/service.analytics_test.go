// Package analyticssvc - Test chuyển đổi record từ model sang input của engine.
package analyticssvc

import (
	"testing"

	customermodels "shop_admin/internal/api/customer/models"
	ordermodels "shop_admin/internal/api/order/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToOrderRecord_GiuNguyenDongHang(t *testing.T) {
	order := ordermodels.Order{
		OrderID:     "ORD-001",
		OrderDate:   "2025-03-01T10:00:00Z",
		OrderStatus: "completed",
		CartItems: []ordermodels.CartItem{
			{ProductName: "Chair", ProductPrice: 50, Quantity: 2},
		},
	}
	record := toOrderRecord(order)
	if record.OrderID != "ORD-001" || record.OrderDate != "2025-03-01T10:00:00Z" || record.OrderStatus != "completed" {
		t.Errorf("record không khớp: %+v", record)
	}
	if len(record.CartItems) != 1 {
		t.Fatalf("record có %d dòng hàng, muốn 1", len(record.CartItems))
	}
	line := record.CartItems[0]
	if line.ProductName != "Chair" || line.ProductPrice != 50 || line.Quantity != 2 {
		t.Errorf("dòng hàng không khớp: %+v", line)
	}
}

func TestToOrderRecord_GioRongKhacNil(t *testing.T) {
	record := toOrderRecord(ordermodels.Order{OrderID: "ORD-002"})
	if record.CartItems == nil {
		t.Error("CartItems phải là slice rỗng khác nil")
	}
}

func TestToCustomerRecord_ChuyenObjectIDSangHex(t *testing.T) {
	id := primitive.NewObjectID()
	customer := customermodels.Customer{
		FullName:       "Nguyễn Văn A",
		OrderReference: []primitive.ObjectID{id},
	}
	record := toCustomerRecord(customer)
	if record.FullName != "Nguyễn Văn A" {
		t.Errorf("fullName = %s, muốn Nguyễn Văn A", record.FullName)
	}
	if len(record.OrderRefs) != 1 {
		t.Fatalf("record có %d order ref, muốn 1", len(record.OrderRefs))
	}
	if record.OrderRefs[0].OrderID != id.Hex() {
		t.Errorf("orderId = %s, muốn %s", record.OrderRefs[0].OrderID, id.Hex())
	}
}

func TestToCustomerRecord_KhachChuaCoDon(t *testing.T) {
	record := toCustomerRecord(customermodels.Customer{FullName: "Lê Văn C"})
	if len(record.OrderRefs) != 0 {
		t.Errorf("khách chưa có đơn phải có 0 order ref, có %d", len(record.OrderRefs))
	}
}
