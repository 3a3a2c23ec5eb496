// Package ordersvc - Test tính thuế và tổng tiền đơn hàng.
package ordersvc

import (
	"math"
	"testing"

	orderdto "shop_admin/internal/api/order/dto"
	ordermodels "shop_admin/internal/api/order/models"
)

func TestSubtotal_TongTienHang(t *testing.T) {
	order := ordermodels.Order{
		CartItems: []ordermodels.CartItem{
			{ProductName: "Chair", ProductPrice: 50, Quantity: 2},
			{ProductName: "Desk", ProductPrice: 200, Quantity: 1},
		},
	}
	if got := order.Subtotal(); got != 300 {
		t.Errorf("Subtotal() = %v, muốn 300", got)
	}
}

func TestSubtotal_GioRong(t *testing.T) {
	order := ordermodels.Order{}
	if got := order.Subtotal(); got != 0 {
		t.Errorf("Subtotal() giỏ rỗng = %v, muốn 0", got)
	}
}

func TestRound2_LamTronTien(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{1.005, 1.0}, // 1.005 biểu diễn nhị phân < 1.005 nên làm tròn xuống
		{2.675, 2.68},
		{10, 10},
		{0.333333, 0.33},
	}
	for _, c := range cases {
		if got := round2(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("round2(%v) = %v, muốn %v", c.in, got, c.want)
		}
	}
}

func TestMapCartItems_ChuyenDTOSangModel(t *testing.T) {
	items := mapCartItems([]orderdto.CartItemInput{
		{ProductName: "Lamp", ProductPrice: 30, Quantity: 3},
	})
	if len(items) != 1 {
		t.Fatalf("mapCartItems trả về %d item, muốn 1", len(items))
	}
	if items[0].ProductName != "Lamp" || items[0].ProductPrice != 30 || items[0].Quantity != 3 {
		t.Errorf("item không khớp: %+v", items[0])
	}
}

func TestTaxRate_ThueNamPhanTram(t *testing.T) {
	order := ordermodels.Order{
		CartItems: []ordermodels.CartItem{
			{ProductName: "Chair", ProductPrice: 50, Quantity: 2},
		},
	}
	subtotal := order.Subtotal()
	tax := round2(subtotal * TaxRate)
	total := round2(subtotal + tax)
	if tax != 5 {
		t.Errorf("tax = %v, muốn 5 (5%% của 100)", tax)
	}
	if total != 105 {
		t.Errorf("total = %v, muốn 105", total)
	}
}
