// Package utility - Test hash và so sánh mật khẩu.
package utility

import (
	"strings"
	"testing"
)

func TestHashPassword_DungDinhDangSaltHash(t *testing.T) {
	hashed, err := HashPassword("secret-password")
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}
	if !strings.Contains(hashed, "$") {
		t.Errorf("hash phải có dạng salt$hash, có: %s", hashed)
	}
	if hashed == "secret-password" {
		t.Error("hash không được trùng mật khẩu gốc")
	}
}

func TestComparePassword_KhopVaKhongKhop(t *testing.T) {
	hashed, err := HashPassword("secret-password")
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}
	if !ComparePassword(hashed, "secret-password") {
		t.Error("ComparePassword phải khớp với mật khẩu đúng")
	}
	if ComparePassword(hashed, "wrong-password") {
		t.Error("ComparePassword không được khớp với mật khẩu sai")
	}
}

func TestHashPassword_SaltNgauNhien(t *testing.T) {
	h1, err := HashPassword("secret-password")
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}
	h2, err := HashPassword("secret-password")
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}
	if h1 == h2 {
		t.Error("hai lần hash cùng mật khẩu phải khác nhau do salt ngẫu nhiên")
	}
}
