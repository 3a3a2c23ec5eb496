// Package utility - Test tạo và parse JWT token.
package utility

import "testing"

func TestCreateToken_VaParseToken(t *testing.T) {
	result, err := CreateToken("test-secret", "65f1a2b3c4d5e6f7a8b9c0d1", "18f3a2b", "42")
	if err != nil {
		t.Fatalf("CreateToken lỗi: %v", err)
	}
	token, ok := result["token"]
	if !ok || token == "" {
		t.Fatal("CreateToken phải trả về map có key 'token'")
	}

	userID, err := ParseToken("test-secret", token)
	if err != nil {
		t.Fatalf("ParseToken lỗi: %v", err)
	}
	if userID != "65f1a2b3c4d5e6f7a8b9c0d1" {
		t.Errorf("ParseToken trả về userId %s, muốn 65f1a2b3c4d5e6f7a8b9c0d1", userID)
	}
}

func TestParseToken_SaiSecret(t *testing.T) {
	result, err := CreateToken("test-secret", "65f1a2b3c4d5e6f7a8b9c0d1", "18f3a2b", "42")
	if err != nil {
		t.Fatalf("CreateToken lỗi: %v", err)
	}
	if _, err := ParseToken("other-secret", result["token"]); err == nil {
		t.Error("ParseToken phải lỗi khi secret không đúng")
	}
}

func TestParseToken_ChuoiRac(t *testing.T) {
	if _, err := ParseToken("test-secret", "not-a-jwt"); err == nil {
		t.Error("ParseToken phải lỗi với chuỗi không phải JWT")
	}
}
