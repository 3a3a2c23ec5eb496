package registry

import (
	"sync"
	"testing"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("counter", 1)
	if err != nil {
		t.Fatalf("Register trả về lỗi: %v", err)
	}
	if !isNew {
		t.Errorf("Register lần đầu phải trả về isNew = true")
	}

	isNew, err = r.Register("counter", 2)
	if err != nil {
		t.Fatalf("Register ghi đè trả về lỗi: %v", err)
	}
	if isNew {
		t.Errorf("Register ghi đè phải trả về isNew = false")
	}

	v, exists := r.Get("counter")
	if !exists {
		t.Fatalf("Get không tìm thấy item đã đăng ký")
	}
	if v != 2 {
		t.Errorf("Get trả về %d, mong đợi 2 (giá trị sau khi ghi đè)", v)
	}
}

func TestRegistryRegisterEmptyName(t *testing.T) {
	r := NewRegistry[string]()
	if _, err := r.Register("", "x"); err == nil {
		t.Errorf("Register với name rỗng phải trả về lỗi")
	}
}

func TestRegistryGetOrCreate(t *testing.T) {
	r := NewRegistry[string]()

	created := 0
	creator := func() (string, error) {
		created++
		return "value", nil
	}

	v, err := r.GetOrCreate("item", creator)
	if err != nil {
		t.Fatalf("GetOrCreate trả về lỗi: %v", err)
	}
	if v != "value" {
		t.Errorf("GetOrCreate trả về %q, mong đợi %q", v, "value")
	}

	// Lần thứ hai phải trả về item đã có, không gọi creator
	_, err = r.GetOrCreate("item", creator)
	if err != nil {
		t.Fatalf("GetOrCreate lần hai trả về lỗi: %v", err)
	}
	if created != 1 {
		t.Errorf("creator bị gọi %d lần, mong đợi 1 lần", created)
	}
}

func TestRegistryClear(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)

	cleaned := false
	deleted, err := r.Clear("a", func(int) error {
		cleaned = true
		return nil
	})
	if err != nil {
		t.Fatalf("Clear trả về lỗi: %v", err)
	}
	if !deleted {
		t.Errorf("Clear phải trả về deleted = true cho item tồn tại")
	}
	if !cleaned {
		t.Errorf("cleanup function không được gọi")
	}

	deleted, _ = r.Clear("a", nil)
	if deleted {
		t.Errorf("Clear item đã xóa phải trả về deleted = false")
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			r.Register("shared", n)
			r.Get("shared")
		}(i)
	}
	wg.Wait()

	if _, exists := r.Get("shared"); !exists {
		t.Errorf("item phải tồn tại sau khi các goroutines ghi đồng thời")
	}
	if r.Len() != 1 {
		t.Errorf("Len trả về %d, mong đợi 1", r.Len())
	}
}
