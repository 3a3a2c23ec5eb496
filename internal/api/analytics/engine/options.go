package engine

import "time"

// config giữ cấu hình của một lần fold.
type config struct {
	skipMalformed bool
	dateFormats   []string
}

// Option tùy chỉnh hành vi của engine.
type Option func(*config)

// defaultDateFormats là các layout được thử theo thứ tự khi parse OrderDate.
var defaultDateFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func defaultConfig() *config {
	return &config{
		skipMalformed: false,
		dateFormats:   defaultDateFormats,
	}
}

func applyOptions(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSkipMalformed bỏ qua record có OrderDate không parse được thay vì
// làm cả lần fold thất bại. Số record bị bỏ được báo trong Skipped.
func WithSkipMalformed() Option {
	return func(cfg *config) {
		cfg.skipMalformed = true
	}
}

// WithDateFormats thay danh sách layout dùng để parse OrderDate.
// Truyền rỗng thì giữ danh sách mặc định.
func WithDateFormats(layouts ...string) Option {
	return func(cfg *config) {
		if len(layouts) > 0 {
			cfg.dateFormats = layouts
		}
	}
}
