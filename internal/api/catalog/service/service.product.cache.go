package catalogsvc

import (
	"context"
	"sync"
	"time"

	"github.com/syrwx/parfum-djonkoud-sub000/internal/api/catalog/models"
)

// DefaultCacheTTL là thời gian sống mặc định của snapshot danh sách sản phẩm.
const DefaultCacheTTL = 5 * time.Minute

// FetchFunc đọc toàn bộ danh sách sản phẩm từ persistence.
type FetchFunc func(ctx context.Context) ([]models.Product, error)

// ProductListCache là read-through cache cho danh sách sản phẩm.
// Cache có đúng MỘT slot cho toàn bộ collection (endpoint không nhận filter):
// hoặc rỗng, hoặc (snapshot, thời điểm fetch).
//
// Bất biến: slot luôn rỗng hoặc chứa nguyên vẹn kết quả của một lần đọc
// persistence thành công không cũ hơn TTL. Không bao giờ chứa kết quả
// một phần hay kết quả của lần đọc lỗi.
//
// Hai request cùng thấy slot hết hạn có thể cùng fetch; lần ghi sau thắng.
// Race này chỉ tốn công, không sai dữ liệu: snapshot nào cũng đúng tại
// thời điểm fetch của nó.
type ProductListCache struct {
	mu        sync.RWMutex
	snapshot  []models.Product
	fetchedAt time.Time
	ttl       time.Duration
	now       func() time.Time // thay được trong test
}

// NewProductListCache tạo cache với TTL cho trước (<= 0 thì dùng DefaultCacheTTL).
func NewProductListCache(ttl time.Duration) *ProductListCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ProductListCache{
		ttl: ttl,
		now: time.Now,
	}
}

// Get trả về snapshot còn hạn, hoặc tự fetch từ persistence rồi lưu lại.
// Nếu fetch lỗi thì trả lỗi cho caller và GIỮ NGUYÊN slot (rỗng hoặc
// snapshot cũ đã quá hạn); lần gọi sau sẽ thử fetch lại.
func (c *ProductListCache) Get(ctx context.Context, fetch FetchFunc) ([]models.Product, error) {
	c.mu.RLock()
	if c.snapshot != nil && c.now().Sub(c.fetchedAt) <= c.ttl {
		snapshot := c.snapshot
		c.mu.RUnlock()
		return snapshot, nil
	}
	c.mu.RUnlock()

	// Fetch ngoài lock: không giữ lock qua I/O
	items, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Product{}
	}

	c.mu.Lock()
	c.snapshot = items
	c.fetchedAt = c.now()
	c.mu.Unlock()

	return items, nil
}

// Invalidate xóa slot vô điều kiện để lần đọc sau buộc phải fetch lại.
// Được gọi ĐỒNG BỘ sau mỗi create/update/delete sản phẩm thành công,
// trước khi request mutation trả về response (read-your-writes cho
// client vừa ghi).
func (c *ProductListCache) Invalidate() {
	c.mu.Lock()
	c.snapshot = nil
	c.fetchedAt = time.Time{}
	c.mu.Unlock()
}
