// Package catalogsvc - Test hợp đồng của ProductListCache: TTL, invalidate,
// fetch lỗi không làm hỏng slot, truy cập đồng thời.
package catalogsvc

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/syrwx/parfum-djonkoud-sub000/internal/api/catalog/models"
)

// countingFetch là stub persistence đếm số lần bị gọi.
type countingFetch struct {
	mu    sync.Mutex
	calls int
	items []models.Product
	err   error
}

func (f *countingFetch) fetch(ctx context.Context) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f *countingFetch) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeClock cho phép test điều khiển thời gian của cache.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestCache(ttl time.Duration) (*ProductListCache, *fakeClock) {
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	cache := NewProductListCache(ttl)
	cache.now = clock.Now
	return cache, clock
}

func TestCache_TTLBound_KhongGoiPersistenceTrongHan(t *testing.T) {
	cache, clock := newTestCache(5 * time.Minute)
	stub := &countingFetch{items: []models.Product{{ProductId: "p1", Name: "Rêve de Bamako"}}}

	first, err := cache.Get(context.Background(), stub.fetch)
	if err != nil {
		t.Fatalf("lần đọc đầu lỗi: %v", err)
	}
	if stub.callCount() != 1 {
		t.Fatalf("lần đọc đầu phải fetch đúng 1 lần, thực tế %d", stub.callCount())
	}

	// Lần đọc thứ hai trong TTL: không fetch, trả cùng snapshot
	clock.Advance(4 * time.Minute)
	second, err := cache.Get(context.Background(), stub.fetch)
	if err != nil {
		t.Fatalf("lần đọc thứ hai lỗi: %v", err)
	}
	if stub.callCount() != 1 {
		t.Errorf("đọc trong TTL không được chạm persistence, số lần fetch: %d", stub.callCount())
	}
	if len(second) != len(first) || second[0].ProductId != first[0].ProductId {
		t.Error("đọc trong TTL phải trả về snapshot giữ trong slot")
	}
}

func TestCache_ForcedRefresh_SauTTLFetchDungMotLan(t *testing.T) {
	cache, clock := newTestCache(5 * time.Minute)
	stub := &countingFetch{items: []models.Product{{ProductId: "p1"}}}

	if _, err := cache.Get(context.Background(), stub.fetch); err != nil {
		t.Fatalf("lần đọc đầu lỗi: %v", err)
	}

	// Sau khi TTL trôi qua, lần đọc tiếp theo phải fetch lại đúng một lần
	clock.Advance(5*time.Minute + time.Second)
	if _, err := cache.Get(context.Background(), stub.fetch); err != nil {
		t.Fatalf("lần đọc sau TTL lỗi: %v", err)
	}
	if stub.callCount() != 2 {
		t.Errorf("đọc sau TTL phải fetch lại đúng 1 lần, tổng số lần fetch: %d", stub.callCount())
	}
}

func TestCache_Invalidate_BuocDocSauPhaiFetchLai(t *testing.T) {
	cache, _ := newTestCache(5 * time.Minute)
	stub := &countingFetch{items: []models.Product{{ProductId: "p1", Name: "cũ"}}}

	if _, err := cache.Get(context.Background(), stub.fetch); err != nil {
		t.Fatalf("lần đọc đầu lỗi: %v", err)
	}

	// Mô phỏng mutation: đổi dữ liệu persistence rồi invalidate
	stub.mu.Lock()
	stub.items = []models.Product{{ProductId: "p1", Name: "mới"}, {ProductId: "p2", Name: "thêm"}}
	stub.mu.Unlock()
	cache.Invalidate()

	// Đọc ngay trong TTL vẫn phải thấy dữ liệu sau mutation
	got, err := cache.Get(context.Background(), stub.fetch)
	if err != nil {
		t.Fatalf("lần đọc sau invalidate lỗi: %v", err)
	}
	if stub.callCount() != 2 {
		t.Errorf("đọc sau invalidate phải fetch lại, số lần fetch: %d", stub.callCount())
	}
	if len(got) != 2 || got[0].Name != "mới" {
		t.Errorf("đọc sau invalidate phải thấy dữ liệu mới, nhận: %+v", got)
	}
}

func TestCache_FetchLoi_SlotGiuNguyenVaThuLaiDuoc(t *testing.T) {
	cache, clock := newTestCache(5 * time.Minute)
	stub := &countingFetch{items: []models.Product{{ProductId: "p1"}}}

	if _, err := cache.Get(context.Background(), stub.fetch); err != nil {
		t.Fatalf("lần đọc đầu lỗi: %v", err)
	}

	// Hết hạn, persistence lỗi: lỗi phải nổi lên caller
	clock.Advance(6 * time.Minute)
	stub.mu.Lock()
	stub.err = errors.New("mongo: connection reset")
	stub.mu.Unlock()

	if _, err := cache.Get(context.Background(), stub.fetch); err == nil {
		t.Fatal("fetch lỗi phải trả lỗi cho caller, không trả snapshot quá hạn")
	}

	// Persistence hồi phục: lần đọc sau vẫn phải thử fetch lại (slot không bị "đầu độc")
	stub.mu.Lock()
	stub.err = nil
	stub.items = []models.Product{{ProductId: "p2"}}
	stub.mu.Unlock()

	got, err := cache.Get(context.Background(), stub.fetch)
	if err != nil {
		t.Fatalf("lần đọc sau khi persistence hồi phục lỗi: %v", err)
	}
	if got[0].ProductId != "p2" {
		t.Errorf("phải trả dữ liệu fetch mới, nhận: %+v", got)
	}
	if stub.callCount() != 3 {
		t.Errorf("tổng số lần fetch phải là 3 (đầu + lỗi + hồi phục), thực tế %d", stub.callCount())
	}
}

func TestCache_FetchLoiKhiSlotRong_SlotVanRong(t *testing.T) {
	cache, _ := newTestCache(5 * time.Minute)
	stub := &countingFetch{err: errors.New("mongo: server selection timeout")}

	if _, err := cache.Get(context.Background(), stub.fetch); err == nil {
		t.Fatal("fetch lỗi khi slot rỗng phải trả lỗi")
	}

	stub.mu.Lock()
	stub.err = nil
	stub.items = []models.Product{{ProductId: "p1"}}
	stub.mu.Unlock()

	got, err := cache.Get(context.Background(), stub.fetch)
	if err != nil {
		t.Fatalf("lần đọc sau lỗi: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("slot phải được populate sau fetch thành công, nhận %d item", len(got))
	}
}

func TestCache_DongThoi_KhongSaiDuLieu(t *testing.T) {
	cache, _ := newTestCache(5 * time.Minute)
	stub := &countingFetch{items: []models.Product{{ProductId: "p1"}}}

	// Nhiều goroutine cùng đọc slot rỗng: có thể fetch trùng (race lành tính),
	// nhưng mọi kết quả đều phải đúng và không panic/deadlock
	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := cache.Get(context.Background(), stub.fetch)
			if err != nil {
				errs <- err
				return
			}
			if len(got) != 1 || got[0].ProductId != "p1" {
				errs <- errors.New("kết quả đọc đồng thời sai")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}

	if stub.callCount() < 1 {
		t.Error("phải có ít nhất một lần fetch")
	}
}
