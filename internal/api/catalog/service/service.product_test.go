// Package catalogsvc - Test đường ghi của ProductService trên mock MongoDB:
// xóa idempotent trả 404, mọi mutation thành công phải invalidate cache danh sách.
package catalogsvc

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	basesvc "github.com/syrwx/parfum-djonkoud-sub000/internal/api/base/service"
	catalogdto "github.com/syrwx/parfum-djonkoud-sub000/internal/api/catalog/dto"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/api/catalog/models"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/common"
)

const productNS = "parfum_djonkoud.products"

func newMockMT(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().
		ClientType(mtest.Mock).
		DatabaseName("parfum_djonkoud").
		CollectionName("products"))
}

// newMockProductService dựng ProductService trực tiếp trên collection mock,
// bỏ qua registry để test không cần bootstrap toàn cục.
func newMockProductService(mt *mtest.T) *ProductService {
	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Product](mt.Coll),
		cache:                NewProductListCache(5 * time.Minute),
	}
}

func productDoc(productId, name string) bson.D {
	return bson.D{
		{Key: "_id", Value: primitive.NewObjectID()},
		{Key: "productId", Value: productId},
		{Key: "name", Value: name},
	}
}

func TestDeleteByProductId_XoaLanHaiTra404(t *testing.T) {
	mt := newMockMT(t)

	mt.Run("xóa hai lần cùng productId", func(mt *mtest.T) {
		svc := newMockProductService(mt)

		// Lần một: document còn tồn tại, xóa thành công
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, productNS, mtest.FirstBatch, productDoc("p-1", "Rêve de Bamako")),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
		)
		if err := svc.DeleteByProductId(context.Background(), "p-1"); err != nil {
			mt.Fatalf("xóa lần đầu phải thành công, lỗi: %v", err)
		}

		// Lần hai: không còn document nào match, phải trả ErrNotFound (404)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, productNS, mtest.FirstBatch),
		)
		err := svc.DeleteByProductId(context.Background(), "p-1")
		if !errors.Is(err, common.ErrNotFound) {
			mt.Fatalf("xóa lần hai phải trả ErrNotFound, nhận: %v", err)
		}
	})

	mt.Run("xóa productId chưa từng tồn tại", func(mt *mtest.T) {
		svc := newMockProductService(mt)

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, productNS, mtest.FirstBatch),
		)
		err := svc.DeleteByProductId(context.Background(), "p-khong-ton-tai")
		if !errors.Is(err, common.ErrNotFound) {
			mt.Fatalf("xóa productId không tồn tại phải trả ErrNotFound, nhận: %v", err)
		}
	})
}

func TestUpdateByProductId_KhongTimThayTra404(t *testing.T) {
	mt := newMockMT(t)

	mt.Run("sửa productId không tồn tại", func(mt *mtest.T) {
		svc := newMockProductService(mt)

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, productNS, mtest.FirstBatch),
		)
		_, err := svc.UpdateByProductId(context.Background(), "p-khong-ton-tai", &catalogdto.ProductUpdateInput{Name: "X"})
		if !errors.Is(err, common.ErrNotFound) {
			mt.Fatalf("sửa productId không tồn tại phải trả ErrNotFound, nhận: %v", err)
		}
	})
}

// primeCache nạp slot cache qua ListCached với danh sách docs cho trước,
// sau đó xác nhận lần đọc tiếp theo không chạm persistence.
func primeCache(mt *mtest.T, svc *ProductService, docs ...bson.D) {
	mt.Helper()
	mt.AddMockResponses(mtest.CreateCursorResponse(0, productNS, mtest.FirstBatch, docs...))
	first, err := svc.ListCached(context.Background())
	if err != nil {
		mt.Fatalf("nạp cache lỗi: %v", err)
	}
	if len(first) != len(docs) {
		mt.Fatalf("nạp cache phải trả %d sản phẩm, nhận %d", len(docs), len(first))
	}

	// Đọc lại ngay: phải phục vụ từ slot, không phát lệnh find nào
	// (mock sẽ trả lỗi nếu có lệnh phát ra mà không còn response trong hàng đợi)
	again, err := svc.ListCached(context.Background())
	if err != nil {
		mt.Fatalf("đọc trong TTL phải phục vụ từ cache, lỗi: %v", err)
	}
	if len(again) != len(docs) {
		mt.Fatalf("đọc trong TTL phải trả snapshot %d sản phẩm, nhận %d", len(docs), len(again))
	}
}

func TestProductService_MutationInvalidateCache(t *testing.T) {
	mt := newMockMT(t)

	mt.Run("create xóa slot cache", func(mt *mtest.T) {
		svc := newMockProductService(mt)
		primeCache(mt, svc, productDoc("p-1", "Rêve de Bamako"))

		// Create: insert + đọc lại document vừa tạo
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, productNS, mtest.FirstBatch, productDoc("p-2", "Nuit de Ségou")),
		)
		if _, err := svc.Create(context.Background(), models.Product{Name: "Nuit de Ségou"}); err != nil {
			mt.Fatalf("create lỗi: %v", err)
		}

		// Đọc sau create phải fetch lại dù TTL chưa hết
		mt.AddMockResponses(mtest.CreateCursorResponse(0, productNS, mtest.FirstBatch,
			productDoc("p-2", "Nuit de Ségou"), productDoc("p-1", "Rêve de Bamako")))
		got, err := svc.ListCached(context.Background())
		if err != nil {
			mt.Fatalf("đọc sau create lỗi: %v", err)
		}
		if len(got) != 2 {
			mt.Fatalf("đọc sau create phải thấy danh sách mới (2 sản phẩm), nhận %d", len(got))
		}
	})

	mt.Run("delete xóa slot cache", func(mt *mtest.T) {
		svc := newMockProductService(mt)
		primeCache(mt, svc, productDoc("p-1", "Rêve de Bamako"), productDoc("p-2", "Nuit de Ségou"))

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, productNS, mtest.FirstBatch, productDoc("p-2", "Nuit de Ségou")),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
		)
		if err := svc.DeleteByProductId(context.Background(), "p-2"); err != nil {
			mt.Fatalf("delete lỗi: %v", err)
		}

		mt.AddMockResponses(mtest.CreateCursorResponse(0, productNS, mtest.FirstBatch, productDoc("p-1", "Rêve de Bamako")))
		got, err := svc.ListCached(context.Background())
		if err != nil {
			mt.Fatalf("đọc sau delete lỗi: %v", err)
		}
		if len(got) != 1 {
			mt.Fatalf("đọc sau delete phải thấy danh sách mới (1 sản phẩm), nhận %d", len(got))
		}
	})

	mt.Run("trừ tồn kho xóa slot cache", func(mt *mtest.T) {
		svc := newMockProductService(mt)
		primeCache(mt, svc, productDoc("p-1", "Rêve de Bamako"))

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))
		if err := svc.AdjustStock(context.Background(), "p-1", -2); err != nil {
			mt.Fatalf("trừ tồn kho lỗi: %v", err)
		}

		mt.AddMockResponses(mtest.CreateCursorResponse(0, productNS, mtest.FirstBatch, productDoc("p-1", "Rêve de Bamako")))
		if _, err := svc.ListCached(context.Background()); err != nil {
			mt.Fatalf("đọc sau trừ tồn kho phải fetch lại, lỗi: %v", err)
		}
	})

	mt.Run("trừ tồn kho không match giữ nguyên slot", func(mt *mtest.T) {
		svc := newMockProductService(mt)
		primeCache(mt, svc, productDoc("p-1", "Rêve de Bamako"))

		// Không đủ tồn kho (hoặc sản phẩm không tồn tại): n=0 → ErrNotFound
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))
		err := svc.AdjustStock(context.Background(), "p-1", -999)
		if !errors.Is(err, common.ErrNotFound) {
			mt.Fatalf("trừ tồn kho không match phải trả ErrNotFound, nhận: %v", err)
		}

		// Mutation thất bại không được invalidate: lần đọc sau vẫn phục vụ từ slot
		got, err := svc.ListCached(context.Background())
		if err != nil {
			mt.Fatalf("đọc sau mutation thất bại phải phục vụ từ cache, lỗi: %v", err)
		}
		if len(got) != 1 {
			mt.Fatalf("snapshot trong slot phải còn nguyên, nhận %d sản phẩm", len(got))
		}
	})
}
