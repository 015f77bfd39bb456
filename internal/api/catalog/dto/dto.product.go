package catalogdto

// ProductCreateInput đầu vào tạo sản phẩm.
// ProductId để trống thì server tự sinh uuid.
type ProductCreateInput struct {
	ProductId       string   `json:"productId"`
	Name            string   `json:"name" validate:"required,no_xss"`
	Price           int64    `json:"price" validate:"min=0"`
	Category        string   `json:"category"`
	Description     string   `json:"description" validate:"no_xss"`
	Story           string   `json:"story" validate:"no_xss"`
	Notes           []string `json:"notes"`
	ImageUrl        string   `json:"imageUrl"`
	OverlayImageUrl string   `json:"overlayImageUrl"`
	Rating          float64  `json:"rating" validate:"min=0,max=5"`
	Sku             string   `json:"sku"`
	UnitLabel       string   `json:"unitLabel"`
	Stock           int64    `json:"stock" validate:"min=0"`
}

// ProductUpdateInput đầu vào sửa sản phẩm (full-field edit).
// PUT thay toàn bộ các trường nội dung; productId không đổi qua update.
type ProductUpdateInput struct {
	Name            string   `json:"name" validate:"required,no_xss"`
	Price           int64    `json:"price" validate:"min=0"`
	Category        string   `json:"category"`
	Description     string   `json:"description" validate:"no_xss"`
	Story           string   `json:"story" validate:"no_xss"`
	Notes           []string `json:"notes"`
	ImageUrl        string   `json:"imageUrl"`
	OverlayImageUrl string   `json:"overlayImageUrl"`
	Rating          float64  `json:"rating" validate:"min=0,max=5"`
	Sku             string   `json:"sku"`
	UnitLabel       string   `json:"unitLabel"`
	Stock           int64    `json:"stock" validate:"min=0"`
}
