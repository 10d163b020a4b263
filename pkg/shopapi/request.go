package shopapi

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"

	"github.com/glitzzera/admin-core/internal/models"
)

// FileUpload is a file attached to a multipart request.
type FileUpload struct {
	FieldName string
	FileName  string
	Reader    io.Reader
}

// ProductUpdate carries the editable fields of a product. Sent as multipart
// form-data: scalar fields, kept image URLs, newly uploaded image files, and
// the sizes array JSON-encoded into a single field.
type ProductUpdate struct {
	ShortTitle    string
	LongTitle     string
	ShortDesc     string
	LongDesc      string
	Price         float64
	DiscountPrice float64
	StockQty      int
	Status        bool
	Video         string
	Images        []string // image URLs to keep, in display order
	ImageFiles    []FileUpload
	Sizes         []models.Size
}

func (p *ProductUpdate) encode(w *multipart.Writer) error {
	fields := map[string]string{
		"shortTitle":    p.ShortTitle,
		"longTitle":     p.LongTitle,
		"shortDesc":     p.ShortDesc,
		"longDesc":      p.LongDesc,
		"price":         formatFloat(p.Price),
		"discountPrice": formatFloat(p.DiscountPrice),
		"stockQty":      strconv.Itoa(p.StockQty),
		"status":        strconv.FormatBool(p.Status),
		"video":         p.Video,
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return err
		}
	}
	for _, url := range p.Images {
		if err := w.WriteField("images", url); err != nil {
			return err
		}
	}
	sizes, err := json.Marshal(p.Sizes)
	if err != nil {
		return fmt.Errorf("failed to marshal sizes: %w", err)
	}
	if err := w.WriteField("sizes", string(sizes)); err != nil {
		return err
	}
	for _, f := range p.ImageFiles {
		if err := writeFile(w, f, "images"); err != nil {
			return err
		}
	}
	return nil
}

// CategoryInput carries the fields for creating or updating a category.
type CategoryInput struct {
	CatName string
	Status  bool
	Image   *FileUpload
}

func (c *CategoryInput) encode(w *multipart.Writer) error {
	if err := w.WriteField("catname", c.CatName); err != nil {
		return err
	}
	if err := w.WriteField("status", strconv.FormatBool(c.Status)); err != nil {
		return err
	}
	if c.Image != nil {
		return writeFile(w, *c.Image, "image")
	}
	return nil
}

// CouponInput carries the fields for creating a coupon.
type CouponInput struct {
	Title      string
	Desc       string
	CouponCode string
	Amount     float64
	LimitOfUse int
	Status     string
	Image      *FileUpload
}

func (c *CouponInput) encode(w *multipart.Writer) error {
	fields := map[string]string{
		"title":        c.Title,
		"desc":         c.Desc,
		"couponCode":   c.CouponCode,
		"amount":       formatFloat(c.Amount),
		"limit_of_use": strconv.Itoa(c.LimitOfUse),
	}
	if c.Status != "" {
		fields["status"] = c.Status
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return err
		}
	}
	if c.Image != nil {
		return writeFile(w, *c.Image, "image")
	}
	return nil
}

// CouponUpdate carries a partial coupon update. Only non-nil fields are sent.
type CouponUpdate struct {
	Title      *string
	Desc       *string
	Amount     *float64
	LimitOfUse *int
	Status     *string
	Image      *FileUpload
}

func (c *CouponUpdate) encode(w *multipart.Writer) error {
	if c.Title != nil {
		if err := w.WriteField("title", *c.Title); err != nil {
			return err
		}
	}
	if c.Desc != nil {
		if err := w.WriteField("desc", *c.Desc); err != nil {
			return err
		}
	}
	if c.Amount != nil {
		if err := w.WriteField("amount", formatFloat(*c.Amount)); err != nil {
			return err
		}
	}
	if c.LimitOfUse != nil {
		if err := w.WriteField("limit_of_use", strconv.Itoa(*c.LimitOfUse)); err != nil {
			return err
		}
	}
	if c.Status != nil {
		if err := w.WriteField("status", *c.Status); err != nil {
			return err
		}
	}
	if c.Image != nil {
		return writeFile(w, *c.Image, "image")
	}
	return nil
}

// OrderCreate is the JSON body of POST /api/orders.
type OrderCreate struct {
	UserID      string             `json:"userId"`
	AddressID   string             `json:"addressId"`
	Products    []models.OrderItem `json:"products"`
	PaymentInfo models.PaymentInfo `json:"paymentInfo"`
	TotalAmount float64            `json:"totalAmount"`
	Discount    float64            `json:"discount"`
	IsPaid      bool               `json:"isPaid"`
}

// orderStatusUpdate is the JSON body of the partial PUT /api/orders/:id.
type orderStatusUpdate struct {
	OrderStatus models.OrderStatus `json:"orderStatus"`
}

func writeFile(w *multipart.Writer, f FileUpload, defaultField string) error {
	field := f.FieldName
	if field == "" {
		field = defaultField
	}
	part, err := w.CreateFormFile(field, f.FileName)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, f.Reader); err != nil {
		return fmt.Errorf("failed to copy upload %s: %w", f.FileName, err)
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
