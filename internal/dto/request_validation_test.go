package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreRequestValidate(t *testing.T) {
	assert.Empty(t, StoreRequest{Name: "shop"}.Validate())

	errs := StoreRequest{}.Validate()
	assert.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "min=1", errs[0].Tag)

	errs = StoreRequest{Name: strings.Repeat("x", 256)}.Validate()
	assert.Len(t, errs, 1)
	assert.Equal(t, "max=255", errs[0].Tag)
}

func TestBillboardRequestValidate(t *testing.T) {
	assert.Empty(t, BillboardRequest{Label: "summer", ImageURL: "https://cdn.example.com/v1/a.jpg"}.Validate())

	errs := BillboardRequest{}.Validate()
	assert.Len(t, errs, 2)
}

func TestCategoryRequestValidate(t *testing.T) {
	assert.Empty(t, CategoryRequest{Name: "shoes", BillboardID: "bb-1"}.Validate())

	errs := CategoryRequest{Name: "s"}.Validate()
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"name", "billboard_id"}, fields)
}

func TestColorRequestValidate(t *testing.T) {
	assert.Empty(t, ColorRequest{Name: "red", Value: "#ff0000"}.Validate())
	assert.Len(t, ColorRequest{Name: "r", Value: ""}.Validate(), 2)
}

func TestSizeRequestValidate(t *testing.T) {
	assert.Empty(t, SizeRequest{Name: "large", Value: "L"}.Validate())
	assert.Len(t, SizeRequest{}.Validate(), 2)
}

func TestProductRequestValidate(t *testing.T) {
	valid := ProductRequest{
		Name:       "air max",
		Price:      120,
		CategoryID: "cat-1",
		ColorID:    "color-1",
		SizeID:     "size-1",
		Images:     []ProductImageRequest{{URL: "https://cdn.example.com/v1/a.jpg"}},
	}
	assert.Empty(t, valid.Validate())

	noImages := valid
	noImages.Images = nil
	errs := noImages.Validate()
	assert.Len(t, errs, 1)
	assert.Equal(t, "images", errs[0].Field)

	badPrice := valid
	badPrice.Price = 0
	errs = badPrice.Validate()
	assert.Len(t, errs, 1)
	assert.Equal(t, "gt=0", errs[0].Tag)

	emptyImageURL := valid
	emptyImageURL.Images = []ProductImageRequest{{URL: ""}}
	errs = emptyImageURL.Validate()
	assert.Len(t, errs, 1)
	assert.Equal(t, "images[0].url", errs[0].Field)
}
