package validator_test

import (
	"dormy/shared/failure"
	"dormy/shared/validator"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listingForm struct {
	Name   string   `json:"name"   validate:"required"`
	Price  float64  `json:"price"  validate:"gt=0"`
	Type   string   `json:"type"   validate:"oneof=single double shared"`
	Images []string `json:"images" validate:"listingimages"`
	Phone  string   `json:"phone"  validate:"omitempty,phmobile"`
}

type window struct {
	From int `json:"from"`
	To   int `json:"to"`
}

func (w window) Validate() error {
	if w.To < w.From {
		return errors.New("to must not be before from")
	}

	return nil
}

func validForm() listingForm {
	return listingForm{
		Name:   "Casa Maria",
		Price:  2500,
		Type:   "single",
		Images: []string{"a.jpg", "b.jpg", "c.jpg"},
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *listingForm)
		message string
	}{
		{"valid", func(*listingForm) {}, ""},
		{"missing name", func(f *listingForm) { f.Name = "" }, "name is required"},
		{"zero price", func(f *listingForm) { f.Price = 0 }, "price must be greater than 0"},
		{"bad type", func(f *listingForm) { f.Type = "suite" }, "type must be one of single double shared"},
		{"two images", func(f *listingForm) { f.Images = f.Images[:2] }, "images must contain between 3 and 7 images"},
		{"eight images", func(f *listingForm) { f.Images = strings.Split("a b c d e f g h", " ") }, "images must contain between 3 and 7 images"},
		{"blank image", func(f *listingForm) { f.Images[1] = " " }, "images must contain between 3 and 7 images"},
		{"valid phone", func(f *listingForm) { f.Phone = "09171234567" }, ""},
		{"international phone", func(f *listingForm) { f.Phone = "+639171234567" }, ""},
		{"bad phone", func(f *listingForm) { f.Phone = "12345" }, "phone must be a valid mobile number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			err := validator.ValidateStruct(&form)

			if tt.message == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateStructRunsSelfValidator(t *testing.T) {
	err := validator.ValidateStruct(&window{From: 5, To: 1})

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.NoError(t, validator.ValidateStruct(&window{From: 1, To: 5}))
}

func TestValidate(t *testing.T) {
	var form listingForm

	err := validator.Validate(strings.NewReader(`{"name":"Casa","price":1500,"type":"double","images":["1","2","3"]}`), &form)
	require.NoError(t, err)
	assert.Equal(t, "Casa", form.Name)

	err = validator.Validate(strings.NewReader(`{"name":`), &form)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode request body")
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("tenant@example.com", "required,email"))
	assert.Error(t, validator.ValidateVar("not-an-email", "email"))
	assert.NoError(t, validator.ValidateVar("data:image/png;base64,AAAA", "mimetypes=image/png image/jpeg"))
	assert.Error(t, validator.ValidateVar("data:text/plain;base64,AAAA", "mimetypes=image/png image/jpeg"))
	assert.Error(t, validator.ValidateVar(strings.Repeat("x", 2*1024*1024), "maxfilesize=1"))
}
