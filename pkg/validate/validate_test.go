package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eshop-back/pkg/validate"
)

type registerInput struct {
	Name     string `json:"name" validate:"required,max=10"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestStructValid(t *testing.T) {
	errs := validate.Struct(&registerInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	assert.False(t, validate.HasErrors(errs))
}

func TestRequired(t *testing.T) {
	errs := validate.Struct(&registerInput{})
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
}

func TestEmail(t *testing.T) {
	errs := validate.Struct(&registerInput{
		Name: "Alice", Email: "not-an-email", Password: "secret123",
	})
	assert.Equal(t, "The email must be a valid email address.", errs["email"])
}

func TestMinOnString(t *testing.T) {
	errs := validate.Struct(&registerInput{
		Name: "Alice", Email: "a@b.co", Password: "abc",
	})
	assert.Contains(t, errs["password"], "at least 6")
}

func TestMaxOnString(t *testing.T) {
	errs := validate.Struct(&registerInput{
		Name: "A very long name", Email: "a@b.co", Password: "secret123",
	})
	assert.Contains(t, errs, "name")
}

func TestNumericRules(t *testing.T) {
	type item struct {
		Quantity int     `json:"quantity" validate:"gt=0"`
		Price    float64 `json:"price" validate:"gte=0"`
		Rating   int     `json:"rating" validate:"min=1,max=5"`
	}

	assert.False(t, validate.HasErrors(validate.Struct(&item{Quantity: 1, Price: 0, Rating: 3})))

	errs := validate.Struct(&item{Quantity: 0, Price: -1, Rating: 9})
	assert.Contains(t, errs, "quantity")
	assert.Contains(t, errs, "price")
	assert.Contains(t, errs, "rating")
}

func TestNullableSkipsEmpty(t *testing.T) {
	type form struct {
		Website string `json:"website" validate:"nullable,min=4"`
	}

	assert.False(t, validate.HasErrors(validate.Struct(&form{})))
	assert.True(t, validate.HasErrors(validate.Struct(&form{Website: "ab"})))
}

func TestInKeepsParameterList(t *testing.T) {
	type form struct {
		Status string `json:"status" validate:"required,in=Pending,Shipped,Delivered,max=20"`
	}

	assert.False(t, validate.HasErrors(validate.Struct(&form{Status: "Shipped"})))

	errs := validate.Struct(&form{Status: "Lost"})
	assert.Equal(t, "The selected status is invalid.", errs["status"])
}

func TestFieldNamesComeFromJSONTags(t *testing.T) {
	type form struct {
		FirstName string `json:"firstName" validate:"required"`
	}

	errs := validate.Struct(&form{})
	assert.Contains(t, errs, "firstName")
}
