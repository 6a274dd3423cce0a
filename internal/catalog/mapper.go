package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"bookshelf/internal/book"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their YAML key.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// MapCatalog validates a decoded catalogue and converts it into books,
// keeping file order.
func MapCatalog(path string, yc YAMLCatalog) ([]book.Book, error) {
	books := make([]book.Book, 0, len(yc.Books))
	for i, b := range yc.Books {
		b.PublishedOn = strings.TrimSpace(b.PublishedOn)
		if err := validateEntry(path, i, b); err != nil {
			return nil, err
		}
		publishedOn, err := time.Parse(book.DateLayout, b.PublishedOn)
		if err != nil {
			return nil, invalidField(path, fmt.Sprintf("books[%d].published_on", i), err)
		}
		books = append(books, book.New(b.Title, b.Author, publishedOn))
	}
	return books, nil
}

// validateEntry reports the first failing field of entry i.
func validateEntry(path string, i int, b YAMLBook) error {
	err := validate.Struct(b)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return invalidField(path, fmt.Sprintf("books[%d]", i), err)
	}

	fe := verrs[0]
	field := fe.Field()

	var message string
	switch fe.Tag() {
	case "required":
		message = fmt.Sprintf("%s is required", field)
	case "datetime":
		message = fmt.Sprintf("%s must be a date in %s format", field, fe.Param())
	default:
		message = fmt.Sprintf("%s is invalid", field)
	}
	return invalidField(path, fmt.Sprintf("books[%d].%s", i, field), errors.New(message))
}

func invalidField(path, field string, err error) error {
	return &OpError{
		Op:    "catalog.map",
		Kind:  KindInvalidCatalog,
		Path:  path,
		Field: field,
		Err:   err,
	}
}
