// Package parser decodes query strings and JSON bodies into typed request structs.
package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gorilla/schema"
)

// ErrInvalidQuery wraps every decoding failure.
var ErrInvalidQuery = errors.New("invalid query")

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.SetAliasTag("query")
	d.IgnoreUnknownKeys(false)
	return d
}

// Query decodes the request query string into dst. Unknown keys and
// malformed values fail with ErrInvalidQuery.
func Query(c *fiber.Ctx, dst interface{}) error {
	values := make(map[string][]string)
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		k := string(key)
		values[k] = append(values[k], string(value))
	})
	return Values(values, dst)
}

// Values decodes already split query values into dst.
func Values(values map[string][]string, dst interface{}) error {
	if err := decoder.Decode(dst, values); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidQuery, describe(err))
	}
	return nil
}

func describe(err error) string {
	var multi schema.MultiError
	if !errors.As(err, &multi) {
		return err.Error()
	}

	messages := make([]string, 0, len(multi))
	for key, e := range multi {
		var unknown schema.UnknownKeyError
		var conv schema.ConversionError
		switch {
		case errors.As(e, &unknown):
			messages = append(messages, fmt.Sprintf("unknown filter %q", key))
		case errors.As(e, &conv):
			messages = append(messages, fmt.Sprintf("invalid value for %q", key))
		default:
			messages = append(messages, e.Error())
		}
	}
	sort.Strings(messages)
	return strings.Join(messages, ", ")
}

// ErrInvalidBody wraps JSON body decoding failures.
var ErrInvalidBody = errors.New("invalid request body")

// Body decodes the JSON request body into dst, rejecting unknown fields and
// trailing data.
func Body(c *fiber.Ctx, dst interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrInvalidBody)
		}
		return fmt.Errorf("%w: %s", ErrInvalidBody, strings.TrimPrefix(err.Error(), "json: "))
	}
	if dec.More() {
		return fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidBody)
	}
	return nil
}
