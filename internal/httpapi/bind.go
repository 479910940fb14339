package httpapi

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"academy-api/internal/apperr"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// bind accepts multipart, urlencoded and JSON bodies.
func bind(c *gin.Context, dst any) error {
	err := c.ShouldBind(dst)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return apperr.BadRequest("%s is required", fe.Field())
		}
		return apperr.BadRequest("%s is invalid", fe.Field())
	}
	return apperr.BadRequest("malformed request body")
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.BadRequest("id must be a positive integer")
	}
	return id, nil
}

// required returns the trimmed value of a mandatory text field.
func required(field string, v *string) (string, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return "", apperr.BadRequest("%s is required", field)
	}
	return strings.TrimSpace(*v), nil
}

// notBlank rejects a present-but-empty mandatory field in a patch.
func notBlank(field string, v *string) (*string, error) {
	if v == nil {
		return nil, nil
	}
	s, err := required(field, v)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// optional maps an absent or blank value to NULL.
func optional(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}

// trimmed is the patch form of optional: absent stays nil, blank becomes ""
// so the store clears the column.
func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	return &s
}

// minutes is a minutes_play value. Anything that is not a number becomes
// 0 and negatives are clamped to 0.
type minutes struct {
	set   bool
	value int
}

func (m *minutes) UnmarshalParam(s string) error {
	m.set = true
	m.value = coerceMinutes(s)
	return nil
}

func (m *minutes) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	m.set = true
	m.value = coerceMinutes(strings.Trim(string(b), `"`))
	return nil
}

func (m minutes) ptr() *int {
	if !m.set {
		return nil
	}
	v := m.value
	return &v
}

func coerceMinutes(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return min(max(n, 0), math.MaxInt32)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}
