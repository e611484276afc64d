package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Report json keys, not Go field names, in validation errors.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

var errInvalidSno = errors.New("invalid sno")

func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return badRequest(fmt.Errorf("%s is required", verrs[0].Field()))
	}
	return badRequest(fmt.Errorf("invalid request body: %w", err))
}

func snoParam(c *gin.Context) (int64, error) {
	sno, err := strconv.ParseInt(c.Param("sno"), 10, 64)
	if err != nil {
		return 0, badRequest(errInvalidSno)
	}
	return sno, nil
}
