package handler

import (
	"net/http"
	"reflect"

	"aratrack/internal/apierror"
	"aratrack/internal/dto"
	"aratrack/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal types as numeric so that validator tags like min=0
	// work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		switch v := field.Interface().(type) {
		case decimal.Decimal:
			f, _ := v.Float64()
			return f
		case dto.Decimal:
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{}, dto.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if !bindJSON(c, req) {
		return false
	}
	return validar(c, req)
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	return true
}

func validar(c *gin.Context, req interface{}) bool {
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		if ves, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range ves {
				fields[fe.Field()] = fe.Tag()
			}
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// responderError writes err using the domain taxonomy. Store failures are
// logged with the request id and answered with a generic message.
func responderError(c *gin.Context, err error) {
	status := apierror.Status(err)
	if status >= http.StatusInternalServerError {
		log.Error().
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Err(err).
			Msg("request failed")
	}
	c.JSON(status, apierror.New(apierror.Message(err)))
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("id invalido"))
		return uuid.Nil, false
	}
	return id, true
}
