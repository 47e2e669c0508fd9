package handler

import (
	"errors"
	"net/http"
	"reflect"

	"catalogoservicos/internal/apierror"
	"catalogoservicos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// responderErro maps typed service errors onto HTTP statuses. Anything not
// recognized becomes a 500 with a generic detail.
func responderErro(c *gin.Context, err error) {
	var naoEncontrado *service.NaoEncontradoError
	var validacao *service.ValidacaoError
	var aplicacao *service.AplicacaoError

	switch {
	case errors.As(err, &naoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New(naoEncontrado.Error()))
	case errors.As(err, &validacao):
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(validacao.Campos))
	case errors.As(err, &aplicacao):
		c.JSON(http.StatusUnprocessableEntity, apierror.New(aplicacao.Error()))
	case errors.Is(err, service.ErrNaoAutenticado):
		c.JSON(http.StatusUnauthorized, apierror.New("Credenciais inválidas"))
	case errors.Is(err, service.ErrPermissaoNegada):
		c.JSON(http.StatusForbidden, apierror.New("Permissões insuficientes"))
	case errors.Is(err, service.ErrSugestaoJaResolvida):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.Is(err, service.ErrSugestoesFechadas):
		c.JSON(http.StatusForbidden, apierror.New(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, apierror.New("Erro interno"))
	}
}
