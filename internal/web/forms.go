package web

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Typed form inputs bound from POST bodies. Validation bounds mirror the
// column widths on the models; anything rejected here never reaches storage.

type SignupForm struct {
	Name     string `form:"name" binding:"required,min=2,max=120"`
	Email    string `form:"email" binding:"required,email,max=255"`
	Password string `form:"password" binding:"required,min=6,max=128"`
}

type LoginForm struct {
	Email    string `form:"email" binding:"required,email,max=255"`
	Password string `form:"password" binding:"required"`
	Remember bool   `form:"remember_me"`
}

type PostForm struct {
	Title    string `form:"title" binding:"required,min=3,max=200"`
	Category string `form:"category" binding:"required,min=3,max=80"`
	Content  string `form:"content" binding:"required,min=10"`
}

// Bind binds the request form into dst and converts validator failures into
// per-field messages. A nil slice means the form is valid; a non-nil slice is
// meant to be rendered straight back into the template.
func Bind(c *gin.Context, dst interface{}) []string {
	err := c.ShouldBind(dst)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"Invalid form submission."}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return msgs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address.", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid.", fe.Field())
	}
}
