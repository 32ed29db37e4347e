package dto

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var registerOnce sync.Once

// RegisterValidators は gin のバリデータにカスタムルールを登録する
// サーバーとゲートウェイの両方で同じルールを使う
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		// エラーのフィールド名は JSON / クエリ名で返す
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return f.Name
		})

		v.RegisterCustomTypeFunc(func(f reflect.Value) any {
			if d, ok := f.Interface().(DateTime); ok {
				return d.Time
			}
			return nil
		}, DateTime{})

		_ = v.RegisterValidation("notblank", validators.NotBlank)
		_ = v.RegisterValidation("future", isFuture)
		v.RegisterStructValidation(bookingStartBeforeEnd, CreateBookingInput{})
	})
}

func isFuture(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return t.After(time.Now())
}

func bookingStartBeforeEnd(sl validator.StructLevel) {
	in := sl.Current().Interface().(CreateBookingInput)
	if in.Start.IsZero() || in.End.IsZero() {
		return
	}
	if !in.Start.Before(in.End.Time) {
		sl.ReportError(in.End, "end", "End", "startbeforeend", "")
	}
}
