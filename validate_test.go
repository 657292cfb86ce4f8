package cufinder

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"
)

// paramTypes maps each operation to its parameter struct.
var paramTypes = map[string]reflect.Type{
	CodeCUF:  reflect.TypeOf(CUFParams{}),
	CodeLCUF: reflect.TypeOf(LCUFParams{}),
	CodeDTC:  reflect.TypeOf(DTCParams{}),
	CodeDTE:  reflect.TypeOf(DTEParams{}),
	CodeNTP:  reflect.TypeOf(NTPParams{}),
	CodeREL:  reflect.TypeOf(RELParams{}),
	CodeFCL:  reflect.TypeOf(QueryParams{}),
	CodeELF:  reflect.TypeOf(QueryParams{}),
	CodeCAR:  reflect.TypeOf(QueryParams{}),
	CodeFCC:  reflect.TypeOf(QueryParams{}),
	CodeFTS:  reflect.TypeOf(QueryParams{}),
	CodeEPP:  reflect.TypeOf(EPPParams{}),
	CodeFWE:  reflect.TypeOf(FWEParams{}),
	CodeTEP:  reflect.TypeOf(TEPParams{}),
	CodeENC:  reflect.TypeOf(QueryParams{}),
	CodeCEC:  reflect.TypeOf(QueryParams{}),
	CodeCLO:  reflect.TypeOf(QueryParams{}),
	CodeCSE:  reflect.TypeOf(CSEParams{}),
	CodePSE:  reflect.TypeOf(PSEParams{}),
	CodeLBS:  reflect.TypeOf(LBSParams{}),
	CodeBCD:  reflect.TypeOf(URLParams{}),
	CodeCCP:  reflect.TypeOf(URLParams{}),
	CodeISC:  reflect.TypeOf(URLParams{}),
}

func TestOperations_RequiredMatchesParamTags(t *testing.T) {
	for _, op := range Operations() {
		t.Run(op.Code, func(t *testing.T) {
			typ, ok := paramTypes[op.Code]
			if !ok {
				t.Fatalf("no parameter type for %s", op.Code)
			}

			var tagged []string
			for i := 0; i < typ.NumField(); i++ {
				f := typ.Field(i)
				if strings.Contains(f.Tag.Get("validate"), "required") {
					tagged = append(tagged, strings.SplitN(f.Tag.Get("json"), ",", 2)[0])
				}
			}

			if !reflect.DeepEqual(tagged, op.Required) {
				t.Errorf("required tags = %v, descriptor = %v", tagged, op.Required)
			}
		})
	}
}

// callWithParams invokes the operation for code with params built by
// setting every required field except omit.
func callWithParams(ctx context.Context, c *Client, code, omit string) error {
	typ := paramTypes[code]
	v := reflect.New(typ).Elem()
	for i := 0; i < typ.NumField(); i++ {
		name := strings.SplitN(typ.Field(i).Tag.Get("json"), ",", 2)[0]
		if name != omit && v.Field(i).Kind() == reflect.String {
			v.Field(i).SetString("value")
		}
	}

	method := reflect.ValueOf(c).MethodByName(code)
	out := method.Call([]reflect.Value{reflect.ValueOf(ctx), v})
	if err, _ := out[1].Interface().(error); err != nil {
		return err
	}
	return nil
}

func TestValidation_MissingRequiredField(t *testing.T) {
	for _, op := range Operations() {
		for _, field := range op.Required {
			t.Run(op.Code+"/"+field, func(t *testing.T) {
				client, calls := newTestClient(t, op.Path, `{}`)

				err := callWithParams(context.Background(), client, op.Code, field)

				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected ValidationError, got %T: %v", err, err)
				}
				if verr.Field != field {
					t.Errorf("Field = %s, want %s", verr.Field, field)
				}
				if !errors.Is(err, ErrValidation) {
					t.Error("errors.Is(err, ErrValidation) = false")
				}
				if err.Error() != field+" is required" {
					t.Errorf("Error() = %q, want %q", err.Error(), field+" is required")
				}
				if n := atomic.LoadInt32(calls); n != 0 {
					t.Errorf("requests = %d, want 0", n)
				}
			})
		}
	}
}

func TestValidation_FirstFieldInDeclaredOrder(t *testing.T) {
	tests := []struct {
		name   string
		params any
		want   string
	}{
		{"CUF both empty", CUFParams{}, "company_name"},
		{"CUF country empty", CUFParams{CompanyName: "TechCorp"}, "country_code"},
		{"TEP both empty", TEPParams{}, "full_name"},
		{"TEP company empty", TEPParams{FullName: "John Doe"}, "company"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateParams(tt.params)

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.want {
				t.Errorf("Field = %s, want %s", verr.Field, tt.want)
			}
		})
	}
}

func TestValidation_NoTrimming(t *testing.T) {
	if err := validateParams(QueryParams{Query: " "}); err != nil {
		t.Errorf("validateParams(whitespace) = %v, want nil", err)
	}
}

func TestValidation_SearchParamsOptional(t *testing.T) {
	for _, params := range []any{CSEParams{}, PSEParams{}, LBSParams{}} {
		if err := validateParams(params); err != nil {
			t.Errorf("validateParams(%T) = %v, want nil", params, err)
		}
	}
}
