package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const maxBodyBytes = 64 << 10

// ValidateRequest is the body of POST /v1/validate.
type ValidateRequest struct {
	Rules []string `json:"rules" validate:"max=100,dive,max=256"`
	Value any      `json:"value"`
}

// ValidateResponse is the data of a successful POST /v1/validate.
type ValidateResponse struct {
	Valid  bool               `json:"valid"`
	Errors []validationResult `json:"errors"`
}

type validationResult struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// FieldProblem describes one request field that failed the structural check.
type FieldProblem struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Param string `json:"param,omitempty"`
}

var (
	structCheck     *validator.Validate
	structCheckOnce sync.Once
)

func requestValidator() *validator.Validate {
	structCheckOnce.Do(func() {
		structCheck = validator.New(validator.WithRequiredStructEnabled())
	})
	return structCheck
}

func decodeValidateRequest(w http.ResponseWriter, r *http.Request) (ValidateRequest, error) {
	var req ValidateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return req, fmt.Errorf("%w: empty body", ErrMalformedBody)
		}
		return req, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return req, nil
}

// checkRequest returns nil or the list of structural problems in req.
func checkRequest(req ValidateRequest) ([]FieldProblem, error) {
	switch req.Value.(type) {
	case map[string]any, []any:
		return []FieldProblem{{Field: "value", Tag: "scalar"}}, ErrUnsupportedValue
	}

	err := requestValidator().Struct(req)
	if err == nil {
		return nil, nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}
	problems := make([]FieldProblem, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, FieldProblem{
			Field: fe.Namespace(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return problems, err
}
