package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"fieldops/pkg/e"
	"fieldops/pkg/validator"

	playground "github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

// DecodeJSON strictly decodes the request body into dst and validates it.
// Every failure wraps e.ErrInvalidInput.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", e.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid JSON: %v", e.ErrInvalidInput, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: body must contain a single JSON object", e.ErrInvalidInput)
	}

	return Validate(dst)
}

// Validate runs struct tags and wraps failures with e.ErrInvalidInput.
func Validate(v interface{}) error {
	if err := validator.ValidateStruct(v); err != nil {
		return fmt.Errorf("%w: %s", e.ErrInvalidInput, describe(err))
	}
	return nil
}

func describe(err error) string {
	var verrs playground.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
