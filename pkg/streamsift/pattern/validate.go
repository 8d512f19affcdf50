package pattern

import (
	"fmt"
	"regexp"
	"sync"
)

// MaxPatternLength is the maximum allowed length for a regex pattern
// (512 bytes). This caps the cost of compiling and running user-supplied
// patterns, the same mitigation applied to pattern files in Load.
const MaxPatternLength = 512

// ValidationResult is the outcome of validating a single pattern string.
// Error holds a human-readable message suitable for inline display next
// to the input field; it is empty when Valid is true.
type ValidationResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// Validate checks a single regex source string. It never panics: compile
// failures are reported through the result, not raised. An empty pattern
// is invalid (a field that should not match anything must be disabled
// instead).
func Validate(pattern string) ValidationResult {
	if pattern == "" {
		return ValidationResult{Valid: false, Error: "pattern is empty"}
	}
	if len(pattern) > MaxPatternLength {
		return ValidationResult{
			Valid: false,
			Error: fmt.Sprintf("pattern too long: %d bytes (max %d)", len(pattern), MaxPatternLength),
		}
	}
	if _, err := regexp.Compile(pattern); err != nil {
		return ValidationResult{Valid: false, Error: fmt.Sprintf("invalid regular expression: %v", err)}
	}
	return ValidationResult{Valid: true}
}

// Validator validates patterns with a cache keyed by pattern string.
// Validate is cheap enough to call per keystroke even without the cache;
// the cache makes repeated validation of an unchanged set of patterns
// (e.g., re-render loops) allocation-free.
//
// Validator is safe for concurrent use by multiple goroutines.
type Validator struct {
	mu    sync.Mutex
	cache map[string]ValidationResult
}

// NewValidator creates an empty Validator.
func NewValidator() *Validator {
	return &Validator{cache: make(map[string]ValidationResult)}
}

// Validate returns the cached result for pattern, computing and caching
// it on first sight.
func (v *Validator) Validate(pattern string) ValidationResult {
	v.mu.Lock()
	defer v.mu.Unlock()
	if res, ok := v.cache[pattern]; ok {
		return res
	}
	res := Validate(pattern)
	v.cache[pattern] = res
	return res
}

// Compile compiles a pattern after validating it. Returns a PatternError
// naming field when the pattern is invalid.
func Compile(field, pattern string) (*regexp.Regexp, error) {
	if res := Validate(pattern); !res.Valid {
		return nil, &PatternError{Field: field, Message: res.Error}
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &PatternError{Field: field, Message: err.Error(), Cause: err}
	}
	return re, nil
}
