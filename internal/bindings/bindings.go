// Package bindings exposes the library operations under the names a
// script host calls them by. Arguments arrive untyped, as they would
// from a JavaScript caller, and absent results are returned as nil.
package bindings

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"ytkit/internal/format"
	"ytkit/internal/ident"
	"ytkit/internal/quality"
	"ytkit/internal/youtube"
)

// ErrArgs is returned when a call has the wrong number or type of arguments.
var ErrArgs = errors.New("invalid arguments")

// ErrUnknown is returned by Call for names that are not exported.
var ErrUnknown = errors.New("unknown function")

// Func is a host-callable operation.
type Func func(args []any) (any, error)

// Exports maps host-visible names to operations.
var Exports = map[string]Func{
	"greet": func(args []any) (any, error) {
		name, err := stringArg(args, 0, 1)
		if err != nil {
			return nil, err
		}
		return ident.Greet(name), nil
	},
	"validate_youtube_url": func(args []any) (any, error) {
		url, err := stringArg(args, 0, 1)
		if err != nil {
			return nil, err
		}
		return youtube.ValidateURL(url), nil
	},
	"extract_video_id": func(args []any) (any, error) {
		url, err := stringArg(args, 0, 1)
		if err != nil {
			return nil, err
		}
		if id, ok := youtube.ExtractVideoID(url); ok {
			return id, nil
		}
		return nil, nil
	},
	"sanitize_filename": func(args []any) (any, error) {
		name, err := stringArg(args, 0, 1)
		if err != nil {
			return nil, err
		}
		return format.SanitizeFilename(name), nil
	},
	"format_file_size": func(args []any) (any, error) {
		n, err := uintArg(args, 0, 1, math.MaxUint64)
		if err != nil {
			return nil, err
		}
		return format.FileSize(n), nil
	},
	"format_duration": func(args []any) (any, error) {
		n, err := uintArg(args, 0, 1, math.MaxUint64)
		if err != nil {
			return nil, err
		}
		return format.Duration(n), nil
	},
	"parse_quality": func(args []any) (any, error) {
		s, err := stringArg(args, 0, 1)
		if err != nil {
			return nil, err
		}
		if h, ok := quality.Parse(s); ok {
			return h, nil
		}
		return nil, nil
	},
	"get_quality_label": func(args []any) (any, error) {
		h, err := uintArg(args, 0, 1, math.MaxUint32)
		if err != nil {
			return nil, err
		}
		return quality.Label(uint32(h)), nil
	},
	"is_supported_quality": func(args []any) (any, error) {
		s, err := stringArg(args, 0, 1)
		if err != nil {
			return nil, err
		}
		return quality.IsSupported(s), nil
	},
	"generate_download_id": func(args []any) (any, error) {
		if len(args) != 0 {
			return nil, fmt.Errorf("%w: expected 0 arguments, got %d", ErrArgs, len(args))
		}
		return ident.GenerateDownloadID(), nil
	},
}

// Names returns the exported names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Exports))
	for name := range Exports {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call invokes the named export.
func Call(name string, args ...any) (any, error) {
	fn, ok := Exports[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return fn(args)
}

func checkArity(args []any, want int) error {
	if len(args) != want {
		return fmt.Errorf("%w: expected %d argument(s), got %d", ErrArgs, want, len(args))
	}
	return nil
}

func stringArg(args []any, i, arity int) (string, error) {
	if err := checkArity(args, arity); err != nil {
		return "", err
	}
	s, ok := args[i].(string)
	if !ok {
		return "", fmt.Errorf("%w: argument %d must be a string, got %T", ErrArgs, i, args[i])
	}
	return s, nil
}

// uintArg accepts any Go integer type, or a float64 holding a whole
// number, as long as the value lies in [0, limit].
func uintArg(args []any, i, arity int, limit uint64) (uint64, error) {
	if err := checkArity(args, arity); err != nil {
		return 0, err
	}

	var (
		n   uint64
		neg bool
	)
	switch v := args[i].(type) {
	case int:
		n, neg = uint64(v), v < 0
	case int32:
		n, neg = uint64(v), v < 0
	case int64:
		n, neg = uint64(v), v < 0
	case uint:
		n = uint64(v)
	case uint32:
		n = uint64(v)
	case uint64:
		n = v
	case float64:
		// float64(math.MaxUint64) rounds up to 2^64, so compare with >=.
		if v < 0 || v != math.Trunc(v) || math.IsInf(v, 0) || v >= float64(math.MaxUint64) {
			return 0, fmt.Errorf("%w: argument %d must be a non-negative integer, got %v", ErrArgs, i, v)
		}
		n = uint64(v)
	default:
		return 0, fmt.Errorf("%w: argument %d must be a number, got %T", ErrArgs, i, args[i])
	}

	if neg || n > limit {
		return 0, fmt.Errorf("%w: argument %d out of range", ErrArgs, i)
	}
	return n, nil
}
