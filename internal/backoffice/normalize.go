package backoffice

import "encoding/json"

// Keyed is implemented by records exposing their numeric identity key.
type Keyed interface {
	Key() int64
}

// Normalize reduces an Outcome's payload to an ordered record slice.
//
//   - a JSON array passes through as-is, server order preserved;
//   - a single object wraps into a one-element slice, UNLESS its identity
//     key is 0 or absent — зеро-сентинел: API отдаёт "не найдено" с кодом
//     200, такой объект нормализуется в пустой список;
//   - NotFound/AppError/TransportError normalize to an empty slice plus
//     the propagated error for display;
//   - any other payload shape fails closed as an AppError.
func Normalize[T Keyed](o Outcome) ([]T, error) {
	if err := o.Err(); err != nil {
		return []T{}, err
	}

	var seq []T
	if err := json.Unmarshal(o.Payload, &seq); err == nil {
		if seq == nil {
			seq = []T{}
		}
		return seq, nil
	}

	var one T
	if err := json.Unmarshal(o.Payload, &one); err == nil {
		if one.Key() == 0 {
			return []T{}, nil
		}
		return []T{one}, nil
	}

	return []T{}, &AppError{Message: "unexpected response shape"}
}
