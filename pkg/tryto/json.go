package tryto

import (
	"errors"

	json "github.com/goccy/go-json"
)

type outcomeJSON[T any] struct {
	Value *T      `json:"value"`
	Error *string `json:"error"`
	Ok    bool    `json:"ok"`
}

// MarshalJSON encodes the Outcome as {"value":..,"error":..,"ok":..} with
// the error carried as its message, or null on success.
func (o Outcome[T]) MarshalJSON() ([]byte, error) {
	out := outcomeJSON[T]{Ok: o.ok}
	if o.ok {
		out.Value = &o.value
	} else if o.err != nil {
		msg := o.err.Error()
		out.Error = &msg
	}
	return json.Marshal(out)
}

// UnmarshalJSON rebuilds an Outcome from its wire form. The error is
// reconstructed from its message and the identity fields are restamped.
func (o *Outcome[T]) UnmarshalJSON(data []byte) error {
	var in outcomeJSON[T]
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	if in.Ok {
		var v T
		if in.Value != nil {
			v = *in.Value
		}
		*o = Ok(v)
		return nil
	}

	msg := "unknown error"
	if in.Error != nil {
		msg = *in.Error
	}
	*o = Err[T](errors.New(msg))
	return nil
}
