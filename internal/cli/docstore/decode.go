package docstore

import (
	"bytes"
	"encoding/json"
)

// decode разбирает JSON, сохраняя числа как json.Number, чтобы не терять точность в полях.
func decode(body []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	return dec.Decode(out)
}
