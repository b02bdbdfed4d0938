package feed

import "bytes"

var (
	tokNaN    = []byte("NaN")
	tokInf    = []byte("Infinity")
	tokNegInf = []byte("-Infinity")
	tokNull   = []byte("null")
)

// sanitizeNonFinite rewrites bare NaN/Infinity/-Infinity tokens to null.
// The snapshot generator serializes through pandas, which happily emits
// these for the first change_percent of every symbol; strict JSON decoders
// reject the whole document otherwise. Tokens inside string values are
// left alone.
func sanitizeNonFinite(data []byte) []byte {
	if !bytes.Contains(data, tokNaN) && !bytes.Contains(data, tokInf) {
		return data
	}

	out := make([]byte, 0, len(data))
	inString := false
	for i := 0; i < len(data); i++ {
		c := data[i]
		if inString {
			out = append(out, c)
			if c == '\\' && i+1 < len(data) {
				i++
				out = append(out, data[i])
				continue
			}
			if c == '"' {
				inString = false
			}
			continue
		}
		switch {
		case c == '"':
			inString = true
			out = append(out, c)
		case c == '-' && bytes.HasPrefix(data[i:], tokNegInf):
			out = append(out, tokNull...)
			i += len(tokNegInf) - 1
		case c == 'I' && bytes.HasPrefix(data[i:], tokInf):
			out = append(out, tokNull...)
			i += len(tokInf) - 1
		case c == 'N' && bytes.HasPrefix(data[i:], tokNaN):
			out = append(out, tokNull...)
			i += len(tokNaN) - 1
		default:
			out = append(out, c)
		}
	}
	return out
}
