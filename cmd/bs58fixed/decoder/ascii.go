package decoder

import "strconv"

var _ Decode = (*AsciiDecoder)(nil)

type AsciiDecoder struct {
}

// Decode quotes non-printable bytes so binary buffers stay on one line.
func (h *AsciiDecoder) Decode(data []byte) string {
	return strconv.QuoteToASCII(string(data))
}
