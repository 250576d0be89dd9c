// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package decode

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// transformAll runs a freshly reset charset decoder over src into the scratch
// buffer, in two phases: a main pass with end of input signaled, then a flush
// pass draining any state the transformer still holds. The only acceptable
// terminal state for either phase is clean completion with all input
// consumed; running out of scratch capacity is recovered internally by
// growing, and everything else is a fatal decode failure.
func (d *Decoder) transformAll(charset string, enc encoding.Encoding, src []byte) ([]byte, error) {
	d.scratch.acquire(len(src) * maxUTF8PerByte)

	dec := enc.NewDecoder()
	dec.Reset()

	// Main pass, end of input signaled up front: the whole logical span is
	// already in src.
	consumed := 0
	for consumed < len(src) {
		nDst, nSrc, err := dec.Transform(d.scratch.buf[d.scratch.pos:], src[consumed:], true)
		d.scratch.pos += nDst
		consumed += nSrc

		switch {
		case err == nil:
			// All remaining input consumed.
		case errors.Is(err, transform.ErrShortDst):
			d.scratch.grow()
		case errors.Is(err, transform.ErrShortSrc):
			return nil, fmt.Errorf("%w: truncated sequence in %q input", ErrMalformedInput, charset)
		default:
			return nil, fmt.Errorf("decode %q: %w", charset, err)
		}
	}

	// Flush pass: drain pending transformer state.
	for {
		nDst, _, err := dec.Transform(d.scratch.buf[d.scratch.pos:], nil, true)
		d.scratch.pos += nDst
		if err == nil {
			break
		}
		if errors.Is(err, transform.ErrShortDst) {
			d.scratch.grow()
			continue
		}
		return nil, fmt.Errorf("decode %q: flush: %w", charset, err)
	}

	out := d.scratch.window()
	if err := verifyLossless(charset, enc, src, out); err != nil {
		return nil, err
	}
	return out, nil
}

// verifyLossless enforces the strict decoding policy. The x/text decoders
// substitute U+FFFD for bytes the charset cannot interpret instead of
// reporting an error, so a replacement rune in the output is the only signal
// that input may have been malformed. When one shows up, the decoded text is
// re-encoded under the same charset and compared against the input span: a
// faithful round trip means the input genuinely contained U+FFFD, anything
// else is a fatal decode failure.
func verifyLossless(charset string, enc encoding.Encoding, src, decoded []byte) error {
	if !bytes.ContainsRune(decoded, utf8.RuneError) {
		return nil
	}

	reencoded, err := enc.NewEncoder().Bytes(decoded)
	if err != nil || !bytes.Equal(reencoded, src) {
		return fmt.Errorf("%w: %q cannot represent input", ErrMalformedInput, charset)
	}
	return nil
}
