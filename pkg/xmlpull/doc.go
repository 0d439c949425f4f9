// Package xmlpull provides an allocation-averse pull tokenizer for XML.
//
// A Parser reads one document, from a byte slice (NewBytes) or an io.Reader
// (NewReader). Each call to Next scans exactly one token and returns its
// Event: StartDocument, StartTag, AttributeName, AttributeValue, Text,
// EndTag, EndTagWithoutText and finally EndDocument, which repeats. The
// event after the current one is already known and available from
// PeekEvent.
//
// Token bytes are not copied during scanning. Raw returns a view into the
// parser's window that is only valid until the next call to Next; AppendRaw
// and Match work on the same bytes without decoding. String, TrimmedString
// and the numeric accessors materialize the token on demand, splicing CDATA
// sections, decoding entity references and converting from the document
// charset.
//
// Errors returned by Next are sticky and match one of ErrStructure,
// ErrUnexpectedEOF, ErrEncoding or ErrIO with errors.Is. Scan failures are
// *SyntaxError values carrying the offset, line and column. Materialization
// failures (ErrEntity, ErrNumberFormat) leave the parser usable.
package xmlpull
