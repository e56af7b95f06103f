package las

// TextAreaDescription is the LASF_Spec/3 record: free text describing the
// file. The bytes are kept as read, including any trailing NUL.
type TextAreaDescription struct {
	Text string
}

func (TextAreaDescription) UserID() string     { return UserIDSpec }
func (TextAreaDescription) RecordID() uint16   { return RecordTextAreaDescription }
func (t TextAreaDescription) PayloadSize() int { return len(t.Text) }

// WritePayload writes the text without adding a terminator.
func (t TextAreaDescription) WritePayload(dst []byte) (int, error) {
	return writeRaw(dst, []byte(t.Text), "text area description")
}

func decodeTextAreaDescription(_ uint16, data []byte) (Payload, error) {
	return TextAreaDescription{Text: string(data)}, nil
}
