package greeting

import "io"

// Text is the fixed line the program prints.
const Text = "Hello world!"

// Write emits Text and a newline to w in a single write.
func Write(w io.Writer) error {
	_, err := io.WriteString(w, Text+"\n")
	return err
}
