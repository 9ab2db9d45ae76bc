package router

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
)

// newMultipart writes a form with one "image" part and returns the content type.
func newMultipart(buf *bytes.Buffer, filename, contentType string, data []byte) string {
	mw := multipart.NewWriter(buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, _ := mw.CreatePart(header)
	part.Write(data)
	mw.Close()
	return mw.FormDataContentType()
}
