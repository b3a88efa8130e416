package gateway

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	pkgerrors "github.com/adityaraghav/studyspace-backend/pkg/errors"
)

type uploadResponse struct {
	URL string `json:"url"`
}

// UploadImage stores a profile image and returns its reference URL. Callers
// are expected to have validated type and size already.
func (c *Client) UploadImage(ctx context.Context, upload ImageUpload) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="`+escapeQuotes(upload.Filename)+`"`)
	header.Set("Content-Type", upload.ContentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "building upload form")
	}
	if _, err := part.Write(upload.Data); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "writing upload form")
	}
	if err := writer.Close(); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "closing upload form")
	}

	target := *c.baseURL
	target.Path = strings.TrimRight(target.Path, "/") + "/images"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), body)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "building upload request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	var resp uploadResponse
	if err := c.send(req, "upload_image", &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

func escapeQuotes(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
