package client

import (
	"bytes"
	"fmt"
	"mime/multipart"
)

// encodeMultipart builds the job-submission body once per request: the
// payload as the "video" file part plus the filename as a plain form
// field. The encoded bytes are reused across retry attempts so a retry
// never re-encodes the payload.
func encodeMultipart(req UploadRequest) ([]byte, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("video", req.Filename)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(req.Data); err != nil {
		return nil, "", fmt.Errorf("failed to write payload: %w", err)
	}

	if err := writer.WriteField("filename", req.Filename); err != nil {
		return nil, "", fmt.Errorf("failed to write filename field: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}
