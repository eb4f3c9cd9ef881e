package controllers

import (
	"encoding/base64"
	"fmt"
	"strings"

	"gramseva-be/gateway"
)

// parseDataURI decodes a "data:<mimetype>;base64,<data>" photo into gateway
// image bytes, the format the report wizard uploads.
func parseDataURI(uri string) (gateway.Image, error) {
	if !strings.HasPrefix(uri, "data:") {
		return gateway.Image{}, fmt.Errorf("not a data URI")
	}
	rest := uri[len("data:"):]

	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return gateway.Image{}, fmt.Errorf("data URI must be base64 encoded")
	}
	mime := rest[:sep]
	payload := rest[sep+len(";base64,"):]

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return gateway.Image{}, fmt.Errorf("invalid base64 image data: %w", err)
	}
	return gateway.Image{Data: data, MIMEType: mime}, nil
}
