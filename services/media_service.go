// services/media_service.go
package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadImage stores an image and returns its public URL. With
// CLOUDINARY_URL set the bytes go to Cloudinary; otherwise the image is
// inlined as a base64 data URL so the gallery keeps working without an
// external blob store.
func UploadImage(ctx context.Context, data []byte, contentType string) (string, error) {
	cloudURL := os.Getenv("CLOUDINARY_URL")
	if cloudURL == "" {
		encoded := base64.StdEncoding.EncodeToString(data)
		return fmt.Sprintf("data:%s;base64,%s", contentType, encoded), nil
	}

	cld, err := cloudinary.NewFromURL(cloudURL)
	if err != nil {
		return "", fmt.Errorf("cloudinary init: %w", err)
	}

	result, err := cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder: "beautybar609/gallery",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}

	return result.SecureURL, nil
}
