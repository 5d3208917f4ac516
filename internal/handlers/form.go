package handlers

import (
	"errors"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"realnest/internal/services"
)

// Multipart form helpers shared by the property Add handlers. Listings are
// submitted as form data so an image can ride along.

var errUploadsNotConfigured = errors.New("image uploads are not configured")

func formFloat(c *fiber.Ctx, key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(c.FormValue(key), 64)
	if err != nil {
		return fallback
	}
	return v
}

func formInt(c *fiber.Ctx, key string, fallback int) int {
	v, err := strconv.Atoi(c.FormValue(key))
	if err != nil {
		return fallback
	}
	return v
}

func formBool(c *fiber.Ctx, key string) bool {
	return c.FormValue(key) == "true"
}

// uploadListingImage pushes the optional "image" form file to Cloudinary and
// returns its URL. A request without an image is fine; a configured uploader
// is required only when one is present.
func uploadListingImage(c *fiber.Ctx, uploads *services.CloudinaryService, folder string) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}

	if uploads == nil {
		return "", errUploadsNotConfigured
	}

	result, err := uploads.UploadImage(file, folder)
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}

// listingImagePublicID derives the Cloudinary public ID from a delivery URL:
// everything after "/upload/" minus the version segment and the extension.
// Returns "" for URLs that are not Cloudinary uploads.
func listingImagePublicID(imgURL string) string {
	_, after, found := strings.Cut(imgURL, "/upload/")
	if !found || after == "" {
		return ""
	}

	if after[0] == 'v' {
		if slash := strings.IndexByte(after, '/'); slash > 1 {
			if _, err := strconv.Atoi(after[1:slash]); err == nil {
				after = after[slash+1:]
			}
		}
	}

	return strings.TrimSuffix(after, filepath.Ext(after))
}

// removeListingImage cleans up the Cloudinary photo of a deleted listing.
// Best effort: the listing is already gone, so a failed cleanup is only
// logged.
func removeListingImage(uploads *services.CloudinaryService, imgURL string) {
	if uploads == nil || imgURL == "" {
		return
	}

	publicID := listingImagePublicID(imgURL)
	if publicID == "" {
		return
	}

	if err := uploads.DeleteImage(publicID); err != nil {
		log.Printf("⚠️  Failed to delete listing image %s: %v", publicID, err)
	}
}
