package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/harrison/podassess/internal/models"
)

// Updater writes a document to the shared store. Implemented by the
// remote client.
type Updater interface {
	Update(ctx context.Context, doc *models.Document) error
}

// BumpPatch increments the patch component of a semver string:
// "2.0.0" becomes "2.0.1". Only the x.y.z form is accepted.
func BumpPatch(version string) (string, error) {
	parts := strings.Split(version, ".")
	if len(parts) != 3 {
		return "", fmt.Errorf("invalid version %q (expected x.y.z)", version)
	}
	for _, part := range parts[:2] {
		if _, err := strconv.Atoi(part); err != nil {
			return "", fmt.Errorf("invalid version %q (expected x.y.z)", version)
		}
	}
	patch, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", fmt.Errorf("invalid patch component in %q: %w", version, err)
	}
	return fmt.Sprintf("%s.%s.%d", parts[0], parts[1], patch+1), nil
}

// PreparePublish stamps a document for publication: patch version bump,
// lastModified set to now (RFC 3339, UTC), modifiedBy set to the
// operator, and totalQuestions synced to the actual question count.
func PreparePublish(doc *models.Document, operator string, now time.Time) error {
	bumped, err := BumpPatch(doc.Config.Version)
	if err != nil {
		return err
	}
	doc.Config.Version = bumped
	doc.Config.LastModified = now.UTC().Format(time.RFC3339)
	doc.Config.ModifiedBy = operator
	doc.Config.TotalQuestions = len(doc.Questions)
	return nil
}

// Publish stamps the document, saves a local backup, then pushes it to
// the shared store. The backup happens before the push so a failed
// publish still leaves the prepared document recoverable; a backup
// failure alone does not block publishing.
func Publish(ctx context.Context, up Updater, cache *Cache, doc *models.Document, operator, binID string) (backupErr error, err error) {
	if err := PreparePublish(doc, operator, time.Now()); err != nil {
		return nil, err
	}
	if cache != nil {
		backupErr = cache.Save(doc, binID)
	}
	if err := up.Update(ctx, doc); err != nil {
		return backupErr, fmt.Errorf("publish v%s: %w", doc.Config.Version, err)
	}
	return backupErr, nil
}
