package externals

import (
	"context"
	"io"
	"log"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

const avatarURLTTL = 15 * time.Minute

// UploadAvatar stores the image bytes in the storage bucket under
// "<user-id>-<random>.<ext>" and returns that path. A new upload produces a
// new path, so the previous object reference is simply superseded.
func UploadAvatar(ctx context.Context, firebaseUID, extension string, content io.Reader) (string, error) {
	objectPath := firebaseUID + "-" + uuid.NewString() + "." + extension

	if testMode != "real" {
		// if test mode, don't touch the bucket
		return objectPath, nil
	}

	app := InitializeFirebase(testMode)
	storageClient, err := app.Storage(ctx)
	if err != nil {
		return "", err
	}
	bucket, err := storageClient.DefaultBucket()
	if err != nil {
		return "", err
	}

	writer := bucket.Object(objectPath).NewWriter(ctx)
	_, err = io.Copy(writer, content)
	if err != nil {
		closeErr := writer.Close()
		if closeErr != nil {
			log.Println("Error closing storage writer:", closeErr)
		}
		return "", err
	}
	err = writer.Close()
	if err != nil {
		return "", err
	}

	return objectPath, nil
}

// GetAvatarURL mints a short-lived signed download URL for a stored avatar
// path. The handle expires on its own; callers request a fresh one whenever
// the avatar reference changes.
func GetAvatarURL(ctx context.Context, objectPath string) (string, error) {
	if testMode != "real" {
		// if test mode, return a fake value
		return "http://localhost/avatars/" + objectPath, nil
	}

	app := InitializeFirebase(testMode)
	storageClient, err := app.Storage(ctx)
	if err != nil {
		return "", err
	}
	bucket, err := storageClient.DefaultBucket()
	if err != nil {
		return "", err
	}

	url, err := bucket.SignedURL(objectPath, &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  "GET",
		Expires: time.Now().Add(avatarURLTTL),
	})
	if err != nil {
		return "", err
	}

	return url, nil
}
