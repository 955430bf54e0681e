package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"kelana-server/db"
	"kelana-server/externals"
	"kelana-server/model"
)

var errMissingAuthHeader = errors.New("missing or invalid auth header")

// authenticatedUID extracts and verifies the Firebase token of a request.
func authenticatedUID(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", errMissingAuthHeader
	}
	idToken := strings.TrimPrefix(authHeader, "Bearer ")

	ctx := context.Background()
	return externals.VerifyFirebaseToken(ctx, idToken)
}

// authenticatedProfile resolves the calling user's profile row.
func authenticatedProfile(r *http.Request) (model.Profile, error) {
	firebaseUID, err := authenticatedUID(r)
	if err != nil {
		return model.Profile{}, err
	}

	profileDAO := db.NewProfileDAO(db.GetDB())
	return profileDAO.GetProfileByFirebaseUID(firebaseUID)
}

// requireProfile resolves the calling user's profile and writes the failure
// response itself: a valid token without a profile row is 404, everything
// else is 401.
func requireProfile(w http.ResponseWriter, r *http.Request) (model.Profile, bool) {
	profile, err := authenticatedProfile(r)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("Profile not found: ", err)
			http.Error(w, "Profile could not be found", http.StatusNotFound)
			return model.Profile{}, false
		}
		log.Println("Unauthorized", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return model.Profile{}, false
	}
	return profile, true
}
