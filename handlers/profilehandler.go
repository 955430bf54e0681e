package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"kelana-server/db"
	"kelana-server/externals"
	"kelana-server/model"
)

func HandleProfiles(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getProfile(w, r)
	case "POST":
		addProfile(w, r)
	default:
		log.Println("HandleProfiles received an unsupported method")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
	}
}

func getProfile(w http.ResponseWriter, r *http.Request) {
	profile, ok := requireProfile(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(profile)
	if err != nil {
		log.Println(err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

func addProfile(w http.ResponseWriter, r *http.Request) {
	firebaseUID, err := authenticatedUID(r)
	if err != nil {
		log.Println("Unauthorized", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var profile model.Profile
	err = json.NewDecoder(r.Body).Decode(&profile)
	if err != nil {
		log.Println("Error while decoding JSON: ", err)
		http.Error(w, "Wrong data provided", http.StatusBadRequest)
		return
	}
	defer func() {
		err = r.Body.Close()
		if err != nil {
			log.Println("Error closing request body:", err)
		}
	}()

	// check non-empty strings
	if profile.DisplayName == "" {
		log.Println("Missing required fields")
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	// the uid comes from the verified token, never from the payload
	profile.FirebaseUID = firebaseUID

	profileDAO := db.NewProfileDAO(db.GetDB())

	// one profile per user
	_, err = profileDAO.GetProfileByFirebaseUID(firebaseUID)
	if err == nil {
		log.Println("Profile already exists")
		http.Error(w, "Profile already exists", http.StatusConflict)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Error getting profile: ", err)
		http.Error(w, "Error getting profile", http.StatusInternalServerError)
		return
	}

	profile, err = profileDAO.AddProfile(profile)
	if err != nil {
		log.Println("Error adding profile: ", err)
		http.Error(w, "Error adding profile", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(profile)
	if err != nil {
		log.Println(err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

func HandleModifyProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != "PUT" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	profile, ok := requireProfile(w, r)
	if !ok {
		return
	}

	var updated model.Profile
	err := json.NewDecoder(r.Body).Decode(&updated)
	if err != nil {
		log.Println("Error while decoding JSON: ", err)
		http.Error(w, "Wrong data provided", http.StatusBadRequest)
		return
	}
	defer func() {
		err = r.Body.Close()
		if err != nil {
			log.Println("Error closing request body:", err)
		}
	}()

	if updated.DisplayName == "" {
		log.Println("Missing required fields")
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	// identity fields are not client-writable
	updated.ProfileID = profile.ProfileID
	updated.FirebaseUID = profile.FirebaseUID
	updated.CreatedAt = profile.CreatedAt

	profileDAO := db.NewProfileDAO(db.GetDB())
	err = profileDAO.UpdateProfile(updated)
	if err != nil {
		log.Println("Error updating profile: ", err)
		http.Error(w, "Error updating profile", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func HandleAvatar(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getAvatarURL(w, r)
	case "POST":
		uploadAvatar(w, r)
	default:
		log.Println("HandleAvatar received an unsupported method")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
	}
}

const maxAvatarBytes = 5 << 20

func uploadAvatar(w http.ResponseWriter, r *http.Request) {
	profile, ok := requireProfile(w, r)
	if !ok {
		return
	}

	err := r.ParseMultipartForm(maxAvatarBytes)
	if err != nil {
		log.Println("Error parsing multipart form: ", err)
		http.Error(w, "Invalid upload", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		log.Println("Missing avatar file: ", err)
		http.Error(w, "Missing avatar file", http.StatusBadRequest)
		return
	}
	defer func() {
		err = file.Close()
		if err != nil {
			log.Println("Error closing uploaded file:", err)
		}
	}()

	extension := strings.TrimPrefix(filepath.Ext(header.Filename), ".")
	if extension == "" {
		log.Println("Missing file extension")
		http.Error(w, "Missing file extension", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	objectPath, err := externals.UploadAvatar(ctx, profile.FirebaseUID, extension, file)
	if err != nil {
		log.Println("Error uploading avatar: ", err)
		http.Error(w, "Error uploading avatar", http.StatusInternalServerError)
		return
	}

	// the new path supersedes the previous reference
	profile.AvatarRef = objectPath
	profileDAO := db.NewProfileDAO(db.GetDB())
	err = profileDAO.UpdateProfile(profile)
	if err != nil {
		log.Println("Error saving avatar reference: ", err)
		http.Error(w, "Error saving avatar reference", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(map[string]string{"avatar_ref": objectPath})
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding JSON", http.StatusInternalServerError)
		return
	}
}

func getAvatarURL(w http.ResponseWriter, r *http.Request) {
	profile, ok := requireProfile(w, r)
	if !ok {
		return
	}

	if profile.AvatarRef == "" {
		log.Println("No avatar set")
		http.Error(w, "No avatar set", http.StatusNotFound)
		return
	}

	// absolute URLs are returned as is, storage paths need a signed handle
	url := profile.AvatarRef
	if !profile.AvatarIsURL() {
		ctx := context.Background()
		signed, err := externals.GetAvatarURL(ctx, profile.AvatarRef)
		if err != nil {
			log.Println("Error signing avatar URL: ", err)
			http.Error(w, "Error signing avatar URL", http.StatusInternalServerError)
			return
		}
		url = signed
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(map[string]string{"url": url})
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding JSON", http.StatusInternalServerError)
		return
	}
}
