package api_test

import (
	"Chirp/internal/api/config"
	"Chirp/internal/pkg/consts"
	"Chirp/internal/pkg/database"
	"Chirp/internal/pkg/storage"
	"Chirp/internal/wire"
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	store, err := storage.NewDiskStore(t.TempDir())
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Feed.Scope = consts.FeedScopeGlobal

	app, err := wire.BuildApplication(db, store, cfg)
	require.NoError(t, err)
	return app.Router
}

func doJSON(t *testing.T, router *gin.Engine, method, target, apiKey string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if apiKey != "" {
		req.Header.Set("Api-Key", apiKey)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func postTweet(t *testing.T, router *gin.Engine, apiKey, content string, mediaIDs ...uint64) uint64 {
	t.Helper()
	body := map[string]any{"tweet_data": content}
	if len(mediaIDs) > 0 {
		body["tweet_media_ids"] = mediaIDs
	}
	w, parsed := doJSON(t, router, http.MethodPost, "/api/tweets", apiKey, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.Equal(t, true, parsed["result"])
	return uint64(parsed["tweet_id"].(float64))
}

func TestPing(t *testing.T) {
	router := setupApp(t)

	w, parsed := doJSON(t, router, http.MethodGet, "/api/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", parsed["message"])
}

func TestMissingAPIKey(t *testing.T) {
	router := setupApp(t)

	w, parsed := doJSON(t, router, http.MethodGet, "/api/tweets", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, false, parsed["result"])
	assert.Equal(t, "unauthorized", parsed["error_type"])
	assert.Contains(t, parsed["error_message"], "Api-Key required")
}

func TestTweetLifecycle(t *testing.T) {
	router := setupApp(t)

	tweetID := postTweet(t, router, "k1", "hello")

	// reading with a fresh key provisions the second user
	w, parsed := doJSON(t, router, http.MethodGet, "/api/tweets", "k2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, parsed["result"])

	tweets := parsed["tweets"].([]any)
	require.Len(t, tweets, 1)
	entry := tweets[0].(map[string]any)
	assert.Equal(t, "hello", entry["content"])
	assert.Equal(t, "User@1", entry["author"].(map[string]any)["name"])
	assert.Empty(t, entry["likes"])

	target := "/api/tweets/" + strconv.FormatUint(tweetID, 10)

	w, _ = doJSON(t, router, http.MethodPost, target+"/likes", "k2", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	_, parsed = doJSON(t, router, http.MethodGet, "/api/tweets", "k1", nil)
	entry = parsed["tweets"].([]any)[0].(map[string]any)
	likes := entry["likes"].([]any)
	require.Len(t, likes, 1)
	assert.Equal(t, "User@2", likes[0].(map[string]any)["name"])

	// only the author can delete
	w, parsed = doJSON(t, router, http.MethodDelete, target, "k2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", parsed["error_type"])

	w, _ = doJSON(t, router, http.MethodDelete, target, "k1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	_, parsed = doJSON(t, router, http.MethodGet, "/api/tweets", "k1", nil)
	assert.Empty(t, parsed["tweets"])
}

func TestUnlike(t *testing.T) {
	router := setupApp(t)

	tweetID := postTweet(t, router, "k1", "likeable")
	target := "/api/tweets/" + strconv.FormatUint(tweetID, 10) + "/likes"

	w, _ := doJSON(t, router, http.MethodPost, target, "k2", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	w, _ = doJSON(t, router, http.MethodDelete, target, "k2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, parsed := doJSON(t, router, http.MethodGet, "/api/tweets", "k1", nil)
	entry := parsed["tweets"].([]any)[0].(map[string]any)
	assert.Empty(t, entry["likes"])
}

func TestLikeMissingTweet(t *testing.T) {
	router := setupApp(t)

	w, parsed := doJSON(t, router, http.MethodPost, "/api/tweets/424242/likes", "k1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, parsed["result"])
}

func TestCreateTweet_MissingContent(t *testing.T) {
	router := setupApp(t)

	w, parsed := doJSON(t, router, http.MethodPost, "/api/tweets", "k1", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "bad_request", parsed["error_type"])
}

func TestFollowReflectedInProfiles(t *testing.T) {
	router := setupApp(t)

	// provision both users
	_, me := doJSON(t, router, http.MethodGet, "/api/users/me", "k1", nil)
	targetID := uint64(me["user"].(map[string]any)["id"].(float64))
	doJSON(t, router, http.MethodGet, "/api/users/me", "k2", nil)

	target := "/api/users/" + strconv.FormatUint(targetID, 10) + "/follow"
	w, _ := doJSON(t, router, http.MethodPost, target, "k2", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	_, parsed := doJSON(t, router, http.MethodGet, "/api/users/me", "k2", nil)
	following := parsed["user"].(map[string]any)["following"].([]any)
	require.Len(t, following, 1)
	assert.Equal(t, "User@1", following[0].(map[string]any)["name"])

	// profile by id needs no key
	w, parsed = doJSON(t, router, http.MethodGet, "/api/users/"+strconv.FormatUint(targetID, 10), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	followers := parsed["user"].(map[string]any)["followers"].([]any)
	require.Len(t, followers, 1)
	assert.Equal(t, "User@2", followers[0].(map[string]any)["name"])

	w, _ = doJSON(t, router, http.MethodDelete, target, "k2", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	_, parsed = doJSON(t, router, http.MethodGet, "/api/users/me", "k2", nil)
	assert.Empty(t, parsed["user"].(map[string]any)["following"])
}

func TestFollowSelfRejected(t *testing.T) {
	router := setupApp(t)

	_, me := doJSON(t, router, http.MethodGet, "/api/users/me", "k1", nil)
	id := uint64(me["user"].(map[string]any)["id"].(float64))

	w, parsed := doJSON(t, router, http.MethodPost, "/api/users/"+strconv.FormatUint(id, 10)+"/follow", "k1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "bad_request", parsed["error_type"])
}

func TestProfileMissingUser(t *testing.T) {
	router := setupApp(t)

	w, parsed := doJSON(t, router, http.MethodGet, "/api/users/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, parsed["result"])
}

func uploadFile(t *testing.T, router *gin.Engine, apiKey, filename string, content []byte) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/medias", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Api-Key", apiKey)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func TestMediaUploadAndAttach(t *testing.T) {
	router := setupApp(t)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))

	w, parsed := uploadFile(t, router, "k1", "pic.png", buf.Bytes())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	mediaID := uint64(parsed["media_id"].(float64))

	postTweet(t, router, "k1", "look at this", mediaID)

	_, parsed = doJSON(t, router, http.MethodGet, "/api/tweets", "k1", nil)
	entry := parsed["tweets"].([]any)[0].(map[string]any)
	attachments := entry["attachments"].([]any)
	require.Len(t, attachments, 1)
	assert.True(t, strings.HasSuffix(attachments[0].(string), "_pic.png"))
}

func TestMediaUploadRejectsExtension(t *testing.T) {
	router := setupApp(t)

	w, parsed := uploadFile(t, router, "k1", "tool.exe", []byte("MZ"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, parsed["result"])
	assert.Equal(t, "bad_request", parsed["error_type"])
}
