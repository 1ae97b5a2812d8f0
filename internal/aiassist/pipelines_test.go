package aiassist

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider serves canned chat and image responses the way an
// OpenAI-compatible API would.
func fakeProvider(t *testing.T, chatContent string, imageBytes []byte) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/chat/completions":
			resp := map[string]interface{}{
				"choices": []map[string]interface{}{
					{"message": map[string]string{"role": "assistant", "content": chatContent}},
				},
			}
			require.NoError(t, json.NewEncoder(w).Encode(resp))
		case "/images/generations":
			if imageBytes == nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			resp := map[string]interface{}{
				"data": []map[string]string{{"b64_json": base64.StdEncoding.EncodeToString(imageBytes)}},
			}
			require.NoError(t, json.NewEncoder(w).Encode(resp))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func testClient(baseURL string) *Client {
	return &Client{
		apiKey:     "test-key",
		baseURL:    baseURL,
		model:      "test-model",
		imageModel: "test-image-model",
		httpClient: http.DefaultClient,
	}
}

func TestParseCV(t *testing.T) {
	srv := fakeProvider(t, `{"name":"Nguyen Van A","email":"a@example.com","phone":"+84 90 123 4567"}`, nil)
	defer srv.Close()

	info, err := testClient(srv.URL).ParseCV(context.Background(), "CV text here")
	require.NoError(t, err)
	assert.Equal(t, "Nguyen Van A", info.Name)
	assert.Equal(t, "a@example.com", info.Email)
	assert.Equal(t, "+84 90 123 4567", info.Phone)
}

func TestParseCV_missingPhoneStaysEmptyString(t *testing.T) {
	srv := fakeProvider(t, `{"name":"Nguyen Van A","email":"a@example.com","phone":""}`, nil)
	defer srv.Close()

	info, err := testClient(srv.URL).ParseCV(context.Background(), "CV without phone")
	require.NoError(t, err)
	assert.Equal(t, "", info.Phone)
}

func TestParseCV_toleratesMarkdownFences(t *testing.T) {
	srv := fakeProvider(t, "```json\n{\"name\":\"B\",\"email\":\"b@example.com\",\"phone\":\"\"}\n```", nil)
	defer srv.Close()

	info, err := testClient(srv.URL).ParseCV(context.Background(), "CV text")
	require.NoError(t, err)
	assert.Equal(t, "B", info.Name)
}

func TestGenerateDraft(t *testing.T) {
	srv := fakeProvider(t, `{"title":"Testing in Go","description":"A short intro.","category":"Engineering","content":"Long content...","image_hint":"gopher testing"}`, nil)
	defer srv.Close()

	draft, err := testClient(srv.URL).GenerateDraft(context.Background(), "testing in go")
	require.NoError(t, err)
	assert.Equal(t, "Testing in Go", draft.Title)
	assert.Equal(t, "Engineering", draft.Category)
	assert.Empty(t, draft.ImageURL, "draft must not carry an image url yet")
}

func TestGenerateImage(t *testing.T) {
	srv := fakeProvider(t, "", []byte("png-bytes"))
	defer srv.Close()

	img, err := testClient(srv.URL).GenerateImage(context.Background(), "gopher")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), img)
}

func TestGenerateImage_providerFailure(t *testing.T) {
	srv := fakeProvider(t, "", nil)
	defer srv.Close()

	_, err := testClient(srv.URL).GenerateImage(context.Background(), "gopher")
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	srv := fakeProvider(t, "  A short summary.\n", nil)
	defer srv.Close()

	summary, err := testClient(srv.URL).Summarize(context.Background(), "Long text")
	require.NoError(t, err)
	assert.Equal(t, "A short summary.", summary)
}

func TestPlaceholderImageURL(t *testing.T) {
	assert.Equal(t, "https://picsum.photos/seed/gopher-testing/600/400", PlaceholderImageURL("Gopher Testing"))
	assert.Equal(t, "https://picsum.photos/seed/python/600/400", PlaceholderImageURL(""))
}

func TestUnconfiguredClient(t *testing.T) {
	c := &Client{httpClient: http.DefaultClient, baseURL: defaultBaseURL}

	_, err := c.ParseCV(context.Background(), "cv")
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = c.Summarize(context.Background(), "text")
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = c.GenerateDraft(context.Background(), "topic")
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = c.GenerateImage(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
