package selfupdate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeReleaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/repos/abhisek/mathquest/releases/latest", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"tag_name": %q, "html_url": "https://github.com/abhisek/mathquest/releases/tag/%s"}`, tag, tag)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheckDevBuild(t *testing.T) {
	c := NewChecker()

	for _, version := range []string{"", "(devel)"} {
		_, err := c.Check(context.Background(), &CheckInput{Version: version})
		require.ErrorIs(t, err, ErrDevBuild)
	}
}

func TestCheckUpdateAvailable(t *testing.T) {
	srv := fakeReleaseServer(t, "v1.2.0")
	c := NewChecker(WithAPIBaseURL(srv.URL))

	res, err := c.Check(context.Background(), &CheckInput{Version: "v1.1.3"})
	require.NoError(t, err)

	assert.True(t, res.UpdateAvailable)
	assert.Equal(t, "v1.2.0", res.LatestVersion)
	assert.Equal(t, "https://github.com/abhisek/mathquest/releases/tag/v1.2.0", res.ReleaseURL)
}

func TestCheckAlreadyLatest(t *testing.T) {
	srv := fakeReleaseServer(t, "v1.2.0")
	c := NewChecker(WithAPIBaseURL(srv.URL))

	for _, version := range []string{"v1.2.0", "1.2.0", "v2.0.0"} {
		res, err := c.Check(context.Background(), &CheckInput{Version: version})
		require.NoError(t, err, version)
		assert.False(t, res.UpdateAvailable, version)
	}
}

func TestCheckUnprefixedTag(t *testing.T) {
	srv := fakeReleaseServer(t, "1.5.0")
	c := NewChecker(WithAPIBaseURL(srv.URL))

	res, err := c.Check(context.Background(), &CheckInput{Version: "v1.4.9"})
	require.NoError(t, err)
	assert.True(t, res.UpdateAvailable)
	assert.Equal(t, "1.5.0", res.LatestVersion)
}

func TestCheckGarbageCurrentVersion(t *testing.T) {
	srv := fakeReleaseServer(t, "v1.0.0")
	c := NewChecker(WithAPIBaseURL(srv.URL))

	// An unparseable running version is treated as out of date.
	res, err := c.Check(context.Background(), &CheckInput{Version: "sha-deadbeef"})
	require.NoError(t, err)
	assert.True(t, res.UpdateAvailable)
}

func TestCheckHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	c := NewChecker(WithAPIBaseURL(srv.URL))
	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestCheckInvalidReleaseTag(t *testing.T) {
	srv := fakeReleaseServer(t, "nightly")
	c := NewChecker(WithAPIBaseURL(srv.URL))

	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
}
