package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/2beens/postclient/internal/dialog"
	"github.com/2beens/postclient/internal/fakeapi"
	"github.com/2beens/postclient/internal/post"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, answer string) (*post.Client, *fakeapi.Server) {
	t.Helper()

	api := fakeapi.NewServer(fakeapi.NewSeededStore(3), nil)
	server := httptest.NewServer(api.Handler())
	t.Cleanup(server.Close)

	texts := dialog.TextsFor("en")
	client := post.NewClient(
		post.NewConfig(server.URL),
		server.Client(),
		dialog.NewTerminalPresenter(strings.NewReader(answer), &bytes.Buffer{}, texts),
		texts,
		nil,
	)
	return client, api
}

func TestRun_List(t *testing.T) {
	client, _ := newTestClient(t, "")
	out := &bytes.Buffer{}

	require.NoError(t, run(context.Background(), client, []string{"list"}, out))

	var posts []post.Post
	require.NoError(t, json.Unmarshal(out.Bytes(), &posts))
	assert.Len(t, posts, 3)
}

func TestRun_FindCreateUpdate(t *testing.T) {
	client, api := newTestClient(t, "")
	ctx := context.Background()

	out := &bytes.Buffer{}
	require.NoError(t, run(ctx, client, []string{"find", "2"}, out))
	assert.Contains(t, out.String(), `"title": "post 2 title"`)

	out.Reset()
	require.NoError(t, run(ctx, client, []string{"create", `{"title":"cli","body":"made"}`}, out))
	assert.Contains(t, out.String(), `"id": 4`)
	assert.Equal(t, 4, api.Store().Count())

	out.Reset()
	require.NoError(t, run(ctx, client, []string{"update", "4", `{"title":"cli v2"}`}, out))
	assert.Contains(t, out.String(), `"title": "cli v2"`)
}

func TestRun_Delete(t *testing.T) {
	client, api := newTestClient(t, "y\n")
	out := &bytes.Buffer{}

	require.NoError(t, run(context.Background(), client, []string{"delete", "1"}, out))
	assert.Equal(t, "{}\n", out.String())
	assert.Equal(t, 2, api.Store().Count())
}

func TestRun_DeleteDeclined(t *testing.T) {
	client, api := newTestClient(t, "n\n")
	out := &bytes.Buffer{}

	require.NoError(t, run(context.Background(), client, []string{"delete", "1"}, out))
	assert.Empty(t, out.String())
	assert.Equal(t, 3, api.Store().Count())
	assert.Empty(t, api.Requests())
}

func TestRun_RequestError(t *testing.T) {
	client, _ := newTestClient(t, "")

	err := run(context.Background(), client, []string{"find", "99"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, post.IsRequestError(err))
	assert.NotErrorIs(t, err, errUsage)
}

func TestRun_UsageErrors(t *testing.T) {
	client, api := newTestClient(t, "")

	for name, args := range map[string][]string{
		"no command":        nil,
		"unknown command":   {"patch", "1"},
		"list with args":    {"list", "extra"},
		"find without id":   {"find"},
		"find with bad id":  {"find", "one"},
		"create bad json":   {"create", `{"title":`},
		"create json array": {"create", `[1,2]`},
		"create json null":  {"create", `null`},
		"update missing":    {"update", "1"},
		"delete bad id":     {"delete", "x"},
	} {
		t.Run(name, func(t *testing.T) {
			err := run(context.Background(), client, args, &bytes.Buffer{})
			assert.ErrorIs(t, err, errUsage)
		})
	}

	assert.Empty(t, api.Requests())
}

func TestCheckLang(t *testing.T) {
	assert.NoError(t, checkLang("es"))
	assert.NoError(t, checkLang("en-GB"))

	err := checkLang("hr")
	assert.ErrorIs(t, err, errUsage)
	assert.ErrorContains(t, err, "en, es")
}
