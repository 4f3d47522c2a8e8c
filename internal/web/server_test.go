package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/lucky7xz/datacard/internal/card"
	"github.com/lucky7xz/datacard/internal/datacard"
	"github.com/lucky7xz/datacard/internal/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	)
}

const testPage = `
title = "Team Board"

[[sections]]
heading = "People"
markdown = "All the **people**."
  [sections.grid]
  data = "people.json"
  key = "people"
  title_field = "name"
  clickable = true
  [sections.grid.field_types]
  team = "badge"

[[sections]]
heading = "Static"
  [sections.grid]
  data = "people.json"
  title_field = "name"
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"page.toml":   {Data: []byte(testPage)},
		"people.json": {Data: []byte(`[{"name":"Ada","team":"core"},{"name":"Bo","team":"ops,core"}]`)},
	}
}

func newTestServer(t *testing.T, fsys fstest.MapFS) (*Server, *httptest.Server) {
	t.Helper()
	s, err := New(Options{
		Load:  func() (*page.Doc, error) { return page.LoadFS(fsys, "page.toml") },
		Theme: "nord",
	})
	require.NoError(t, err)
	ts := httptest.NewServer(s.Routes())
	t.Cleanup(ts.Close)
	return s, ts
}

// newClient returns a browser-like client with its own cookie jar that does
// not follow redirects.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	c := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	t.Cleanup(c.CloseIdleConnections)
	return c
}

func get(t *testing.T, c *http.Client, url string) (*http.Response, string) {
	t.Helper()
	resp, err := c.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func post(t *testing.T, c *http.Client, url string) *http.Response {
	t.Helper()
	resp, err := c.Post(url, "application/x-www-form-urlencoded", nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp
}

func selectionOf(t *testing.T, c *http.Client, base, key string) selectionResponse {
	t.Helper()
	resp, body := get(t, c, base+"/api/grids/"+key+"/selection")
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	var sel selectionResponse
	require.NoError(t, json.Unmarshal([]byte(body), &sel))
	return sel
}

func TestNew_RequiresLoader(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestHealthz(t *testing.T) {
	_, ts := newTestServer(t, testFS())
	resp, body := get(t, newClient(t), ts.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, body)
}

func TestPage_RendersGridsAndSetsSession(t *testing.T) {
	s, ts := newTestServer(t, testFS())
	c := newClient(t)

	resp, body := get(t, c, ts.URL+"/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	assert.Contains(t, body, "<title>Team Board</title>")
	assert.Contains(t, body, `id="grid-people"`)
	assert.Contains(t, body, `id="grid-datacard-1"`)
	assert.Contains(t, body, "repeat(auto-fill, 280px)", "cards keep their configured width")
	assert.NotContains(t, body, "1fr")
	assert.Contains(t, body, `action="/grids/people/cards/1"`)
	assert.NotContains(t, body, `action="/grids/`+datacard.ImplicitKey(1)+`/`, "static grid must not post")
	assert.Contains(t, body, "<strong>people</strong>")
	assert.Contains(t, body, "Nothing selected")
	assert.Contains(t, body, "background: "+card.BadgeColor("ops"))

	var cookie *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == sessionCookie {
			cookie = ck
		}
	}
	require.NotNil(t, cookie)
	assert.Equal(t, 1, s.Sessions().Len())

	// The cookie is reused.
	get(t, c, ts.URL+"/")
	assert.Equal(t, 1, s.Sessions().Len())
}

func TestActivate_SelectsAndPersists(t *testing.T) {
	_, ts := newTestServer(t, testFS())
	c := newClient(t)
	get(t, c, ts.URL+"/")

	resp := post(t, c, ts.URL+"/grids/people/cards/1")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/#grid-people", resp.Header.Get("Location"))

	sel := selectionOf(t, c, ts.URL, "people")
	assert.True(t, sel.Selected)
	assert.Equal(t, 1, sel.Index)
	assert.Equal(t, map[string]any{"name": "Bo", "team": "ops,core"}, sel.Record)

	// Plain reruns keep the selection.
	_, body := get(t, c, ts.URL+"/")
	assert.Contains(t, body, "card selected")
	assert.Contains(t, body, "Selected: name: Bo")
	sel = selectionOf(t, c, ts.URL, "people")
	assert.Equal(t, 1, sel.Index)

	// A second activation replaces the first.
	post(t, c, ts.URL+"/grids/people/cards/0")
	sel = selectionOf(t, c, ts.URL, "people")
	assert.Equal(t, 0, sel.Index)
	assert.Equal(t, "Ada", sel.Record.(map[string]any)["name"])
}

func TestActivate_StaticGridIgnored(t *testing.T) {
	_, ts := newTestServer(t, testFS())
	c := newClient(t)

	key := datacard.ImplicitKey(1)
	resp := post(t, c, ts.URL+"/grids/"+key+"/cards/0")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	sel := selectionOf(t, c, ts.URL, key)
	assert.False(t, sel.Selected)
	assert.Equal(t, -1, sel.Index)
	assert.Nil(t, sel.Record)
}

func TestActivate_KeyWithSlash(t *testing.T) {
	fsys := testFS()
	fsys["page.toml"] = &fstest.MapFile{Data: []byte(`
[[sections]]
  [sections.grid]
  data = "people.json"
  key = "team/a"
  title_field = "name"
  clickable = true
`)}
	_, ts := newTestServer(t, fsys)
	c := newClient(t)

	_, body := get(t, c, ts.URL+"/")
	action := `/grids/team%2fa/cards/1`
	if !strings.Contains(body, `action="`+action+`"`) {
		action = `/grids/team%2Fa/cards/1`
	}
	require.Contains(t, body, `action="`+action+`"`)

	resp := post(t, c, ts.URL+action)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	sel := selectionOf(t, c, ts.URL, url.PathEscape("team/a"))
	assert.Equal(t, "team/a", sel.Key)
	assert.True(t, sel.Selected)
	assert.Equal(t, 1, sel.Index)

	_, body = get(t, c, ts.URL+"/")
	assert.Contains(t, body, "card selected")
}

func TestActivate_SessionsAreIsolated(t *testing.T) {
	_, ts := newTestServer(t, testFS())
	alice, bob := newClient(t), newClient(t)

	post(t, alice, ts.URL+"/grids/people/cards/1")

	assert.True(t, selectionOf(t, alice, ts.URL, "people").Selected)
	assert.False(t, selectionOf(t, bob, ts.URL, "people").Selected)
}

func TestActivate_Errors(t *testing.T) {
	_, ts := newTestServer(t, testFS())
	c := newClient(t)

	tests := []struct {
		name string
		path string
		want int
	}{
		{"Unknown grid", "/grids/nope/cards/0", http.StatusNotFound},
		{"Bad index", "/grids/people/cards/x", http.StatusBadRequest},
		{"Out of range index", "/grids/people/cards/9", http.StatusSeeOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, c, ts.URL+tt.path)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
	assert.False(t, selectionOf(t, c, ts.URL, "people").Selected)

	resp, _ := get(t, c, ts.URL+"/api/grids/nope/selection")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReload_KeepsLastGoodPage(t *testing.T) {
	fsys := testFS()
	s, ts := newTestServer(t, fsys)
	c := newClient(t)
	post(t, c, ts.URL+"/grids/people/cards/0")

	fsys["people.json"] = &fstest.MapFile{Data: []byte(`{"broken":`)}
	require.Error(t, s.Reload())

	_, body := get(t, c, ts.URL+"/")
	assert.Contains(t, body, `class="error"`)
	assert.Contains(t, body, `id="grid-people"`)

	fsys["people.json"] = &fstest.MapFile{Data: []byte(`[{"name":"Ada","team":"core"},{"name":"Cy","team":"qa"}]`)}
	require.NoError(t, s.Reload())

	_, body = get(t, c, ts.URL+"/")
	assert.NotContains(t, body, `class="error"`)
	assert.Contains(t, body, "Cy")
	// Ada is still at index 0, so the selection survives the data change.
	assert.Equal(t, 0, selectionOf(t, c, ts.URL, "people").Index)
}

func TestPage_ImageCardsHaveNoExtraSpacing(t *testing.T) {
	fsys := testFS()
	fsys["page.toml"] = &fstest.MapFile{Data: []byte(`
[[sections]]
  [sections.grid]
  data = "people.json"
  title_field = "name"
  image_field = "photo"
  max_height = 200
`)}
	fsys["people.json"] = &fstest.MapFile{Data: []byte(`[{"name":"Ada","photo":"https://example.com/a.png","bio":"one two three four five six seven eight nine ten eleven twelve"}]`)}
	_, ts := newTestServer(t, fsys)

	_, body := get(t, newClient(t), ts.URL+"/")
	assert.Contains(t, body, `style="height: 140px"`)
	assert.NotContains(t, body, "margin-bottom", "the image band is the only space reserved above the lines")
}

func TestLive_BroadcastsReload(t *testing.T) {
	s, ts := newTestServer(t, testFS())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/live"
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	require.Eventually(t, func() bool { return s.Hub().Clients() == 1 }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, s.Reload())

	var msg liveMessage
	require.NoError(t, wsjson.Read(ctx, conn, &msg))
	assert.Equal(t, "reload", msg.Type)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))
	require.Eventually(t, func() bool { return s.Hub().Clients() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestRun_StopsOnCancel(t *testing.T) {
	s, err := New(Options{Load: func() (*page.Doc, error) { return page.LoadFS(testFS(), "page.toml") }})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, "127.0.0.1:0", true) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestManager_Cleanup(t *testing.T) {
	m := NewManager(50 * time.Millisecond)
	sess := m.Create()
	require.NotNil(t, m.Get(sess.ID))
	assert.Equal(t, 1, m.Len())

	time.Sleep(80 * time.Millisecond)
	m.Cleanup()
	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Get(sess.ID))
}

func TestNewPageView_Badges(t *testing.T) {
	doc, err := page.LoadFS(testFS(), "page.toml")
	require.NoError(t, err)
	s, err := New(Options{Load: func() (*page.Doc, error) { return doc, nil }})
	require.NoError(t, err)

	blocks, _, err := s.rerun(s.sessions.Create(), nil)
	require.NoError(t, err)
	v := newPageView(doc, blocks, "no-such-theme")

	assert.Equal(t, "Team Board", v.Title)
	require.Len(t, v.Blocks, 2)
	g := v.Blocks[0].Grid
	require.NotNil(t, g)
	require.Len(t, g.Cards, 2)

	var badges []badgeView
	for _, l := range g.Cards[1].Lines {
		if l.Kind == "badges" {
			badges = append(badges, l.Badges...)
		}
	}
	assert.Equal(t, []badgeView{
		{Text: "ops", Color: card.BadgeColor("ops")},
		{Text: "core", Color: card.BadgeColor("core")},
	}, badges)
	assert.Equal(t, "title", g.Cards[1].Lines[0].Kind)
	assert.Equal(t, "Bo", g.Cards[1].Lines[0].Text)
}
