package web_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestLineupEmptyState(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerAndLogin("coach", "s3cretpass")

	rr := ts.get("/lineup")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".empty", "No players yet")
	assertNotContainsElement(t, doc, "tr.player")
}

func TestAddPlayerAppearsInLineup(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerAndLogin("coach", "s3cretpass")

	ts.addPlayer("Jan Kowalski", "9", "jan.png")

	rr := ts.get("/lineup")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "tr.player", "Jan Kowalski")
	assertContainsText(t, doc, "tr.player", "#9")
	assertContainsElement(t, doc, "tr.player img.photo")
}

func TestAddPlayerShowsFlash(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerAndLogin("coach", "s3cretpass")

	rr := ts.postMultipart("/add_player", map[string]string{
		"name":   "Jan Kowalski",
		"number": "9",
	}, "jan.png", "fake image bytes")
	require.Equal(t, http.StatusSeeOther, rr.Code)

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".flash-success", "Added Jan Kowalski")
}

func TestAddPlayerMissingFields(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerAndLogin("coach", "s3cretpass")

	cases := []struct {
		name   string
		fields map[string]string
		photo  string
	}{
		{"missing name", map[string]string{"number": "9"}, "jan.png"},
		{"missing number", map[string]string{"name": "Jan"}, "jan.png"},
		{"missing photo", map[string]string{"name": "Jan", "number": "9"}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := ts.postMultipart("/add_player", tc.fields, tc.photo, "fake image bytes")
			require.Equal(t, http.StatusSeeOther, rr.Code)
			require.Equal(t, "/add_player", rr.Header().Get("Location"))

			doc := parseHTML(ts.followRedirect(rr).Body)
			assertContainsElement(t, doc, ".flash-error")
		})
	}

	// Nothing was persisted
	rr := ts.get("/lineup")
	doc := parseHTML(rr.Body)
	assertNotContainsElement(t, doc, "tr.player")
}

func TestUploadedPhotoIsServed(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerAndLogin("coach", "s3cretpass")

	ts.addPlayer("Jan Kowalski", "9", "jan.png")

	// Pull the photo URL out of the rendered lineup
	doc := parseHTML(ts.get("/lineup").Body)
	src, ok := doc.Find("tr.player img.photo").Attr("src")
	require.True(t, ok, "expected player row to carry a photo")
	require.True(t, strings.HasPrefix(src, "/uploads/"))

	rr := ts.get(src)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "fake image bytes", rr.Body.String())
	require.Equal(t, "image/png", rr.Header().Get("Content-Type"))
}

func TestUploadsUnknownPhoto(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerAndLogin("coach", "s3cretpass")

	rr := ts.get("/uploads/nope.png")
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUploadsRejectsTraversal(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerAndLogin("coach", "s3cretpass")

	rr := ts.get("/uploads/..%2F..%2Fetc%2Fpasswd")
	// Either the router refuses the path or the photo service treats it
	// as unknown; it must never serve a file outside the upload dir
	require.NotEqual(t, http.StatusOK, rr.Code)
}

func TestUploadsSanitizesOriginalFilename(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerAndLogin("coach", "s3cretpass")

	// A hostile original filename is flattened into the upload dir
	ts.addPlayer("Jan Kowalski", "9", "../../etc/passwd")

	doc := parseHTML(ts.get("/lineup").Body)
	src, ok := doc.Find("tr.player img.photo").Attr("src")
	require.True(t, ok)
	require.True(t, strings.HasPrefix(src, "/uploads/"))
	require.NotContains(t, src[len("/uploads/"):], "/")

	rr := ts.get(src)
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestDeletePlayer(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerAndLogin("coach", "s3cretpass")

	ts.addPlayer("Jan Kowalski", "9", "jan.png")

	// The roster row carries a delete form with the player id baked in
	doc := parseHTML(ts.get("/lineup").Body)
	action, ok := doc.Find("tr.player form").Attr("action")
	require.True(t, ok, "expected player row to carry a delete form")
	require.True(t, strings.HasPrefix(action, "/delete_player/"))

	photoSrc, _ := doc.Find("tr.player img.photo").Attr("src")

	rr := ts.post(action, nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)

	// Row is gone
	doc = parseHTML(ts.get("/lineup").Body)
	assertNotContainsElement(t, doc, "tr.player")

	// Photo is gone too
	rr = ts.get(photoSrc)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteUnknownPlayer(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerAndLogin("coach", "s3cretpass")

	rr := ts.post("/delete_player/9999", nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".flash-error", "Unknown player")
}

func TestAddPlayerPageShowsCurrentRoster(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerAndLogin("coach", "s3cretpass")

	ts.addPlayer("Jan Kowalski", "9", "jan.png")
	ts.addPlayer("Adam Nowak", "10", "adam.png")

	rr := ts.get("/add_player")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, `form[enctype="multipart/form-data"]`)
	require.Equal(t, 2, doc.Find("tr.player").Length())
}

func TestLineupKeepsInsertionOrder(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerAndLogin("coach", "s3cretpass")

	ts.addPlayer("First Player", "1", "first.png")
	ts.addPlayer("Second Player", "2", "second.png")
	ts.addPlayer("Third Player", "3", "third.png")

	doc := parseHTML(ts.get("/lineup").Body)
	rows := doc.Find("tr.player")
	require.Equal(t, 3, rows.Length())

	var names []string
	rows.Each(func(_ int, sel *goquery.Selection) {
		names = append(names, strings.TrimSpace(sel.Find("td").Eq(1).Text()))
	})
	require.Equal(t, []string{"First Player", "Second Player", "Third Player"}, names)
}

// Full journey: register, log in, build a roster, delete a player, log out
func TestRosterEndToEnd(t *testing.T) {
	ts := newWebTestServer(t)

	// Anonymous visitor is turned away
	rr := ts.get("/")
	require.Equal(t, http.StatusSeeOther, rr.Code)

	ts.registerAndLogin("coach", "s3cretpass")

	ts.addPlayer("Jan Kowalski", "9", "jan.png")
	ts.addPlayer("Adam Nowak", "10", "adam.png")

	doc := parseHTML(ts.get("/lineup").Body)
	require.Equal(t, 2, doc.Find("tr.player").Length())
	assertContainsText(t, doc, "table.roster", "Jan Kowalski")
	assertContainsText(t, doc, "table.roster", "Adam Nowak")

	// Remove the first player
	action, ok := doc.Find("tr.player form").First().Attr("action")
	require.True(t, ok)
	rr = ts.post(action, nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)

	doc = parseHTML(ts.get("/lineup").Body)
	require.Equal(t, 1, doc.Find("tr.player").Length())
	assertContainsText(t, doc, "table.roster", "Adam Nowak")

	// Log out; the roster is locked away again
	rr = ts.get("/logout")
	require.Equal(t, http.StatusSeeOther, rr.Code)

	rr = ts.get("/lineup")
	require.Equal(t, http.StatusSeeOther, rr.Code)
	require.Equal(t, "/login?next=%2Flineup", rr.Header().Get("Location"))
}
